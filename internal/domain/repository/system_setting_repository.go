package repository

import (
	"medical-referrals/internal/domain/entity"

	"gorm.io/gorm"
)

type SystemSettingRepository interface {
	Create(db *gorm.DB, setting *entity.SystemSetting) error
	FindByID(db *gorm.DB, id int64) (*entity.SystemSetting, error)
	FindByKey(db *gorm.DB, key string) (*entity.SystemSetting, error)
	FindAll(db *gorm.DB, search string) ([]entity.SystemSetting, error)
	Update(db *gorm.DB, setting *entity.SystemSetting) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
