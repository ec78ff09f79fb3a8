package repository

import (
	"errors"

	"medical-referrals/internal/domain/entity"
	domainRepo "medical-referrals/internal/domain/repository"

	"gorm.io/gorm"
)

type systemSettingRepository struct{}

func NewSystemSettingRepository() domainRepo.SystemSettingRepository {
	return &systemSettingRepository{}
}

func (r *systemSettingRepository) Create(db *gorm.DB, setting *entity.SystemSetting) error {
	return db.Create(setting).Error
}

func (r *systemSettingRepository) FindByID(db *gorm.DB, id int64) (*entity.SystemSetting, error) {
	var setting entity.SystemSetting
	err := db.Where("id = ?", id).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *systemSettingRepository) FindByKey(db *gorm.DB, key string) (*entity.SystemSetting, error) {
	var setting entity.SystemSetting
	err := db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *systemSettingRepository) FindAll(db *gorm.DB, search string) ([]entity.SystemSetting, error) {
	var settings []entity.SystemSetting
	query := db.Model(&entity.SystemSetting{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("key ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	err := query.Order("key ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *systemSettingRepository) Update(db *gorm.DB, setting *entity.SystemSetting) error {
	return db.Save(setting).Error
}

func (r *systemSettingRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.SystemSetting{})
	return affected.RowsAffected, affected.Error
}
