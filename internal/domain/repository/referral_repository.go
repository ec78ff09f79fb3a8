package repository

import (
	"medical-referrals/internal/domain/entity"

	"gorm.io/gorm"
)

type ReferralRepository interface {
	Create(db *gorm.DB, referral *entity.Referral) error
	FindByID(db *gorm.DB, id int64) (*entity.Referral, error)
	FindAll(db *gorm.DB, filter *entity.ReferralFilter) ([]entity.Referral, error)
	Update(db *gorm.DB, referral *entity.Referral) error
	Delete(db *gorm.DB, id int64) (int64, error)
}

type ReferralDocumentRepository interface {
	Create(db *gorm.DB, document *entity.ReferralDocument) error
	FindByID(db *gorm.DB, id int64) (*entity.ReferralDocument, error)
	FindByReferralID(db *gorm.DB, referralID int64) ([]entity.ReferralDocument, error)
	Delete(db *gorm.DB, id int64) (int64, error)
}
