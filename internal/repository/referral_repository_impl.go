package repository

import (
	"errors"

	"medical-referrals/internal/domain/entity"
	domainRepo "medical-referrals/internal/domain/repository"

	"gorm.io/gorm"
)

type referralRepository struct{}

func NewReferralRepository() domainRepo.ReferralRepository {
	return &referralRepository{}
}

func (r *referralRepository) Create(db *gorm.DB, referral *entity.Referral) error {
	return db.Create(referral).Error
}

func (r *referralRepository) FindByID(db *gorm.DB, id int64) (*entity.Referral, error) {
	var referral entity.Referral
	err := db.Preload("Creator").Preload("Updater").Preload("Documents").Where("id = ?", id).First(&referral).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &referral, nil
}

func (r *referralRepository) FindAll(db *gorm.DB, filter *entity.ReferralFilter) ([]entity.Referral, error) {
	var referrals []entity.Referral
	err := applyReferralFilter(db, filter).Order("updated_at DESC").Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

func (r *referralRepository) Update(db *gorm.DB, referral *entity.Referral) error {
	return db.Omit("Creator", "Updater", "Documents").Save(referral).Error
}

func (r *referralRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Referral{})
	return affected.RowsAffected, affected.Error
}

func applyReferralFilter(db *gorm.DB, filter *entity.ReferralFilter) *gorm.DB {
	query := db.Model(&entity.Referral{})
	if filter == nil {
		return query
	}

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if len(filter.Priorities) > 0 {
		query = query.Where("priority IN ?", filter.Priorities)
	}
	if len(filter.Teams) > 0 {
		query = query.Where("team IN ?", filter.Teams)
	}
	if len(filter.Types) > 0 {
		query = query.Where("referral_type IN ?", filter.Types)
	}
	if filter.HasDocuments != nil {
		query = query.Where("has_documents = ?", *filter.HasDocuments)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}
	if filter.UpdatedFrom != nil {
		query = query.Where("updated_at >= ?", *filter.UpdatedFrom)
	}
	if filter.UpdatedTo != nil {
		query = query.Where("updated_at <= ?", *filter.UpdatedTo)
	}
	if filter.AppointmentFrom != nil {
		query = query.Where("appointment_date >= ?", *filter.AppointmentFrom)
	}
	if filter.AppointmentTo != nil {
		query = query.Where("appointment_date <= ?", *filter.AppointmentTo)
	}
	if filter.HasAppointment != nil {
		if *filter.HasAppointment {
			query = query.Where("appointment_date IS NOT NULL")
		} else {
			query = query.Where("appointment_date IS NULL")
		}
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"full_name ILIKE ? OR personal_id ILIKE ? OR referral_details ILIKE ? OR notes ILIKE ?",
			like, like, like, like,
		)
	}

	return query
}

type referralDocumentRepository struct{}

func NewReferralDocumentRepository() domainRepo.ReferralDocumentRepository {
	return &referralDocumentRepository{}
}

func (r *referralDocumentRepository) Create(db *gorm.DB, document *entity.ReferralDocument) error {
	return db.Create(document).Error
}

func (r *referralDocumentRepository) FindByID(db *gorm.DB, id int64) (*entity.ReferralDocument, error) {
	var document entity.ReferralDocument
	err := db.Where("id = ?", id).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *referralDocumentRepository) FindByReferralID(db *gorm.DB, referralID int64) ([]entity.ReferralDocument, error) {
	var documents []entity.ReferralDocument
	err := db.Where("referral_id = ?", referralID).Order("uploaded_at DESC").Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *referralDocumentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ReferralDocument{})
	return affected.RowsAffected, affected.Error
}
