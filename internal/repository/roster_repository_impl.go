package repository

import (
	"errors"
	"time"

	"medical-referrals/internal/domain/entity"
	domainRepo "medical-referrals/internal/domain/repository"

	"gorm.io/gorm"
)

type soldierRepository struct{}

func NewSoldierRepository() domainRepo.SoldierRepository {
	return &soldierRepository{}
}

func (r *soldierRepository) Create(db *gorm.DB, soldier *entity.Soldier) error {
	return db.Create(soldier).Error
}

func (r *soldierRepository) FindByID(db *gorm.DB, id int64) (*entity.Soldier, error) {
	var soldier entity.Soldier
	err := db.Where("id = ?", id).First(&soldier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &soldier, nil
}

func (r *soldierRepository) FindAll(db *gorm.DB, team string) ([]entity.Soldier, error) {
	var soldiers []entity.Soldier
	query := db.Model(&entity.Soldier{})
	if team != "" {
		query = query.Where("team = ?", team)
	}
	err := query.Order("team ASC, name ASC").Find(&soldiers).Error
	if err != nil {
		return nil, err
	}
	return soldiers, nil
}

func (r *soldierRepository) FindUntrainedSince(db *gorm.DB, since time.Time, team string) ([]entity.Soldier, error) {
	var soldiers []entity.Soldier
	trained := db.Model(&entity.TourniquetTraining{}).
		Select("DISTINCT soldier_id").
		Where("training_date >= ?", since)

	query := db.Model(&entity.Soldier{}).Where("id NOT IN (?)", trained)
	if team != "" {
		query = query.Where("team = ?", team)
	}
	err := query.Order("team ASC, name ASC").Find(&soldiers).Error
	if err != nil {
		return nil, err
	}
	return soldiers, nil
}

func (r *soldierRepository) CountByTeam(db *gorm.DB, team string) (int64, error) {
	var count int64
	err := db.Model(&entity.Soldier{}).Where("team = ?", team).Count(&count).Error
	return count, err
}

func (r *soldierRepository) Update(db *gorm.DB, soldier *entity.Soldier) error {
	return db.Omit("User", "Trainings").Save(soldier).Error
}

func (r *soldierRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Soldier{})
	return affected.RowsAffected, affected.Error
}

type medicRepository struct{}

func NewMedicRepository() domainRepo.MedicRepository {
	return &medicRepository{}
}

func (r *medicRepository) Create(db *gorm.DB, medic *entity.Medic) error {
	return db.Create(medic).Error
}

func (r *medicRepository) FindByID(db *gorm.DB, id int64) (*entity.Medic, error) {
	var medic entity.Medic
	err := db.Where("id = ?", id).First(&medic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medic, nil
}

func (r *medicRepository) FindAll(db *gorm.DB, team string) ([]entity.Medic, error) {
	var medics []entity.Medic
	query := db.Model(&entity.Medic{})
	if team != "" {
		query = query.Where("team = ?", team)
	}
	err := query.Order("team ASC, name ASC").Find(&medics).Error
	if err != nil {
		return nil, err
	}
	return medics, nil
}

func (r *medicRepository) FindUntrainedSince(db *gorm.DB, since time.Time, team string) ([]entity.Medic, error) {
	var medics []entity.Medic
	trained := db.Model(&entity.MedicTraining{}).
		Select("DISTINCT medic_id").
		Where("training_date >= ?", since)

	query := db.Model(&entity.Medic{}).Where("id NOT IN (?)", trained)
	if team != "" {
		query = query.Where("team = ?", team)
	}
	err := query.Order("team ASC, name ASC").Find(&medics).Error
	if err != nil {
		return nil, err
	}
	return medics, nil
}

func (r *medicRepository) Update(db *gorm.DB, medic *entity.Medic) error {
	return db.Omit("User", "Trainings").Save(medic).Error
}

func (r *medicRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Medic{})
	return affected.RowsAffected, affected.Error
}
