package repository

import (
	"errors"

	"medical-referrals/internal/domain/entity"
	domainRepo "medical-referrals/internal/domain/repository"

	"gorm.io/gorm"
)

type teamTrainingRepository struct{}

func NewTeamTrainingRepository() domainRepo.TeamTrainingRepository {
	return &teamTrainingRepository{}
}

func (r *teamTrainingRepository) Create(db *gorm.DB, training *entity.TeamTraining) error {
	return db.Create(training).Error
}

func (r *teamTrainingRepository) FindByID(db *gorm.DB, id int64) (*entity.TeamTraining, error) {
	var training entity.TeamTraining
	err := db.Where("id = ?", id).First(&training).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &training, nil
}

func (r *teamTrainingRepository) FindAll(db *gorm.DB, filter *entity.TrainingFilter) ([]entity.TeamTraining, error) {
	var trainings []entity.TeamTraining
	query := db.Model(&entity.TeamTraining{})
	if filter != nil {
		if filter.Team != "" {
			query = query.Where("team = ?", filter.Team)
		}
		if filter.DateFrom != nil {
			query = query.Where("date >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("date <= ?", *filter.DateTo)
		}
	}
	err := query.Order("date DESC").Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *teamTrainingRepository) Update(db *gorm.DB, training *entity.TeamTraining) error {
	return db.Save(training).Error
}

func (r *teamTrainingRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.TeamTraining{})
	return affected.RowsAffected, affected.Error
}

type tourniquetTrainingRepository struct{}

func NewTourniquetTrainingRepository() domainRepo.TourniquetTrainingRepository {
	return &tourniquetTrainingRepository{}
}

func (r *tourniquetTrainingRepository) Create(db *gorm.DB, training *entity.TourniquetTraining) error {
	return db.Create(training).Error
}

func (r *tourniquetTrainingRepository) CreateBatch(db *gorm.DB, trainings []entity.TourniquetTraining) error {
	if len(trainings) == 0 {
		return nil
	}
	return db.CreateInBatches(trainings, 100).Error
}

func (r *tourniquetTrainingRepository) FindByID(db *gorm.DB, id int64) (*entity.TourniquetTraining, error) {
	var training entity.TourniquetTraining
	err := db.Preload("Soldier").Where("id = ?", id).First(&training).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &training, nil
}

func (r *tourniquetTrainingRepository) FindAll(db *gorm.DB, filter *entity.TrainingFilter) ([]entity.TourniquetTraining, error) {
	var trainings []entity.TourniquetTraining
	query := db.Model(&entity.TourniquetTraining{})
	if filter != nil {
		if filter.Team != "" {
			query = query.
				Joins("JOIN soldiers ON soldiers.id = tourniquet_trainings.soldier_id").
				Where("soldiers.team = ?", filter.Team)
		}
		if filter.DateFrom != nil {
			query = query.Where("training_date >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("training_date <= ?", *filter.DateTo)
		}
	}
	err := query.Preload("Soldier").Order("training_date DESC").Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *tourniquetTrainingRepository) FindBySoldierID(db *gorm.DB, soldierID int64) ([]entity.TourniquetTraining, error) {
	var trainings []entity.TourniquetTraining
	err := db.Where("soldier_id = ?", soldierID).Order("training_date DESC").Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *tourniquetTrainingRepository) Update(db *gorm.DB, training *entity.TourniquetTraining) error {
	return db.Omit("Soldier").Save(training).Error
}

func (r *tourniquetTrainingRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.TourniquetTraining{})
	return affected.RowsAffected, affected.Error
}

type medicTrainingRepository struct{}

func NewMedicTrainingRepository() domainRepo.MedicTrainingRepository {
	return &medicTrainingRepository{}
}

func (r *medicTrainingRepository) Create(db *gorm.DB, training *entity.MedicTraining) error {
	return db.Create(training).Error
}

func (r *medicTrainingRepository) CreateBatch(db *gorm.DB, trainings []entity.MedicTraining) error {
	if len(trainings) == 0 {
		return nil
	}
	return db.CreateInBatches(trainings, 100).Error
}

func (r *medicTrainingRepository) FindByID(db *gorm.DB, id int64) (*entity.MedicTraining, error) {
	var training entity.MedicTraining
	err := db.Preload("Medic").Where("id = ?", id).First(&training).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &training, nil
}

func (r *medicTrainingRepository) FindAll(db *gorm.DB, filter *entity.TrainingFilter) ([]entity.MedicTraining, error) {
	var trainings []entity.MedicTraining
	query := db.Model(&entity.MedicTraining{})
	if filter != nil {
		if filter.Team != "" {
			query = query.
				Joins("JOIN medics ON medics.id = medic_trainings.medic_id").
				Where("medics.team = ?", filter.Team)
		}
		if filter.DateFrom != nil {
			query = query.Where("training_date >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("training_date <= ?", *filter.DateTo)
		}
	}
	err := query.Preload("Medic").Order("training_date DESC").Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *medicTrainingRepository) FindByMedicID(db *gorm.DB, medicID int64) ([]entity.MedicTraining, error) {
	var trainings []entity.MedicTraining
	err := db.Where("medic_id = ?", medicID).Order("training_date DESC").Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *medicTrainingRepository) FindByType(db *gorm.DB, trainingType entity.MedicTrainingType) ([]entity.MedicTraining, error) {
	var trainings []entity.MedicTraining
	err := db.Preload("Medic").Where("training_type = ?", trainingType).Order("training_date DESC").Find(&trainings).Error
	if err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *medicTrainingRepository) Update(db *gorm.DB, training *entity.MedicTraining) error {
	return db.Omit("Medic").Save(training).Error
}

func (r *medicTrainingRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.MedicTraining{})
	return affected.RowsAffected, affected.Error
}
