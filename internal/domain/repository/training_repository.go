package repository

import (
	"medical-referrals/internal/domain/entity"

	"gorm.io/gorm"
)

type TeamTrainingRepository interface {
	Create(db *gorm.DB, training *entity.TeamTraining) error
	FindByID(db *gorm.DB, id int64) (*entity.TeamTraining, error)
	FindAll(db *gorm.DB, filter *entity.TrainingFilter) ([]entity.TeamTraining, error)
	Update(db *gorm.DB, training *entity.TeamTraining) error
	Delete(db *gorm.DB, id int64) (int64, error)
}

type TourniquetTrainingRepository interface {
	Create(db *gorm.DB, training *entity.TourniquetTraining) error
	CreateBatch(db *gorm.DB, trainings []entity.TourniquetTraining) error
	FindByID(db *gorm.DB, id int64) (*entity.TourniquetTraining, error)
	FindAll(db *gorm.DB, filter *entity.TrainingFilter) ([]entity.TourniquetTraining, error)
	FindBySoldierID(db *gorm.DB, soldierID int64) ([]entity.TourniquetTraining, error)
	Update(db *gorm.DB, training *entity.TourniquetTraining) error
	Delete(db *gorm.DB, id int64) (int64, error)
}

type MedicTrainingRepository interface {
	Create(db *gorm.DB, training *entity.MedicTraining) error
	CreateBatch(db *gorm.DB, trainings []entity.MedicTraining) error
	FindByID(db *gorm.DB, id int64) (*entity.MedicTraining, error)
	FindAll(db *gorm.DB, filter *entity.TrainingFilter) ([]entity.MedicTraining, error)
	FindByMedicID(db *gorm.DB, medicID int64) ([]entity.MedicTraining, error)
	FindByType(db *gorm.DB, trainingType entity.MedicTrainingType) ([]entity.MedicTraining, error)
	Update(db *gorm.DB, training *entity.MedicTraining) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
