package repository

import (
	"time"

	"medical-referrals/internal/domain/entity"

	"gorm.io/gorm"
)

type SoldierRepository interface {
	Create(db *gorm.DB, soldier *entity.Soldier) error
	FindByID(db *gorm.DB, id int64) (*entity.Soldier, error)
	FindAll(db *gorm.DB, team string) ([]entity.Soldier, error)
	// FindUntrainedSince returns soldiers with no tourniquet drill on or after
	// the given date, optionally narrowed to one team.
	FindUntrainedSince(db *gorm.DB, since time.Time, team string) ([]entity.Soldier, error)
	CountByTeam(db *gorm.DB, team string) (int64, error)
	Update(db *gorm.DB, soldier *entity.Soldier) error
	Delete(db *gorm.DB, id int64) (int64, error)
}

type MedicRepository interface {
	Create(db *gorm.DB, medic *entity.Medic) error
	FindByID(db *gorm.DB, id int64) (*entity.Medic, error)
	FindAll(db *gorm.DB, team string) ([]entity.Medic, error)
	// FindUntrainedSince returns medics with no drill on or after the given
	// date, optionally narrowed to one team.
	FindUntrainedSince(db *gorm.DB, since time.Time, team string) ([]entity.Medic, error)
	Update(db *gorm.DB, medic *entity.Medic) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
