package entity

import (
	"time"

	"github.com/google/uuid"
)

// TourniquetTraining records a single tourniquet application drill.
// CATTime is an uncontrolled text field (imported data contains values like
// "35", "40s" or "-"); consumers must parse defensively and skip non-numeric
// readings instead of failing.
type TourniquetTraining struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	SoldierID     int64      `gorm:"not null;index" json:"soldier_id"`
	TrainingDate  time.Time  `gorm:"type:date;not null;index" json:"training_date"`
	CATTime       string     `gorm:"column:cat_time;type:varchar(10);not null" json:"cat_time"`
	Passed        bool       `gorm:"not null;default:true;index" json:"passed"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	LastUpdatedBy *uuid.UUID `gorm:"type:uuid" json:"last_updated_by,omitempty"`

	// Relationships
	Soldier Soldier `gorm:"foreignKey:SoldierID" json:"soldier,omitempty"`
}

func (TourniquetTraining) TableName() string {
	return "tourniquet_trainings"
}

// IsCurrentMonth checks if the drill took place in the calendar month of now
func (t *TourniquetTraining) IsCurrentMonth(now time.Time) bool {
	return t.TrainingDate.Year() == now.Year() && t.TrainingDate.Month() == now.Month()
}
