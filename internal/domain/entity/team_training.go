package entity

import (
	"time"

	"github.com/google/uuid"
)

// TeamTraining records a mass-casualty drill run by a whole team
type TeamTraining struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date              time.Time  `gorm:"type:date;not null;index" json:"date"`
	Team              string     `gorm:"type:varchar(50);not null;index" json:"team"`
	Scenario          string     `gorm:"type:varchar(255);not null" json:"scenario"`
	Location          string     `gorm:"type:varchar(255)" json:"location,omitempty"`
	Notes             string     `gorm:"type:text" json:"notes,omitempty"`
	PerformanceRating int        `gorm:"not null;default:3;index" json:"performance_rating"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedBy         *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	LastUpdatedBy     *uuid.UUID `gorm:"type:uuid" json:"last_updated_by,omitempty"`
}

func (TeamTraining) TableName() string {
	return "team_trainings"
}
