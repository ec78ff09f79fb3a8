package entity

import (
	"time"

	"github.com/google/uuid"
)

// Soldier is a roster entity that accumulates tourniquet drill history
type Soldier struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	PersonalID string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"personal_id"`
	Team       string     `gorm:"type:varchar(50);not null;index" json:"team"`
	UserID     *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      *User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Trainings []TourniquetTraining `gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE" json:"trainings,omitempty"`
}

func (Soldier) TableName() string {
	return "soldiers"
}
