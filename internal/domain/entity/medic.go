package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicRole is the position a medic fills in the unit
type MedicRole string

const (
	MedicRoleCompany   MedicRole = "company_medic"
	MedicRoleBattalion MedicRole = "battalion_medic"
	MedicRoleBrigade   MedicRole = "brigade_medic"
)

// MedicExperience is the seniority of a medic
type MedicExperience string

const (
	ExperienceBeginner MedicExperience = "beginner"
	ExperienceAdvanced MedicExperience = "advanced"
	ExperienceSenior   MedicExperience = "senior"
)

// Medic is a roster entity that accumulates medic drill history
type Medic struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Team       string          `gorm:"type:varchar(50);not null;index" json:"team"`
	Role       MedicRole       `gorm:"type:varchar(50);not null;index" json:"role"`
	Experience MedicExperience `gorm:"type:varchar(50);not null;default:'beginner';index" json:"experience"`
	UserID     *uuid.UUID      `gorm:"type:uuid" json:"user_id,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Trainings []MedicTraining `gorm:"foreignKey:MedicID;constraint:OnDelete:CASCADE" json:"trainings,omitempty"`
}

func (Medic) TableName() string {
	return "medics"
}
