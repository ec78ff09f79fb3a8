package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicTrainingType is the drill category for medic trainings
type MedicTrainingType string

const (
	MedicTrainingCPR         MedicTrainingType = "cpr"
	MedicTrainingHeadInjury  MedicTrainingType = "head_injury"
	MedicTrainingAirway      MedicTrainingType = "airway"
	MedicTrainingBleeding    MedicTrainingType = "bleeding_control"
	MedicTrainingChestInjury MedicTrainingType = "chest_injury"
	MedicTrainingIVAccess    MedicTrainingType = "iv_access"
	MedicTrainingShock       MedicTrainingType = "shock_treatment"
	MedicTrainingBandaging   MedicTrainingType = "bandaging"
	MedicTrainingEvacuation  MedicTrainingType = "casualty_evacuation"
	MedicTrainingEquipment   MedicTrainingType = "medical_equipment"
)

// MedicTrainingTypes lists all drill categories in display order
var MedicTrainingTypes = []MedicTrainingType{
	MedicTrainingCPR,
	MedicTrainingHeadInjury,
	MedicTrainingAirway,
	MedicTrainingBleeding,
	MedicTrainingChestInjury,
	MedicTrainingIVAccess,
	MedicTrainingShock,
	MedicTrainingBandaging,
	MedicTrainingEvacuation,
	MedicTrainingEquipment,
}

// MedicTraining records a single medic drill session
type MedicTraining struct {
	ID                int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicID           int64             `gorm:"not null;index" json:"medic_id"`
	TrainingDate      time.Time         `gorm:"type:date;not null;index" json:"training_date"`
	TrainingType      MedicTrainingType `gorm:"type:varchar(100);not null;index" json:"training_type"`
	PerformanceRating int               `gorm:"not null;default:3;index" json:"performance_rating"`
	Attendance        bool              `gorm:"not null;default:true" json:"attendance"`
	Notes             string            `gorm:"type:text" json:"notes,omitempty"`
	Recommendations   string            `gorm:"type:text" json:"recommendations,omitempty"`
	Location          string            `gorm:"type:varchar(255)" json:"location,omitempty"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedBy         *uuid.UUID        `gorm:"type:uuid" json:"created_by,omitempty"`
	LastUpdatedBy     *uuid.UUID        `gorm:"type:uuid" json:"last_updated_by,omitempty"`

	// Relationships
	Medic Medic `gorm:"foreignKey:MedicID" json:"medic,omitempty"`
}

func (MedicTraining) TableName() string {
	return "medic_trainings"
}

// IsCurrentMonth checks if the drill took place in the calendar month of now
func (t *MedicTraining) IsCurrentMonth(now time.Time) bool {
	return t.TrainingDate.Year() == now.Year() && t.TrainingDate.Month() == now.Month()
}
