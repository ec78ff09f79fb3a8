package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralPriority is the ordered urgency classification of a referral
type ReferralPriority string

const (
	PriorityHighest ReferralPriority = "highest"
	PriorityUrgent  ReferralPriority = "urgent"
	PriorityHigh    ReferralPriority = "high"
	PriorityMedium  ReferralPriority = "medium"
	PriorityLow     ReferralPriority = "low"
	PriorityMinimal ReferralPriority = "minimal"

	// Legacy values still present on imported historical records
	PriorityRoutine   ReferralPriority = "routine"
	PriorityElective  ReferralPriority = "elective"
	PriorityEmergency ReferralPriority = "emergency"
)

// ReferralStatus is the state of a referral in its lifecycle
type ReferralStatus string

const (
	StatusAppointmentScheduled        ReferralStatus = "appointment_scheduled"
	StatusRequiresCoordination        ReferralStatus = "requires_coordination"
	StatusRequiresSoldierCoordination ReferralStatus = "requires_soldier_coordination"
	StatusWaitingForMedicalDate       ReferralStatus = "waiting_for_medical_date"
	StatusCompleted                   ReferralStatus = "completed"
	StatusCancelled                   ReferralStatus = "cancelled"
	StatusWaitingForBudgetApproval    ReferralStatus = "waiting_for_budget_approval"
	StatusWaitingForDoctorReferral    ReferralStatus = "waiting_for_doctor_referral"
	StatusNoShow                      ReferralStatus = "no_show"
)

// ReferralType is the canonical category of the requested medical service
type ReferralType string

const (
	TypeSpecialist   ReferralType = "specialist"
	TypeImaging      ReferralType = "imaging"
	TypeLab          ReferralType = "lab"
	TypeProcedure    ReferralType = "procedure"
	TypeTherapy      ReferralType = "therapy"
	TypeSurgery      ReferralType = "surgery"
	TypeConsultation ReferralType = "consultation"
	TypeDental       ReferralType = "dental"
	TypeOther        ReferralType = "other"
)

// priorityRank orders priorities from most to least urgent, legacy values
// interleaved where coordination treats them in practice.
var priorityRank = map[ReferralPriority]int{
	PriorityHighest:   0,
	PriorityEmergency: 1,
	PriorityUrgent:    2,
	PriorityHigh:      3,
	PriorityMedium:    4,
	PriorityRoutine:   5,
	PriorityLow:       6,
	PriorityElective:  7,
	PriorityMinimal:   8,
}

// PriorityRank returns the sort rank of a priority (lower = more urgent).
// Unknown values sort last.
func PriorityRank(p ReferralPriority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// Referral represents a tracked request for a medical service for a named individual.
// (personal_id, referral_type, referral_details) is unique so the same request
// cannot be filed twice for one person.
type Referral struct {
	ID              int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName        string           `gorm:"type:varchar(255);not null;index" json:"full_name"`
	PersonalID      string           `gorm:"type:varchar(20);not null;index;uniqueIndex:uq_referrals_identity" json:"personal_id"`
	Team            string           `gorm:"type:varchar(100);not null;index" json:"team"`
	ReferralType    ReferralType     `gorm:"type:varchar(50);not null;uniqueIndex:uq_referrals_identity" json:"referral_type"`
	ReferralDetails string           `gorm:"type:varchar(255);not null;uniqueIndex:uq_referrals_identity" json:"referral_details"`
	HasDocuments    bool             `gorm:"not null;default:false" json:"has_documents"`
	Priority        ReferralPriority `gorm:"type:varchar(20);not null;default:'medium';index" json:"priority"`
	Status          ReferralStatus   `gorm:"type:varchar(50);not null;default:'appointment_scheduled';index" json:"status"`

	AppointmentDate     *time.Time `gorm:"index" json:"appointment_date,omitempty"`
	AppointmentPath     string     `gorm:"type:varchar(255)" json:"appointment_path,omitempty"`
	AppointmentLocation string     `gorm:"type:varchar(255)" json:"appointment_location,omitempty"`

	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	ReferenceDate *time.Time `gorm:"type:date;index" json:"reference_date,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;index" json:"updated_at"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	LastUpdatedBy *uuid.UUID `gorm:"type:uuid" json:"last_updated_by,omitempty"`

	// Relationships
	Creator   *User              `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Updater   *User              `gorm:"foreignKey:LastUpdatedBy" json:"updater,omitempty"`
	Documents []ReferralDocument `gorm:"foreignKey:ReferralID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}

func (Referral) TableName() string {
	return "referrals"
}

// IsUrgent checks if the referral is in the top priority tier
func (r *Referral) IsUrgent() bool {
	switch r.Priority {
	case PriorityHighest, PriorityUrgent, PriorityHigh:
		return true
	}
	return false
}

// IsOpen checks if the referral still needs handling. Completed, cancelled and
// no-show referrals are terminal.
func (r *Referral) IsOpen() bool {
	switch r.Status {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return false
	}
	return true
}

// WaitingDays returns how many calendar days the referral has been waiting in
// the system as of now. Closed referrals wait zero days.
func (r *Referral) WaitingDays(now time.Time) int {
	if !r.IsOpen() {
		return 0
	}
	days := int(now.Sub(r.CreatedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
