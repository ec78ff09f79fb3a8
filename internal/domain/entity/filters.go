package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralFilter narrows referral queries. Nil/empty fields are ignored.
type ReferralFilter struct {
	Statuses   []ReferralStatus
	Priorities []ReferralPriority
	Teams      []string
	Types      []ReferralType

	HasDocuments *bool

	CreatedFrom *time.Time
	CreatedTo   *time.Time
	UpdatedFrom *time.Time
	UpdatedTo   *time.Time

	AppointmentFrom *time.Time
	AppointmentTo   *time.Time
	// HasAppointment filters on appointment_date IS (NOT) NULL when set
	HasAppointment *bool

	// Search matches full_name, personal_id, referral_details and notes
	Search string
}

// TrainingFilter narrows drill queries across the three training kinds.
// Team filters team trainings directly and tourniquet/medic trainings through
// their roster entity.
type TrainingFilter struct {
	Team     string
	DateFrom *time.Time
	DateTo   *time.Time
}

// AuditLogFilter narrows audit trail queries
type AuditLogFilter struct {
	UserID  *uuid.UUID
	Actions []string
	From    *time.Time
	To      *time.Time
}
