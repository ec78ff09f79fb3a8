package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReferralRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2,max=255"`
	PersonalID      string `json:"personal_id" validate:"required,min=5,max=20"`
	Team            string `json:"team" validate:"required,max=100"`
	ReferralType    string `json:"referral_type" validate:"omitempty,max=50"`
	ReferralDetails string `json:"referral_details" validate:"required,max=255"`
	Priority        string `json:"priority" validate:"omitempty,max=20"`
	Status          string `json:"status" validate:"omitempty,max=50"`
	HasDocuments    bool   `json:"has_documents"`
	// RFC 3339 timestamp
	AppointmentDate     *string `json:"appointment_date" validate:"omitempty"`
	AppointmentPath     string  `json:"appointment_path" validate:"omitempty,max=255"`
	AppointmentLocation string  `json:"appointment_location" validate:"omitempty,max=255"`
	Notes               string  `json:"notes" validate:"omitempty"`
	// Format: YYYY-MM-DD
	ReferenceDate *string `json:"reference_date" validate:"omitempty"`
}

type UpdateReferralRequest struct {
	FullName            *string `json:"full_name" validate:"omitempty,min=2,max=255"`
	PersonalID          *string `json:"personal_id" validate:"omitempty,min=5,max=20"`
	Team                *string `json:"team" validate:"omitempty,max=100"`
	ReferralType        *string `json:"referral_type" validate:"omitempty,max=50"`
	ReferralDetails     *string `json:"referral_details" validate:"omitempty,max=255"`
	Priority            *string `json:"priority" validate:"omitempty,max=20"`
	Status              *string `json:"status" validate:"omitempty,max=50"`
	HasDocuments        *bool   `json:"has_documents"`
	AppointmentDate     *string `json:"appointment_date" validate:"omitempty"`
	AppointmentPath     *string `json:"appointment_path" validate:"omitempty,max=255"`
	AppointmentLocation *string `json:"appointment_location" validate:"omitempty,max=255"`
	Notes               *string `json:"notes" validate:"omitempty"`
	ReferenceDate       *string `json:"reference_date" validate:"omitempty"`
}

// ListReferralsQuery carries the query-string filters of the list endpoint.
// Multi-value fields take comma-separated values. The appointment toggles
// (Today, ThisWeek, Future, Past, NoAppointment) are resolved against the
// server clock.
type ListReferralsQuery struct {
	Statuses   []string
	Priorities []string
	Teams      []string
	Types      []string

	HasDocuments *bool
	Search       string

	CreatedFrom *time.Time
	CreatedTo   *time.Time
	UpdatedFrom *time.Time
	UpdatedTo   *time.Time

	AppointmentFrom *time.Time
	AppointmentTo   *time.Time

	Today         bool
	ThisWeek      bool
	Future        bool
	Past          bool
	NoAppointment bool
}

type CreateReferralDocumentRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	FilePath    string `json:"file_path" validate:"required,max=512"`
	Description string `json:"description" validate:"omitempty"`
}

// Response DTOs

type ReferralResponse struct {
	ID                  int64      `json:"id"`
	FullName            string     `json:"full_name"`
	PersonalID          string     `json:"personal_id"`
	Team                string     `json:"team"`
	ReferralType        string     `json:"referral_type"`
	ReferralDetails     string     `json:"referral_details"`
	HasDocuments        bool       `json:"has_documents"`
	Priority            string     `json:"priority"`
	Status              string     `json:"status"`
	AppointmentDate     *time.Time `json:"appointment_date,omitempty"`
	AppointmentPath     string     `json:"appointment_path,omitempty"`
	AppointmentLocation string     `json:"appointment_location,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	ReferenceDate       *time.Time `json:"reference_date,omitempty"`
	WaitingDays         int        `json:"waiting_days"`
	IsUrgent            bool       `json:"is_urgent"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	CreatedBy           *uuid.UUID `json:"created_by,omitempty"`
	LastUpdatedBy       *uuid.UUID `json:"last_updated_by,omitempty"`

	Documents []ReferralDocumentResponse `json:"documents,omitempty"`
}

type ReferralDocumentResponse struct {
	ID          int64      `json:"id"`
	ReferralID  int64      `json:"referral_id"`
	Title       string     `json:"title"`
	FilePath    string     `json:"file_path"`
	Description string     `json:"description,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	UploadedBy  *uuid.UUID `json:"uploaded_by,omitempty"`
}

type ReferralListResponse struct {
	Referrals []ReferralResponse `json:"referrals"`
	Total     int                `json:"total"`
}

type UpcomingAppointmentsResponse struct {
	Referrals []ReferralResponse `json:"referrals"`
	Soon      []ReferralResponse `json:"soon"`
	Total     int                `json:"total"`
}
