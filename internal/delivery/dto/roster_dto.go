package dto

import "time"

// Request DTOs

type CreateSoldierRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	PersonalID string `json:"personal_id" validate:"required,min=5,max=20"`
	Team       string `json:"team" validate:"required,max=50"`
}

type UpdateSoldierRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=255"`
	PersonalID *string `json:"personal_id" validate:"omitempty,min=5,max=20"`
	Team       *string `json:"team" validate:"omitempty,max=50"`
}

type CreateMedicRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=255"`
	Team       string `json:"team" validate:"required,max=50"`
	Role       string `json:"role" validate:"required,oneof=company_medic battalion_medic brigade_medic"`
	Experience string `json:"experience" validate:"omitempty,oneof=beginner advanced senior"`
}

type UpdateMedicRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=255"`
	Team       *string `json:"team" validate:"omitempty,max=50"`
	Role       *string `json:"role" validate:"omitempty,oneof=company_medic battalion_medic brigade_medic"`
	Experience *string `json:"experience" validate:"omitempty,oneof=beginner advanced senior"`
}

// Response DTOs

type SoldierResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	PersonalID string    `json:"personal_id"`
	Team       string    `json:"team"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MedicResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Team       string    `json:"team"`
	Role       string    `json:"role"`
	Experience string    `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SoldierListResponse struct {
	Soldiers []SoldierResponse `json:"soldiers"`
	Total    int               `json:"total"`
}

type MedicListResponse struct {
	Medics []MedicResponse `json:"medics"`
	Total  int             `json:"total"`
}
