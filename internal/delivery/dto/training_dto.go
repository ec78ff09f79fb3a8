package dto

import "time"

// Request DTOs

type CreateTeamTrainingRequest struct {
	// Format: YYYY-MM-DD
	Date              string `json:"date" validate:"required"`
	Team              string `json:"team" validate:"required,max=50"`
	Scenario          string `json:"scenario" validate:"required,max=255"`
	Location          string `json:"location" validate:"omitempty,max=255"`
	Notes             string `json:"notes" validate:"omitempty"`
	PerformanceRating int    `json:"performance_rating" validate:"required,gte=1,lte=5"`
}

type UpdateTeamTrainingRequest struct {
	Date              *string `json:"date" validate:"omitempty"`
	Team              *string `json:"team" validate:"omitempty,max=50"`
	Scenario          *string `json:"scenario" validate:"omitempty,max=255"`
	Location          *string `json:"location" validate:"omitempty,max=255"`
	Notes             *string `json:"notes" validate:"omitempty"`
	PerformanceRating *int    `json:"performance_rating" validate:"omitempty,gte=1,lte=5"`
}

type CreateTourniquetTrainingRequest struct {
	SoldierID    int64  `json:"soldier_id" validate:"required,min=1"`
	TrainingDate string `json:"training_date" validate:"required"`
	CATTime      string `json:"cat_time" validate:"required,max=10"`
	Passed       *bool  `json:"passed"`
	Notes        string `json:"notes" validate:"omitempty"`
}

type UpdateTourniquetTrainingRequest struct {
	TrainingDate *string `json:"training_date" validate:"omitempty"`
	CATTime      *string `json:"cat_time" validate:"omitempty,max=10"`
	Passed       *bool   `json:"passed"`
	Notes        *string `json:"notes" validate:"omitempty"`
}

// BulkCreateTourniquetRequest records one drill session for many soldiers at
// once.
type BulkCreateTourniquetRequest struct {
	TrainingDate string                       `json:"training_date" validate:"required"`
	Entries      []BulkTourniquetEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type BulkTourniquetEntryRequest struct {
	SoldierID int64  `json:"soldier_id" validate:"required,min=1"`
	CATTime   string `json:"cat_time" validate:"required,max=10"`
	Passed    *bool  `json:"passed"`
	Notes     string `json:"notes" validate:"omitempty"`
}

type CreateMedicTrainingRequest struct {
	MedicID           int64  `json:"medic_id" validate:"required,min=1"`
	TrainingDate      string `json:"training_date" validate:"required"`
	TrainingType      string `json:"training_type" validate:"required,max=100"`
	PerformanceRating int    `json:"performance_rating" validate:"required,gte=1,lte=5"`
	Attendance        *bool  `json:"attendance"`
	Notes             string `json:"notes" validate:"omitempty"`
	Recommendations   string `json:"recommendations" validate:"omitempty"`
	Location          string `json:"location" validate:"omitempty,max=255"`
}

type UpdateMedicTrainingRequest struct {
	TrainingDate      *string `json:"training_date" validate:"omitempty"`
	TrainingType      *string `json:"training_type" validate:"omitempty,max=100"`
	PerformanceRating *int    `json:"performance_rating" validate:"omitempty,gte=1,lte=5"`
	Attendance        *bool   `json:"attendance"`
	Notes             *string `json:"notes" validate:"omitempty"`
	Recommendations   *string `json:"recommendations" validate:"omitempty"`
	Location          *string `json:"location" validate:"omitempty,max=255"`
}

// BulkCreateMedicTrainingRequest records one drill session for many medics
type BulkCreateMedicTrainingRequest struct {
	TrainingDate string                  `json:"training_date" validate:"required"`
	TrainingType string                  `json:"training_type" validate:"required,max=100"`
	Location     string                  `json:"location" validate:"omitempty,max=255"`
	Entries      []BulkMedicEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type BulkMedicEntryRequest struct {
	MedicID           int64  `json:"medic_id" validate:"required,min=1"`
	PerformanceRating int    `json:"performance_rating" validate:"required,gte=1,lte=5"`
	Attendance        *bool  `json:"attendance"`
	Notes             string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type TeamTrainingResponse struct {
	ID                int64     `json:"id"`
	Date              time.Time `json:"date"`
	Team              string    `json:"team"`
	Scenario          string    `json:"scenario"`
	Location          string    `json:"location,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	PerformanceRating int       `json:"performance_rating"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type TourniquetTrainingResponse struct {
	ID           int64            `json:"id"`
	SoldierID    int64            `json:"soldier_id"`
	Soldier      *SoldierResponse `json:"soldier,omitempty"`
	TrainingDate time.Time        `json:"training_date"`
	CATTime      string           `json:"cat_time"`
	Passed       bool             `json:"passed"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type MedicTrainingResponse struct {
	ID                int64          `json:"id"`
	MedicID           int64          `json:"medic_id"`
	Medic             *MedicResponse `json:"medic,omitempty"`
	TrainingDate      time.Time      `json:"training_date"`
	TrainingType      string         `json:"training_type"`
	PerformanceRating int            `json:"performance_rating"`
	Attendance        bool           `json:"attendance"`
	Notes             string         `json:"notes,omitempty"`
	Recommendations   string         `json:"recommendations,omitempty"`
	Location          string         `json:"location,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type TeamTrainingListResponse struct {
	Trainings []TeamTrainingResponse `json:"trainings"`
	Total     int                    `json:"total"`
}

type TourniquetTrainingListResponse struct {
	Trainings []TourniquetTrainingResponse `json:"trainings"`
	Total     int                          `json:"total"`
}

type MedicTrainingListResponse struct {
	Trainings []MedicTrainingResponse `json:"trainings"`
	Total     int                     `json:"total"`
}
