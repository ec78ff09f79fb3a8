package dto

import "time"

// Request DTOs

type CreateSettingRequest struct {
	Key         string                 `json:"key" validate:"required,min=1,max=100"`
	Value       map[string]interface{} `json:"value" validate:"required"`
	Description string                 `json:"description" validate:"omitempty,max=500"`
}

type UpdateSettingRequest struct {
	Value       map[string]interface{} `json:"value"`
	Description *string                `json:"description" validate:"omitempty,max=500"`
}

// Response DTOs

type SettingResponse struct {
	ID          int64                  `json:"id"`
	Key         string                 `json:"key"`
	Value       map[string]interface{} `json:"value"`
	Description string                 `json:"description,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type SettingListResponse struct {
	Settings []SettingResponse `json:"settings"`
	Total    int               `json:"total"`
}
