package dto

// Request DTOs

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	Role        string `json:"role" validate:"required,oneof=admin manager user viewer"`
	Department  string `json:"department" validate:"omitempty,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=20"`
}

type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	FullName    *string `json:"full_name" validate:"omitempty,min=2"`
	Role        *string `json:"role" validate:"omitempty,oneof=admin manager user viewer"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	IsActive    *bool   `json:"is_active"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
