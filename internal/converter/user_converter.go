package converter

import (
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        string(user.Role),
		Department:  user.Department,
		PhoneNumber: user.PhoneNumber,
		LastLoginIP: user.LastLoginIP,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities to response DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		if resp := UserToResponse(&users[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
