package converter

import (
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
)

// SettingToResponse converts a SystemSetting entity to SettingResponse DTO
func SettingToResponse(setting *entity.SystemSetting) *dto.SettingResponse {
	if setting == nil {
		return nil
	}
	return &dto.SettingResponse{
		ID:          setting.ID,
		Key:         setting.Key,
		Value:       map[string]interface{}(setting.Value),
		Description: setting.Description,
		CreatedAt:   setting.CreatedAt,
		UpdatedAt:   setting.UpdatedAt,
	}
}

// SettingsToResponses converts a slice of SystemSetting entities to response DTOs
func SettingsToResponses(settings []entity.SystemSetting) []dto.SettingResponse {
	responses := make([]dto.SettingResponse, len(settings))
	for i := range settings {
		if resp := SettingToResponse(&settings[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
