package converter

import (
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
)

// SoldierToResponse converts a Soldier entity to SoldierResponse DTO
func SoldierToResponse(soldier *entity.Soldier) *dto.SoldierResponse {
	if soldier == nil {
		return nil
	}
	return &dto.SoldierResponse{
		ID:         soldier.ID,
		Name:       soldier.Name,
		PersonalID: soldier.PersonalID,
		Team:       soldier.Team,
		CreatedAt:  soldier.CreatedAt,
		UpdatedAt:  soldier.UpdatedAt,
	}
}

// SoldiersToResponses converts a slice of Soldier entities to response DTOs
func SoldiersToResponses(soldiers []entity.Soldier) []dto.SoldierResponse {
	responses := make([]dto.SoldierResponse, len(soldiers))
	for i := range soldiers {
		if resp := SoldierToResponse(&soldiers[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// MedicToResponse converts a Medic entity to MedicResponse DTO
func MedicToResponse(medic *entity.Medic) *dto.MedicResponse {
	if medic == nil {
		return nil
	}
	return &dto.MedicResponse{
		ID:         medic.ID,
		Name:       medic.Name,
		Team:       medic.Team,
		Role:       string(medic.Role),
		Experience: string(medic.Experience),
		CreatedAt:  medic.CreatedAt,
		UpdatedAt:  medic.UpdatedAt,
	}
}

// MedicsToResponses converts a slice of Medic entities to response DTOs
func MedicsToResponses(medics []entity.Medic) []dto.MedicResponse {
	responses := make([]dto.MedicResponse, len(medics))
	for i := range medics {
		if resp := MedicToResponse(&medics[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
