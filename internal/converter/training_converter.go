package converter

import (
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
)

// TeamTrainingToResponse converts a TeamTraining entity to its DTO
func TeamTrainingToResponse(training *entity.TeamTraining) *dto.TeamTrainingResponse {
	if training == nil {
		return nil
	}
	return &dto.TeamTrainingResponse{
		ID:                training.ID,
		Date:              training.Date,
		Team:              training.Team,
		Scenario:          training.Scenario,
		Location:          training.Location,
		Notes:             training.Notes,
		PerformanceRating: training.PerformanceRating,
		CreatedAt:         training.CreatedAt,
		UpdatedAt:         training.UpdatedAt,
	}
}

// TeamTrainingsToResponses converts a slice of TeamTraining entities to DTOs
func TeamTrainingsToResponses(trainings []entity.TeamTraining) []dto.TeamTrainingResponse {
	responses := make([]dto.TeamTrainingResponse, len(trainings))
	for i := range trainings {
		if resp := TeamTrainingToResponse(&trainings[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// TourniquetTrainingToResponse converts a TourniquetTraining entity to its DTO
func TourniquetTrainingToResponse(training *entity.TourniquetTraining) *dto.TourniquetTrainingResponse {
	if training == nil {
		return nil
	}

	response := &dto.TourniquetTrainingResponse{
		ID:           training.ID,
		SoldierID:    training.SoldierID,
		TrainingDate: training.TrainingDate,
		CATTime:      training.CATTime,
		Passed:       training.Passed,
		Notes:        training.Notes,
		CreatedAt:    training.CreatedAt,
		UpdatedAt:    training.UpdatedAt,
	}

	// Include soldier info if preloaded
	if training.Soldier.ID != 0 {
		response.Soldier = SoldierToResponse(&training.Soldier)
	}

	return response
}

// TourniquetTrainingsToResponses converts a slice of drills to DTOs
func TourniquetTrainingsToResponses(trainings []entity.TourniquetTraining) []dto.TourniquetTrainingResponse {
	responses := make([]dto.TourniquetTrainingResponse, len(trainings))
	for i := range trainings {
		if resp := TourniquetTrainingToResponse(&trainings[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// MedicTrainingToResponse converts a MedicTraining entity to its DTO
func MedicTrainingToResponse(training *entity.MedicTraining) *dto.MedicTrainingResponse {
	if training == nil {
		return nil
	}

	response := &dto.MedicTrainingResponse{
		ID:                training.ID,
		MedicID:           training.MedicID,
		TrainingDate:      training.TrainingDate,
		TrainingType:      string(training.TrainingType),
		PerformanceRating: training.PerformanceRating,
		Attendance:        training.Attendance,
		Notes:             training.Notes,
		Recommendations:   training.Recommendations,
		Location:          training.Location,
		CreatedAt:         training.CreatedAt,
		UpdatedAt:         training.UpdatedAt,
	}

	// Include medic info if preloaded
	if training.Medic.ID != 0 {
		response.Medic = MedicToResponse(&training.Medic)
	}

	return response
}

// MedicTrainingsToResponses converts a slice of drills to DTOs
func MedicTrainingsToResponses(trainings []entity.MedicTraining) []dto.MedicTrainingResponse {
	responses := make([]dto.MedicTrainingResponse, len(trainings))
	for i := range trainings {
		if resp := MedicTrainingToResponse(&trainings[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
