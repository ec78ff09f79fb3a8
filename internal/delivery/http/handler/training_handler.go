package handler

import (
	"encoding/json"
	"net/http"

	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/delivery/http/middleware"
	"medical-referrals/internal/domain/entity"
	"medical-referrals/internal/usecase"
	"medical-referrals/pkg/response"
	"medical-referrals/pkg/validator"

	"github.com/gorilla/mux"
)

type TrainingHandler struct {
	trainingUsecase usecase.TrainingUsecase
	validator       *validator.CustomValidator
}

func NewTrainingHandler(trainingUsecase usecase.TrainingUsecase, validator *validator.CustomValidator) *TrainingHandler {
	return &TrainingHandler{
		trainingUsecase: trainingUsecase,
		validator:       validator,
	}
}

// trainingFilter builds the shared drill query filter from query parameters
func trainingFilter(r *http.Request) *entity.TrainingFilter {
	return &entity.TrainingFilter{
		Team:     r.URL.Query().Get("team"),
		DateFrom: queryTime(r, "date_from"),
		DateTo:   queryTime(r, "date_to"),
	}
}

// trainingError maps drill usecase errors onto HTTP responses
func trainingError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrTrainingNotFound:
		response.NotFound(w, "Training not found")
	case usecase.ErrSoldierNotFound:
		response.NotFound(w, "Soldier not found")
	case usecase.ErrMedicNotFound:
		response.NotFound(w, "Medic not found")
	case usecase.ErrUnknownTeam:
		response.Error(w, http.StatusBadRequest, "Unknown team", nil)
	case usecase.ErrUnknownTrainingType:
		response.Error(w, http.StatusBadRequest, "Unknown training type", nil)
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

// Team trainings

func (h *TrainingHandler) CreateTeamTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTeamTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	training, err := h.trainingUsecase.CreateTeamTraining(r.Context(), &req, actorID)
	if err != nil {
		trainingError(w, err, "Failed to create team training")
		return
	}

	response.Success(w, http.StatusCreated, "Team training created successfully", training)
}

func (h *TrainingHandler) ListTeamTrainings(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.trainingUsecase.ListTeamTrainings(r.Context(), trainingFilter(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list team trainings")
		return
	}

	response.Success(w, http.StatusOK, "Team trainings retrieved successfully", trainings)
}

func (h *TrainingHandler) UpdateTeamTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid training ID", nil)
		return
	}

	var req dto.UpdateTeamTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	training, err := h.trainingUsecase.UpdateTeamTraining(r.Context(), id, &req, actorID)
	if err != nil {
		trainingError(w, err, "Failed to update team training")
		return
	}

	response.Success(w, http.StatusOK, "Team training updated successfully", training)
}

func (h *TrainingHandler) DeleteTeamTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid training ID", nil)
		return
	}

	if err := h.trainingUsecase.DeleteTeamTraining(r.Context(), id, actorID); err != nil {
		trainingError(w, err, "Failed to delete team training")
		return
	}

	response.Success(w, http.StatusOK, "Team training deleted successfully", nil)
}

// Tourniquet trainings

func (h *TrainingHandler) CreateTourniquetTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTourniquetTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	training, err := h.trainingUsecase.CreateTourniquetTraining(r.Context(), &req, actorID)
	if err != nil {
		trainingError(w, err, "Failed to create tourniquet training")
		return
	}

	response.Success(w, http.StatusCreated, "Tourniquet training created successfully", training)
}

// BulkCreateTourniquetTrainings records one drill session for many soldiers
func (h *TrainingHandler) BulkCreateTourniquetTrainings(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BulkCreateTourniquetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	trainings, err := h.trainingUsecase.BulkCreateTourniquetTrainings(r.Context(), &req, actorID)
	if err != nil {
		trainingError(w, err, "Failed to bulk create tourniquet trainings")
		return
	}

	response.Success(w, http.StatusCreated, "Tourniquet trainings created successfully", trainings)
}

func (h *TrainingHandler) ListTourniquetTrainings(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.trainingUsecase.ListTourniquetTrainings(r.Context(), trainingFilter(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list tourniquet trainings")
		return
	}

	response.Success(w, http.StatusOK, "Tourniquet trainings retrieved successfully", trainings)
}

func (h *TrainingHandler) UpdateTourniquetTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid training ID", nil)
		return
	}

	var req dto.UpdateTourniquetTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	training, err := h.trainingUsecase.UpdateTourniquetTraining(r.Context(), id, &req, actorID)
	if err != nil {
		trainingError(w, err, "Failed to update tourniquet training")
		return
	}

	response.Success(w, http.StatusOK, "Tourniquet training updated successfully", training)
}

func (h *TrainingHandler) DeleteTourniquetTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid training ID", nil)
		return
	}

	if err := h.trainingUsecase.DeleteTourniquetTraining(r.Context(), id, actorID); err != nil {
		trainingError(w, err, "Failed to delete tourniquet training")
		return
	}

	response.Success(w, http.StatusOK, "Tourniquet training deleted successfully", nil)
}

// Medic trainings

func (h *TrainingHandler) CreateMedicTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	training, err := h.trainingUsecase.CreateMedicTraining(r.Context(), &req, actorID)
	if err != nil {
		trainingError(w, err, "Failed to create medic training")
		return
	}

	response.Success(w, http.StatusCreated, "Medic training created successfully", training)
}

// BulkCreateMedicTrainings records one drill session for many medics
func (h *TrainingHandler) BulkCreateMedicTrainings(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BulkCreateMedicTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	trainings, err := h.trainingUsecase.BulkCreateMedicTrainings(r.Context(), &req, actorID)
	if err != nil {
		trainingError(w, err, "Failed to bulk create medic trainings")
		return
	}

	response.Success(w, http.StatusCreated, "Medic trainings created successfully", trainings)
}

// ListMedicTrainingsByType returns the full drill history of one category
func (h *TrainingHandler) ListMedicTrainingsByType(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.trainingUsecase.ListMedicTrainingsByType(r.Context(), mux.Vars(r)["type"])
	if err != nil {
		trainingError(w, err, "Failed to list medic trainings by type")
		return
	}

	response.Success(w, http.StatusOK, "Medic trainings retrieved successfully", trainings)
}

func (h *TrainingHandler) ListMedicTrainings(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.trainingUsecase.ListMedicTrainings(r.Context(), trainingFilter(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list medic trainings")
		return
	}

	response.Success(w, http.StatusOK, "Medic trainings retrieved successfully", trainings)
}

func (h *TrainingHandler) UpdateMedicTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid training ID", nil)
		return
	}

	var req dto.UpdateMedicTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	training, err := h.trainingUsecase.UpdateMedicTraining(r.Context(), id, &req, actorID)
	if err != nil {
		trainingError(w, err, "Failed to update medic training")
		return
	}

	response.Success(w, http.StatusOK, "Medic training updated successfully", training)
}

func (h *TrainingHandler) DeleteMedicTraining(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid training ID", nil)
		return
	}

	if err := h.trainingUsecase.DeleteMedicTraining(r.Context(), id, actorID); err != nil {
		trainingError(w, err, "Failed to delete medic training")
		return
	}

	response.Success(w, http.StatusOK, "Medic training deleted successfully", nil)
}
