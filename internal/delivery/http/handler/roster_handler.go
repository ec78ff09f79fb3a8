package handler

import (
	"encoding/json"
	"net/http"

	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/delivery/http/middleware"
	"medical-referrals/internal/usecase"
	"medical-referrals/pkg/response"
	"medical-referrals/pkg/validator"
)

type RosterHandler struct {
	rosterUsecase usecase.RosterUsecase
	validator     *validator.CustomValidator
}

func NewRosterHandler(rosterUsecase usecase.RosterUsecase, validator *validator.CustomValidator) *RosterHandler {
	return &RosterHandler{
		rosterUsecase: rosterUsecase,
		validator:     validator,
	}
}

// rosterError maps roster usecase errors onto HTTP responses
func rosterError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrSoldierNotFound:
		response.NotFound(w, "Soldier not found")
	case usecase.ErrMedicNotFound:
		response.NotFound(w, "Medic not found")
	case usecase.ErrUnknownTeam:
		response.Error(w, http.StatusBadRequest, "Unknown team", nil)
	case usecase.ErrDuplicatePersonalID:
		response.Error(w, http.StatusConflict, "Personal ID already registered", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

// Soldiers

// CreateSoldier registers a soldier on a team roster
// @Summary Create soldier
// @Tags Rosters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSoldierRequest true "Create Soldier Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /soldiers [post]
func (h *RosterHandler) CreateSoldier(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateSoldierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	soldier, err := h.rosterUsecase.CreateSoldier(r.Context(), &req, actorID)
	if err != nil {
		rosterError(w, err, "Failed to create soldier")
		return
	}

	response.Success(w, http.StatusCreated, "Soldier created successfully", soldier)
}

func (h *RosterHandler) ListSoldiers(w http.ResponseWriter, r *http.Request) {
	soldiers, err := h.rosterUsecase.ListSoldiers(r.Context(), r.URL.Query().Get("team"))
	if err != nil {
		response.InternalServerError(w, "Failed to list soldiers")
		return
	}

	response.Success(w, http.StatusOK, "Soldiers retrieved successfully", soldiers)
}

func (h *RosterHandler) UpdateSoldier(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid soldier ID", nil)
		return
	}

	var req dto.UpdateSoldierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	soldier, err := h.rosterUsecase.UpdateSoldier(r.Context(), id, &req, actorID)
	if err != nil {
		rosterError(w, err, "Failed to update soldier")
		return
	}

	response.Success(w, http.StatusOK, "Soldier updated successfully", soldier)
}

func (h *RosterHandler) DeleteSoldier(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid soldier ID", nil)
		return
	}

	if err := h.rosterUsecase.DeleteSoldier(r.Context(), id, actorID); err != nil {
		rosterError(w, err, "Failed to delete soldier")
		return
	}

	response.Success(w, http.StatusOK, "Soldier deleted successfully", nil)
}

// SoldierStats returns one soldier's drill statistics and improvement trend
func (h *RosterHandler) SoldierStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid soldier ID", nil)
		return
	}

	stats, err := h.rosterUsecase.SoldierStats(r.Context(), id)
	if err != nil {
		rosterError(w, err, "Failed to compute soldier statistics")
		return
	}

	response.Success(w, http.StatusOK, "Soldier statistics computed successfully", stats)
}

// UntrainedSoldiers lists soldiers with no drill recorded this calendar month
func (h *RosterHandler) UntrainedSoldiers(w http.ResponseWriter, r *http.Request) {
	soldiers, err := h.rosterUsecase.UntrainedSoldiers(r.Context(), r.URL.Query().Get("team"))
	if err != nil {
		response.InternalServerError(w, "Failed to list untrained soldiers")
		return
	}

	response.Success(w, http.StatusOK, "Untrained soldiers retrieved successfully", soldiers)
}

// Medics

func (h *RosterHandler) CreateMedic(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medic, err := h.rosterUsecase.CreateMedic(r.Context(), &req, actorID)
	if err != nil {
		rosterError(w, err, "Failed to create medic")
		return
	}

	response.Success(w, http.StatusCreated, "Medic created successfully", medic)
}

func (h *RosterHandler) ListMedics(w http.ResponseWriter, r *http.Request) {
	medics, err := h.rosterUsecase.ListMedics(r.Context(), r.URL.Query().Get("team"))
	if err != nil {
		response.InternalServerError(w, "Failed to list medics")
		return
	}

	response.Success(w, http.StatusOK, "Medics retrieved successfully", medics)
}

func (h *RosterHandler) UpdateMedic(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medic ID", nil)
		return
	}

	var req dto.UpdateMedicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medic, err := h.rosterUsecase.UpdateMedic(r.Context(), id, &req, actorID)
	if err != nil {
		rosterError(w, err, "Failed to update medic")
		return
	}

	response.Success(w, http.StatusOK, "Medic updated successfully", medic)
}

func (h *RosterHandler) DeleteMedic(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medic ID", nil)
		return
	}

	if err := h.rosterUsecase.DeleteMedic(r.Context(), id, actorID); err != nil {
		rosterError(w, err, "Failed to delete medic")
		return
	}

	response.Success(w, http.StatusOK, "Medic deleted successfully", nil)
}

// MedicStats returns one medic's training statistics
func (h *RosterHandler) MedicStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medic ID", nil)
		return
	}

	stats, err := h.rosterUsecase.MedicStats(r.Context(), id)
	if err != nil {
		rosterError(w, err, "Failed to compute medic statistics")
		return
	}

	response.Success(w, http.StatusOK, "Medic statistics computed successfully", stats)
}

// UntrainedMedics lists medics with no training recorded this calendar month
func (h *RosterHandler) UntrainedMedics(w http.ResponseWriter, r *http.Request) {
	medics, err := h.rosterUsecase.UntrainedMedics(r.Context(), r.URL.Query().Get("team"))
	if err != nil {
		response.InternalServerError(w, "Failed to list untrained medics")
		return
	}

	response.Success(w, http.StatusOK, "Untrained medics retrieved successfully", medics)
}
