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

type SettingHandler struct {
	settingUsecase usecase.SettingUsecase
	validator      *validator.CustomValidator
}

func NewSettingHandler(settingUsecase usecase.SettingUsecase, validator *validator.CustomValidator) *SettingHandler {
	return &SettingHandler{
		settingUsecase: settingUsecase,
		validator:      validator,
	}
}

// Create stores a new configuration entry
// @Summary Create system setting
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSettingRequest true "Setting payload"
// @Success 201 {object} response.Response
// @Router /admin/settings [post]
func (h *SettingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	setting, err := h.settingUsecase.Create(r.Context(), &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrSettingKeyExists:
			response.Error(w, http.StatusConflict, "Setting key already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create setting")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Setting created successfully", setting)
}

// List returns all configuration entries, optionally filtered by a search term
func (h *SettingHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	settings, err := h.settingUsecase.List(r.Context(), search)
	if err != nil {
		response.InternalServerError(w, "Failed to list settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

// GetByID returns one configuration entry
func (h *SettingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid setting ID", nil)
		return
	}

	setting, err := h.settingUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Setting not found")
		default:
			response.InternalServerError(w, "Failed to get setting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Setting retrieved successfully", setting)
}

// Update modifies a configuration entry's value or description
func (h *SettingHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid setting ID", nil)
		return
	}

	var req dto.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	setting, err := h.settingUsecase.Update(r.Context(), id, &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Setting not found")
		default:
			response.InternalServerError(w, "Failed to update setting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Setting updated successfully", setting)
}

// Delete removes a configuration entry
func (h *SettingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid setting ID", nil)
		return
	}

	if err := h.settingUsecase.Delete(r.Context(), id, actorID); err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Setting not found")
		default:
			response.InternalServerError(w, "Failed to delete setting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Setting deleted successfully", nil)
}
