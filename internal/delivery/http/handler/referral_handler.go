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

type ReferralHandler struct {
	referralUsecase usecase.ReferralUsecase
	validator       *validator.CustomValidator
}

func NewReferralHandler(referralUsecase usecase.ReferralUsecase, validator *validator.CustomValidator) *ReferralHandler {
	return &ReferralHandler{
		referralUsecase: referralUsecase,
		validator:       validator,
	}
}

// Create handles referral creation
// @Summary Create referral
// @Description File a new referral for a named individual
// @Tags Referrals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReferralRequest true "Create Referral Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /referrals [post]
func (h *ReferralHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referral, err := h.referralUsecase.Create(r.Context(), &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrDuplicateReferral:
			response.Error(w, http.StatusConflict, "An identical referral already exists for this person", nil)
		case usecase.ErrInvalidTimestampFormat, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create referral")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Referral created successfully", referral)
}

// List handles filtered referral listing. Multi-value filters take
// comma-separated values; the appointment toggles (today, this_week, future,
// past, no_appointment) resolve against the server clock.
// @Summary List referrals
// @Tags Referrals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /referrals [get]
func (h *ReferralHandler) List(w http.ResponseWriter, r *http.Request) {
	query := &dto.ListReferralsQuery{
		Statuses:   queryCSV(r, "status"),
		Priorities: queryCSV(r, "priority"),
		Teams:      queryCSV(r, "team"),
		Types:      queryCSV(r, "referral_type"),

		HasDocuments: queryBool(r, "has_documents"),
		Search:       r.URL.Query().Get("search"),

		CreatedFrom: queryTime(r, "created_from"),
		CreatedTo:   queryTime(r, "created_to"),
		UpdatedFrom: queryTime(r, "updated_from"),
		UpdatedTo:   queryTime(r, "updated_to"),

		AppointmentFrom: queryTime(r, "appointment_from"),
		AppointmentTo:   queryTime(r, "appointment_to"),

		Today:         queryFlag(r, "today"),
		ThisWeek:      queryFlag(r, "this_week"),
		Future:        queryFlag(r, "future"),
		Past:          queryFlag(r, "past"),
		NoAppointment: queryFlag(r, "no_appointment"),
	}

	referrals, err := h.referralUsecase.List(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to list referrals")
		return
	}

	response.Success(w, http.StatusOK, "Referrals retrieved successfully", referrals)
}

// GetByID returns one referral with its documents
func (h *ReferralHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	referral, err := h.referralUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrReferralNotFound:
			response.NotFound(w, "Referral not found")
		default:
			response.InternalServerError(w, "Failed to get referral")
		}
		return
	}

	response.Success(w, http.StatusOK, "Referral retrieved successfully", referral)
}

// Update handles partial referral updates
func (h *ReferralHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	var req dto.UpdateReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	referral, err := h.referralUsecase.Update(r.Context(), id, &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrReferralNotFound:
			response.NotFound(w, "Referral not found")
		case usecase.ErrDuplicateReferral:
			response.Error(w, http.StatusConflict, "An identical referral already exists for this person", nil)
		case usecase.ErrInvalidTimestampFormat, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update referral")
		}
		return
	}

	response.Success(w, http.StatusOK, "Referral updated successfully", referral)
}

// Delete removes a referral and its documents
func (h *ReferralHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	if err := h.referralUsecase.Delete(r.Context(), id, actorID); err != nil {
		switch err {
		case usecase.ErrReferralNotFound:
			response.NotFound(w, "Referral not found")
		default:
			response.InternalServerError(w, "Failed to delete referral")
		}
		return
	}

	response.Success(w, http.StatusOK, "Referral deleted successfully", nil)
}

// AddDocument attaches a document record to a referral
func (h *ReferralHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	referralID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	var req dto.CreateReferralDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.referralUsecase.AddDocument(r.Context(), referralID, &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrReferralNotFound:
			response.NotFound(w, "Referral not found")
		default:
			response.InternalServerError(w, "Failed to add document")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Document added successfully", document)
}

// ListDocuments returns the documents of a referral
func (h *ReferralHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	referralID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	documents, err := h.referralUsecase.ListDocuments(r.Context(), referralID)
	if err != nil {
		switch err {
		case usecase.ErrReferralNotFound:
			response.NotFound(w, "Referral not found")
		default:
			response.InternalServerError(w, "Failed to list documents")
		}
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", documents)
}

// DeleteDocument removes a document from a referral
func (h *ReferralHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	referralID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid referral ID", nil)
		return
	}

	documentID, err := pathID(r, "documentId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	if err := h.referralUsecase.DeleteDocument(r.Context(), referralID, documentID, actorID); err != nil {
		switch err {
		case usecase.ErrDocumentNotFound:
			response.NotFound(w, "Document not found")
		default:
			response.InternalServerError(w, "Failed to delete document")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document deleted successfully", nil)
}
