package handler

import (
	"net/http"

	"medical-referrals/internal/domain/entity"
	"medical-referrals/internal/usecase"
	"medical-referrals/pkg/response"

	"github.com/google/uuid"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// List returns audit trail entries, newest first
// @Summary List audit logs
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param user_id query string false "Filter by acting user"
// @Param action query string false "Comma-separated action names"
// @Param from query string false "Entries at or after this time"
// @Param to query string false "Entries at or before this time"
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AuditLogFilter{
		Actions: queryCSV(r, "action"),
		From:    queryTime(r, "from"),
		To:      queryTime(r, "to"),
	}

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
			return
		}
		filter.UserID = &userID
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	logs, err := h.auditLogUsecase.List(r.Context(), filter, limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
