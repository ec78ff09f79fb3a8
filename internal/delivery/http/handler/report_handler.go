package handler

import (
	"net/http"

	"medical-referrals/internal/usecase"
	"medical-referrals/pkg/response"
)

// ReportHandler serves the referral dashboard and its drill-down reports
type ReportHandler struct {
	reportUsecase usecase.ReferralReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReferralReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// Dashboard returns the referral summary block
// @Summary Referral dashboard
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports/dashboard [get]
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportUsecase.Dashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard computed successfully", stats)
}

// LongWaiting returns open referrals waiting past the threshold, bucketed
func (h *ReportHandler) LongWaiting(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportUsecase.LongWaiting(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute long-waiting report")
		return
	}

	response.Success(w, http.StatusOK, "Long-waiting report computed successfully", result)
}

// Upcoming returns appointments inside the look-ahead window
func (h *ReportHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportUsecase.Upcoming(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute upcoming appointments")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming appointments retrieved successfully", result)
}

// Urgent returns the most urgent open referrals
func (h *ReportHandler) Urgent(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	result, err := h.reportUsecase.UrgentList(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to compute urgent list")
		return
	}

	response.Success(w, http.StatusOK, "Urgent referrals retrieved successfully", result)
}

// TeamRollups returns per-team referral summaries with rosters attached
func (h *ReportHandler) TeamRollups(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportUsecase.TeamRollups(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute team rollups")
		return
	}

	response.Success(w, http.StatusOK, "Team rollups computed successfully", result)
}
