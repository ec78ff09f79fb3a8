package handler

import (
	"net/http"

	"medical-referrals/internal/report"
	"medical-referrals/internal/usecase"
	"medical-referrals/pkg/response"

	"github.com/gorilla/mux"
)

// TrainingReportHandler serves the training overview and its drill-down reports
type TrainingReportHandler struct {
	reportUsecase usecase.TrainingReportUsecase
}

func NewTrainingReportHandler(reportUsecase usecase.TrainingReportUsecase) *TrainingReportHandler {
	return &TrainingReportHandler{reportUsecase: reportUsecase}
}

// Overview returns the combined training report
// @Summary Training overview
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param period query string false "Rolling window: week, month, quarter, year or all"
// @Param team query string false "Restrict to one team"
// @Success 200 {object} response.Response
// @Router /reports/trainings [get]
func (h *TrainingReportHandler) Overview(w http.ResponseWriter, r *http.Request) {
	period := report.Period(r.URL.Query().Get("period"))
	team := r.URL.Query().Get("team")

	overview, err := h.reportUsecase.Overview(r.Context(), period, team)
	if err != nil {
		switch err {
		case usecase.ErrUnknownTeam:
			response.Error(w, http.StatusBadRequest, "Unknown team", nil)
		default:
			response.InternalServerError(w, "Failed to compute training overview")
		}
		return
	}

	response.Success(w, http.StatusOK, "Training overview computed successfully", overview)
}

// TeamStats returns one team's drill statistics
func (h *TrainingReportHandler) TeamStats(w http.ResponseWriter, r *http.Request) {
	team := mux.Vars(r)["team"]

	stats, err := h.reportUsecase.TeamStats(r.Context(), team)
	if err != nil {
		switch err {
		case usecase.ErrUnknownTeam:
			response.NotFound(w, "Team not found")
		case usecase.ErrTrainingNotFound:
			response.NotFound(w, "No trainings recorded for this team")
		default:
			response.InternalServerError(w, "Failed to compute team statistics")
		}
		return
	}

	response.Success(w, http.StatusOK, "Team statistics computed successfully", stats)
}

// BestTimes returns each soldier's personal best, fastest first
func (h *TrainingReportHandler) BestTimes(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	entries, err := h.reportUsecase.BestTimes(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to compute best times")
		return
	}

	response.Success(w, http.StatusOK, "Best times computed successfully", entries)
}

// Leaderboard returns the Redis-backed best-times board
func (h *TrainingReportHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	entries, err := h.reportUsecase.Leaderboard(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to read leaderboard")
		return
	}

	response.Success(w, http.StatusOK, "Leaderboard retrieved successfully", entries)
}
