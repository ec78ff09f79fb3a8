package http

import (
	"net/http"

	"medical-referrals/internal/delivery/http/handler"
	"medical-referrals/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	userHandler           *handler.UserHandler
	referralHandler       *handler.ReferralHandler
	reportHandler         *handler.ReportHandler
	trainingHandler       *handler.TrainingHandler
	trainingReportHandler *handler.TrainingReportHandler
	rosterHandler         *handler.RosterHandler
	auditLogHandler       *handler.AuditLogHandler
	settingHandler        *handler.SettingHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	referralHandler *handler.ReferralHandler,
	reportHandler *handler.ReportHandler,
	trainingHandler *handler.TrainingHandler,
	trainingReportHandler *handler.TrainingReportHandler,
	rosterHandler *handler.RosterHandler,
	auditLogHandler *handler.AuditLogHandler,
	settingHandler *handler.SettingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		userHandler:           userHandler,
		referralHandler:       referralHandler,
		reportHandler:         reportHandler,
		trainingHandler:       trainingHandler,
		trainingReportHandler: trainingReportHandler,
		rosterHandler:         rosterHandler,
		auditLogHandler:       auditLogHandler,
		settingHandler:        settingHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)

	// Read routes (any authenticated role)
	read := api.PathPrefix("").Subrouter()
	read.Use(r.authMiddleware.Authenticate)

	read.HandleFunc("/referrals", r.referralHandler.List).Methods(http.MethodGet)
	read.HandleFunc("/referrals/{id}", r.referralHandler.GetByID).Methods(http.MethodGet)
	read.HandleFunc("/referrals/{id}/documents", r.referralHandler.ListDocuments).Methods(http.MethodGet)

	read.HandleFunc("/reports/dashboard", r.reportHandler.Dashboard).Methods(http.MethodGet)
	read.HandleFunc("/reports/long-waiting", r.reportHandler.LongWaiting).Methods(http.MethodGet)
	read.HandleFunc("/reports/upcoming", r.reportHandler.Upcoming).Methods(http.MethodGet)
	read.HandleFunc("/reports/urgent", r.reportHandler.Urgent).Methods(http.MethodGet)
	read.HandleFunc("/reports/team-rollups", r.reportHandler.TeamRollups).Methods(http.MethodGet)
	read.HandleFunc("/reports/trainings", r.trainingReportHandler.Overview).Methods(http.MethodGet)
	read.HandleFunc("/reports/trainings/teams/{team}", r.trainingReportHandler.TeamStats).Methods(http.MethodGet)
	read.HandleFunc("/reports/trainings/best-times", r.trainingReportHandler.BestTimes).Methods(http.MethodGet)
	read.HandleFunc("/reports/trainings/leaderboard", r.trainingReportHandler.Leaderboard).Methods(http.MethodGet)

	read.HandleFunc("/trainings/team", r.trainingHandler.ListTeamTrainings).Methods(http.MethodGet)
	read.HandleFunc("/trainings/tourniquet", r.trainingHandler.ListTourniquetTrainings).Methods(http.MethodGet)
	read.HandleFunc("/trainings/medic", r.trainingHandler.ListMedicTrainings).Methods(http.MethodGet)
	read.HandleFunc("/trainings/medic/types/{type}", r.trainingHandler.ListMedicTrainingsByType).Methods(http.MethodGet)

	read.HandleFunc("/soldiers", r.rosterHandler.ListSoldiers).Methods(http.MethodGet)
	read.HandleFunc("/soldiers/untrained", r.rosterHandler.UntrainedSoldiers).Methods(http.MethodGet)
	read.HandleFunc("/soldiers/{id}/stats", r.rosterHandler.SoldierStats).Methods(http.MethodGet)
	read.HandleFunc("/medics", r.rosterHandler.ListMedics).Methods(http.MethodGet)
	read.HandleFunc("/medics/untrained", r.rosterHandler.UntrainedMedics).Methods(http.MethodGet)
	read.HandleFunc("/medics/{id}/stats", r.rosterHandler.MedicStats).Methods(http.MethodGet)

	// Write routes (user role and above)
	write := api.PathPrefix("").Subrouter()
	write.Use(r.authMiddleware.Authenticate)
	write.Use(middleware.RequireWrite)

	write.HandleFunc("/referrals", r.referralHandler.Create).Methods(http.MethodPost)
	write.HandleFunc("/referrals/{id}", r.referralHandler.Update).Methods(http.MethodPut)
	write.HandleFunc("/referrals/{id}/documents", r.referralHandler.AddDocument).Methods(http.MethodPost)

	write.HandleFunc("/trainings/team", r.trainingHandler.CreateTeamTraining).Methods(http.MethodPost)
	write.HandleFunc("/trainings/team/{id}", r.trainingHandler.UpdateTeamTraining).Methods(http.MethodPut)
	write.HandleFunc("/trainings/tourniquet", r.trainingHandler.CreateTourniquetTraining).Methods(http.MethodPost)
	write.HandleFunc("/trainings/tourniquet/bulk", r.trainingHandler.BulkCreateTourniquetTrainings).Methods(http.MethodPost)
	write.HandleFunc("/trainings/tourniquet/{id}", r.trainingHandler.UpdateTourniquetTraining).Methods(http.MethodPut)
	write.HandleFunc("/trainings/medic", r.trainingHandler.CreateMedicTraining).Methods(http.MethodPost)
	write.HandleFunc("/trainings/medic/bulk", r.trainingHandler.BulkCreateMedicTrainings).Methods(http.MethodPost)
	write.HandleFunc("/trainings/medic/{id}", r.trainingHandler.UpdateMedicTraining).Methods(http.MethodPut)

	write.HandleFunc("/soldiers", r.rosterHandler.CreateSoldier).Methods(http.MethodPost)
	write.HandleFunc("/soldiers/{id}", r.rosterHandler.UpdateSoldier).Methods(http.MethodPut)
	write.HandleFunc("/medics", r.rosterHandler.CreateMedic).Methods(http.MethodPost)
	write.HandleFunc("/medics/{id}", r.rosterHandler.UpdateMedic).Methods(http.MethodPut)

	// Delete routes (manager role and above)
	del := api.PathPrefix("").Subrouter()
	del.Use(r.authMiddleware.Authenticate)
	del.Use(middleware.RequireDelete)

	del.HandleFunc("/referrals/{id}", r.referralHandler.Delete).Methods(http.MethodDelete)
	del.HandleFunc("/referrals/{id}/documents/{documentId}", r.referralHandler.DeleteDocument).Methods(http.MethodDelete)
	del.HandleFunc("/trainings/team/{id}", r.trainingHandler.DeleteTeamTraining).Methods(http.MethodDelete)
	del.HandleFunc("/trainings/tourniquet/{id}", r.trainingHandler.DeleteTourniquetTraining).Methods(http.MethodDelete)
	del.HandleFunc("/trainings/medic/{id}", r.trainingHandler.DeleteMedicTraining).Methods(http.MethodDelete)
	del.HandleFunc("/soldiers/{id}", r.rosterHandler.DeleteSoldier).Methods(http.MethodDelete)
	del.HandleFunc("/medics/{id}", r.rosterHandler.DeleteMedic).Methods(http.MethodDelete)

	// Account administration (admin and manager)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireManageUsers)

	admin.HandleFunc("/users", r.userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/settings", r.settingHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/settings", r.settingHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{id}", r.settingHandler.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{id}", r.settingHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/settings/{id}", r.settingHandler.Delete).Methods(http.MethodDelete)

	// Audit trail (admin and manager)
	audit := api.PathPrefix("/audit-logs").Subrouter()
	audit.Use(r.authMiddleware.Authenticate)
	audit.Use(middleware.RequireViewAudit)
	audit.HandleFunc("", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
