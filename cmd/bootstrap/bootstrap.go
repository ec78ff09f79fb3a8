package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-referrals/config"
	deliveryHttp "medical-referrals/internal/delivery/http"
	"medical-referrals/internal/delivery/http/handler"
	"medical-referrals/internal/delivery/http/middleware"
	"medical-referrals/internal/domain/entity"
	"medical-referrals/internal/infrastructure/cache"
	"medical-referrals/internal/infrastructure/database"
	"medical-referrals/internal/repository"
	"medical-referrals/internal/service"
	"medical-referrals/internal/usecase"
	"medical-referrals/pkg/jwt"
	"medical-referrals/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Leaderboard *service.LeaderboardService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize leaderboard and rebuild it from drill history
	leaderboard := service.NewLeaderboardService(db, redisClient, logrus.StandardLogger())
	if err := leaderboard.SyncOnStartup(context.Background()); err != nil {
		logrus.Warnf("Leaderboard sync failed, board may be stale: %v", err)
	}
	app.Leaderboard = leaderboard

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, leaderboard)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// migrate keeps the schema in sync with the entity definitions
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.AuditLog{},
		&entity.Referral{},
		&entity.ReferralDocument{},
		&entity.Soldier{},
		&entity.Medic{},
		&entity.TeamTraining{},
		&entity.TourniquetTraining{},
		&entity.MedicTraining{},
		&entity.SystemSetting{},
	)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, leaderboard *service.LeaderboardService) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	referralRepo := repository.NewReferralRepository()
	documentRepo := repository.NewReferralDocumentRepository()
	soldierRepo := repository.NewSoldierRepository()
	medicRepo := repository.NewMedicRepository()
	teamTrainingRepo := repository.NewTeamTrainingRepository()
	tourniquetRepo := repository.NewTourniquetTrainingRepository()
	medicTrainingRepo := repository.NewMedicTrainingRepository()
	settingRepo := repository.NewSystemSettingRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService)
	referralUsecase := usecase.NewReferralUsecase(db, log, referralRepo, documentRepo, auditService)
	referralReportUsecase := usecase.NewReferralReportUsecase(db, log, referralRepo, soldierRepo)
	trainingUsecase := usecase.NewTrainingUsecase(db, log, teamTrainingRepo, tourniquetRepo, medicTrainingRepo, soldierRepo, medicRepo, auditService, leaderboard)
	trainingReportUsecase := usecase.NewTrainingReportUsecase(db, log, teamTrainingRepo, tourniquetRepo, medicTrainingRepo, soldierRepo, leaderboard)
	rosterUsecase := usecase.NewRosterUsecase(db, log, soldierRepo, medicRepo, tourniquetRepo, medicTrainingRepo, auditService, leaderboard)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	settingUsecase := usecase.NewSettingUsecase(db, log, settingRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	referralHandler := handler.NewReferralHandler(referralUsecase, customValidator)
	reportHandler := handler.NewReportHandler(referralReportUsecase)
	trainingHandler := handler.NewTrainingHandler(trainingUsecase, customValidator)
	trainingReportHandler := handler.NewTrainingReportHandler(trainingReportUsecase)
	rosterHandler := handler.NewRosterHandler(rosterUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	settingHandler := handler.NewSettingHandler(settingUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		referralHandler,
		reportHandler,
		trainingHandler,
		trainingReportHandler,
		rosterHandler,
		auditLogHandler,
		settingHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop leaderboard background work
	if app.Leaderboard != nil {
		app.Leaderboard.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
