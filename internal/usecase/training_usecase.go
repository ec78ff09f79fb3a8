package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medical-referrals/internal/converter"
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
	"medical-referrals/internal/domain/repository"
	"medical-referrals/internal/report"
	"medical-referrals/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTrainingNotFound    = errors.New("training not found")
	ErrSoldierNotFound     = errors.New("soldier not found")
	ErrMedicNotFound       = errors.New("medic not found")
	ErrUnknownTeam         = errors.New("unknown team")
	ErrUnknownTrainingType = errors.New("unknown training type")
)

type TrainingUsecase interface {
	CreateTeamTraining(ctx context.Context, req *dto.CreateTeamTrainingRequest, actorID uuid.UUID) (*dto.TeamTrainingResponse, error)
	ListTeamTrainings(ctx context.Context, filter *entity.TrainingFilter) (*dto.TeamTrainingListResponse, error)
	UpdateTeamTraining(ctx context.Context, id int64, req *dto.UpdateTeamTrainingRequest, actorID uuid.UUID) (*dto.TeamTrainingResponse, error)
	DeleteTeamTraining(ctx context.Context, id int64, actorID uuid.UUID) error

	CreateTourniquetTraining(ctx context.Context, req *dto.CreateTourniquetTrainingRequest, actorID uuid.UUID) (*dto.TourniquetTrainingResponse, error)
	BulkCreateTourniquetTrainings(ctx context.Context, req *dto.BulkCreateTourniquetRequest, actorID uuid.UUID) (*dto.TourniquetTrainingListResponse, error)
	ListTourniquetTrainings(ctx context.Context, filter *entity.TrainingFilter) (*dto.TourniquetTrainingListResponse, error)
	UpdateTourniquetTraining(ctx context.Context, id int64, req *dto.UpdateTourniquetTrainingRequest, actorID uuid.UUID) (*dto.TourniquetTrainingResponse, error)
	DeleteTourniquetTraining(ctx context.Context, id int64, actorID uuid.UUID) error

	CreateMedicTraining(ctx context.Context, req *dto.CreateMedicTrainingRequest, actorID uuid.UUID) (*dto.MedicTrainingResponse, error)
	BulkCreateMedicTrainings(ctx context.Context, req *dto.BulkCreateMedicTrainingRequest, actorID uuid.UUID) (*dto.MedicTrainingListResponse, error)
	ListMedicTrainings(ctx context.Context, filter *entity.TrainingFilter) (*dto.MedicTrainingListResponse, error)
	ListMedicTrainingsByType(ctx context.Context, trainingType string) (*dto.MedicTrainingListResponse, error)
	UpdateMedicTraining(ctx context.Context, id int64, req *dto.UpdateMedicTrainingRequest, actorID uuid.UUID) (*dto.MedicTrainingResponse, error)
	DeleteMedicTraining(ctx context.Context, id int64, actorID uuid.UUID) error
}

type trainingUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	teamRepo       repository.TeamTrainingRepository
	tourniquetRepo repository.TourniquetTrainingRepository
	medicTrainRepo repository.MedicTrainingRepository
	soldierRepo    repository.SoldierRepository
	medicRepo      repository.MedicRepository
	auditService   service.AuditService
	leaderboard    *service.LeaderboardService
	now            func() time.Time
}

func NewTrainingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	teamRepo repository.TeamTrainingRepository,
	tourniquetRepo repository.TourniquetTrainingRepository,
	medicTrainRepo repository.MedicTrainingRepository,
	soldierRepo repository.SoldierRepository,
	medicRepo repository.MedicRepository,
	auditService service.AuditService,
	leaderboard *service.LeaderboardService,
) TrainingUsecase {
	return &trainingUsecase{
		db:             db,
		log:            log,
		teamRepo:       teamRepo,
		tourniquetRepo: tourniquetRepo,
		medicTrainRepo: medicTrainRepo,
		soldierRepo:    soldierRepo,
		medicRepo:      medicRepo,
		auditService:   auditService,
		leaderboard:    leaderboard,
		now:            time.Now,
	}
}

// normalizeFilter defaults an unbounded listing to the current calendar
// month. Callers narrowing by either date bound get exactly what they asked
// for.
func (u *trainingUsecase) normalizeFilter(filter *entity.TrainingFilter) *entity.TrainingFilter {
	if filter == nil {
		filter = &entity.TrainingFilter{}
	}
	if filter.DateFrom == nil && filter.DateTo == nil {
		monthStart := report.StartOfMonth(u.now())
		filter.DateFrom = &monthStart
	}
	return filter
}

// Team trainings

func (u *trainingUsecase) CreateTeamTraining(ctx context.Context, req *dto.CreateTeamTrainingRequest, actorID uuid.UUID) (*dto.TeamTrainingResponse, error) {
	if !entity.IsKnownTeam(req.Team) {
		return nil, ErrUnknownTeam
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	training := &entity.TeamTraining{
		Date:              date,
		Team:              req.Team,
		Scenario:          req.Scenario,
		Location:          req.Location,
		Notes:             req.Notes,
		PerformanceRating: req.PerformanceRating,
		CreatedBy:         &actorID,
		LastUpdatedBy:     &actorID,
	}

	if err := u.teamRepo.Create(tx, training); err != nil {
		u.log.Warnf("Failed to create team training: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionTeamDrillCreate, "team_training", fmt.Sprint(training.ID), training.Scenario); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TeamTrainingToResponse(training), nil
}

func (u *trainingUsecase) ListTeamTrainings(ctx context.Context, filter *entity.TrainingFilter) (*dto.TeamTrainingListResponse, error) {
	trainings, err := u.teamRepo.FindAll(u.db.WithContext(ctx), u.normalizeFilter(filter))
	if err != nil {
		u.log.Warnf("Failed to list team trainings: %+v", err)
		return nil, err
	}

	return &dto.TeamTrainingListResponse{
		Trainings: converter.TeamTrainingsToResponses(trainings),
		Total:     len(trainings),
	}, nil
}

func (u *trainingUsecase) UpdateTeamTraining(ctx context.Context, id int64, req *dto.UpdateTeamTrainingRequest, actorID uuid.UUID) (*dto.TeamTrainingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	training, err := u.teamRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find team training: %+v", err)
		return nil, err
	}
	if training == nil {
		return nil, ErrTrainingNotFound
	}

	oldRating := training.PerformanceRating

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		training.Date = date
	}
	if req.Team != nil {
		if !entity.IsKnownTeam(*req.Team) {
			return nil, ErrUnknownTeam
		}
		training.Team = *req.Team
	}
	if req.Scenario != nil {
		training.Scenario = *req.Scenario
	}
	if req.Location != nil {
		training.Location = *req.Location
	}
	if req.Notes != nil {
		training.Notes = *req.Notes
	}
	if req.PerformanceRating != nil {
		training.PerformanceRating = *req.PerformanceRating
	}
	training.LastUpdatedBy = &actorID

	if err := u.teamRepo.Update(tx, training); err != nil {
		u.log.Warnf("Failed to update team training: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionTeamDrillUpdate, "team_training", fmt.Sprint(id), oldRating, training.PerformanceRating); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TeamTrainingToResponse(training), nil
}

func (u *trainingUsecase) DeleteTeamTraining(ctx context.Context, id int64, actorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	training, err := u.teamRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if training == nil {
		return ErrTrainingNotFound
	}

	if _, err := u.teamRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete team training: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionTeamDrillDelete, "team_training", fmt.Sprint(id), training.Scenario); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// Tourniquet trainings

func (u *trainingUsecase) CreateTourniquetTraining(ctx context.Context, req *dto.CreateTourniquetTrainingRequest, actorID uuid.UUID) (*dto.TourniquetTrainingResponse, error) {
	date, err := parseDate(req.TrainingDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	soldier, err := u.soldierRepo.FindByID(tx, req.SoldierID)
	if err != nil {
		u.log.Warnf("Failed to find soldier: %+v", err)
		return nil, err
	}
	if soldier == nil {
		return nil, ErrSoldierNotFound
	}

	training := &entity.TourniquetTraining{
		SoldierID:     req.SoldierID,
		TrainingDate:  date,
		CATTime:       req.CATTime,
		Passed:        boolOrDefault(req.Passed, true),
		Notes:         req.Notes,
		CreatedBy:     &actorID,
		LastUpdatedBy: &actorID,
	}

	if err := u.tourniquetRepo.Create(tx, training); err != nil {
		u.log.Warnf("Failed to create tourniquet training: %+v", err)
		// The existence check above can race a concurrent roster delete
		if isForeignKeyError(err, "soldier") {
			return nil, ErrSoldierNotFound
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionCATDrillCreate, "tourniquet_training", fmt.Sprint(training.ID), training.CATTime); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Best-effort leaderboard update, the report path resyncs from DB anyway
	if err := u.leaderboard.RecordDrillResult(ctx, training.SoldierID, training.CATTime); err != nil {
		u.log.Warnf("Failed to update leaderboard: %+v", err)
	}

	training.Soldier = *soldier
	return converter.TourniquetTrainingToResponse(training), nil
}

func (u *trainingUsecase) BulkCreateTourniquetTrainings(ctx context.Context, req *dto.BulkCreateTourniquetRequest, actorID uuid.UUID) (*dto.TourniquetTrainingListResponse, error) {
	date, err := parseDate(req.TrainingDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	trainings := make([]entity.TourniquetTraining, 0, len(req.Entries))
	for _, entry := range req.Entries {
		soldier, err := u.soldierRepo.FindByID(tx, entry.SoldierID)
		if err != nil {
			return nil, err
		}
		if soldier == nil {
			return nil, ErrSoldierNotFound
		}
		trainings = append(trainings, entity.TourniquetTraining{
			SoldierID:     entry.SoldierID,
			TrainingDate:  date,
			CATTime:       entry.CATTime,
			Passed:        boolOrDefault(entry.Passed, true),
			Notes:         entry.Notes,
			CreatedBy:     &actorID,
			LastUpdatedBy: &actorID,
		})
	}

	if err := u.tourniquetRepo.CreateBatch(tx, trainings); err != nil {
		u.log.Warnf("Failed to bulk create tourniquet trainings: %+v", err)
		if isForeignKeyError(err, "soldier") {
			return nil, ErrSoldierNotFound
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionCATDrillBulk, "tourniquet_training", "bulk", len(trainings)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	for i := range trainings {
		if err := u.leaderboard.RecordDrillResult(ctx, trainings[i].SoldierID, trainings[i].CATTime); err != nil {
			u.log.Warnf("Failed to update leaderboard: %+v", err)
		}
	}

	return &dto.TourniquetTrainingListResponse{
		Trainings: converter.TourniquetTrainingsToResponses(trainings),
		Total:     len(trainings),
	}, nil
}

func (u *trainingUsecase) ListTourniquetTrainings(ctx context.Context, filter *entity.TrainingFilter) (*dto.TourniquetTrainingListResponse, error) {
	trainings, err := u.tourniquetRepo.FindAll(u.db.WithContext(ctx), u.normalizeFilter(filter))
	if err != nil {
		u.log.Warnf("Failed to list tourniquet trainings: %+v", err)
		return nil, err
	}

	return &dto.TourniquetTrainingListResponse{
		Trainings: converter.TourniquetTrainingsToResponses(trainings),
		Total:     len(trainings),
	}, nil
}

func (u *trainingUsecase) UpdateTourniquetTraining(ctx context.Context, id int64, req *dto.UpdateTourniquetTrainingRequest, actorID uuid.UUID) (*dto.TourniquetTrainingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	training, err := u.tourniquetRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find tourniquet training: %+v", err)
		return nil, err
	}
	if training == nil {
		return nil, ErrTrainingNotFound
	}

	oldTime := training.CATTime

	if req.TrainingDate != nil {
		date, err := parseDate(*req.TrainingDate)
		if err != nil {
			return nil, err
		}
		training.TrainingDate = date
	}
	if req.CATTime != nil {
		training.CATTime = *req.CATTime
	}
	if req.Passed != nil {
		training.Passed = *req.Passed
	}
	if req.Notes != nil {
		training.Notes = *req.Notes
	}
	training.LastUpdatedBy = &actorID

	if err := u.tourniquetRepo.Update(tx, training); err != nil {
		u.log.Warnf("Failed to update tourniquet training: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionCATDrillUpdate, "tourniquet_training", fmt.Sprint(id), oldTime, training.CATTime); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// The edited record may have held the stored best time
	if err := u.leaderboard.ResyncSoldier(ctx, training.SoldierID); err != nil {
		u.log.Warnf("Failed to resync leaderboard: %+v", err)
	}

	return converter.TourniquetTrainingToResponse(training), nil
}

func (u *trainingUsecase) DeleteTourniquetTraining(ctx context.Context, id int64, actorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	training, err := u.tourniquetRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if training == nil {
		return ErrTrainingNotFound
	}

	if _, err := u.tourniquetRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete tourniquet training: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionCATDrillDelete, "tourniquet_training", fmt.Sprint(id), training.CATTime); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.leaderboard.ResyncSoldier(ctx, training.SoldierID); err != nil {
		u.log.Warnf("Failed to resync leaderboard: %+v", err)
	}

	return nil
}

// Medic trainings

func (u *trainingUsecase) CreateMedicTraining(ctx context.Context, req *dto.CreateMedicTrainingRequest, actorID uuid.UUID) (*dto.MedicTrainingResponse, error) {
	trainingType, ok := parseMedicTrainingType(req.TrainingType)
	if !ok {
		return nil, ErrUnknownTrainingType
	}

	date, err := parseDate(req.TrainingDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medic, err := u.medicRepo.FindByID(tx, req.MedicID)
	if err != nil {
		u.log.Warnf("Failed to find medic: %+v", err)
		return nil, err
	}
	if medic == nil {
		return nil, ErrMedicNotFound
	}

	training := &entity.MedicTraining{
		MedicID:           req.MedicID,
		TrainingDate:      date,
		TrainingType:      trainingType,
		PerformanceRating: req.PerformanceRating,
		Attendance:        boolOrDefault(req.Attendance, true),
		Notes:             req.Notes,
		Recommendations:   req.Recommendations,
		Location:          req.Location,
		CreatedBy:         &actorID,
		LastUpdatedBy:     &actorID,
	}

	if err := u.medicTrainRepo.Create(tx, training); err != nil {
		u.log.Warnf("Failed to create medic training: %+v", err)
		if isForeignKeyError(err, "medic") {
			return nil, ErrMedicNotFound
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionMedicDrillCreate, "medic_training", fmt.Sprint(training.ID), string(training.TrainingType)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	training.Medic = *medic
	return converter.MedicTrainingToResponse(training), nil
}

func (u *trainingUsecase) BulkCreateMedicTrainings(ctx context.Context, req *dto.BulkCreateMedicTrainingRequest, actorID uuid.UUID) (*dto.MedicTrainingListResponse, error) {
	trainingType, ok := parseMedicTrainingType(req.TrainingType)
	if !ok {
		return nil, ErrUnknownTrainingType
	}

	date, err := parseDate(req.TrainingDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	trainings := make([]entity.MedicTraining, 0, len(req.Entries))
	for _, entry := range req.Entries {
		medic, err := u.medicRepo.FindByID(tx, entry.MedicID)
		if err != nil {
			return nil, err
		}
		if medic == nil {
			return nil, ErrMedicNotFound
		}
		trainings = append(trainings, entity.MedicTraining{
			MedicID:           entry.MedicID,
			TrainingDate:      date,
			TrainingType:      trainingType,
			PerformanceRating: entry.PerformanceRating,
			Attendance:        boolOrDefault(entry.Attendance, true),
			Notes:             entry.Notes,
			Location:          req.Location,
			CreatedBy:         &actorID,
			LastUpdatedBy:     &actorID,
		})
	}

	if err := u.medicTrainRepo.CreateBatch(tx, trainings); err != nil {
		u.log.Warnf("Failed to bulk create medic trainings: %+v", err)
		if isForeignKeyError(err, "medic") {
			return nil, ErrMedicNotFound
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionMedicDrillBulk, "medic_training", "bulk", len(trainings)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.MedicTrainingListResponse{
		Trainings: converter.MedicTrainingsToResponses(trainings),
		Total:     len(trainings),
	}, nil
}

func (u *trainingUsecase) ListMedicTrainings(ctx context.Context, filter *entity.TrainingFilter) (*dto.MedicTrainingListResponse, error) {
	trainings, err := u.medicTrainRepo.FindAll(u.db.WithContext(ctx), u.normalizeFilter(filter))
	if err != nil {
		u.log.Warnf("Failed to list medic trainings: %+v", err)
		return nil, err
	}

	return &dto.MedicTrainingListResponse{
		Trainings: converter.MedicTrainingsToResponses(trainings),
		Total:     len(trainings),
	}, nil
}

// ListMedicTrainingsByType returns the full drill history of one category
func (u *trainingUsecase) ListMedicTrainingsByType(ctx context.Context, trainingType string) (*dto.MedicTrainingListResponse, error) {
	parsed, ok := parseMedicTrainingType(trainingType)
	if !ok {
		return nil, ErrUnknownTrainingType
	}

	trainings, err := u.medicTrainRepo.FindByType(u.db.WithContext(ctx), parsed)
	if err != nil {
		u.log.Warnf("Failed to list medic trainings by type: %+v", err)
		return nil, err
	}

	return &dto.MedicTrainingListResponse{
		Trainings: converter.MedicTrainingsToResponses(trainings),
		Total:     len(trainings),
	}, nil
}

func (u *trainingUsecase) UpdateMedicTraining(ctx context.Context, id int64, req *dto.UpdateMedicTrainingRequest, actorID uuid.UUID) (*dto.MedicTrainingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	training, err := u.medicTrainRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medic training: %+v", err)
		return nil, err
	}
	if training == nil {
		return nil, ErrTrainingNotFound
	}

	oldRating := training.PerformanceRating

	if req.TrainingDate != nil {
		date, err := parseDate(*req.TrainingDate)
		if err != nil {
			return nil, err
		}
		training.TrainingDate = date
	}
	if req.TrainingType != nil {
		trainingType, ok := parseMedicTrainingType(*req.TrainingType)
		if !ok {
			return nil, ErrUnknownTrainingType
		}
		training.TrainingType = trainingType
	}
	if req.PerformanceRating != nil {
		training.PerformanceRating = *req.PerformanceRating
	}
	if req.Attendance != nil {
		training.Attendance = *req.Attendance
	}
	if req.Notes != nil {
		training.Notes = *req.Notes
	}
	if req.Recommendations != nil {
		training.Recommendations = *req.Recommendations
	}
	if req.Location != nil {
		training.Location = *req.Location
	}
	training.LastUpdatedBy = &actorID

	if err := u.medicTrainRepo.Update(tx, training); err != nil {
		u.log.Warnf("Failed to update medic training: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionMedicDrillUpdate, "medic_training", fmt.Sprint(id), oldRating, training.PerformanceRating); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicTrainingToResponse(training), nil
}

func (u *trainingUsecase) DeleteMedicTraining(ctx context.Context, id int64, actorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	training, err := u.medicTrainRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if training == nil {
		return ErrTrainingNotFound
	}

	if _, err := u.medicTrainRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete medic training: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionMedicDrillDelete, "medic_training", fmt.Sprint(id), string(training.TrainingType)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// parseMedicTrainingType validates a drill category against the known set
func parseMedicTrainingType(value string) (entity.MedicTrainingType, bool) {
	for _, t := range entity.MedicTrainingTypes {
		if string(t) == value {
			return t, true
		}
	}
	return "", false
}

// boolOrDefault unwraps an optional request flag
func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
