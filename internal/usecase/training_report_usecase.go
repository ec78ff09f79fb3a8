package usecase

import (
	"context"
	"time"

	"medical-referrals/internal/converter"
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
	"medical-referrals/internal/domain/repository"
	"medical-referrals/internal/report"
	"medical-referrals/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LeaderboardEntryResponse is one row of the fast best-times board
type LeaderboardEntryResponse struct {
	Soldier dto.SoldierResponse `json:"soldier"`
	Seconds int                 `json:"seconds"`
}

// BestTimeResponse is one soldier's personal best with the drill it came from
type BestTimeResponse struct {
	Training dto.TourniquetTrainingResponse `json:"training"`
	Seconds  int                            `json:"seconds"`
}

type TrainingReportUsecase interface {
	Overview(ctx context.Context, period report.Period, team string) (*report.TrainingOverview, error)
	TeamStats(ctx context.Context, team string) (*report.TeamDrillStats, error)
	BestTimes(ctx context.Context, limit int) ([]BestTimeResponse, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntryResponse, error)
}

type trainingReportUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	teamRepo       repository.TeamTrainingRepository
	tourniquetRepo repository.TourniquetTrainingRepository
	medicTrainRepo repository.MedicTrainingRepository
	soldierRepo    repository.SoldierRepository
	leaderboard    *service.LeaderboardService
	now            func() time.Time
}

func NewTrainingReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	teamRepo repository.TeamTrainingRepository,
	tourniquetRepo repository.TourniquetTrainingRepository,
	medicTrainRepo repository.MedicTrainingRepository,
	soldierRepo repository.SoldierRepository,
	leaderboard *service.LeaderboardService,
) TrainingReportUsecase {
	return &trainingReportUsecase{
		db:             db,
		log:            log,
		teamRepo:       teamRepo,
		tourniquetRepo: tourniquetRepo,
		medicTrainRepo: medicTrainRepo,
		soldierRepo:    soldierRepo,
		leaderboard:    leaderboard,
		now:            time.Now,
	}
}

// Overview computes the combined training report, optionally narrowed to a
// rolling period and a single team.
func (u *trainingReportUsecase) Overview(ctx context.Context, period report.Period, team string) (*report.TrainingOverview, error) {
	if team != "" && !entity.IsKnownTeam(team) {
		return nil, ErrUnknownTeam
	}

	now := u.now()
	filter := &entity.TrainingFilter{Team: team}
	if start, bounded := report.PeriodStart(now, period); bounded {
		filter.DateFrom = &start
	}

	db := u.db.WithContext(ctx)

	teamTrainings, err := u.teamRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to fetch team trainings: %+v", err)
		return nil, err
	}
	tourniquetTrainings, err := u.tourniquetRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to fetch tourniquet trainings: %+v", err)
		return nil, err
	}
	medicTrainings, err := u.medicTrainRepo.FindAll(db, filter)
	if err != nil {
		u.log.Warnf("Failed to fetch medic trainings: %+v", err)
		return nil, err
	}

	overview := report.Overview(teamTrainings, tourniquetTrainings, medicTrainings, now)
	return &overview, nil
}

// TeamStats computes one team's drill statistics. Unknown teams and teams
// with no drill history are rejected so the handler can answer 404 rather
// than an empty report.
func (u *trainingReportUsecase) TeamStats(ctx context.Context, team string) (*report.TeamDrillStats, error) {
	if !entity.IsKnownTeam(team) {
		return nil, ErrUnknownTeam
	}

	trainings, err := u.teamRepo.FindAll(u.db.WithContext(ctx), &entity.TrainingFilter{Team: team})
	if err != nil {
		u.log.Warnf("Failed to fetch team trainings: %+v", err)
		return nil, err
	}
	if len(trainings) == 0 {
		return nil, ErrTrainingNotFound
	}

	members, err := u.soldierRepo.CountByTeam(u.db.WithContext(ctx), team)
	if err != nil {
		u.log.Warnf("Failed to count team members: %+v", err)
		return nil, err
	}

	stats := report.TeamStats(team, trainings, int(members), u.now())
	return &stats, nil
}

// BestTimes computes each soldier's personal best from full drill history
func (u *trainingReportUsecase) BestTimes(ctx context.Context, limit int) ([]BestTimeResponse, error) {
	trainings, err := u.tourniquetRepo.FindAll(u.db.WithContext(ctx), &entity.TrainingFilter{})
	if err != nil {
		u.log.Warnf("Failed to fetch tourniquet trainings: %+v", err)
		return nil, err
	}

	entries := report.BestTimes(trainings, limit)
	responses := make([]BestTimeResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, BestTimeResponse{
			Training: *converter.TourniquetTrainingToResponse(&entry.Training),
			Seconds:  entry.Seconds,
		})
	}
	return responses, nil
}

// Leaderboard reads the Redis-backed best-times board and hydrates soldier
// details. Soldiers deleted since the last sync are skipped.
func (u *trainingReportUsecase) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntryResponse, error) {
	entries, err := u.leaderboard.TopTimes(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, entry := range entries {
		soldier, err := u.soldierRepo.FindByID(u.db.WithContext(ctx), entry.SoldierID)
		if err != nil {
			u.log.Warnf("Failed to hydrate leaderboard soldier %d: %+v", entry.SoldierID, err)
			return nil, err
		}
		if soldier == nil {
			continue
		}
		responses = append(responses, LeaderboardEntryResponse{
			Soldier: *converter.SoldierToResponse(soldier),
			Seconds: entry.Seconds,
		})
	}
	return responses, nil
}
