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

var ErrDuplicatePersonalID = errors.New("personal ID already registered")

// SoldierStatsResponse pairs a soldier with their drill statistics
type SoldierStatsResponse struct {
	Soldier dto.SoldierResponse      `json:"soldier"`
	Stats   report.SoldierDrillStats `json:"stats"`
}

// MedicStatsResponse pairs a medic with their drill statistics
type MedicStatsResponse struct {
	Medic dto.MedicResponse      `json:"medic"`
	Stats report.MedicDrillStats `json:"stats"`
}

type RosterUsecase interface {
	CreateSoldier(ctx context.Context, req *dto.CreateSoldierRequest, actorID uuid.UUID) (*dto.SoldierResponse, error)
	ListSoldiers(ctx context.Context, team string) (*dto.SoldierListResponse, error)
	UpdateSoldier(ctx context.Context, id int64, req *dto.UpdateSoldierRequest, actorID uuid.UUID) (*dto.SoldierResponse, error)
	DeleteSoldier(ctx context.Context, id int64, actorID uuid.UUID) error
	SoldierStats(ctx context.Context, id int64) (*SoldierStatsResponse, error)
	UntrainedSoldiers(ctx context.Context, team string) (*dto.SoldierListResponse, error)

	CreateMedic(ctx context.Context, req *dto.CreateMedicRequest, actorID uuid.UUID) (*dto.MedicResponse, error)
	ListMedics(ctx context.Context, team string) (*dto.MedicListResponse, error)
	UpdateMedic(ctx context.Context, id int64, req *dto.UpdateMedicRequest, actorID uuid.UUID) (*dto.MedicResponse, error)
	DeleteMedic(ctx context.Context, id int64, actorID uuid.UUID) error
	MedicStats(ctx context.Context, id int64) (*MedicStatsResponse, error)
	UntrainedMedics(ctx context.Context, team string) (*dto.MedicListResponse, error)
}

type rosterUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	soldierRepo    repository.SoldierRepository
	medicRepo      repository.MedicRepository
	tourniquetRepo repository.TourniquetTrainingRepository
	medicTrainRepo repository.MedicTrainingRepository
	auditService   service.AuditService
	leaderboard    *service.LeaderboardService
	now            func() time.Time
}

func NewRosterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	soldierRepo repository.SoldierRepository,
	medicRepo repository.MedicRepository,
	tourniquetRepo repository.TourniquetTrainingRepository,
	medicTrainRepo repository.MedicTrainingRepository,
	auditService service.AuditService,
	leaderboard *service.LeaderboardService,
) RosterUsecase {
	return &rosterUsecase{
		db:             db,
		log:            log,
		soldierRepo:    soldierRepo,
		medicRepo:      medicRepo,
		tourniquetRepo: tourniquetRepo,
		medicTrainRepo: medicTrainRepo,
		auditService:   auditService,
		leaderboard:    leaderboard,
		now:            time.Now,
	}
}

// Soldiers

func (u *rosterUsecase) CreateSoldier(ctx context.Context, req *dto.CreateSoldierRequest, actorID uuid.UUID) (*dto.SoldierResponse, error) {
	if !entity.IsKnownTeam(req.Team) {
		return nil, ErrUnknownTeam
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	soldier := &entity.Soldier{
		Name:       req.Name,
		PersonalID: req.PersonalID,
		Team:       req.Team,
	}

	if err := u.soldierRepo.Create(tx, soldier); err != nil {
		if isDuplicateKeyError(err, "personal_id") {
			return nil, ErrDuplicatePersonalID
		}
		u.log.Warnf("Failed to create soldier: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionRosterCreate, "soldier", fmt.Sprint(soldier.ID), soldier.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SoldierToResponse(soldier), nil
}

func (u *rosterUsecase) ListSoldiers(ctx context.Context, team string) (*dto.SoldierListResponse, error) {
	soldiers, err := u.soldierRepo.FindAll(u.db.WithContext(ctx), team)
	if err != nil {
		u.log.Warnf("Failed to list soldiers: %+v", err)
		return nil, err
	}

	return &dto.SoldierListResponse{
		Soldiers: converter.SoldiersToResponses(soldiers),
		Total:    len(soldiers),
	}, nil
}

func (u *rosterUsecase) UpdateSoldier(ctx context.Context, id int64, req *dto.UpdateSoldierRequest, actorID uuid.UUID) (*dto.SoldierResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	soldier, err := u.soldierRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find soldier: %+v", err)
		return nil, err
	}
	if soldier == nil {
		return nil, ErrSoldierNotFound
	}

	oldTeam := soldier.Team

	if req.Name != nil {
		soldier.Name = *req.Name
	}
	if req.PersonalID != nil {
		soldier.PersonalID = *req.PersonalID
	}
	if req.Team != nil {
		if !entity.IsKnownTeam(*req.Team) {
			return nil, ErrUnknownTeam
		}
		soldier.Team = *req.Team
	}

	if err := u.soldierRepo.Update(tx, soldier); err != nil {
		if isDuplicateKeyError(err, "personal_id") {
			return nil, ErrDuplicatePersonalID
		}
		u.log.Warnf("Failed to update soldier: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionRosterUpdate, "soldier", fmt.Sprint(id), oldTeam, soldier.Team); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SoldierToResponse(soldier), nil
}

func (u *rosterUsecase) DeleteSoldier(ctx context.Context, id int64, actorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	soldier, err := u.soldierRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if soldier == nil {
		return ErrSoldierNotFound
	}

	if _, err := u.soldierRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete soldier: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionRosterDelete, "soldier", fmt.Sprint(id), soldier.Name); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.leaderboard.RemoveSoldier(ctx, id); err != nil {
		u.log.Warnf("Failed to remove soldier from leaderboard: %+v", err)
	}

	return nil
}

func (u *rosterUsecase) SoldierStats(ctx context.Context, id int64) (*SoldierStatsResponse, error) {
	soldier, err := u.soldierRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find soldier: %+v", err)
		return nil, err
	}
	if soldier == nil {
		return nil, ErrSoldierNotFound
	}

	trainings, err := u.tourniquetRepo.FindBySoldierID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to fetch soldier drills: %+v", err)
		return nil, err
	}

	return &SoldierStatsResponse{
		Soldier: *converter.SoldierToResponse(soldier),
		Stats:   report.SoldierStats(trainings, u.now()),
	}, nil
}

func (u *rosterUsecase) UntrainedSoldiers(ctx context.Context, team string) (*dto.SoldierListResponse, error) {
	monthStart := report.StartOfMonth(u.now())
	soldiers, err := u.soldierRepo.FindUntrainedSince(u.db.WithContext(ctx), monthStart, team)
	if err != nil {
		u.log.Warnf("Failed to find untrained soldiers: %+v", err)
		return nil, err
	}

	return &dto.SoldierListResponse{
		Soldiers: converter.SoldiersToResponses(soldiers),
		Total:    len(soldiers),
	}, nil
}

// Medics

func (u *rosterUsecase) CreateMedic(ctx context.Context, req *dto.CreateMedicRequest, actorID uuid.UUID) (*dto.MedicResponse, error) {
	if !entity.IsKnownTeam(req.Team) {
		return nil, ErrUnknownTeam
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medic := &entity.Medic{
		Name: req.Name,
		Team: req.Team,
		Role: entity.MedicRole(req.Role),
	}
	if req.Experience != "" {
		medic.Experience = entity.MedicExperience(req.Experience)
	} else {
		medic.Experience = entity.ExperienceBeginner
	}

	if err := u.medicRepo.Create(tx, medic); err != nil {
		u.log.Warnf("Failed to create medic: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionRosterCreate, "medic", fmt.Sprint(medic.ID), medic.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicToResponse(medic), nil
}

func (u *rosterUsecase) ListMedics(ctx context.Context, team string) (*dto.MedicListResponse, error) {
	medics, err := u.medicRepo.FindAll(u.db.WithContext(ctx), team)
	if err != nil {
		u.log.Warnf("Failed to list medics: %+v", err)
		return nil, err
	}

	return &dto.MedicListResponse{
		Medics: converter.MedicsToResponses(medics),
		Total:  len(medics),
	}, nil
}

func (u *rosterUsecase) UpdateMedic(ctx context.Context, id int64, req *dto.UpdateMedicRequest, actorID uuid.UUID) (*dto.MedicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medic, err := u.medicRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medic: %+v", err)
		return nil, err
	}
	if medic == nil {
		return nil, ErrMedicNotFound
	}

	oldTeam := medic.Team

	if req.Name != nil {
		medic.Name = *req.Name
	}
	if req.Team != nil {
		if !entity.IsKnownTeam(*req.Team) {
			return nil, ErrUnknownTeam
		}
		medic.Team = *req.Team
	}
	if req.Role != nil {
		medic.Role = entity.MedicRole(*req.Role)
	}
	if req.Experience != nil {
		medic.Experience = entity.MedicExperience(*req.Experience)
	}

	if err := u.medicRepo.Update(tx, medic); err != nil {
		u.log.Warnf("Failed to update medic: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionRosterUpdate, "medic", fmt.Sprint(id), oldTeam, medic.Team); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicToResponse(medic), nil
}

func (u *rosterUsecase) DeleteMedic(ctx context.Context, id int64, actorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	medic, err := u.medicRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if medic == nil {
		return ErrMedicNotFound
	}

	if _, err := u.medicRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete medic: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionRosterDelete, "medic", fmt.Sprint(id), medic.Name); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *rosterUsecase) MedicStats(ctx context.Context, id int64) (*MedicStatsResponse, error) {
	medic, err := u.medicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medic: %+v", err)
		return nil, err
	}
	if medic == nil {
		return nil, ErrMedicNotFound
	}

	trainings, err := u.medicTrainRepo.FindByMedicID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to fetch medic drills: %+v", err)
		return nil, err
	}

	return &MedicStatsResponse{
		Medic: *converter.MedicToResponse(medic),
		Stats: report.MedicStats(trainings, u.now()),
	}, nil
}

func (u *rosterUsecase) UntrainedMedics(ctx context.Context, team string) (*dto.MedicListResponse, error) {
	monthStart := report.StartOfMonth(u.now())
	medics, err := u.medicRepo.FindUntrainedSince(u.db.WithContext(ctx), monthStart, team)
	if err != nil {
		u.log.Warnf("Failed to find untrained medics: %+v", err)
		return nil, err
	}

	return &dto.MedicListResponse{
		Medics: converter.MedicsToResponses(medics),
		Total:  len(medics),
	}, nil
}
