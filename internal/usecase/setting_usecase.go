package usecase

import (
	"context"
	"errors"
	"fmt"

	"medical-referrals/internal/converter"
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
	"medical-referrals/internal/domain/repository"
	"medical-referrals/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSettingNotFound  = errors.New("setting not found")
	ErrSettingKeyExists = errors.New("setting key already exists")
)

type SettingUsecase interface {
	Create(ctx context.Context, req *dto.CreateSettingRequest, actorID uuid.UUID) (*dto.SettingResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.SettingResponse, error)
	List(ctx context.Context, search string) (*dto.SettingListResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSettingRequest, actorID uuid.UUID) (*dto.SettingResponse, error)
	Delete(ctx context.Context, id int64, actorID uuid.UUID) error
}

type settingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingRepo  repository.SystemSettingRepository
	auditService service.AuditService
}

func NewSettingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingRepo repository.SystemSettingRepository,
	auditService service.AuditService,
) SettingUsecase {
	return &settingUsecase{
		db:           db,
		log:          log,
		settingRepo:  settingRepo,
		auditService: auditService,
	}
}

func (u *settingUsecase) Create(ctx context.Context, req *dto.CreateSettingRequest, actorID uuid.UUID) (*dto.SettingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	setting := &entity.SystemSetting{
		Key:           req.Key,
		Value:         entity.JSON(req.Value),
		Description:   req.Description,
		CreatedBy:     &actorID,
		LastUpdatedBy: &actorID,
	}

	if err := u.settingRepo.Create(tx, setting); err != nil {
		if isDuplicateKeyError(err, "key") {
			return nil, ErrSettingKeyExists
		}
		u.log.Warnf("Failed to create setting: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionSettingCreate, "system_setting", fmt.Sprint(setting.ID), setting.Key); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SettingToResponse(setting), nil
}

func (u *settingUsecase) GetByID(ctx context.Context, id int64) (*dto.SettingResponse, error) {
	setting, err := u.settingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find setting by ID: %+v", err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}

	return converter.SettingToResponse(setting), nil
}

func (u *settingUsecase) List(ctx context.Context, search string) (*dto.SettingListResponse, error) {
	settings, err := u.settingRepo.FindAll(u.db.WithContext(ctx), search)
	if err != nil {
		u.log.Warnf("Failed to list settings: %+v", err)
		return nil, err
	}

	return &dto.SettingListResponse{
		Settings: converter.SettingsToResponses(settings),
		Total:    len(settings),
	}, nil
}

func (u *settingUsecase) Update(ctx context.Context, id int64, req *dto.UpdateSettingRequest, actorID uuid.UUID) (*dto.SettingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	setting, err := u.settingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find setting by ID: %+v", err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}

	oldValue := setting.Value

	if req.Value != nil {
		setting.Value = entity.JSON(req.Value)
	}
	if req.Description != nil {
		setting.Description = *req.Description
	}
	setting.LastUpdatedBy = &actorID

	if err := u.settingRepo.Update(tx, setting); err != nil {
		u.log.Warnf("Failed to update setting: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionSettingUpdate, "system_setting", fmt.Sprint(setting.ID), oldValue, setting.Value); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SettingToResponse(setting), nil
}

func (u *settingUsecase) Delete(ctx context.Context, id int64, actorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	setting, err := u.settingRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find setting by ID: %+v", err)
		return err
	}
	if setting == nil {
		return ErrSettingNotFound
	}

	if _, err := u.settingRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete setting: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionSettingDelete, "system_setting", fmt.Sprint(id), setting.Key); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
