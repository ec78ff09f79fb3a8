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
	ErrReferralNotFound       = errors.New("referral not found")
	ErrDuplicateReferral      = errors.New("an identical referral already exists for this person")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrInvalidTimestampFormat = errors.New("invalid timestamp format, use RFC 3339")
)

type ReferralUsecase interface {
	Create(ctx context.Context, req *dto.CreateReferralRequest, actorID uuid.UUID) (*dto.ReferralResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ReferralResponse, error)
	List(ctx context.Context, query *dto.ListReferralsQuery) (*dto.ReferralListResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateReferralRequest, actorID uuid.UUID) (*dto.ReferralResponse, error)
	Delete(ctx context.Context, id int64, actorID uuid.UUID) error

	AddDocument(ctx context.Context, referralID int64, req *dto.CreateReferralDocumentRequest, actorID uuid.UUID) (*dto.ReferralDocumentResponse, error)
	ListDocuments(ctx context.Context, referralID int64) ([]dto.ReferralDocumentResponse, error)
	DeleteDocument(ctx context.Context, referralID, documentID int64, actorID uuid.UUID) error
}

type referralUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	referralRepo repository.ReferralRepository
	documentRepo repository.ReferralDocumentRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewReferralUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	referralRepo repository.ReferralRepository,
	documentRepo repository.ReferralDocumentRepository,
	auditService service.AuditService,
) ReferralUsecase {
	return &referralUsecase{
		db:           db,
		log:          log,
		referralRepo: referralRepo,
		documentRepo: documentRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *referralUsecase) Create(ctx context.Context, req *dto.CreateReferralRequest, actorID uuid.UUID) (*dto.ReferralResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	referral := &entity.Referral{
		FullName:            req.FullName,
		PersonalID:          req.PersonalID,
		Team:                req.Team,
		ReferralDetails:     req.ReferralDetails,
		HasDocuments:        req.HasDocuments,
		AppointmentPath:     req.AppointmentPath,
		AppointmentLocation: req.AppointmentLocation,
		Notes:               req.Notes,
		CreatedBy:           &actorID,
		LastUpdatedBy:       &actorID,
	}

	// Unclassified requests are typed from the detail text
	if req.ReferralType != "" {
		referral.ReferralType = entity.ReferralType(req.ReferralType)
	} else {
		referral.ReferralType = report.InferReferralType(req.ReferralDetails)
	}

	referral.Priority = report.NormalizePriority(req.Priority)
	referral.Status = report.NormalizeStatus(req.Status)

	if req.AppointmentDate != nil {
		appointment, err := time.Parse(time.RFC3339, *req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidTimestampFormat
		}
		referral.AppointmentDate = &appointment
	}
	if req.ReferenceDate != nil {
		reference, err := parseDate(*req.ReferenceDate)
		if err != nil {
			return nil, err
		}
		referral.ReferenceDate = &reference
	}

	if err := u.referralRepo.Create(tx, referral); err != nil {
		if isDuplicateKeyError(err, "uq_referrals_identity") {
			return nil, ErrDuplicateReferral
		}
		u.log.Warnf("Failed to create referral: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionReferralCreate, "referral", fmt.Sprint(referral.ID), referral.ReferralDetails); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReferralToResponse(referral, u.now()), nil
}

func (u *referralUsecase) GetByID(ctx context.Context, id int64) (*dto.ReferralResponse, error) {
	referral, err := u.referralRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find referral by ID: %+v", err)
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}

	return converter.ReferralToResponse(referral, u.now()), nil
}

func (u *referralUsecase) List(ctx context.Context, query *dto.ListReferralsQuery) (*dto.ReferralListResponse, error) {
	filter := u.buildFilter(query)

	referrals, err := u.referralRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list referrals: %+v", err)
		return nil, err
	}

	return &dto.ReferralListResponse{
		Referrals: converter.ReferralsToResponses(referrals, u.now()),
		Total:     len(referrals),
	}, nil
}

func (u *referralUsecase) Update(ctx context.Context, id int64, req *dto.UpdateReferralRequest, actorID uuid.UUID) (*dto.ReferralResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	referral, err := u.referralRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find referral by ID: %+v", err)
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}

	oldValue := entity.JSON{
		"status":   string(referral.Status),
		"priority": string(referral.Priority),
	}

	if req.FullName != nil {
		referral.FullName = *req.FullName
	}
	if req.PersonalID != nil {
		referral.PersonalID = *req.PersonalID
	}
	if req.Team != nil {
		referral.Team = *req.Team
	}
	if req.ReferralType != nil {
		referral.ReferralType = entity.ReferralType(*req.ReferralType)
	}
	if req.ReferralDetails != nil {
		referral.ReferralDetails = *req.ReferralDetails
	}
	if req.Priority != nil {
		referral.Priority = report.NormalizePriority(*req.Priority)
	}
	if req.Status != nil {
		referral.Status = report.NormalizeStatus(*req.Status)
	}
	if req.HasDocuments != nil {
		referral.HasDocuments = *req.HasDocuments
	}
	if req.AppointmentDate != nil {
		if *req.AppointmentDate == "" {
			referral.AppointmentDate = nil
		} else {
			appointment, err := time.Parse(time.RFC3339, *req.AppointmentDate)
			if err != nil {
				return nil, ErrInvalidTimestampFormat
			}
			referral.AppointmentDate = &appointment
		}
	}
	if req.AppointmentPath != nil {
		referral.AppointmentPath = *req.AppointmentPath
	}
	if req.AppointmentLocation != nil {
		referral.AppointmentLocation = *req.AppointmentLocation
	}
	if req.Notes != nil {
		referral.Notes = *req.Notes
	}
	if req.ReferenceDate != nil {
		if *req.ReferenceDate == "" {
			referral.ReferenceDate = nil
		} else {
			reference, err := parseDate(*req.ReferenceDate)
			if err != nil {
				return nil, err
			}
			referral.ReferenceDate = &reference
		}
	}

	referral.LastUpdatedBy = &actorID

	if err := u.referralRepo.Update(tx, referral); err != nil {
		if isDuplicateKeyError(err, "uq_referrals_identity") {
			return nil, ErrDuplicateReferral
		}
		u.log.Warnf("Failed to update referral: %+v", err)
		return nil, err
	}

	newValue := entity.JSON{
		"status":   string(referral.Status),
		"priority": string(referral.Priority),
	}
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionReferralUpdate, "referral", fmt.Sprint(referral.ID), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReferralToResponse(referral, u.now()), nil
}

func (u *referralUsecase) Delete(ctx context.Context, id int64, actorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	referral, err := u.referralRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find referral by ID: %+v", err)
		return err
	}
	if referral == nil {
		return ErrReferralNotFound
	}

	if _, err := u.referralRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete referral: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionReferralDelete, "referral", fmt.Sprint(id), referral.ReferralDetails); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *referralUsecase) AddDocument(ctx context.Context, referralID int64, req *dto.CreateReferralDocumentRequest, actorID uuid.UUID) (*dto.ReferralDocumentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	referral, err := u.referralRepo.FindByID(tx, referralID)
	if err != nil {
		u.log.Warnf("Failed to find referral by ID: %+v", err)
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}

	document := &entity.ReferralDocument{
		ReferralID:  referralID,
		Title:       req.Title,
		FilePath:    req.FilePath,
		Description: req.Description,
		UploadedBy:  &actorID,
	}

	if err := u.documentRepo.Create(tx, document); err != nil {
		u.log.Warnf("Failed to create document: %+v", err)
		return nil, err
	}

	// The owning referral advertises attachments on its list rows
	if !referral.HasDocuments {
		referral.HasDocuments = true
		referral.LastUpdatedBy = &actorID
		if err := u.referralRepo.Update(tx, referral); err != nil {
			u.log.Warnf("Failed to flag referral documents: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionDocumentUpload, "referral_document", fmt.Sprint(document.ID), document.Title); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReferralDocumentToResponse(document), nil
}

func (u *referralUsecase) ListDocuments(ctx context.Context, referralID int64) ([]dto.ReferralDocumentResponse, error) {
	referral, err := u.referralRepo.FindByID(u.db.WithContext(ctx), referralID)
	if err != nil {
		u.log.Warnf("Failed to find referral by ID: %+v", err)
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}

	documents, err := u.documentRepo.FindByReferralID(u.db.WithContext(ctx), referralID)
	if err != nil {
		u.log.Warnf("Failed to list documents: %+v", err)
		return nil, err
	}

	return converter.ReferralDocumentsToResponses(documents), nil
}

func (u *referralUsecase) DeleteDocument(ctx context.Context, referralID, documentID int64, actorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	document, err := u.documentRepo.FindByID(tx, documentID)
	if err != nil {
		u.log.Warnf("Failed to find document by ID: %+v", err)
		return err
	}
	if document == nil || document.ReferralID != referralID {
		return ErrDocumentNotFound
	}

	if _, err := u.documentRepo.Delete(tx, documentID); err != nil {
		u.log.Warnf("Failed to delete document: %+v", err)
		return err
	}

	// Clear the flag when the last attachment goes away
	remaining, err := u.documentRepo.FindByReferralID(tx, referralID)
	if err != nil {
		u.log.Warnf("Failed to count remaining documents: %+v", err)
		return err
	}
	if len(remaining) == 0 {
		referral, err := u.referralRepo.FindByID(tx, referralID)
		if err != nil {
			return err
		}
		if referral != nil && referral.HasDocuments {
			referral.HasDocuments = false
			referral.LastUpdatedBy = &actorID
			if err := u.referralRepo.Update(tx, referral); err != nil {
				return err
			}
		}
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionDocumentDelete, "referral_document", fmt.Sprint(documentID), document.Title); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// buildFilter translates the query DTO into a repository filter, resolving
// the relative appointment toggles against the current clock.
func (u *referralUsecase) buildFilter(query *dto.ListReferralsQuery) *entity.ReferralFilter {
	filter := &entity.ReferralFilter{}
	if query == nil {
		return filter
	}

	for _, s := range query.Statuses {
		filter.Statuses = append(filter.Statuses, entity.ReferralStatus(s))
	}
	for _, p := range query.Priorities {
		filter.Priorities = append(filter.Priorities, entity.ReferralPriority(p))
	}
	filter.Teams = query.Teams
	for _, t := range query.Types {
		filter.Types = append(filter.Types, entity.ReferralType(t))
	}

	filter.HasDocuments = query.HasDocuments
	filter.Search = query.Search
	filter.CreatedFrom = query.CreatedFrom
	filter.CreatedTo = query.CreatedTo
	filter.UpdatedFrom = query.UpdatedFrom
	filter.UpdatedTo = query.UpdatedTo
	filter.AppointmentFrom = query.AppointmentFrom
	filter.AppointmentTo = query.AppointmentTo

	now := u.now()
	switch {
	case query.Today:
		from := report.StartOfDay(now)
		to := from.AddDate(0, 0, 1).Add(-time.Second)
		filter.AppointmentFrom = &from
		filter.AppointmentTo = &to
	case query.ThisWeek:
		from := report.StartOfDay(now)
		to := from.AddDate(0, 0, report.UpcomingWindowDays).Add(-time.Second)
		filter.AppointmentFrom = &from
		filter.AppointmentTo = &to
	case query.Future:
		filter.AppointmentFrom = &now
	case query.Past:
		filter.AppointmentTo = &now
	}

	if query.NoAppointment {
		noAppointment := false
		filter.HasAppointment = &noAppointment
	}

	return filter
}
