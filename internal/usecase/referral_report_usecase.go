package usecase

import (
	"context"
	"time"

	"medical-referrals/internal/converter"
	"medical-referrals/internal/delivery/dto"
	"medical-referrals/internal/domain/entity"
	"medical-referrals/internal/domain/repository"
	"medical-referrals/internal/report"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReferralReportUsecase serves the referral side of the dashboard. Reports
// are computed in memory over the fetched record set, so the numbers in one
// response are mutually consistent.
type ReferralReportUsecase interface {
	Dashboard(ctx context.Context) (*report.DashboardStats, error)
	LongWaiting(ctx context.Context) (*report.LongWaitingReport, error)
	Upcoming(ctx context.Context) (*dto.UpcomingAppointmentsResponse, error)
	UrgentList(ctx context.Context, limit int) (*dto.ReferralListResponse, error)
	TeamRollups(ctx context.Context) (map[string]report.TeamRollup, error)
}

type referralReportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	referralRepo repository.ReferralRepository
	soldierRepo  repository.SoldierRepository
	now          func() time.Time
}

func NewReferralReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	referralRepo repository.ReferralRepository,
	soldierRepo repository.SoldierRepository,
) ReferralReportUsecase {
	return &referralReportUsecase{
		db:           db,
		log:          log,
		referralRepo: referralRepo,
		soldierRepo:  soldierRepo,
		now:          time.Now,
	}
}

func (u *referralReportUsecase) Dashboard(ctx context.Context) (*report.DashboardStats, error) {
	referrals, err := u.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := report.Dashboard(referrals, u.now())
	return &stats, nil
}

func (u *referralReportUsecase) LongWaiting(ctx context.Context) (*report.LongWaitingReport, error) {
	referrals, err := u.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	result := report.LongWaiting(referrals, u.now())
	return &result, nil
}

func (u *referralReportUsecase) Upcoming(ctx context.Context) (*dto.UpcomingAppointmentsResponse, error) {
	referrals, err := u.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	upcoming := report.Upcoming(referrals, now)
	return &dto.UpcomingAppointmentsResponse{
		Referrals: converter.ReferralsToResponses(upcoming.Referrals, now),
		Soon:      converter.ReferralsToResponses(upcoming.Soon, now),
		Total:     len(upcoming.Referrals),
	}, nil
}

func (u *referralReportUsecase) UrgentList(ctx context.Context, limit int) (*dto.ReferralListResponse, error) {
	referrals, err := u.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	urgent := report.TopUrgent(referrals, limit)
	return &dto.ReferralListResponse{
		Referrals: converter.ReferralsToResponses(urgent, u.now()),
		Total:     len(urgent),
	}, nil
}

func (u *referralReportUsecase) TeamRollups(ctx context.Context) (map[string]report.TeamRollup, error) {
	referrals, err := u.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	soldiers, err := u.soldierRepo.FindAll(u.db.WithContext(ctx), "")
	if err != nil {
		u.log.Warnf("Failed to fetch soldiers: %+v", err)
		return nil, err
	}

	return report.TeamRollups(referrals, soldiers), nil
}

func (u *referralReportUsecase) fetchAll(ctx context.Context) ([]entity.Referral, error) {
	referrals, err := u.referralRepo.FindAll(u.db.WithContext(ctx), &entity.ReferralFilter{})
	if err != nil {
		u.log.Warnf("Failed to fetch referrals: %+v", err)
		return nil, err
	}
	return referrals, nil
}
