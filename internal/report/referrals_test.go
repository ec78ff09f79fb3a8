package report

import (
	"testing"
	"time"

	"medical-referrals/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time {
	return &t
}

func openReferral(team string, priority entity.ReferralPriority, createdDaysAgo int) entity.Referral {
	return entity.Referral{
		Team:      team,
		Priority:  priority,
		Status:    entity.StatusRequiresCoordination,
		CreatedAt: testNow.AddDate(0, 0, -createdDaysAgo),
		UpdatedAt: testNow.AddDate(0, 0, -createdDaysAgo),
	}
}

func TestWaitBucket(t *testing.T) {
	tests := []struct {
		days     int
		expected string
	}{
		{0, ""},
		{19, ""},
		{20, WaitBucket20to30},
		{30, WaitBucket20to30},
		{31, WaitBucket31to60},
		{60, WaitBucket31to60},
		{61, WaitBucket61to90},
		{90, WaitBucket61to90},
		{91, WaitBucket91Plus},
		{400, WaitBucket91Plus},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, WaitBucket(tc.days), "days: %d", tc.days)
	}
}

func TestLongWaiting(t *testing.T) {
	t.Run("buckets open unscheduled referrals past the threshold", func(t *testing.T) {
		referrals := []entity.Referral{
			openReferral("alpha", entity.PriorityMedium, 25),
			openReferral("alpha", entity.PriorityMedium, 45),
			openReferral("bravo", entity.PriorityMedium, 100),
			openReferral("bravo", entity.PriorityMedium, 5),
		}

		result := LongWaiting(referrals, testNow)

		assert.Equal(t, 3, result.Total)
		assert.Len(t, result.ByWaitingTime[WaitBucket20to30], 1)
		assert.Len(t, result.ByWaitingTime[WaitBucket31to60], 1)
		assert.Len(t, result.ByWaitingTime[WaitBucket91Plus], 1)
		assert.Equal(t, 2, result.ByTeam["alpha"])
		assert.Equal(t, 1, result.ByTeam["bravo"])
		assert.Equal(t, 3, result.ByStatus[string(entity.StatusRequiresCoordination)])
	})

	t.Run("scheduled and closed referrals are excluded", func(t *testing.T) {
		scheduled := openReferral("alpha", entity.PriorityMedium, 50)
		scheduled.AppointmentDate = ptrTime(testNow.AddDate(0, 0, 10))
		closed := openReferral("alpha", entity.PriorityMedium, 50)
		closed.Status = entity.StatusCompleted

		result := LongWaiting([]entity.Referral{scheduled, closed}, testNow)
		assert.Zero(t, result.Total)
	})

	t.Run("empty input yields zero values", func(t *testing.T) {
		result := LongWaiting(nil, testNow)
		assert.Zero(t, result.Total)
		assert.Empty(t, result.ByWaitingTime)
	})
}

func TestDashboard(t *testing.T) {
	urgent := openReferral("alpha", entity.PriorityUrgent, 3)
	today := openReferral("alpha", entity.PriorityMedium, 1)
	today.AppointmentDate = ptrTime(testNow.Add(2 * time.Hour))
	thisWeek := openReferral("bravo", entity.PriorityMedium, 2)
	thisWeek.AppointmentDate = ptrTime(testNow.AddDate(0, 0, 5))
	overdue := openReferral("bravo", entity.PriorityMedium, 10)
	overdue.AppointmentDate = ptrTime(testNow.AddDate(0, 0, -2))
	done := openReferral("charlie", entity.PriorityLow, 30)
	done.Status = entity.StatusCompleted
	done.UpdatedAt = testNow.AddDate(0, 0, -1)

	stats := Dashboard([]entity.Referral{urgent, today, thisWeek, overdue, done}, testNow)

	assert.Equal(t, 5, stats.TotalReferrals)
	assert.Equal(t, 4, stats.OpenReferrals)
	assert.Equal(t, 1, stats.UrgentReferrals)
	assert.Equal(t, 1, stats.TodayAppointments)
	// The week window includes today's appointment
	assert.Equal(t, 2, stats.WeekAppointments)
	assert.Equal(t, 1, stats.OverdueAppointments)
	assert.Equal(t, 1, stats.StatusBreakdown[string(entity.StatusCompleted)])
	assert.Equal(t, 1, stats.PriorityBreakdown[string(entity.PriorityUrgent)])
	assert.Len(t, stats.MonthlyStats, 6)

	current := stats.MonthlyStats[5]
	assert.Equal(t, "2025-08", current.Month)
	assert.Equal(t, 4, current.Created)
	assert.Equal(t, 1, current.Completed)
}

func TestDashboardEmptyInput(t *testing.T) {
	stats := Dashboard(nil, testNow)

	assert.Zero(t, stats.TotalReferrals)
	assert.Zero(t, stats.OpenReferrals)
	assert.Empty(t, stats.StatusBreakdown)
	assert.Len(t, stats.MonthlyStats, 6)
	for _, month := range stats.MonthlyStats {
		assert.Zero(t, month.Created)
		assert.Zero(t, month.Completed)
	}
}

func TestIsOverdue(t *testing.T) {
	r := openReferral("alpha", entity.PriorityMedium, 10)
	r.Status = entity.StatusAppointmentScheduled
	r.AppointmentDate = ptrTime(testNow.AddDate(0, 0, -1))

	assert.True(t, IsOverdue(&r, testNow))

	t.Run("terminal status is never overdue", func(t *testing.T) {
		completed := r
		completed.Status = entity.StatusCompleted
		assert.False(t, IsOverdue(&completed, testNow))
	})

	t.Run("future appointment is not overdue", func(t *testing.T) {
		future := r
		future.AppointmentDate = ptrTime(testNow.AddDate(0, 0, 1))
		assert.False(t, IsOverdue(&future, testNow))
	})

	t.Run("no appointment is not overdue", func(t *testing.T) {
		unscheduled := r
		unscheduled.AppointmentDate = nil
		assert.False(t, IsOverdue(&unscheduled, testNow))
	})
}

func TestUpcoming(t *testing.T) {
	soon := openReferral("alpha", entity.PriorityMedium, 1)
	soon.AppointmentDate = ptrTime(testNow.AddDate(0, 0, 2))
	later := openReferral("alpha", entity.PriorityMedium, 1)
	later.AppointmentDate = ptrTime(testNow.AddDate(0, 0, 6))
	outside := openReferral("alpha", entity.PriorityMedium, 1)
	outside.AppointmentDate = ptrTime(testNow.AddDate(0, 0, 20))
	past := openReferral("alpha", entity.PriorityMedium, 1)
	past.AppointmentDate = ptrTime(testNow.AddDate(0, 0, -1))

	result := Upcoming([]entity.Referral{later, soon, outside, past}, testNow)

	require.Len(t, result.Referrals, 2)
	// Soonest first
	assert.Equal(t, *soon.AppointmentDate, *result.Referrals[0].AppointmentDate)
	require.Len(t, result.Soon, 1)
	assert.Equal(t, *soon.AppointmentDate, *result.Soon[0].AppointmentDate)
}

func TestTopUrgent(t *testing.T) {
	highest := openReferral("alpha", entity.PriorityHighest, 2)
	urgentOld := openReferral("alpha", entity.PriorityUrgent, 30)
	urgentNew := openReferral("alpha", entity.PriorityUrgent, 1)
	medium := openReferral("alpha", entity.PriorityMedium, 10)
	closedUrgent := openReferral("alpha", entity.PriorityUrgent, 10)
	closedUrgent.Status = entity.StatusCancelled

	result := TopUrgent([]entity.Referral{urgentNew, medium, highest, closedUrgent, urgentOld}, 10)

	require.Len(t, result, 3)
	assert.Equal(t, entity.PriorityHighest, result[0].Priority)
	// Same priority orders oldest first
	assert.Equal(t, urgentOld.CreatedAt, result[1].CreatedAt)
	assert.Equal(t, urgentNew.CreatedAt, result[2].CreatedAt)

	t.Run("limit truncates", func(t *testing.T) {
		limited := TopUrgent([]entity.Referral{urgentNew, highest, urgentOld}, 2)
		assert.Len(t, limited, 2)
	})
}

func TestTeamRollups(t *testing.T) {
	urgent := openReferral("alpha", entity.PriorityUrgent, 5)
	scheduled := openReferral("alpha", entity.PriorityMedium, 5)
	scheduled.Status = entity.StatusAppointmentScheduled
	waiting := openReferral("bravo", entity.PriorityMedium, 5)
	waiting.Status = entity.StatusWaitingForMedicalDate

	soldiers := []entity.Soldier{
		{ID: 1, Name: "A", Team: "alpha"},
		{ID: 2, Name: "B", Team: "charlie"},
	}

	rollups := TeamRollups([]entity.Referral{urgent, scheduled, waiting}, soldiers)

	alpha := rollups["alpha"]
	assert.Equal(t, 2, alpha.Total)
	assert.Equal(t, 1, alpha.Urgent)
	assert.Equal(t, 1, alpha.NeedsCoordination)
	assert.Equal(t, 1, alpha.Scheduled)
	assert.Len(t, alpha.Members, 1)

	bravo := rollups["bravo"]
	assert.Equal(t, 1, bravo.WaitingForDate)
	assert.Empty(t, bravo.Members)

	// Teams with members but no referrals still appear
	charlie := rollups["charlie"]
	assert.Zero(t, charlie.Total)
	assert.Len(t, charlie.Members, 1)
}

func TestWaitingDays(t *testing.T) {
	r := openReferral("alpha", entity.PriorityMedium, 42)
	assert.Equal(t, 42, r.WaitingDays(testNow))

	t.Run("closed referrals wait zero days", func(t *testing.T) {
		closed := openReferral("alpha", entity.PriorityMedium, 42)
		closed.Status = entity.StatusCompleted
		assert.Zero(t, closed.WaitingDays(testNow))
	})
}
