package report

import (
	"sort"
	"time"

	"medical-referrals/internal/domain/entity"
)

// countBy groups referrals by a derived key and counts each group.
// Categories with no records are simply absent from the map.
func countBy(referrals []entity.Referral, key func(*entity.Referral) string) map[string]int {
	counts := make(map[string]int)
	for i := range referrals {
		counts[key(&referrals[i])]++
	}
	return counts
}

// StatusBreakdown counts referrals per status
func StatusBreakdown(referrals []entity.Referral) map[string]int {
	return countBy(referrals, func(r *entity.Referral) string { return string(r.Status) })
}

// PriorityBreakdown counts referrals per priority
func PriorityBreakdown(referrals []entity.Referral) map[string]int {
	return countBy(referrals, func(r *entity.Referral) string { return string(r.Priority) })
}

// TypeBreakdown counts referrals per referral type
func TypeBreakdown(referrals []entity.Referral) map[string]int {
	return countBy(referrals, func(r *entity.Referral) string { return string(r.ReferralType) })
}

// TeamBreakdown counts referrals per team
func TeamBreakdown(referrals []entity.Referral) map[string]int {
	return countBy(referrals, func(r *entity.Referral) string { return r.Team })
}

// CountOpen counts referrals whose status is not terminal
func CountOpen(referrals []entity.Referral) int {
	count := 0
	for i := range referrals {
		if referrals[i].IsOpen() {
			count++
		}
	}
	return count
}

// CountUrgent counts open referrals in the top priority tier
func CountUrgent(referrals []entity.Referral) int {
	count := 0
	for i := range referrals {
		if referrals[i].IsOpen() && referrals[i].IsUrgent() {
			count++
		}
	}
	return count
}

// CountAppointmentsOn counts referrals whose appointment falls on the given
// calendar day
func CountAppointmentsOn(referrals []entity.Referral, day time.Time) int {
	count := 0
	for i := range referrals {
		if referrals[i].AppointmentDate != nil && SameDay(*referrals[i].AppointmentDate, day) {
			count++
		}
	}
	return count
}

// CountAppointmentsWithin counts referrals whose appointment date falls on a
// calendar day between from and to inclusive.
func CountAppointmentsWithin(referrals []entity.Referral, from, to time.Time) int {
	start := StartOfDay(from)
	end := StartOfDay(to).AddDate(0, 0, 1)
	count := 0
	for i := range referrals {
		appt := referrals[i].AppointmentDate
		if appt != nil && !appt.Before(start) && appt.Before(end) {
			count++
		}
	}
	return count
}

// overdueStatuses are the unresolved states in which a past appointment means
// the referral slipped through.
var overdueStatuses = map[entity.ReferralStatus]bool{
	entity.StatusAppointmentScheduled:        true,
	entity.StatusRequiresCoordination:        true,
	entity.StatusRequiresSoldierCoordination: true,
	entity.StatusWaitingForMedicalDate:       true,
}

// IsOverdue reports whether the referral's appointment already passed while
// the referral is still in an unresolved status.
func IsOverdue(r *entity.Referral, now time.Time) bool {
	return r.AppointmentDate != nil && r.AppointmentDate.Before(now) && overdueStatuses[r.Status]
}

// OverdueReferrals returns referrals with a past appointment still awaiting
// resolution
func OverdueReferrals(referrals []entity.Referral, now time.Time) []entity.Referral {
	var overdue []entity.Referral
	for i := range referrals {
		if IsOverdue(&referrals[i], now) {
			overdue = append(overdue, referrals[i])
		}
	}
	return overdue
}

// MonthlyReferralStats is one month in the created/completed trend series
type MonthlyReferralStats struct {
	Month        string `json:"month"`
	MonthDisplay string `json:"month_display"`
	Created      int    `json:"created"`
	Completed    int    `json:"completed"`
}

// MonthlyReferralSeries computes, for each of the last months calendar
// months (oldest first), how many referrals were created and how many were
// completed in that month. Completion time is approximated by updated_at of
// completed referrals; the data model records no explicit transition
// timestamp.
func MonthlyReferralSeries(referrals []entity.Referral, now time.Time, months int) []MonthlyReferralStats {
	buckets := LastNMonths(now, months)
	series := make([]MonthlyReferralStats, 0, len(buckets))
	for _, bucket := range buckets {
		created := 0
		completed := 0
		for i := range referrals {
			r := &referrals[i]
			if bucket.Contains(r.CreatedAt) {
				created++
			}
			if r.Status == entity.StatusCompleted && bucket.Contains(r.UpdatedAt) {
				completed++
			}
		}
		series = append(series, MonthlyReferralStats{
			Month:        bucket.Key,
			MonthDisplay: bucket.Display,
			Created:      created,
			Completed:    completed,
		})
	}
	return series
}

// DashboardStats is the summary block shown on the main dashboard
type DashboardStats struct {
	TotalReferrals        int                    `json:"total_referrals"`
	OpenReferrals         int                    `json:"open_referrals"`
	UrgentReferrals       int                    `json:"urgent_referrals"`
	TodayAppointments     int                    `json:"today_appointments"`
	WeekAppointments      int                    `json:"week_appointments"`
	OverdueAppointments   int                    `json:"overdue_appointments"`
	StatusBreakdown       map[string]int         `json:"status_breakdown"`
	PriorityBreakdown     map[string]int         `json:"priority_breakdown"`
	ReferralTypeBreakdown map[string]int         `json:"referral_types_breakdown"`
	MonthlyStats          []MonthlyReferralStats `json:"monthly_stats"`
}

// Dashboard computes the dashboard summary over the full referral set
func Dashboard(referrals []entity.Referral, now time.Time) DashboardStats {
	today := StartOfDay(now)
	return DashboardStats{
		TotalReferrals:        len(referrals),
		OpenReferrals:         CountOpen(referrals),
		UrgentReferrals:       CountUrgent(referrals),
		TodayAppointments:     CountAppointmentsOn(referrals, today),
		WeekAppointments:      CountAppointmentsWithin(referrals, today, today.AddDate(0, 0, UpcomingWindowDays)),
		OverdueAppointments:   len(OverdueReferrals(referrals, now)),
		StatusBreakdown:       StatusBreakdown(referrals),
		PriorityBreakdown:     PriorityBreakdown(referrals),
		ReferralTypeBreakdown: TypeBreakdown(referrals),
		MonthlyStats:          MonthlyReferralSeries(referrals, now, 6),
	}
}

// Long-waiting sub-range labels
const (
	WaitBucket20to30 = "20-30"
	WaitBucket31to60 = "31-60"
	WaitBucket61to90 = "61-90"
	WaitBucket91Plus = "91+"
)

// WaitBucketOrder lists the long-waiting sub-ranges from newest to oldest
var WaitBucketOrder = []string{WaitBucket20to30, WaitBucket31to60, WaitBucket61to90, WaitBucket91Plus}

// WaitBucket places a waiting-day count into its long-waiting sub-range.
// Days below the threshold return an empty string.
func WaitBucket(days int) string {
	switch {
	case days < LongWaitThresholdDays:
		return ""
	case days <= 30:
		return WaitBucket20to30
	case days <= 60:
		return WaitBucket31to60
	case days <= 90:
		return WaitBucket61to90
	default:
		return WaitBucket91Plus
	}
}

// LongWaitingEntry is one referral waiting past the threshold
type LongWaitingEntry struct {
	Referral    entity.Referral `json:"referral"`
	WaitingDays int             `json:"waiting_days"`
	Bucket      string          `json:"bucket"`
}

// LongWaitingReport groups long-waiting referrals by wait sub-range, team and
// status
type LongWaitingReport struct {
	Total         int                           `json:"total"`
	ByWaitingTime map[string][]LongWaitingEntry `json:"by_waiting_time"`
	ByTeam        map[string]int                `json:"by_team"`
	ByStatus      map[string]int                `json:"by_status"`
}

// LongWaiting finds open referrals with no appointment scheduled that entered
// the system more than the threshold ago, bucketed for distributional
// reporting.
func LongWaiting(referrals []entity.Referral, now time.Time) LongWaitingReport {
	result := LongWaitingReport{
		ByWaitingTime: make(map[string][]LongWaitingEntry),
		ByTeam:        make(map[string]int),
		ByStatus:      make(map[string]int),
	}
	for i := range referrals {
		r := &referrals[i]
		if !r.IsOpen() || r.AppointmentDate != nil {
			continue
		}
		days := r.WaitingDays(now)
		bucket := WaitBucket(days)
		if bucket == "" {
			continue
		}
		result.Total++
		result.ByWaitingTime[bucket] = append(result.ByWaitingTime[bucket], LongWaitingEntry{
			Referral:    *r,
			WaitingDays: days,
			Bucket:      bucket,
		})
		result.ByTeam[r.Team]++
		result.ByStatus[string(r.Status)]++
	}
	for _, entries := range result.ByWaitingTime {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].WaitingDays > entries[j].WaitingDays
		})
	}
	return result
}

// TeamRollup is the per-team nested referral summary
type TeamRollup struct {
	Total             int              `json:"total"`
	Urgent            int              `json:"urgent"`
	NeedsCoordination int              `json:"needs_coordination"`
	Scheduled         int              `json:"scheduled"`
	WaitingForDate    int              `json:"waiting_for_date"`
	Members           []entity.Soldier `json:"members"`
}

// TeamRollups computes referral counts per team, with the team's roster
// attached. Teams appear when they have at least one referral or one member.
func TeamRollups(referrals []entity.Referral, soldiers []entity.Soldier) map[string]TeamRollup {
	rollups := make(map[string]TeamRollup)

	for i := range referrals {
		r := &referrals[i]
		rollup := rollups[r.Team]
		rollup.Total++
		if r.IsOpen() && r.IsUrgent() {
			rollup.Urgent++
		}
		switch r.Status {
		case entity.StatusRequiresCoordination, entity.StatusRequiresSoldierCoordination:
			rollup.NeedsCoordination++
		case entity.StatusAppointmentScheduled:
			rollup.Scheduled++
		case entity.StatusWaitingForMedicalDate:
			rollup.WaitingForDate++
		}
		rollups[r.Team] = rollup
	}

	for _, soldier := range soldiers {
		rollup := rollups[soldier.Team]
		rollup.Members = append(rollup.Members, soldier)
		rollups[soldier.Team] = rollup
	}

	return rollups
}

// UpcomingAppointments lists referrals with an appointment inside the
// look-ahead window, soonest first. Soon holds the subset within the imminent
// threshold.
type UpcomingAppointments struct {
	Referrals []entity.Referral `json:"referrals"`
	Soon      []entity.Referral `json:"soon"`
}

// Upcoming selects referrals whose appointment falls between today and the
// end of the look-ahead window.
func Upcoming(referrals []entity.Referral, now time.Time) UpcomingAppointments {
	today := StartOfDay(now)
	windowEnd := today.AddDate(0, 0, UpcomingWindowDays+1)
	soonEnd := today.AddDate(0, 0, UpcomingSoonDays+1)

	var result UpcomingAppointments
	for i := range referrals {
		appt := referrals[i].AppointmentDate
		if appt == nil || appt.Before(today) || !appt.Before(windowEnd) {
			continue
		}
		result.Referrals = append(result.Referrals, referrals[i])
		if appt.Before(soonEnd) {
			result.Soon = append(result.Soon, referrals[i])
		}
	}
	sort.Slice(result.Referrals, func(i, j int) bool {
		return result.Referrals[i].AppointmentDate.Before(*result.Referrals[j].AppointmentDate)
	})
	sort.Slice(result.Soon, func(i, j int) bool {
		return result.Soon[i].AppointmentDate.Before(*result.Soon[j].AppointmentDate)
	})
	return result
}

// TopUrgent returns up to limit open top-tier referrals, most urgent first,
// oldest first within the same priority.
func TopUrgent(referrals []entity.Referral, limit int) []entity.Referral {
	var urgent []entity.Referral
	for i := range referrals {
		if referrals[i].IsOpen() && referrals[i].IsUrgent() {
			urgent = append(urgent, referrals[i])
		}
	}
	sort.Slice(urgent, func(i, j int) bool {
		ri, rj := entity.PriorityRank(urgent[i].Priority), entity.PriorityRank(urgent[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return urgent[i].CreatedAt.Before(urgent[j].CreatedAt)
	})
	if limit > 0 && len(urgent) > limit {
		urgent = urgent[:limit]
	}
	return urgent
}
