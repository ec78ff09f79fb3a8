// Package report implements the dashboard aggregation engine: calendar
// bucketing, classification rules and the statistics computed over referral
// and training records. Every function takes "now" explicitly and is pure, so
// reports are deterministic and unit-testable. Empty inputs always produce
// zero-valued results, never errors.
package report

import "time"

// Period selects a rolling reporting window relative to now.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// Reporting thresholds, in days.
const (
	// LongWaitThresholdDays marks an open referral without an appointment as
	// long-waiting once it is this old.
	LongWaitThresholdDays = 20
	// UpcomingSoonDays marks an upcoming appointment as imminent.
	UpcomingSoonDays = 3
	// UpcomingWindowDays is the look-ahead window for upcoming appointments.
	UpcomingWindowDays = 7
)

// PeriodStart returns the start of the window for the given period.
// The second return is false for PeriodAll and unknown values, meaning the
// window is unbounded.
func PeriodStart(now time.Time, period Period) (time.Time, bool) {
	switch period {
	case PeriodWeek:
		return StartOfDay(now).AddDate(0, 0, -7), true
	case PeriodMonth:
		return StartOfMonth(now), true
	case PeriodQuarter:
		quarterMonth := now.Month() - (now.Month()-1)%3
		return time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location()), true
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// StartOfDay truncates t to midnight in its location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first instant of t's calendar month
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfNextMonth returns the first instant of the month after t's.
// time.Date normalizes month 13 into January of the following year.
func StartOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

// DaysAgo returns midnight of the day the given number of days before now
func DaysAgo(now time.Time, days int) time.Time {
	return StartOfDay(now).AddDate(0, 0, -days)
}

// SameDay checks whether two instants fall on the same calendar date
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthBucket is one calendar-month window. End is the last instant inside
// the bucket (the next month's start minus one second).
type MonthBucket struct {
	Start   time.Time
	End     time.Time
	Key     string // 2006-01, sortable
	Display string // 01/2006
}

// Contains reports whether t falls inside the bucket
func (b MonthBucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}

// LastNMonths returns the last n calendar months including the current one,
// oldest first.
func LastNMonths(now time.Time, n int) []MonthBucket {
	if n <= 0 {
		return nil
	}
	buckets := make([]MonthBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		buckets = append(buckets, MonthBucket{
			Start:   start,
			End:     StartOfNextMonth(start).Add(-time.Second),
			Key:     start.Format("2006-01"),
			Display: start.Format("01/2006"),
		})
	}
	return buckets
}
