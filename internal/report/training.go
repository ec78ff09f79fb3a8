package report

import (
	"math"
	"sort"
	"time"

	"medical-referrals/internal/domain/entity"
)

// round2 rounds report averages and rates to two decimal places
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// validTimes extracts the parseable CAT readings from a drill set
func validTimes(trainings []entity.TourniquetTraining) []int {
	var times []int
	for i := range trainings {
		if t := ParseCATTime(trainings[i].CATTime); t.Valid() {
			times = append(times, t.Seconds)
		}
	}
	return times
}

func averageInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return round2(float64(sum) / float64(len(values)))
}

// passRate returns passed/total as a percentage, 0 for an empty set
func passRate(trainings []entity.TourniquetTraining) float64 {
	if len(trainings) == 0 {
		return 0
	}
	passed := 0
	for i := range trainings {
		if trainings[i].Passed {
			passed++
		}
	}
	return round2(float64(passed) / float64(len(trainings)) * 100)
}

// TeamCATPerformance is one team's tourniquet drill summary
type TeamCATPerformance struct {
	AverageTime float64 `json:"avg"`
	PassRate    float64 `json:"pass_rate"`
}

// MonthCATProgress is one month's tourniquet drill summary
type MonthCATProgress struct {
	Month       string  `json:"month"`
	AverageTime float64 `json:"avg"`
	PassRate    float64 `json:"pass_rate"`
}

// TourniquetSummary aggregates tourniquet drills overall, per team and per
// month
type TourniquetSummary struct {
	TotalTrainings  int                           `json:"total_trainings"`
	AverageTime     float64                       `json:"average_time"`
	PassRate        float64                       `json:"pass_rate"`
	TeamPerformance map[string]TeamCATPerformance `json:"team_performance"`
	MonthlyProgress []MonthCATProgress            `json:"monthly_progress"`
}

// SummarizeTourniquet computes the tourniquet block of the training report.
// Drills must carry their Soldier for team grouping. Months with no drills
// are omitted from the progress series.
func SummarizeTourniquet(trainings []entity.TourniquetTraining, now time.Time, months int) TourniquetSummary {
	summary := TourniquetSummary{
		TotalTrainings:  len(trainings),
		AverageTime:     averageInts(validTimes(trainings)),
		PassRate:        passRate(trainings),
		TeamPerformance: make(map[string]TeamCATPerformance),
	}

	byTeam := make(map[string][]entity.TourniquetTraining)
	for i := range trainings {
		team := trainings[i].Soldier.Team
		byTeam[team] = append(byTeam[team], trainings[i])
	}
	for team, teamTrainings := range byTeam {
		summary.TeamPerformance[team] = TeamCATPerformance{
			AverageTime: averageInts(validTimes(teamTrainings)),
			PassRate:    passRate(teamTrainings),
		}
	}

	for _, bucket := range LastNMonths(now, months) {
		var monthTrainings []entity.TourniquetTraining
		for i := range trainings {
			if bucket.Contains(trainings[i].TrainingDate) {
				monthTrainings = append(monthTrainings, trainings[i])
			}
		}
		if len(monthTrainings) == 0 {
			continue
		}
		summary.MonthlyProgress = append(summary.MonthlyProgress, MonthCATProgress{
			Month:       bucket.Display,
			AverageTime: averageInts(validTimes(monthTrainings)),
			PassRate:    passRate(monthTrainings),
		})
	}

	return summary
}

// RatingBreakdown is a count + average rating pair used by grouped summaries
type RatingBreakdown struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

func averageRating(ratings []int) float64 {
	return averageInts(ratings)
}

// MedicTrainingSummary aggregates medic drills overall and per drill type
type MedicTrainingSummary struct {
	TotalTrainings int                        `json:"total_trainings"`
	AverageRating  float64                    `json:"average_rating"`
	ByTrainingType map[string]RatingBreakdown `json:"by_training_type"`
}

// SummarizeMedicTrainings computes the medic block of the training report
func SummarizeMedicTrainings(trainings []entity.MedicTraining) MedicTrainingSummary {
	summary := MedicTrainingSummary{
		TotalTrainings: len(trainings),
		ByTrainingType: make(map[string]RatingBreakdown),
	}

	var allRatings []int
	byType := make(map[string][]int)
	for i := range trainings {
		allRatings = append(allRatings, trainings[i].PerformanceRating)
		key := string(trainings[i].TrainingType)
		byType[key] = append(byType[key], trainings[i].PerformanceRating)
	}
	summary.AverageRating = averageRating(allRatings)
	for trainingType, ratings := range byType {
		summary.ByTrainingType[trainingType] = RatingBreakdown{
			Count:         len(ratings),
			AverageRating: averageRating(ratings),
		}
	}
	return summary
}

// TeamTrainingSummary aggregates whole-team drills overall and per team
type TeamTrainingSummary struct {
	TotalTrainings int                        `json:"total_trainings"`
	AverageRating  float64                    `json:"average_rating"`
	ByTeam         map[string]RatingBreakdown `json:"by_team"`
}

// SummarizeTeamTrainings computes the team-drill block of the training report
func SummarizeTeamTrainings(trainings []entity.TeamTraining) TeamTrainingSummary {
	summary := TeamTrainingSummary{
		TotalTrainings: len(trainings),
		ByTeam:         make(map[string]RatingBreakdown),
	}

	var allRatings []int
	byTeam := make(map[string][]int)
	for i := range trainings {
		allRatings = append(allRatings, trainings[i].PerformanceRating)
		byTeam[trainings[i].Team] = append(byTeam[trainings[i].Team], trainings[i].PerformanceRating)
	}
	summary.AverageRating = averageRating(allRatings)
	for team, ratings := range byTeam {
		summary.ByTeam[team] = RatingBreakdown{
			Count:         len(ratings),
			AverageRating: averageRating(ratings),
		}
	}
	return summary
}

// CombinedMonthStats is one month's drill totals across all training kinds
type CombinedMonthStats struct {
	Month      string `json:"month"`
	Total      int    `json:"total"`
	Team       int    `json:"team"`
	Tourniquet int    `json:"tourniquet"`
	Medic      int    `json:"medic"`
}

// TrainingOverview is the full training-report payload
type TrainingOverview struct {
	Tourniquet       TourniquetSummary    `json:"tourniquet_stats"`
	Medic            MedicTrainingSummary `json:"medic_stats"`
	Team             TeamTrainingSummary  `json:"team_stats"`
	TotalTrainings   int                  `json:"total_trainings"`
	TrainingsByTeam  map[string]int       `json:"trainings_by_team"`
	TrainingsByMonth []CombinedMonthStats `json:"trainings_by_month"`
}

// Overview combines all three drill kinds into the training dashboard.
// Months and teams with zero drills are omitted.
func Overview(
	teamTrainings []entity.TeamTraining,
	tourniquetTrainings []entity.TourniquetTraining,
	medicTrainings []entity.MedicTraining,
	now time.Time,
) TrainingOverview {
	overview := TrainingOverview{
		Tourniquet:      SummarizeTourniquet(tourniquetTrainings, now, 5),
		Medic:           SummarizeMedicTrainings(medicTrainings),
		Team:            SummarizeTeamTrainings(teamTrainings),
		TotalTrainings:  len(teamTrainings) + len(tourniquetTrainings) + len(medicTrainings),
		TrainingsByTeam: make(map[string]int),
	}

	for i := range teamTrainings {
		overview.TrainingsByTeam[teamTrainings[i].Team]++
	}
	for i := range tourniquetTrainings {
		overview.TrainingsByTeam[tourniquetTrainings[i].Soldier.Team]++
	}
	for i := range medicTrainings {
		overview.TrainingsByTeam[medicTrainings[i].Medic.Team]++
	}

	for _, bucket := range LastNMonths(now, 6) {
		month := CombinedMonthStats{Month: bucket.Display}
		for i := range teamTrainings {
			if bucket.Contains(teamTrainings[i].Date) {
				month.Team++
			}
		}
		for i := range tourniquetTrainings {
			if bucket.Contains(tourniquetTrainings[i].TrainingDate) {
				month.Tourniquet++
			}
		}
		for i := range medicTrainings {
			if bucket.Contains(medicTrainings[i].TrainingDate) {
				month.Medic++
			}
		}
		month.Total = month.Team + month.Tourniquet + month.Medic
		if month.Total > 0 {
			overview.TrainingsByMonth = append(overview.TrainingsByMonth, month)
		}
	}

	return overview
}

// ImprovementTrend compares the chronologically first valid timing reading to
// the last. Improvement is first minus last, so positive means faster.
type ImprovementTrend struct {
	FirstTime          int     `json:"first_time,omitempty"`
	LastTime           int     `json:"last_time,omitempty"`
	Improvement        int     `json:"improvement,omitempty"`
	ImprovementPercent float64 `json:"improvement_percent,omitempty"`
	IsImproving        bool    `json:"is_improving"`
}

// LastDrill is the most recent tourniquet drill of a subject
type LastDrill struct {
	Date    time.Time `json:"date"`
	CATTime string    `json:"cat_time"`
	Passed  bool      `json:"passed"`
}

// SoldierDrillStats is the per-soldier tourniquet statistics block
type SoldierDrillStats struct {
	TotalTrainings   int              `json:"total_trainings"`
	AverageTime      float64          `json:"average_cat_time"`
	BestTime         int              `json:"best_cat_time"`
	WorstTime        int              `json:"worst_cat_time"`
	PassRate         float64          `json:"pass_rate"`
	LastTraining     *LastDrill       `json:"last_training,omitempty"`
	TrainedThisMonth bool             `json:"trained_this_month"`
	Trend            ImprovementTrend `json:"improvement_trend"`
}

// SoldierStats computes a soldier's drill statistics. Invalid CAT readings
// are excluded from the timing aggregates but still count toward the drill
// total. The trend needs at least two valid readings, otherwise it reports
// not improving.
func SoldierStats(trainings []entity.TourniquetTraining, now time.Time) SoldierDrillStats {
	stats := SoldierDrillStats{TotalTrainings: len(trainings)}
	if len(trainings) == 0 {
		return stats
	}

	chronological := make([]entity.TourniquetTraining, len(trainings))
	copy(chronological, trainings)
	sort.Slice(chronological, func(i, j int) bool {
		return chronological[i].TrainingDate.Before(chronological[j].TrainingDate)
	})

	times := validTimes(chronological)
	if len(times) > 0 {
		stats.AverageTime = averageInts(times)
		best, worst := times[0], times[0]
		for _, t := range times {
			if t < best {
				best = t
			}
			if t > worst {
				worst = t
			}
		}
		stats.BestTime = best
		stats.WorstTime = worst
	}

	stats.PassRate = passRate(chronological)

	last := chronological[len(chronological)-1]
	stats.LastTraining = &LastDrill{
		Date:    last.TrainingDate,
		CATTime: last.CATTime,
		Passed:  last.Passed,
	}

	for i := range chronological {
		if chronological[i].IsCurrentMonth(now) {
			stats.TrainedThisMonth = true
			break
		}
	}

	if len(times) >= 2 {
		first, lastTime := times[0], times[len(times)-1]
		improvement := first - lastTime
		stats.Trend = ImprovementTrend{
			FirstTime:   first,
			LastTime:    lastTime,
			Improvement: improvement,
			IsImproving: improvement > 0,
		}
		if first > 0 {
			stats.Trend.ImprovementPercent = round2(float64(improvement) / float64(first) * 100)
		}
	}

	return stats
}

// LastMedicDrill is the most recent drill of a medic
type LastMedicDrill struct {
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
	Rating int       `json:"rating"`
}

// MedicDrillStats is the per-medic statistics block
type MedicDrillStats struct {
	TotalTrainings   int                        `json:"total_trainings"`
	AverageRating    float64                    `json:"average_rating"`
	HighestRating    int                        `json:"highest_rating"`
	LowestRating     int                        `json:"lowest_rating"`
	AttendanceRate   float64                    `json:"attendance_rate"`
	LastTraining     *LastMedicDrill            `json:"last_training,omitempty"`
	TrainedThisMonth bool                       `json:"trained_this_month"`
	ByTrainingType   map[string]RatingBreakdown `json:"by_training_type"`
}

// MedicStats computes a medic's drill statistics
func MedicStats(trainings []entity.MedicTraining, now time.Time) MedicDrillStats {
	stats := MedicDrillStats{
		TotalTrainings: len(trainings),
		ByTrainingType: make(map[string]RatingBreakdown),
	}
	if len(trainings) == 0 {
		return stats
	}

	chronological := make([]entity.MedicTraining, len(trainings))
	copy(chronological, trainings)
	sort.Slice(chronological, func(i, j int) bool {
		return chronological[i].TrainingDate.Before(chronological[j].TrainingDate)
	})

	var ratings []int
	attended := 0
	byType := make(map[string][]int)
	for i := range chronological {
		t := &chronological[i]
		ratings = append(ratings, t.PerformanceRating)
		if t.Attendance {
			attended++
		}
		key := string(t.TrainingType)
		byType[key] = append(byType[key], t.PerformanceRating)
	}

	stats.AverageRating = averageRating(ratings)
	stats.HighestRating, stats.LowestRating = ratings[0], ratings[0]
	for _, r := range ratings {
		if r > stats.HighestRating {
			stats.HighestRating = r
		}
		if r < stats.LowestRating {
			stats.LowestRating = r
		}
	}
	stats.AttendanceRate = round2(float64(attended) / float64(len(chronological)) * 100)

	for trainingType, typeRatings := range byType {
		stats.ByTrainingType[trainingType] = RatingBreakdown{
			Count:         len(typeRatings),
			AverageRating: averageRating(typeRatings),
		}
	}

	last := chronological[len(chronological)-1]
	stats.LastTraining = &LastMedicDrill{
		Date:   last.TrainingDate,
		Type:   string(last.TrainingType),
		Rating: last.PerformanceRating,
	}

	stats.TrainedThisMonth = last.IsCurrentMonth(now)

	return stats
}

// BestTimeEntry is one soldier's personal best on the leaderboard
type BestTimeEntry struct {
	Training entity.TourniquetTraining `json:"training"`
	Seconds  int                       `json:"seconds"`
}

// BestTimes returns each soldier's best valid CAT reading, fastest first,
// truncated to limit. Drills with unparseable readings are skipped.
func BestTimes(trainings []entity.TourniquetTraining, limit int) []BestTimeEntry {
	bestBySoldier := make(map[int64]BestTimeEntry)
	for i := range trainings {
		t := ParseCATTime(trainings[i].CATTime)
		if !t.Valid() {
			continue
		}
		current, ok := bestBySoldier[trainings[i].SoldierID]
		if !ok || t.Seconds < current.Seconds {
			bestBySoldier[trainings[i].SoldierID] = BestTimeEntry{
				Training: trainings[i],
				Seconds:  t.Seconds,
			}
		}
	}

	entries := make([]BestTimeEntry, 0, len(bestBySoldier))
	for _, entry := range bestBySoldier {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Seconds != entries[j].Seconds {
			return entries[i].Seconds < entries[j].Seconds
		}
		return entries[i].Training.SoldierID < entries[j].Training.SoldierID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// TeamMonthStats is one month of a team's drill activity
type TeamMonthStats struct {
	Month         string  `json:"month"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"avg_rating"`
}

// TeamDrillStats is the per-team drill statistics view
type TeamDrillStats struct {
	Team             string                `json:"team"`
	TotalTrainings   int                   `json:"total_trainings"`
	AverageRating    float64               `json:"average_rating"`
	MembersCount     int                   `json:"members_count"`
	TrainingsByMonth []TeamMonthStats      `json:"trainings_by_month"`
	RecentTrainings  []entity.TeamTraining `json:"recent_trainings"`
}

// TeamStats computes a single team's drill statistics over its team-training
// history. Months with no drills are omitted.
func TeamStats(team string, trainings []entity.TeamTraining, membersCount int, now time.Time) TeamDrillStats {
	stats := TeamDrillStats{
		Team:           team,
		TotalTrainings: len(trainings),
		MembersCount:   membersCount,
	}

	var ratings []int
	for i := range trainings {
		ratings = append(ratings, trainings[i].PerformanceRating)
	}
	stats.AverageRating = averageRating(ratings)

	for _, bucket := range LastNMonths(now, 6) {
		var monthRatings []int
		for i := range trainings {
			if bucket.Contains(trainings[i].Date) {
				monthRatings = append(monthRatings, trainings[i].PerformanceRating)
			}
		}
		if len(monthRatings) == 0 {
			continue
		}
		stats.TrainingsByMonth = append(stats.TrainingsByMonth, TeamMonthStats{
			Month:         bucket.Display,
			Count:         len(monthRatings),
			AverageRating: averageRating(monthRatings),
		})
	}

	recent := make([]entity.TeamTraining, len(trainings))
	copy(recent, trainings)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentTrainings = recent

	return stats
}
