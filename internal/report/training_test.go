package report

import (
	"testing"

	"medical-referrals/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drill(soldierID int64, daysAgo int, catTime string, passed bool) entity.TourniquetTraining {
	return entity.TourniquetTraining{
		SoldierID:    soldierID,
		TrainingDate: testNow.AddDate(0, 0, -daysAgo),
		CATTime:      catTime,
		Passed:       passed,
	}
}

func TestSoldierStats(t *testing.T) {
	t.Run("computes aggregates and trend over chronological readings", func(t *testing.T) {
		trainings := []entity.TourniquetTraining{
			// Deliberately unordered; the oldest reading is 40
			drill(1, 30, "32", true),
			drill(1, 60, "40", false),
			drill(1, 5, "28", true),
		}

		stats := SoldierStats(trainings, testNow)

		assert.Equal(t, 3, stats.TotalTrainings)
		assert.InDelta(t, 33.33, stats.AverageTime, 0.01)
		assert.Equal(t, 28, stats.BestTime)
		assert.Equal(t, 40, stats.WorstTime)
		assert.InDelta(t, 66.67, stats.PassRate, 0.01)

		require.NotNil(t, stats.LastTraining)
		assert.Equal(t, "28", stats.LastTraining.CATTime)
		assert.True(t, stats.TrainedThisMonth)

		assert.Equal(t, 40, stats.Trend.FirstTime)
		assert.Equal(t, 28, stats.Trend.LastTime)
		assert.Equal(t, 12, stats.Trend.Improvement)
		assert.InDelta(t, 30.0, stats.Trend.ImprovementPercent, 0.01)
		assert.True(t, stats.Trend.IsImproving)
	})

	t.Run("invalid readings count toward totals but not timings", func(t *testing.T) {
		trainings := []entity.TourniquetTraining{
			drill(1, 20, "40s", true),
			drill(1, 10, "30", true),
		}

		stats := SoldierStats(trainings, testNow)

		assert.Equal(t, 2, stats.TotalTrainings)
		assert.InDelta(t, 30.0, stats.AverageTime, 0.01)
		assert.Equal(t, 30, stats.BestTime)
		assert.Equal(t, 100.0, stats.PassRate)
		// One valid reading is not enough for a trend
		assert.False(t, stats.Trend.IsImproving)
		assert.Zero(t, stats.Trend.Improvement)
	})

	t.Run("slower over time is not improving", func(t *testing.T) {
		trainings := []entity.TourniquetTraining{
			drill(1, 20, "25", true),
			drill(1, 5, "35", true),
		}

		stats := SoldierStats(trainings, testNow)

		assert.Equal(t, -10, stats.Trend.Improvement)
		assert.False(t, stats.Trend.IsImproving)
	})

	t.Run("no drills this month", func(t *testing.T) {
		stats := SoldierStats([]entity.TourniquetTraining{drill(1, 60, "30", true)}, testNow)
		assert.False(t, stats.TrainedThisMonth)
	})

	t.Run("empty history yields zero values", func(t *testing.T) {
		stats := SoldierStats(nil, testNow)
		assert.Zero(t, stats.TotalTrainings)
		assert.Zero(t, stats.AverageTime)
		assert.Nil(t, stats.LastTraining)
		assert.False(t, stats.Trend.IsImproving)
	})
}

func TestBestTimes(t *testing.T) {
	trainings := []entity.TourniquetTraining{
		drill(1, 30, "35", true),
		drill(1, 10, "29", true),
		drill(2, 20, "31", true),
		drill(3, 15, "-", true),
		drill(3, 5, "29", true),
	}

	entries := BestTimes(trainings, 10)

	require.Len(t, entries, 3)
	// Fastest first, soldier ID breaks the 29s tie
	assert.Equal(t, int64(1), entries[0].Training.SoldierID)
	assert.Equal(t, 29, entries[0].Seconds)
	assert.Equal(t, int64(3), entries[1].Training.SoldierID)
	assert.Equal(t, int64(2), entries[2].Training.SoldierID)

	t.Run("limit truncates", func(t *testing.T) {
		assert.Len(t, BestTimes(trainings, 2), 2)
	})

	t.Run("soldiers with only invalid readings are absent", func(t *testing.T) {
		entries := BestTimes([]entity.TourniquetTraining{drill(9, 5, "fast", true)}, 10)
		assert.Empty(t, entries)
	})
}

func TestSummarizeTourniquet(t *testing.T) {
	alpha := entity.Soldier{ID: 1, Team: "alpha"}
	bravo := entity.Soldier{ID: 2, Team: "bravo"}

	t1 := drill(1, 10, "30", true)
	t1.Soldier = alpha
	t2 := drill(1, 40, "40", false)
	t2.Soldier = alpha
	t3 := drill(2, 5, "20", true)
	t3.Soldier = bravo

	summary := SummarizeTourniquet([]entity.TourniquetTraining{t1, t2, t3}, testNow, 5)

	assert.Equal(t, 3, summary.TotalTrainings)
	assert.InDelta(t, 30.0, summary.AverageTime, 0.01)
	assert.InDelta(t, 66.67, summary.PassRate, 0.01)

	require.Contains(t, summary.TeamPerformance, "alpha")
	assert.InDelta(t, 35.0, summary.TeamPerformance["alpha"].AverageTime, 0.01)
	assert.Equal(t, 50.0, summary.TeamPerformance["alpha"].PassRate)
	assert.Equal(t, 100.0, summary.TeamPerformance["bravo"].PassRate)

	// July and August have drills, the empty months are omitted
	require.Len(t, summary.MonthlyProgress, 2)
	assert.Equal(t, "07/2025", summary.MonthlyProgress[0].Month)
	assert.Equal(t, "08/2025", summary.MonthlyProgress[1].Month)
}

func TestSummarizeMedicTrainings(t *testing.T) {
	trainings := []entity.MedicTraining{
		{TrainingType: entity.MedicTrainingCPR, PerformanceRating: 4},
		{TrainingType: entity.MedicTrainingCPR, PerformanceRating: 2},
		{TrainingType: entity.MedicTrainingAirway, PerformanceRating: 5},
	}

	summary := SummarizeMedicTrainings(trainings)

	assert.Equal(t, 3, summary.TotalTrainings)
	assert.InDelta(t, 3.67, summary.AverageRating, 0.01)
	assert.Equal(t, 2, summary.ByTrainingType["cpr"].Count)
	assert.InDelta(t, 3.0, summary.ByTrainingType["cpr"].AverageRating, 0.01)
	assert.Equal(t, 1, summary.ByTrainingType["airway"].Count)
}

func TestOverview(t *testing.T) {
	alpha := entity.Soldier{ID: 1, Team: "alpha"}

	teamTrainings := []entity.TeamTraining{
		{Team: "alpha", Date: testNow.AddDate(0, 0, -3), PerformanceRating: 4},
	}
	tourniquet := drill(1, 10, "30", true)
	tourniquet.Soldier = alpha
	medicTrainings := []entity.MedicTraining{
		{TrainingDate: testNow.AddDate(0, 0, -5), TrainingType: entity.MedicTrainingCPR, PerformanceRating: 3, Medic: entity.Medic{Team: "bravo"}},
	}

	overview := Overview(teamTrainings, []entity.TourniquetTraining{tourniquet}, medicTrainings, testNow)

	assert.Equal(t, 3, overview.TotalTrainings)
	assert.Equal(t, 2, overview.TrainingsByTeam["alpha"])
	assert.Equal(t, 1, overview.TrainingsByTeam["bravo"])

	// Everything happened this month; zero months are omitted
	require.Len(t, overview.TrainingsByMonth, 1)
	month := overview.TrainingsByMonth[0]
	assert.Equal(t, "08/2025", month.Month)
	assert.Equal(t, 3, month.Total)
	assert.Equal(t, 1, month.Team)
	assert.Equal(t, 1, month.Tourniquet)
	assert.Equal(t, 1, month.Medic)
}

func TestMedicStats(t *testing.T) {
	trainings := []entity.MedicTraining{
		{TrainingDate: testNow.AddDate(0, 0, -40), TrainingType: entity.MedicTrainingCPR, PerformanceRating: 2, Attendance: true},
		{TrainingDate: testNow.AddDate(0, 0, -2), TrainingType: entity.MedicTrainingAirway, PerformanceRating: 5, Attendance: false},
	}

	stats := MedicStats(trainings, testNow)

	assert.Equal(t, 2, stats.TotalTrainings)
	assert.InDelta(t, 3.5, stats.AverageRating, 0.01)
	assert.Equal(t, 5, stats.HighestRating)
	assert.Equal(t, 2, stats.LowestRating)
	assert.Equal(t, 50.0, stats.AttendanceRate)
	require.NotNil(t, stats.LastTraining)
	assert.Equal(t, "airway", stats.LastTraining.Type)
	assert.True(t, stats.TrainedThisMonth)

	t.Run("empty history yields zero values", func(t *testing.T) {
		empty := MedicStats(nil, testNow)
		assert.Zero(t, empty.TotalTrainings)
		assert.Nil(t, empty.LastTraining)
	})
}

func TestTeamStats(t *testing.T) {
	trainings := []entity.TeamTraining{
		{Team: "alpha", Date: testNow.AddDate(0, 0, -2), PerformanceRating: 4, Scenario: "mass casualty"},
		{Team: "alpha", Date: testNow.AddDate(0, 0, -40), PerformanceRating: 2, Scenario: "evacuation"},
	}

	stats := TeamStats("alpha", trainings, 12, testNow)

	assert.Equal(t, "alpha", stats.Team)
	assert.Equal(t, 2, stats.TotalTrainings)
	assert.InDelta(t, 3.0, stats.AverageRating, 0.01)
	assert.Equal(t, 12, stats.MembersCount)

	require.Len(t, stats.TrainingsByMonth, 2)
	assert.Equal(t, "07/2025", stats.TrainingsByMonth[0].Month)
	assert.Equal(t, "08/2025", stats.TrainingsByMonth[1].Month)

	// Newest first
	require.Len(t, stats.RecentTrainings, 2)
	assert.Equal(t, "mass casualty", stats.RecentTrainings[0].Scenario)
}
