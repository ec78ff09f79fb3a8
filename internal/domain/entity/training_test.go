package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTourniquetTrainingIsCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

	drill := func(date time.Time) *TourniquetTraining {
		return &TourniquetTraining{TrainingDate: date}
	}

	assert.True(t, drill(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)).IsCurrentMonth(now))
	assert.True(t, drill(time.Date(2025, time.August, 31, 23, 59, 0, 0, time.UTC)).IsCurrentMonth(now))
	assert.False(t, drill(time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC)).IsCurrentMonth(now))
	assert.False(t, drill(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)).IsCurrentMonth(now))
	// Same month number a year apart is a different calendar month
	assert.False(t, drill(time.Date(2024, time.August, 20, 0, 0, 0, 0, time.UTC)).IsCurrentMonth(now))
}

func TestMedicTrainingIsCurrentMonth(t *testing.T) {
	newYear := time.Date(2026, time.January, 2, 9, 0, 0, 0, time.UTC)

	december := &MedicTraining{TrainingDate: time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC)}
	january := &MedicTraining{TrainingDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}

	assert.False(t, december.IsCurrentMonth(newYear))
	assert.True(t, january.IsCurrentMonth(newYear))
}
