package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastNMonths(t *testing.T) {
	t.Run("returns months oldest first including current", func(t *testing.T) {
		now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		buckets := LastNMonths(now, 3)

		assert.Len(t, buckets, 3)
		assert.Equal(t, "2025-04", buckets[0].Key)
		assert.Equal(t, "2025-05", buckets[1].Key)
		assert.Equal(t, "2025-06", buckets[2].Key)
		assert.Equal(t, "06/2025", buckets[2].Display)
	})

	t.Run("rolls over a year boundary", func(t *testing.T) {
		now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		buckets := LastNMonths(now, 3)

		assert.Equal(t, "2024-11", buckets[0].Key)
		assert.Equal(t, "2024-12", buckets[1].Key)
		assert.Equal(t, "2025-01", buckets[2].Key)
	})

	t.Run("empty for non-positive n", func(t *testing.T) {
		assert.Nil(t, LastNMonths(time.Now(), 0))
		assert.Nil(t, LastNMonths(time.Now(), -1))
	})
}

func TestMonthBucketContains(t *testing.T) {
	now := time.Date(2025, time.March, 20, 8, 30, 0, 0, time.UTC)
	bucket := LastNMonths(now, 1)[0]

	assert.True(t, bucket.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bucket.Contains(time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, bucket.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, bucket.Contains(time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)))
}

func TestStartOfNextMonth(t *testing.T) {
	t.Run("normalizes December into January", func(t *testing.T) {
		dec := time.Date(2024, time.December, 25, 10, 0, 0, 0, time.UTC)
		next := StartOfNextMonth(dec)

		assert.Equal(t, 2025, next.Year())
		assert.Equal(t, time.January, next.Month())
		assert.Equal(t, 1, next.Day())
	})
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, time.August, 20, 15, 0, 0, 0, time.UTC)

	t.Run("week is seven days back from midnight", func(t *testing.T) {
		start, bounded := PeriodStart(now, PeriodWeek)
		assert.True(t, bounded)
		assert.Equal(t, time.Date(2025, time.August, 13, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("month starts on the first", func(t *testing.T) {
		start, bounded := PeriodStart(now, PeriodMonth)
		assert.True(t, bounded)
		assert.Equal(t, time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("quarter starts on the quarter month", func(t *testing.T) {
		start, bounded := PeriodStart(now, PeriodQuarter)
		assert.True(t, bounded)
		assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("year starts in January", func(t *testing.T) {
		start, bounded := PeriodStart(now, PeriodYear)
		assert.True(t, bounded)
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("all and unknown are unbounded", func(t *testing.T) {
		_, bounded := PeriodStart(now, PeriodAll)
		assert.False(t, bounded)
		_, bounded = PeriodStart(now, Period("bogus"))
		assert.False(t, bounded)
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.May, 3, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.May, 3, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, time.May, 4, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
