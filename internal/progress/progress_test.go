package progress

import (
	"testing"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInclusiveDayCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "ten days", start: "2024-01-01", end: "2024-01-10", want: 10},
		{name: "reversed", start: "2024-01-10", end: "2024-01-01", want: 0},
		{name: "same day", start: "2024-03-05", end: "2024-03-05", want: 1},
		{name: "leap year february", start: "2024-02-01", end: "2024-03-01", want: 30},
		{name: "bad start", start: "yesterday", end: "2024-01-10", want: 0},
		{name: "empty end", start: "2024-01-01", end: "", want: 0},
		{name: "span longer than a duration", start: "0001-01-01", end: "2024-01-01", want: 738886},
		{name: "before epoch", start: "1969-12-31", end: "1970-01-01", want: 2},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, InclusiveDayCount(tt.start, tt.end))
		})
	}
}

func TestElapsedInclusiveAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 10, 23, 59, 0, 0, time.Local)

	assert.Equal(t, 10, ElapsedInclusiveAt("2024-01-01", now))
	assert.Equal(t, 1, ElapsedInclusiveAt("2024-01-10", now))
	assert.Equal(t, 0, ElapsedInclusiveAt("2024-01-11", now))
	assert.Equal(t, 0, ElapsedInclusiveAt("not a date", now))
}

func TestDailyPaceAndTarget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10.0, DailyPace(100, 10))
	assert.Equal(t, 0.0, DailyPace(100, 0))

	assert.Equal(t, 30.0, CumulativeTarget(10, 3, 10))
	assert.Equal(t, 100.0, CumulativeTarget(10, 15, 10))
	assert.Equal(t, 0.0, CumulativeTarget(10, -2, 10))
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, ProgressPercent(50, 0))
	assert.Equal(t, 100.0, ProgressPercent(150, 100))
	assert.Equal(t, 25.0, ProgressPercent(25, 100))
	assert.Equal(t, 0.0, ProgressPercent(-5, 100))
}

func TestCompute(t *testing.T) {
	t.Parallel()

	now := time.Now()
	meta := models.Meta{
		Start: Today(now),
		End:   Today(now.AddDate(0, 0, 9)),
		Goal:  100,
	}

	stats := Compute(meta, 4, now)

	assert.Equal(t, 10, stats.Duration)
	assert.Equal(t, 10.0, stats.DailyPace)
	assert.Equal(t, 1, stats.Elapsed)
	assert.Equal(t, 10.0, stats.CumulativeTarget)
	assert.Equal(t, 10.0, stats.MarkerPercent)
	assert.Equal(t, 4.0, stats.Percent)
	assert.Equal(t, -6, stats.Delta)
}

func TestCompute_NegativeGoal(t *testing.T) {
	t.Parallel()

	stats := Compute(models.Meta{Start: "2024-01-01", End: "2024-01-10", Goal: -3}, 7, time.Now())

	assert.Equal(t, 0.0, stats.DailyPace)
	assert.Equal(t, 0.0, stats.Percent)
	assert.Equal(t, 0.0, stats.MarkerPercent)
	assert.Equal(t, 7, stats.Delta)
}
