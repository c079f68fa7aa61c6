// Package progress holds the pacing arithmetic behind the dashboard. None of the
// functions fail: malformed input yields zero.
package progress

import (
	"math"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
)

const secondsPerDay = 24 * 60 * 60

// ParseDate reads a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today formats the local calendar date of now as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.Format(time.DateOnly)
}

// InclusiveDayCount counts calendar days from start to end, both included.
func InclusiveDayCount(start, end string) int {
	a, ok := ParseDate(start)
	if !ok {
		return 0
	}
	b, ok := ParseDate(end)
	if !ok {
		return 0
	}

	days := dayNumber(b) - dayNumber(a) + 1
	if days <= 0 {
		return 0
	}
	return days
}

// ElapsedInclusive counts calendar days from start to today, both included.
func ElapsedInclusive(start string) int {
	return ElapsedInclusiveAt(start, time.Now())
}

// ElapsedInclusiveAt is ElapsedInclusive with an explicit clock. The result is
// zero or negative when start lies in the future.
func ElapsedInclusiveAt(start string, now time.Time) int {
	s, ok := ParseDate(start)
	if !ok {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dayNumber(today) - dayNumber(s) + 1
}

// dayNumber is the count of days since the Unix epoch for a UTC midnight.
// time.Duration overflows past about 292 years, so spans are not taken with Sub.
func dayNumber(t time.Time) int {
	secs := t.Unix()
	n := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		n--
	}
	return int(n)
}

func DailyPace(goal, durationDays int) float64 {
	if durationDays <= 0 {
		return 0
	}
	return float64(goal) / float64(durationDays)
}

// CumulativeTarget is the number of sentences expected after elapsed days.
func CumulativeTarget(dailyPace float64, elapsed, duration int) float64 {
	return dailyPace * float64(clamp(elapsed, 0, duration))
}

func ProgressPercent(completed, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Max(0, math.Min(100, 100*float64(completed)/float64(goal)))
}

// Compute derives every dashboard figure for a campaign with completed sentences.
func Compute(meta models.Meta, completed int, now time.Time) models.Stats {
	goal := meta.Goal
	if goal < 0 {
		goal = 0
	}

	duration := InclusiveDayCount(meta.Start, meta.End)
	pace := DailyPace(goal, duration)
	elapsed := clamp(ElapsedInclusiveAt(meta.Start, now), 0, duration)
	target := CumulativeTarget(pace, elapsed, duration)

	var marker float64
	if goal > 0 {
		marker = math.Max(0, math.Min(100, target/float64(goal)*100))
	}

	return models.Stats{
		Duration:         duration,
		DailyPace:        pace,
		Count:            completed,
		Percent:          ProgressPercent(completed, goal),
		Elapsed:          elapsed,
		CumulativeTarget: target,
		MarkerPercent:    marker,
		Delta:            completed - int(math.Round(target)),
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
