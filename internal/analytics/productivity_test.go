package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductivityScoreZeroStats(t *testing.T) {
	// With no activity only Focus is perfect (no distractions recorded),
	// contributing its 0.15 weight.
	score, grade, components := ProductivityScore(PeriodStats{Days: 30})

	assert.Equal(t, 15, score)
	assert.Equal(t, "D", grade)
	assert.Equal(t, float64(100), components.Focus)
	assert.Equal(t, float64(0), components.Frequency)
	assert.Equal(t, float64(0), components.Engagement)
}

func TestProductivityScoreMaxedStats(t *testing.T) {
	stats := PeriodStats{
		Days:            7,
		SessionCount:    7,
		TotalMinutes:    7 * 120,
		AvgEngagement:   100,
		PresenceRate:    100,
		DistractionRate: 0,
		Highlights:      50,
		Annotations:     20,
	}

	score, grade, components := ProductivityScore(stats)

	assert.Equal(t, 100, score)
	assert.Equal(t, "A+", grade)
	assert.Equal(t, float64(100), components.Activity)
}

func TestProductivityScoreComponentsCapped(t *testing.T) {
	// Overshooting a daily target never pushes a component past 100.
	stats := PeriodStats{
		Days:         1,
		SessionCount: 10,
		TotalMinutes: 1000,
	}

	_, _, components := ProductivityScore(stats)

	assert.Equal(t, float64(100), components.Frequency)
	assert.Equal(t, float64(100), components.TimeOnTask)
}

func TestProductivityScoreZeroDaysTreatedAsOne(t *testing.T) {
	stats := PeriodStats{Days: 0, SessionCount: 1, TotalMinutes: 120}

	_, _, components := ProductivityScore(stats)

	assert.Equal(t, float64(100), components.Frequency)
	assert.Equal(t, float64(100), components.TimeOnTask)
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89, "A"},
		{85, "A"},
		{84, "A-"},
		{80, "A-"},
		{79, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59, "D"},
		{0, "D"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.score), "score %d", tt.score)
	}
}

func TestDayStreak(t *testing.T) {
	today := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty", nil, 0},
		{"today only", []time.Time{day(0)}, 1},
		{"three days through today", []time.Time{day(0), day(-1), day(-2)}, 3},
		{"alive through yesterday", []time.Time{day(-1), day(-2)}, 2},
		{"gap breaks the streak", []time.Time{day(0), day(-2)}, 1},
		{"stale history", []time.Time{day(-2), day(-3)}, 0},
		{"duplicate days collapse", []time.Time{day(0), day(0), day(-1)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayStreak(tt.dates, today))
		})
	}
}
