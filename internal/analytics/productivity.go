package analytics

import (
	"math"
	"time"
)

// PeriodStats is the cross-session input to the productivity score: totals
// for one user over the requested window, as read from the store.
type PeriodStats struct {
	Days            int     // window length in days, >= 1
	SessionCount    int     // completed sessions in the window
	TotalMinutes    float64 // study minutes in the window
	AvgEngagement   float64 // mean snapshot engagement score [0,100]
	PresenceRate    float64 // mean presence rate [0,100]
	DistractionRate float64 // distraction samples per 100 samples
	Highlights      int
	Annotations     int
}

// ProductivityComponents are the six normalized [0,100] sub-scores.
type ProductivityComponents struct {
	Frequency  float64 `json:"session_frequency"`
	TimeOnTask float64 `json:"time_on_task"`
	Engagement float64 `json:"engagement"`
	Presence   float64 `json:"presence"`
	Focus      float64 `json:"focus"`
	Activity   float64 `json:"activity"`
}

// Component weights; they sum to 1.
const (
	weightFrequency  = 0.15
	weightTimeOnTask = 0.20
	weightEngagement = 0.25
	weightPresence   = 0.15
	weightFocus      = 0.15
	weightActivity   = 0.10
)

// Normalization targets per day.
const (
	targetSessionsPerDay   = 1.0
	targetMinutesPerDay    = 120.0
	targetActivitiesPerDay = 10.0
)

// ProductivityScore blends the six components into one [0,100] score and a
// letter grade.
func ProductivityScore(stats PeriodStats) (int, string, ProductivityComponents) {
	days := float64(stats.Days)
	if days < 1 {
		days = 1
	}

	c := ProductivityComponents{
		Frequency:  capScore(100 * float64(stats.SessionCount) / days / targetSessionsPerDay),
		TimeOnTask: capScore(100 * stats.TotalMinutes / days / targetMinutesPerDay),
		Engagement: capScore(stats.AvgEngagement),
		Presence:   capScore(stats.PresenceRate),
		Focus:      capScore(100 - stats.DistractionRate),
		Activity:   capScore(100 * float64(stats.Highlights+stats.Annotations) / days / targetActivitiesPerDay),
	}

	score := c.Frequency*weightFrequency +
		c.TimeOnTask*weightTimeOnTask +
		c.Engagement*weightEngagement +
		c.Presence*weightPresence +
		c.Focus*weightFocus +
		c.Activity*weightActivity

	rounded := ClampScore(math.Round(score))
	return rounded, Grade(rounded), c
}

// Grade maps a productivity score to a letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}

func capScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// DayStreak counts consecutive calendar days with at least one completed
// session, walking backward from today. A gap ends the walk; if the most
// recent study day is more than one day before today the streak is 0.
func DayStreak(studyDates []time.Time, today time.Time) int {
	if len(studyDates) == 0 {
		return 0
	}

	days := make(map[string]bool, len(studyDates))
	for _, d := range studyDates {
		days[d.Format("2006-01-02")] = true
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if !days[day.Format("2006-01-02")] {
		// No session today yet: a streak may still be alive through
		// yesterday, but anything older is already broken.
		day = day.AddDate(0, 0, -1)
		if !days[day.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
