package repository

import (
	"context"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/database"
)

// DailyRollup is one calendar day of a user's study activity.
type DailyRollup struct {
	Day           time.Time `json:"day"`
	Sessions      int       `json:"sessions"`
	TotalSeconds  int       `json:"total_seconds"`
	AvgEngagement float64   `json:"avg_engagement"`
}

// GetStudyDates returns the distinct calendar days on which the user has at
// least one completed session, newest first. Feeds the day-streak walk.
func GetStudyDates(ctx context.Context, userID uint, since time.Time) ([]time.Time, error) {
	var rows []struct {
		Day time.Time
	}
	query := `
		SELECT DISTINCT date_trunc('day', start_time) AS day
		FROM study_sessions
		WHERE user_id = ? AND is_active = false AND start_time >= ?
		ORDER BY day DESC
	`
	if err := database.DB.WithContext(ctx).Raw(query, userID, since).Scan(&rows).Error; err != nil {
		return nil, err
	}
	dates := make([]time.Time, 0, len(rows))
	for _, r := range rows {
		dates = append(dates, r.Day)
	}
	return dates, nil
}

// GetPeriodStats gathers the cross-session totals that feed the
// productivity score for one user over [start, end).
func GetPeriodStats(ctx context.Context, userID uint, start, end time.Time, days int) (analytics.PeriodStats, error) {
	stats := analytics.PeriodStats{Days: days}

	var sessionAgg struct {
		Sessions      int
		TotalSeconds  float64
		AvgEngagement float64
	}
	sessionQuery := `
		SELECT
			COUNT(*) AS sessions,
			COALESCE(SUM(duration_seconds), 0) AS total_seconds,
			COALESCE(AVG(engagement_score), 0) AS avg_engagement
		FROM study_sessions
		WHERE user_id = ? AND is_active = false AND start_time >= ? AND start_time < ?
	`
	if err := database.DB.WithContext(ctx).Raw(sessionQuery, userID, start, end).Scan(&sessionAgg).Error; err != nil {
		return stats, err
	}
	stats.SessionCount = sessionAgg.Sessions
	stats.TotalMinutes = sessionAgg.TotalSeconds / 60
	stats.AvgEngagement = sessionAgg.AvgEngagement

	var sampleAgg struct {
		Total       int64
		Present     int64
		Distraction int64
	}
	sampleQuery := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE sa.presence_detected) AS present,
			COUNT(*) FILTER (WHERE sa.distraction_detected) AS distraction
		FROM samples sa
		JOIN study_sessions ss ON sa.session_id = ss.id
		WHERE ss.user_id = ? AND ss.start_time >= ? AND ss.start_time < ?
	`
	if err := database.DB.WithContext(ctx).Raw(sampleQuery, userID, start, end).Scan(&sampleAgg).Error; err != nil {
		return stats, err
	}
	if sampleAgg.Total > 0 {
		stats.PresenceRate = 100 * float64(sampleAgg.Present) / float64(sampleAgg.Total)
		stats.DistractionRate = 100 * float64(sampleAgg.Distraction) / float64(sampleAgg.Total)
	}

	var activity struct {
		Highlights  int
		Annotations int
	}
	activityQuery := `
		SELECT
			(SELECT COUNT(*) FROM highlights WHERE user_id = ? AND created_at >= ? AND created_at < ?) AS highlights,
			(SELECT COUNT(*) FROM annotations WHERE user_id = ? AND created_at >= ? AND created_at < ?) AS annotations
	`
	if err := database.DB.WithContext(ctx).Raw(activityQuery, userID, start, end, userID, start, end).Scan(&activity).Error; err != nil {
		return stats, err
	}
	stats.Highlights = activity.Highlights
	stats.Annotations = activity.Annotations

	return stats, nil
}

// GetTotalSeconds sums completed-session study time in [start, end).
func GetTotalSeconds(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	var total int64
	query := `
		SELECT COALESCE(SUM(duration_seconds), 0)
		FROM study_sessions
		WHERE user_id = ? AND is_active = false AND start_time >= ? AND start_time < ?
	`
	err := database.DB.WithContext(ctx).Raw(query, userID, start, end).Scan(&total).Error
	return total, err
}

// GetDailyRollup buckets a user's completed sessions per calendar day.
func GetDailyRollup(ctx context.Context, userID uint, since time.Time) ([]DailyRollup, error) {
	var rollup []DailyRollup
	query := `
		SELECT
			date_trunc('day', start_time) AS day,
			COUNT(*) AS sessions,
			COALESCE(SUM(duration_seconds), 0) AS total_seconds,
			COALESCE(AVG(engagement_score), 0) AS avg_engagement
		FROM study_sessions
		WHERE user_id = ? AND is_active = false AND start_time >= ?
		GROUP BY day
		ORDER BY day ASC
	`
	err := database.DB.WithContext(ctx).Raw(query, userID, since).Scan(&rollup).Error
	return rollup, err
}

// CountCompletedSessions counts completed sessions in [start, end).
func CountCompletedSessions(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM study_sessions
		WHERE user_id = ? AND is_active = false AND start_time >= ? AND start_time < ?
	`
	err := database.DB.WithContext(ctx).Raw(query, userID, start, end).Scan(&count).Error
	return count, err
}

// GetAvgEngagement averages snapshot engagement over completed sessions in
// [start, end). Returns 0 with no data; "no data yet" is not an error.
func GetAvgEngagement(ctx context.Context, userID uint, start, end time.Time) (float64, error) {
	var avg float64
	query := `
		SELECT COALESCE(AVG(engagement_score), 0)
		FROM study_sessions
		WHERE user_id = ? AND is_active = false AND start_time >= ? AND start_time < ?
	`
	err := database.DB.WithContext(ctx).Raw(query, userID, start, end).Scan(&avg).Error
	return avg, err
}
