package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/database"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

func CreateSession(ctx context.Context, session *models.StudySession) error {
	return database.DB.WithContext(ctx).Create(session).Error
}

func GetSessionByID(ctx context.Context, sessionID uint) (*models.StudySession, error) {
	var session models.StudySession
	result := database.DB.WithContext(ctx).First(&session, sessionID)
	return &session, result.Error
}

// GetOwnedSession loads a session only if it belongs to the given user.
// Ownership mismatch surfaces as gorm.ErrRecordNotFound so handlers cannot
// leak whether the session exists.
func GetOwnedSession(ctx context.Context, sessionID, userID uint) (*models.StudySession, error) {
	var session models.StudySession
	result := database.DB.WithContext(ctx).First(&session, "id = ? AND user_id = ?", sessionID, userID)
	return &session, result.Error
}

func GetSessionsByUser(ctx context.Context, userID uint, limit int) ([]models.StudySession, error) {
	var sessions []models.StudySession
	q := database.DB.WithContext(ctx).Where("user_id = ?", userID).Order("start_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&sessions).Error
	return sessions, err
}

// ClaimSessionEnd is the compare-and-swap that makes session termination
// happen at most once: only the caller that flips is_active gets true back,
// and only that caller may compute and write the metrics snapshot.
func ClaimSessionEnd(ctx context.Context, sessionID, userID uint, endTime time.Time) (bool, error) {
	result := database.DB.WithContext(ctx).Model(&models.StudySession{}).
		Where("id = ? AND user_id = ? AND is_active = ?", sessionID, userID, true).
		Updates(map[string]interface{}{
			"is_active": false,
			"end_time":  endTime,
		})
	return result.RowsAffected == 1, result.Error
}

// WriteSessionSnapshot persists the final metrics computed at session end.
func WriteSessionSnapshot(ctx context.Context, sessionID uint, durationSeconds int, summary analytics.Summary, totalHighlights int, pageTime map[string]float64) error {
	pageJSON, err := json.Marshal(pageTime)
	if err != nil {
		return err
	}
	return database.DB.WithContext(ctx).Model(&models.StudySession{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"duration_seconds":  durationSeconds,
			"engagement_score":  summary.EngagementScore,
			"attention_rate":    summary.AttentionRate,
			"avg_posture_score": summary.AvgPostureScore,
			"avg_blink_rate":    summary.AvgBlinkRate,
			"distraction_count": summary.DistractionCount,
			"total_samples":     summary.TotalSamples,
			"total_highlights":  totalHighlights,
			"pages_visited":     len(pageTime),
			"page_time":         pageJSON,
		}).Error
}

// DeleteSessionCascade removes a session together with its samples,
// interactions, highlights and annotations. The schema does not enforce the
// cascade referentially, so it happens here.
func DeleteSessionCascade(ctx context.Context, sessionID uint) error {
	db := database.DB.WithContext(ctx)
	if err := db.Where("session_id = ?", sessionID).Delete(&models.Sample{}).Error; err != nil {
		return err
	}
	if err := db.Where("session_id = ?", sessionID).Delete(&models.Interaction{}).Error; err != nil {
		return err
	}
	if err := db.Where("session_id = ?", sessionID).Delete(&models.Annotation{}).Error; err != nil {
		return err
	}
	if err := db.Where("session_id = ?", sessionID).Delete(&models.Highlight{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.StudySession{}, sessionID).Error
}

func CreateInteraction(ctx context.Context, interaction *models.Interaction) error {
	return database.DB.WithContext(ctx).Create(interaction).Error
}

func GetInteractionsBySession(ctx context.Context, sessionID uint) ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := database.DB.WithContext(ctx).Where("session_id = ?", sessionID).Order("timestamp ASC").Find(&interactions).Error
	return interactions, err
}

// GetStaleActiveSessions returns sessions that have been active longer than
// the given cutoff; the scheduler force-ends them.
func GetStaleActiveSessions(ctx context.Context, olderThan time.Time) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := database.DB.WithContext(ctx).
		Where("is_active = ? AND start_time < ?", true, olderThan).
		Find(&sessions).Error
	return sessions, err
}
