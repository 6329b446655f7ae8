package services

import (
	"context"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"
)

// FinalMetrics is everything computed when a session ends.
type FinalMetrics struct {
	DurationSeconds int
	Summary         analytics.Summary
	TotalHighlights int
	PageTime        map[string]float64
}

// FinalizeSession computes the final metrics snapshot for a session whose
// end has just been claimed, and writes it back onto the session record.
// Callers must hold the end claim (the is_active compare-and-swap) before
// calling; the snapshot is written exactly once per session.
func FinalizeSession(ctx context.Context, session *models.StudySession, endTime time.Time, weights analytics.Weights) (FinalMetrics, error) {
	duration := int(endTime.Sub(session.StartTime).Seconds())

	samples, err := repository.GetSamplesBySession(ctx, session.ID)
	if err != nil {
		return FinalMetrics{}, err
	}
	interactions, err := repository.GetInteractionsBySession(ctx, session.ID)
	if err != nil {
		return FinalMetrics{}, err
	}

	final := FinalMetrics{
		DurationSeconds: duration,
		Summary:         analytics.Aggregate(samples, weights),
		TotalHighlights: analytics.CountHighlights(interactions),
		PageTime:        analytics.PageTime(interactions),
	}

	err = repository.WriteSessionSnapshot(ctx, session.ID, duration, final.Summary, final.TotalHighlights, final.PageTime)
	return final, err
}
