package repository

import (
	"context"

	"github.com/LifeofNabin/study-guardian-backend/internal/database"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

func SaveSample(ctx context.Context, sample *models.Sample) error {
	return database.DB.WithContext(ctx).Create(sample).Error
}

// SaveSamples appends a batch in one insert. Each sample is an independent
// append, so concurrent batches for the same session need no locking.
func SaveSamples(ctx context.Context, samples []models.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	return database.DB.WithContext(ctx).Create(&samples).Error
}

// GetSamplesBySession returns a session's samples ordered by their
// caller-supplied timestamps. Arrival order is meaningless; out-of-order
// submission is expected and tolerated.
func GetSamplesBySession(ctx context.Context, sessionID uint) ([]models.Sample, error) {
	var samples []models.Sample
	err := database.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order(`"timestamp" ASC`).
		Find(&samples).Error
	return samples, err
}

func CountSamplesBySession(ctx context.Context, sessionID uint) (int64, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Sample{}).
		Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}
