package repository

import (
	"context"

	"github.com/LifeofNabin/study-guardian-backend/internal/database"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

func CreateHighlight(ctx context.Context, highlight *models.Highlight) error {
	return database.DB.WithContext(ctx).Create(highlight).Error
}

func GetHighlightsBySession(ctx context.Context, sessionID uint) ([]models.Highlight, error) {
	var highlights []models.Highlight
	err := database.DB.WithContext(ctx).Where("session_id = ?", sessionID).Order("created_at ASC").Find(&highlights).Error
	return highlights, err
}

func DeleteHighlight(ctx context.Context, highlightID, userID uint) (bool, error) {
	result := database.DB.WithContext(ctx).Where("id = ? AND user_id = ?", highlightID, userID).Delete(&models.Highlight{})
	return result.RowsAffected > 0, result.Error
}

func CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	return database.DB.WithContext(ctx).Create(annotation).Error
}

func GetAnnotationsBySession(ctx context.Context, sessionID uint) ([]models.Annotation, error) {
	var annotations []models.Annotation
	err := database.DB.WithContext(ctx).Where("session_id = ?", sessionID).Order("created_at ASC").Find(&annotations).Error
	return annotations, err
}

func DeleteAnnotation(ctx context.Context, annotationID, userID uint) (bool, error) {
	result := database.DB.WithContext(ctx).Where("id = ? AND user_id = ?", annotationID, userID).Delete(&models.Annotation{})
	return result.RowsAffected > 0, result.Error
}
