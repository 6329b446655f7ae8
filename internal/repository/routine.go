package repository

import (
	"context"

	"github.com/LifeofNabin/study-guardian-backend/internal/database"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

func CreateRoutine(ctx context.Context, routine *models.Routine) error {
	return database.DB.WithContext(ctx).Create(routine).Error
}

func GetRoutinesByUser(ctx context.Context, userID uint) ([]models.Routine, error) {
	var routines []models.Routine
	err := database.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&routines).Error
	return routines, err
}

func UpdateRoutine(ctx context.Context, routine *models.Routine) (bool, error) {
	result := database.DB.WithContext(ctx).Model(&models.Routine{}).
		Where("id = ? AND user_id = ?", routine.ID, routine.UserID).
		Updates(map[string]interface{}{
			"title":      routine.Title,
			"subject":    routine.Subject,
			"days":       routine.Days,
			"start_time": routine.StartTime,
			"end_time":   routine.EndTime,
			"is_active":  routine.IsActive,
		})
	return result.RowsAffected > 0, result.Error
}

func DeleteRoutine(ctx context.Context, routineID, userID uint) (bool, error) {
	result := database.DB.WithContext(ctx).Where("id = ? AND user_id = ?", routineID, userID).Delete(&models.Routine{})
	return result.RowsAffected > 0, result.Error
}
