package repository

import (
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/database"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

// GetUsersForStudyReminder finds users who have reminders enabled for a
// specific UTC wall-clock time.
func GetUsersForStudyReminder(reminderTime string) ([]models.User, error) {
	var users []models.User
	err := database.DB.Where("email_notifications_enabled = ? AND reminder_time = ?", true, reminderTime).Find(&users).Error
	return users, err
}

// HasStudiedToday checks if a user has completed a session on the current day.
func HasStudiedToday(userID uint) (bool, error) {
	var count int64
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	err := database.DB.Model(&models.StudySession{}).
		Where("user_id = ? AND is_active = ? AND start_time >= ? AND start_time < ?", userID, false, today, tomorrow).
		Count(&count).Error

	return count > 0, err
}

// UpdateNotificationPreferences updates a user's reminder settings.
func UpdateNotificationPreferences(userID uint, enabled bool, reminderTime, timezone string) error {
	return database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"email_notifications_enabled": enabled,
		"reminder_time":               reminderTime,
		"time_zone":                   timezone,
	}).Error
}
