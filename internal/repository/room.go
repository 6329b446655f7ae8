package repository

import (
	"context"

	"github.com/LifeofNabin/study-guardian-backend/internal/database"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

func CreateRoom(ctx context.Context, room *models.Room) error {
	return database.DB.WithContext(ctx).Create(room).Error
}

func GetRoomByCode(ctx context.Context, code string) (*models.Room, error) {
	var room models.Room
	result := database.DB.WithContext(ctx).First(&room, "code = ?", code)
	return &room, result.Error
}

func GetRoomsByHost(ctx context.Context, hostID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := database.DB.WithContext(ctx).Where("host_id = ?", hostID).Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

func DeleteRoom(ctx context.Context, roomID, hostID uint) (bool, error) {
	result := database.DB.WithContext(ctx).Where("id = ? AND host_id = ?", roomID, hostID).Delete(&models.Room{})
	return result.RowsAffected > 0, result.Error
}
