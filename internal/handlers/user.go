package handlers

import (
	"net/http"

	"github.com/LifeofNabin/study-guardian-backend/internal/repository"
	"github.com/LifeofNabin/study-guardian-backend/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	log *zap.Logger
}

func NewUserHandler(log *zap.Logger) *UserHandler {
	return &UserHandler{log: log}
}

type updateInfoRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *UserHandler) UpdateInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid profile payload")
		return
	}

	if err := repository.UpdateUser(c.Request.Context(), userID, req.FirstName, req.LastName); err != nil {
		h.log.Error("Failed to update user info", zap.Uint("userID", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	respondMessage(c, "profile updated")
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "current and new passwords are required")
		return
	}

	user, err := repository.GetUserByID(c.Request.Context(), userID)
	if err != nil || !repository.CheckPassword(user, req.CurrentPassword) {
		respondError(c, http.StatusUnauthorized, "current password is incorrect")
		return
	}
	if !utils.IsComplexPassword(req.NewPassword) {
		respondError(c, http.StatusBadRequest, "password must be at least 8 characters with upper, lower, number and symbol")
		return
	}

	if err := repository.UpdateUserPassword(c.Request.Context(), userID, req.NewPassword); err != nil {
		h.log.Error("Failed to update password", zap.Uint("userID", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to update password")
		return
	}
	respondMessage(c, "password updated")
}

type notificationPrefsRequest struct {
	Enabled      bool   `json:"enabled"`
	ReminderTime string `json:"reminder_time"`
	TimeZone     string `json:"time_zone"`
}

func (h *UserHandler) UpdateNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req notificationPrefsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid notification payload")
		return
	}

	if err := repository.UpdateNotificationPreferences(userID, req.Enabled, req.ReminderTime, req.TimeZone); err != nil {
		h.log.Error("Failed to update notification preferences", zap.Uint("userID", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to update notifications")
		return
	}
	respondMessage(c, "notification preferences updated")
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := repository.DeleteUser(c.Request.Context(), userID); err != nil {
		h.log.Error("Failed to delete account", zap.Uint("userID", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to delete account")
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	session.Save()

	respondMessage(c, "account deleted")
}
