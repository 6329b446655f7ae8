package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"
	"github.com/LifeofNabin/study-guardian-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoomsHandler struct {
	log *zap.Logger
}

func NewRoomsHandler(log *zap.Logger) *RoomsHandler {
	return &RoomsHandler{log: log}
}

type createRoomRequest struct {
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject"`
}

func (h *RoomsHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "room name is required")
		return
	}

	code, err := utils.GenerateSecureToken(4)
	if err != nil {
		h.log.Error("Failed to generate room code", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	room := &models.Room{
		Code:     strings.ToUpper(strings.TrimRight(code, "=")),
		Name:     req.Name,
		Subject:  req.Subject,
		HostID:   userID,
		IsActive: true,
	}
	if err := repository.CreateRoom(c.Request.Context(), room); err != nil {
		h.log.Error("Failed to create room", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	respondCreated(c, room)
}

func (h *RoomsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	rooms, err := repository.GetRoomsByHost(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list rooms", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	respondOK(c, rooms)
}

// Get resolves a room by its join code. Any authenticated student may look
// up a room to join it.
func (h *RoomsHandler) Get(c *gin.Context) {
	room, err := repository.GetRoomByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, http.StatusNotFound, "room not found")
		return
	}
	respondOK(c, room)
}

// Join starts a study session inside the room identified by the join code.
// The session inherits the room's name and subject.
func (h *RoomsHandler) Join(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	room, err := repository.GetRoomByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, http.StatusNotFound, "room not found")
		return
	}
	if !room.IsActive {
		respondError(c, http.StatusConflict, "room is closed")
		return
	}

	session := &models.StudySession{
		UserID:    userID,
		RoomID:    &room.ID,
		Title:     room.Name,
		Subject:   room.Subject,
		StartTime: time.Now().UTC(),
		IsActive:  true,
	}
	if err := repository.CreateSession(c.Request.Context(), session); err != nil {
		h.log.Error("Failed to join room", zap.Uint("roomID", room.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to join room")
		return
	}
	respondCreated(c, gin.H{"room": room, "session": session})
}

func (h *RoomsHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	deleted, err := repository.DeleteRoom(c.Request.Context(), uint(id), userID)
	if err != nil {
		h.log.Error("Failed to delete room", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "room not found")
		return
	}
	respondMessage(c, "room deleted")
}
