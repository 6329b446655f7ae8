package handlers

import (
	"net/http"
	"strconv"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type RoutinesHandler struct {
	log *zap.Logger
}

func NewRoutinesHandler(log *zap.Logger) *RoutinesHandler {
	return &RoutinesHandler{log: log}
}

type routineRequest struct {
	Title     string   `json:"title" binding:"required"`
	Subject   string   `json:"subject"`
	Days      []string `json:"days" binding:"required"`
	StartTime string   `json:"start_time" binding:"required"`
	EndTime   string   `json:"end_time" binding:"required"`
	IsActive  *bool    `json:"is_active"`
}

func (h *RoutinesHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req routineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "title, days, start_time and end_time are required")
		return
	}

	routine := &models.Routine{
		UserID:    userID,
		Title:     req.Title,
		Subject:   req.Subject,
		Days:      pq.StringArray(req.Days),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}
	if req.IsActive != nil {
		routine.IsActive = *req.IsActive
	}
	if err := repository.CreateRoutine(c.Request.Context(), routine); err != nil {
		h.log.Error("Failed to create routine", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save routine")
		return
	}
	respondCreated(c, routine)
}

func (h *RoutinesHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	routines, err := repository.GetRoutinesByUser(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list routines", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load routines")
		return
	}
	respondOK(c, routines)
}

func (h *RoutinesHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid routine id")
		return
	}

	var req routineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "title, days, start_time and end_time are required")
		return
	}

	routine := &models.Routine{
		ID:        uint(id),
		UserID:    userID,
		Title:     req.Title,
		Subject:   req.Subject,
		Days:      pq.StringArray(req.Days),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}
	if req.IsActive != nil {
		routine.IsActive = *req.IsActive
	}

	updated, err := repository.UpdateRoutine(c.Request.Context(), routine)
	if err != nil {
		h.log.Error("Failed to update routine", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to update routine")
		return
	}
	if !updated {
		respondError(c, http.StatusNotFound, "routine not found")
		return
	}
	respondOK(c, routine)
}

func (h *RoutinesHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid routine id")
		return
	}
	deleted, err := repository.DeleteRoutine(c.Request.Context(), uint(id), userID)
	if err != nil {
		h.log.Error("Failed to delete routine", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to delete routine")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "routine not found")
		return
	}
	respondMessage(c, "routine deleted")
}
