package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"
	"github.com/LifeofNabin/study-guardian-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SessionsHandler struct {
	log     *zap.Logger
	weights analytics.Weights
	summary *services.SummaryService
}

func NewSessionsHandler(log *zap.Logger, weights analytics.Weights, summary *services.SummaryService) *SessionsHandler {
	return &SessionsHandler{log: log, weights: weights, summary: summary}
}

type startSessionRequest struct {
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	RoomCode string `json:"room_code"`
}

func (h *SessionsHandler) Start(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid session payload")
		return
	}

	session := &models.StudySession{
		UserID:    userID,
		Title:     req.Title,
		Subject:   req.Subject,
		StartTime: time.Now().UTC(),
		IsActive:  true,
	}

	if req.RoomCode != "" {
		room, err := repository.GetRoomByCode(c.Request.Context(), req.RoomCode)
		if err != nil {
			respondError(c, http.StatusNotFound, "room not found")
			return
		}
		session.RoomID = &room.ID
	}

	if err := repository.CreateSession(c.Request.Context(), session); err != nil {
		h.log.Error("Failed to create session", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to start session")
		return
	}

	respondCreated(c, session)
}

func (h *SessionsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	sessions, err := repository.GetSessionsByUser(c.Request.Context(), userID, limit)
	if err != nil {
		h.log.Error("Failed to list sessions", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load sessions")
		return
	}
	respondOK(c, sessions)
}

func (h *SessionsHandler) Get(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}
	respondOK(c, session)
}

// End terminates a session. The is_active flip is a conditional update, so
// exactly one of any concurrent end calls wins; only the winner aggregates
// the sample set and writes the metrics snapshot.
func (h *SessionsHandler) End(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}

	endTime := time.Now().UTC()
	claimed, err := repository.ClaimSessionEnd(c.Request.Context(), session.ID, session.UserID, endTime)
	if err != nil {
		h.log.Error("Failed to end session", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to end session")
		return
	}
	if !claimed {
		respondError(c, http.StatusConflict, "session already ended")
		return
	}

	final, err := services.FinalizeSession(c.Request.Context(), session, endTime, h.weights)
	if err != nil {
		h.log.Error("Failed to finalize session", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save session metrics")
		return
	}

	// The recap text is best-effort and never blocks the response.
	text := h.summary.Compose(session, final.DurationSeconds, final.Summary, final.TotalHighlights, len(final.PageTime))

	respondOK(c, gin.H{
		"session_id":       session.ID,
		"duration_seconds": final.DurationSeconds,
		"metrics":          final.Summary,
		"total_highlights": final.TotalHighlights,
		"pages_visited":    len(final.PageTime),
		"page_time":        final.PageTime,
		"summary":          text,
	})
}

func (h *SessionsHandler) Delete(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}
	if err := repository.DeleteSessionCascade(c.Request.Context(), session.ID); err != nil {
		h.log.Error("Failed to delete session", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to delete session")
		return
	}
	respondMessage(c, "session deleted")
}

type interactionRequest struct {
	Type      string          `json:"type" binding:"required"`
	Page      string          `json:"page"`
	TimeSpent float64         `json:"time_spent"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp float64         `json:"timestamp"`
}

func (h *SessionsHandler) AddInteraction(c *gin.Context) {
	session, ok := h.ownedSession(c)
	if !ok {
		return
	}
	if !session.IsActive {
		respondError(c, http.StatusConflict, "session already ended")
		return
	}

	var req interactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "interaction type is required")
		return
	}
	if req.Timestamp == 0 {
		req.Timestamp = float64(time.Now().UnixMilli())
	}

	interaction := &models.Interaction{
		SessionID: session.ID,
		Type:      req.Type,
		Page:      req.Page,
		TimeSpent: req.TimeSpent,
		Payload:   req.Payload,
		Timestamp: req.Timestamp,
	}
	if err := repository.CreateInteraction(c.Request.Context(), interaction); err != nil {
		h.log.Error("Failed to save interaction", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save interaction")
		return
	}
	respondCreated(c, interaction)
}

// ownedSession resolves the :id route param to a session owned by the
// caller. Missing and unowned sessions are both reported as 404.
func (h *SessionsHandler) ownedSession(c *gin.Context) (*models.StudySession, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid session id")
		return nil, false
	}
	session, err := repository.GetOwnedSession(c.Request.Context(), uint(id), userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.log.Error("Failed to load session", zap.Error(err))
		}
		respondError(c, http.StatusNotFound, "session not found")
		return nil, false
	}
	return session, true
}
