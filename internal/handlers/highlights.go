package handlers

import (
	"net/http"
	"strconv"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HighlightsHandler struct {
	log      *zap.Logger
	sessions *SessionsHandler
}

func NewHighlightsHandler(log *zap.Logger, sessions *SessionsHandler) *HighlightsHandler {
	return &HighlightsHandler{log: log, sessions: sessions}
}

type highlightRequest struct {
	Page  string `json:"page"`
	Text  string `json:"text" binding:"required"`
	Color string `json:"color"`
}

func (h *HighlightsHandler) Create(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}

	var req highlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "highlight text is required")
		return
	}

	highlight := &models.Highlight{
		SessionID: session.ID,
		UserID:    session.UserID,
		Page:      req.Page,
		Text:      req.Text,
		Color:     req.Color,
	}
	if err := repository.CreateHighlight(c.Request.Context(), highlight); err != nil {
		h.log.Error("Failed to create highlight", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save highlight")
		return
	}
	respondCreated(c, highlight)
}

func (h *HighlightsHandler) ListBySession(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}
	highlights, err := repository.GetHighlightsBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to list highlights", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load highlights")
		return
	}
	respondOK(c, highlights)
}

func (h *HighlightsHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid highlight id")
		return
	}
	deleted, err := repository.DeleteHighlight(c.Request.Context(), uint(id), userID)
	if err != nil {
		h.log.Error("Failed to delete highlight", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to delete highlight")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "highlight not found")
		return
	}
	respondMessage(c, "highlight deleted")
}

type annotationRequest struct {
	HighlightID *uint  `json:"highlight_id"`
	Page        string `json:"page"`
	Text        string `json:"text" binding:"required"`
}

func (h *HighlightsHandler) CreateAnnotation(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}

	var req annotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "annotation text is required")
		return
	}

	annotation := &models.Annotation{
		HighlightID: req.HighlightID,
		SessionID:   session.ID,
		UserID:      session.UserID,
		Page:        req.Page,
		Text:        req.Text,
	}
	if err := repository.CreateAnnotation(c.Request.Context(), annotation); err != nil {
		h.log.Error("Failed to create annotation", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save annotation")
		return
	}
	respondCreated(c, annotation)
}

func (h *HighlightsHandler) ListAnnotationsBySession(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}
	annotations, err := repository.GetAnnotationsBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to list annotations", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load annotations")
		return
	}
	respondOK(c, annotations)
}

func (h *HighlightsHandler) DeleteAnnotation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid annotation id")
		return
	}
	deleted, err := repository.DeleteAnnotation(c.Request.Context(), uint(id), userID)
	if err != nil {
		h.log.Error("Failed to delete annotation", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to delete annotation")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "annotation not found")
		return
	}
	respondMessage(c, "annotation deleted")
}
