package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MetricsHandler struct {
	log      *zap.Logger
	weights  analytics.Weights
	sessions *SessionsHandler
}

func NewMetricsHandler(log *zap.Logger, weights analytics.Weights, sessions *SessionsHandler) *MetricsHandler {
	return &MetricsHandler{log: log, weights: weights, sessions: sessions}
}

type sampleRequest struct {
	SessionID uint    `json:"session_id" binding:"required"`
	Timestamp float64 `json:"timestamp"`

	PresenceDetected   bool    `json:"presence_detected"`
	PresenceConfidence float64 `json:"presence_confidence"`
	FaceCount          int     `json:"face_count"`

	BlinkRate       float64 `json:"blink_rate"`
	LookingAtScreen bool    `json:"looking_at_screen"`
	Emotion         string  `json:"emotion"`
	EyeAspectRatio  float64 `json:"eye_aspect_ratio"`
	GazeDirection   string  `json:"gaze_direction"`
	HeadPoseYaw     float64 `json:"head_pose_yaw"`
	HeadPosePitch   float64 `json:"head_pose_pitch"`

	PostureScore   float64 `json:"posture_score"`
	PostureQuality string  `json:"posture_quality"`
	Slouching      bool    `json:"slouching"`

	DistractionDetected bool    `json:"distraction_detected"`
	DistractionType     string  `json:"distraction_type"`
	AttentionScore      float64 `json:"attention_score"`

	EyeStrainRisk    string  `json:"eye_strain_risk"`
	FatigueLevel     float64 `json:"fatigue_level"`
	BreakRecommended bool    `json:"break_recommended"`

	EngagementScore float64 `json:"engagement_score"`
}

func (r *sampleRequest) toModel(userID uint) models.Sample {
	ts := r.Timestamp
	if ts == 0 {
		ts = float64(time.Now().UnixMilli())
	}
	return models.Sample{
		SessionID:           r.SessionID,
		UserID:              userID,
		Timestamp:           ts,
		PresenceDetected:    r.PresenceDetected,
		PresenceConfidence:  r.PresenceConfidence,
		FaceCount:           r.FaceCount,
		BlinkRate:           r.BlinkRate,
		LookingAtScreen:     r.LookingAtScreen,
		Emotion:             r.Emotion,
		EyeAspectRatio:      r.EyeAspectRatio,
		GazeDirection:       r.GazeDirection,
		HeadPoseYaw:         r.HeadPoseYaw,
		HeadPosePitch:       r.HeadPosePitch,
		PostureScore:        r.PostureScore,
		PostureQuality:      r.PostureQuality,
		Slouching:           r.Slouching,
		DistractionDetected: r.DistractionDetected,
		DistractionType:     r.DistractionType,
		AttentionScore:      r.AttentionScore,
		EyeStrainRisk:       r.EyeStrainRisk,
		FatigueLevel:        r.FatigueLevel,
		BreakRecommended:    r.BreakRecommended,
		EngagementScore:     analytics.Clamp100(r.EngagementScore),
	}
}

// Save appends a single sample to an active session owned by the caller.
func (h *MetricsHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req sampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	session, ok := h.writableSession(c, req.SessionID, userID)
	if !ok {
		return
	}

	interactions, err := repository.GetInteractionsBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load interactions for break policy", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save sample")
		return
	}

	sample := req.toModel(userID)
	startMs := float64(session.StartTime.UnixMilli())
	analytics.ApplyBreakPolicy(&sample, analytics.MinutesSinceBreak(sample.Timestamp, startMs, interactions))

	if err := repository.SaveSample(c.Request.Context(), &sample); err != nil {
		h.log.Error("Failed to save sample", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save sample")
		return
	}
	respondCreated(c, sample)
}

type sampleBatchRequest struct {
	SessionID uint            `json:"session_id" binding:"required"`
	Samples   []sampleRequest `json:"samples" binding:"required"`
}

// SaveBatch appends many samples at once. The whole batch is validated
// against one session; nothing is persisted on a validation failure.
func (h *MetricsHandler) SaveBatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req sampleBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "session_id and samples are required")
		return
	}
	if len(req.Samples) == 0 {
		respondError(c, http.StatusBadRequest, "samples must not be empty")
		return
	}

	session, ok := h.writableSession(c, req.SessionID, userID)
	if !ok {
		return
	}

	interactions, err := repository.GetInteractionsBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load interactions for break policy", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save samples")
		return
	}

	startMs := float64(session.StartTime.UnixMilli())
	samples := make([]models.Sample, 0, len(req.Samples))
	for _, r := range req.Samples {
		sample := r.toModel(userID)
		sample.SessionID = session.ID
		analytics.ApplyBreakPolicy(&sample, analytics.MinutesSinceBreak(sample.Timestamp, startMs, interactions))
		samples = append(samples, sample)
	}

	if err := repository.SaveSamples(c.Request.Context(), samples); err != nil {
		h.log.Error("Failed to save sample batch", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save samples")
		return
	}
	respondCreated(c, gin.H{"count": len(samples)})
}

// ListBySession returns the raw sample sequence for a session.
func (h *MetricsHandler) ListBySession(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}
	samples, err := repository.GetSamplesBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load samples", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load samples")
		return
	}
	respondOK(c, samples)
}

// Summary recomputes the session-level aggregate from the stored samples.
// A session with no samples yields the zero summary, not an error.
func (h *MetricsHandler) Summary(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}
	samples, err := repository.GetSamplesBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load samples for summary", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load samples")
		return
	}
	interactions, err := repository.GetInteractionsBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load interactions for summary", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load interactions")
		return
	}

	summary := analytics.Aggregate(samples, h.weights)
	pageTime := analytics.PageTime(interactions)

	respondOK(c, gin.H{
		"session_id":       session.ID,
		"duration_seconds": session.DurationSeconds,
		"metrics":          summary,
		"total_highlights": analytics.CountHighlights(interactions),
		"pages_visited":    len(pageTime),
		"page_time":        pageTime,
	})
}

// Trend returns the bucketed engagement trend for a session. The interval
// query parameter is minutes; the configured default applies otherwise.
func (h *MetricsHandler) Trend(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}

	intervalMs := float64(analytics.DefaultTrendInterval)
	if raw := c.Query("interval"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			respondError(c, http.StatusBadRequest, "interval must be a positive number of minutes")
			return
		}
		intervalMs = float64(minutes) * 60 * 1000
	}

	samples, err := repository.GetSamplesBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load samples for trend", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load samples")
		return
	}

	respondOK(c, analytics.Trend(samples, intervalMs))
}

// Anomalies returns engagement drops and prolonged absences for a session.
func (h *MetricsHandler) Anomalies(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}
	samples, err := repository.GetSamplesBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load samples for anomalies", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load samples")
		return
	}
	respondOK(c, analytics.DetectAnomalies(samples))
}

// writableSession loads the target session for a write, requiring ownership
// and an active session.
func (h *MetricsHandler) writableSession(c *gin.Context, sessionID, userID uint) (*models.StudySession, bool) {
	session, err := repository.GetOwnedSession(c.Request.Context(), sessionID, userID)
	if err != nil {
		respondError(c, http.StatusNotFound, "session not found")
		return nil, false
	}
	if !session.IsActive {
		respondError(c, http.StatusConflict, "session already ended")
		return nil, false
	}
	return session, true
}
