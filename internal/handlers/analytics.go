package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	log *zap.Logger
}

func NewAnalyticsHandler(log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{log: log}
}

// periodWindow resolves the ?period=N query (days, default 30) to a
// [start, end) window ending now.
func periodWindow(c *gin.Context) (time.Time, time.Time, int, bool) {
	days := 30
	if raw := c.Query("period"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return time.Time{}, time.Time{}, 0, false
		}
		days = parsed
	}
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)
	return start, end, days, true
}

// Overview reports totals for the requested period plus the fixed trailing
// 7-day hours and the day streak, which are independent of the period.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	start, end, _, ok := periodWindow(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "period must be a positive number of days")
		return
	}
	ctx := c.Request.Context()

	totalSeconds, err := repository.GetTotalSeconds(ctx, userID, start, end)
	if err != nil {
		h.log.Error("Failed to sum study time", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}
	weekSeconds, err := repository.GetTotalSeconds(ctx, userID, end.AddDate(0, 0, -7), end)
	if err != nil {
		h.log.Error("Failed to sum weekly study time", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}
	avgEngagement, err := repository.GetAvgEngagement(ctx, userID, start, end)
	if err != nil {
		h.log.Error("Failed to average engagement", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}
	completed, err := repository.CountCompletedSessions(ctx, userID, start, end)
	if err != nil {
		h.log.Error("Failed to count sessions", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}

	// The streak looks back a year at most; older history cannot extend a
	// streak that has already been broken.
	dates, err := repository.GetStudyDates(ctx, userID, end.AddDate(-1, 0, 0))
	if err != nil {
		h.log.Error("Failed to load study dates", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}

	respondOK(c, gin.H{
		"total_hours":        float64(totalSeconds) / 3600,
		"this_week_hours":    float64(weekSeconds) / 3600,
		"avg_engagement":     avgEngagement,
		"completed_sessions": completed,
		"day_streak":         analytics.DayStreak(dates, end),
	})
}

// ProductivityScore blends the period's totals into the composite score.
func (h *AnalyticsHandler) ProductivityScore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	start, end, days, ok := periodWindow(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "period must be a positive number of days")
		return
	}

	stats, err := repository.GetPeriodStats(c.Request.Context(), userID, start, end, days)
	if err != nil {
		h.log.Error("Failed to load period stats", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}

	score, grade, components := analytics.ProductivityScore(stats)
	respondOK(c, gin.H{
		"overall_score": score,
		"grade":         grade,
		"components":    components,
		"period_days":   days,
	})
}

// Daily returns the per-calendar-day rollup for the requested period.
func (h *AnalyticsHandler) Daily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	start, _, _, ok := periodWindow(c)
	if !ok {
		respondError(c, http.StatusBadRequest, "period must be a positive number of days")
		return
	}

	rollup, err := repository.GetDailyRollup(c.Request.Context(), userID, start)
	if err != nil {
		h.log.Error("Failed to load daily rollup", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}
	respondOK(c, rollup)
}
