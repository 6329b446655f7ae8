package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
)

// ChartsHandler builds ECharts option payloads the dashboard renders
// client-side.
type ChartsHandler struct {
	log      *zap.Logger
	sessions *SessionsHandler
}

func NewChartsHandler(log *zap.Logger, sessions *SessionsHandler) *ChartsHandler {
	return &ChartsHandler{log: log, sessions: sessions}
}

// EngagementTrend renders a session's bucketed engagement trend as a line
// chart option set.
func (h *ChartsHandler) EngagementTrend(c *gin.Context) {
	session, ok := h.sessions.ownedSession(c)
	if !ok {
		return
	}

	samples, err := repository.GetSamplesBySession(c.Request.Context(), session.ID)
	if err != nil {
		h.log.Error("Failed to load samples for chart", zap.Uint("sessionID", session.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load samples")
		return
	}

	trend := analytics.Trend(samples, analytics.DefaultTrendInterval)

	labels := make([]string, 0, len(trend))
	engagement := make([]opts.LineData, 0, len(trend))
	attention := make([]opts.LineData, 0, len(trend))
	for _, bucket := range trend {
		labels = append(labels, time.UnixMilli(int64(bucket.Timestamp)).UTC().Format("15:04"))
		engagement = append(engagement, opts.LineData{Value: bucket.AvgEngagement})
		attention = append(attention, opts.LineData{Value: bucket.AvgAttention})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Engagement Over Time",
			Subtitle: session.Title,
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Score", Max: 100}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(labels).
		AddSeries("Engagement", engagement).
		AddSeries("Attention", attention)

	respondOK(c, line.JSON())
}

// DailyHours renders the per-day study hours for the period as a bar chart
// option set.
func (h *ChartsHandler) DailyHours(c *gin.Context) {
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
		h.log.Error("Failed to load daily rollup for chart", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load analytics")
		return
	}

	labels := make([]string, 0, len(rollup))
	hours := make([]opts.BarData, 0, len(rollup))
	for _, day := range rollup {
		labels = append(labels, day.Day.Format("Jan 02"))
		hours = append(hours, opts.BarData{Value: fmt.Sprintf("%.2f", float64(day.TotalSeconds)/3600)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Study Hours Per Day"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Hours"}),
	)
	bar.SetXAxis(labels).AddSeries("Hours", hours)

	respondOK(c, bar.JSON())
}
