package analytics

import (
	"testing"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyBreakPolicy(t *testing.T) {
	tests := []struct {
		name    string
		sample  models.Sample
		minutes float64
		want    bool
	}{
		{"calm sample stays false", models.Sample{FatigueLevel: 50, EyeStrainRisk: models.EyeStrainLow}, 10, false},
		{"fatigue over threshold", models.Sample{FatigueLevel: 76}, 0, true},
		{"fatigue exactly at threshold", models.Sample{FatigueLevel: 75}, 0, false},
		{"critical eye strain", models.Sample{EyeStrainRisk: models.EyeStrainCritical}, 0, true},
		{"high eye strain is not enough", models.Sample{EyeStrainRisk: models.EyeStrainHigh}, 0, false},
		{"long stretch without break", models.Sample{}, 26, true},
		{"exactly 25 minutes", models.Sample{}, 25, false},
		{"client-set flag survives", models.Sample{BreakRecommended: true}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.sample
			ApplyBreakPolicy(&s, tt.minutes)
			assert.Equal(t, tt.want, s.BreakRecommended)
		})
	}
}

func TestMinutesSinceBreak(t *testing.T) {
	const start = 1_000_000.0
	breakEnd := func(ts float64) models.Interaction {
		return models.Interaction{Type: models.InteractionBreakEnd, Timestamp: ts}
	}

	tests := []struct {
		name         string
		sampleTs     float64
		interactions []models.Interaction
		want         float64
	}{
		{"no breaks counts from session start", start + 10*60_000, nil, 10},
		{"counts from latest break end", start + 30*60_000, []models.Interaction{breakEnd(start + 20*60_000)}, 10},
		{"latest of several breaks wins", start + 30*60_000, []models.Interaction{breakEnd(start + 5*60_000), breakEnd(start + 25*60_000)}, 5},
		{"future break end is ignored", start + 10*60_000, []models.Interaction{breakEnd(start + 20*60_000)}, 10},
		{"other interaction types are ignored", start + 10*60_000, []models.Interaction{{Type: models.InteractionBreakStart, Timestamp: start + 5*60_000}}, 10},
		{"sample before baseline yields zero", start - 60_000, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinutesSinceBreak(tt.sampleTs, start, tt.interactions)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestClamp100(t *testing.T) {
	assert.Equal(t, float64(0), Clamp100(-10))
	assert.Equal(t, float64(100), Clamp100(250))
	assert.Equal(t, 42.5, Clamp100(42.5))
}
