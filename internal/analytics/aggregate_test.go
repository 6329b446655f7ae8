package analytics

import (
	"testing"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webcamSample(ts float64, looking bool, posture, blink, engagement float64) models.Sample {
	return models.Sample{
		Timestamp:       ts,
		LookingAtScreen: looking,
		PostureScore:    posture,
		BlinkRate:       blink,
		EngagementScore: engagement,
	}
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil, DefaultWeights)

	assert.Equal(t, 0, summary.TotalSamples)
	assert.Equal(t, 0, summary.EngagementScore)
	assert.Equal(t, 0, summary.AttentionRate)
	assert.Equal(t, 0, summary.AvgBlinkRate)
	assert.Equal(t, 0, summary.DistractionCount)
}

func TestAggregateComposite(t *testing.T) {
	samples := []models.Sample{
		webcamSample(1000, true, 80, 20, 90),
		webcamSample(2000, true, 80, 20, 85),
	}

	summary := Aggregate(samples, DefaultWeights)

	require.Equal(t, 2, summary.TotalSamples)
	assert.Equal(t, 100, summary.AttentionRate)
	assert.InDelta(t, 80, summary.AvgPostureScore, 0.001)
	assert.Equal(t, 20, summary.AvgBlinkRate)
	// 100*0.5 + 80*0.3 + 100*0.2 = 94
	assert.Equal(t, 94, summary.EngagementScore)
}

func TestAggregateMissingPosturePullsMeanDown(t *testing.T) {
	// A sample with no posture score counts as 0; it is not filtered out.
	samples := []models.Sample{
		webcamSample(1000, false, 100, 20, 50),
		webcamSample(2000, false, 0, 20, 50),
	}

	summary := Aggregate(samples, DefaultWeights)

	assert.InDelta(t, 50, summary.AvgPostureScore, 0.001)
	assert.Equal(t, 0, summary.AttentionRate)
}

func TestAggregateScoreClamped(t *testing.T) {
	samples := []models.Sample{
		webcamSample(1000, true, 500, 20, 100),
	}

	summary := Aggregate(samples, DefaultWeights)

	assert.GreaterOrEqual(t, summary.EngagementScore, 0)
	assert.LessOrEqual(t, summary.EngagementScore, 100)
}

func TestAggregateToleratesOutOfOrderSamples(t *testing.T) {
	phone := func(ts float64, detected bool) models.Sample {
		s := webcamSample(ts, true, 50, 20, 50)
		if detected {
			s.DistractionDetected = true
			s.DistractionType = models.DistractionPhone
		}
		return s
	}
	// Submitted out of order: sorted order is one contiguous phone streak,
	// so exactly one episode must be counted.
	samples := []models.Sample{
		phone(3000, true),
		phone(1000, false),
		phone(2000, true),
		phone(4000, false),
	}

	summary := Aggregate(samples, DefaultWeights)

	assert.Equal(t, 1, summary.DistractionCount)
}

func TestBlinkCompliance(t *testing.T) {
	tests := []struct {
		name string
		bpm  float64
		want float64
	}{
		{"mid band", 20, 100},
		{"lower bound", 15, 100},
		{"upper bound", 25, 100},
		{"zero", 0, 70},
		{"far above band", 100, 0},
		{"just below band", 14, 98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BlinkCompliance(tt.bpm), 0.001)
		})
	}
}

func TestCountDistractionEpisodes(t *testing.T) {
	build := func(flags ...bool) []models.Sample {
		samples := make([]models.Sample, len(flags))
		for i, f := range flags {
			samples[i] = models.Sample{
				Timestamp:           float64(i * 1000),
				DistractionDetected: f,
				DistractionType:     models.DistractionPhone,
			}
			if !f {
				samples[i].DistractionType = models.DistractionNone
				samples[i].DistractionDetected = false
			}
		}
		return samples
	}

	tests := []struct {
		name  string
		flags []bool
		want  int
	}{
		{"edges not samples", []bool{false, true, true, false, true}, 2},
		{"all clear", []bool{false, false, false}, 0},
		{"single streak", []bool{true, true, true}, 1},
		{"leading edge", []bool{true, false, true}, 2},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountDistractionEpisodes(build(tt.flags...)))
		})
	}
}

func TestCountDistractionEpisodesIgnoresOtherTypes(t *testing.T) {
	samples := []models.Sample{
		{Timestamp: 1000, DistractionDetected: true, DistractionType: models.DistractionLookingAway},
		{Timestamp: 2000, DistractionDetected: true, DistractionType: models.DistractionPhone},
	}
	assert.Equal(t, 1, CountDistractionEpisodes(samples))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 100, ClampScore(150))
	assert.Equal(t, 42, ClampScore(42))
}
