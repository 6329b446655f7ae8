package analytics

import (
	"testing"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engagementSeq(scores ...float64) []models.Sample {
	samples := make([]models.Sample, len(scores))
	for i, score := range scores {
		samples[i] = models.Sample{
			Timestamp:        float64((i + 1) * 1000),
			EngagementScore:  score,
			PresenceDetected: true,
		}
	}
	return samples
}

func presenceSeq(flags ...bool) []models.Sample {
	samples := make([]models.Sample, len(flags))
	for i, present := range flags {
		samples[i] = models.Sample{
			Timestamp:        float64((i + 1) * 1000),
			PresenceDetected: present,
			EngagementScore:  50,
		}
	}
	return samples
}

func TestDetectAnomaliesEmpty(t *testing.T) {
	assert.Empty(t, DetectAnomalies(nil))
}

func TestEngagementDropSeverity(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		want     int
		severity string
	}{
		{"medium drop", []float64{80, 40}, 1, SeverityMedium},
		{"high drop", []float64{90, 20}, 1, SeverityHigh},
		{"exactly 30 is not a drop", []float64{80, 50}, 0, ""},
		{"exactly 50 stays medium", []float64{90, 40}, 1, SeverityMedium},
		{"rise is not a drop", []float64{20, 90}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anomalies := DetectAnomalies(engagementSeq(tt.scores...))
			require.Len(t, anomalies, tt.want)
			if tt.want > 0 {
				assert.Equal(t, AnomalyEngagementDrop, anomalies[0].Type)
				assert.Equal(t, tt.severity, anomalies[0].Severity)
				// Anomaly is stamped at the later sample.
				assert.Equal(t, float64(2000), anomalies[0].Timestamp)
			}
		})
	}
}

func TestProlongedAbsenceFiresOnceAtFifthMiss(t *testing.T) {
	// Seven consecutive misses: one anomaly, at the 5th sample.
	anomalies := DetectAnomalies(presenceSeq(false, false, false, false, false, false, false))

	require.Len(t, anomalies, 1)
	assert.Equal(t, AnomalyProlongedAbsence, anomalies[0].Type)
	assert.Equal(t, SeverityHigh, anomalies[0].Severity)
	assert.Equal(t, float64(5000), anomalies[0].Timestamp)
}

func TestProlongedAbsenceShortRunDoesNotFire(t *testing.T) {
	anomalies := DetectAnomalies(presenceSeq(false, false, false, false, true))
	assert.Empty(t, anomalies)
}

func TestProlongedAbsenceResetsPerEpisode(t *testing.T) {
	// Two separate 5-miss episodes: one anomaly each.
	flags := []bool{
		false, false, false, false, false, // episode 1
		true,
		false, false, false, false, false, // episode 2
	}
	anomalies := DetectAnomalies(presenceSeq(flags...))

	require.Len(t, anomalies, 2)
	assert.Equal(t, float64(5000), anomalies[0].Timestamp)
	assert.Equal(t, float64(11000), anomalies[1].Timestamp)
}

func TestDetectAnomaliesSortsByTimestamp(t *testing.T) {
	samples := []models.Sample{
		{Timestamp: 2000, EngagementScore: 20, PresenceDetected: true},
		{Timestamp: 1000, EngagementScore: 90, PresenceDetected: true},
	}

	anomalies := DetectAnomalies(samples)

	require.Len(t, anomalies, 1)
	assert.Equal(t, SeverityHigh, anomalies[0].Severity)
	assert.Equal(t, float64(2000), anomalies[0].Timestamp)
}
