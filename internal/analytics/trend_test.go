package analytics

import (
	"testing"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendSample(ts, engagement, attention float64, distracted bool) models.Sample {
	return models.Sample{
		Timestamp:           ts,
		EngagementScore:     engagement,
		AttentionScore:      attention,
		DistractionDetected: distracted,
	}
}

func TestTrendEmpty(t *testing.T) {
	assert.Empty(t, Trend(nil, DefaultTrendInterval))
}

func TestTrendSameBucketAverages(t *testing.T) {
	// Both samples fall inside the first 5-minute window.
	samples := []models.Sample{
		trendSample(0, 80, 90, false),
		trendSample(60_000, 60, 70, true),
	}

	buckets := Trend(samples, DefaultTrendInterval)

	require.Len(t, buckets, 1)
	assert.Equal(t, float64(0), buckets[0].Timestamp)
	assert.InDelta(t, 70, buckets[0].AvgEngagement, 0.001)
	assert.InDelta(t, 80, buckets[0].AvgAttention, 0.001)
	assert.Equal(t, 1, buckets[0].DistractionCount)
	assert.Equal(t, 2, buckets[0].Datapoints)
}

func TestTrendBoundaryStraddle(t *testing.T) {
	// 299999ms and 300000ms sit either side of a 5-minute boundary.
	samples := []models.Sample{
		trendSample(299_999, 80, 80, false),
		trendSample(300_000, 40, 40, false),
	}

	buckets := Trend(samples, DefaultTrendInterval)

	require.Len(t, buckets, 2)
	assert.Equal(t, float64(0), buckets[0].Timestamp)
	assert.Equal(t, float64(300_000), buckets[1].Timestamp)
	assert.Equal(t, 1, buckets[0].Datapoints)
	assert.Equal(t, 1, buckets[1].Datapoints)
}

func TestTrendEpochAlignment(t *testing.T) {
	// Bucket keys align to epoch multiples of the interval, not to the
	// first sample's timestamp.
	samples := []models.Sample{
		trendSample(310_000, 50, 50, false),
	}

	buckets := Trend(samples, DefaultTrendInterval)

	require.Len(t, buckets, 1)
	assert.Equal(t, float64(300_000), buckets[0].Timestamp)
}

func TestTrendOrderedAscending(t *testing.T) {
	samples := []models.Sample{
		trendSample(900_000, 10, 10, false),
		trendSample(0, 20, 20, false),
		trendSample(300_000, 30, 30, false),
	}

	buckets := Trend(samples, DefaultTrendInterval)

	require.Len(t, buckets, 3)
	for i := 1; i < len(buckets); i++ {
		assert.Less(t, buckets[i-1].Timestamp, buckets[i].Timestamp)
	}
}

func TestTrendCustomInterval(t *testing.T) {
	// One-minute buckets split what the default interval would merge.
	samples := []models.Sample{
		trendSample(0, 50, 50, false),
		trendSample(60_000, 50, 50, false),
	}

	buckets := Trend(samples, 60_000)

	assert.Len(t, buckets, 2)
}

func TestTrendNonPositiveIntervalFallsBack(t *testing.T) {
	samples := []models.Sample{
		trendSample(0, 50, 50, false),
		trendSample(60_000, 50, 50, false),
	}

	buckets := Trend(samples, 0)

	assert.Len(t, buckets, 1)
}
