package analytics

import (
	"math"
	"sort"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

// DefaultTrendInterval is the default bucket width in milliseconds.
const DefaultTrendInterval = 5 * 60 * 1000

// TrendBucket is one fixed-width time bucket of a session's samples.
type TrendBucket struct {
	Timestamp        float64 `json:"timestamp"` // bucket start, epoch-aligned
	AvgEngagement    float64 `json:"avg_engagement"`
	AvgAttention     float64 `json:"avg_attention"`
	DistractionCount int     `json:"distraction_count"`
	Datapoints       int     `json:"datapoints"`
}

// Trend buckets samples into fixed-width intervals aligned to epoch
// boundaries (bucket key = ts - ts mod interval) and averages engagement
// and attention within each bucket. Output is ordered by bucket start.
func Trend(samples []models.Sample, intervalMs float64) []TrendBucket {
	if len(samples) == 0 {
		return []TrendBucket{}
	}
	if intervalMs <= 0 {
		intervalMs = DefaultTrendInterval
	}

	type acc struct {
		engagement  float64
		attention   float64
		distraction int
		n           int
	}
	buckets := make(map[float64]*acc)
	for _, s := range samples {
		key := s.Timestamp - math.Mod(s.Timestamp, intervalMs)
		b, ok := buckets[key]
		if !ok {
			b = &acc{}
			buckets[key] = b
		}
		b.engagement += s.EngagementScore
		b.attention += s.AttentionScore
		if s.DistractionDetected {
			b.distraction++
		}
		b.n++
	}

	keys := make([]float64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	out := make([]TrendBucket, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		out = append(out, TrendBucket{
			Timestamp:        k,
			AvgEngagement:    b.engagement / float64(b.n),
			AvgAttention:     b.attention / float64(b.n),
			DistractionCount: b.distraction,
			Datapoints:       b.n,
		})
	}
	return out
}
