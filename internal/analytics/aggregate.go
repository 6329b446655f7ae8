package analytics

import (
	"math"
	"sort"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

// Summary is the final metrics snapshot for one session's samples.
type Summary struct {
	TotalSamples     int     `json:"total_samples"`
	EngagementScore  int     `json:"engagement_score"`
	AttentionRate    int     `json:"attention_rate"`
	AvgPostureScore  float64 `json:"avg_posture_score"`
	AvgBlinkRate     int     `json:"avg_blink_rate"`
	AvgAttention     float64 `json:"avg_attention_score"`
	PresenceRate     float64 `json:"presence_rate"`
	DistractionCount int     `json:"distraction_count"`
}

// Weights for the composite engagement score. Must sum to 1.
type Weights struct {
	Attention float64 `yaml:"attention"`
	Posture   float64 `yaml:"posture"`
	BlinkRate float64 `yaml:"blink_rate"`
}

// DefaultWeights matches the attention/posture/blink blend the composite
// score was calibrated with.
var DefaultWeights = Weights{Attention: 0.5, Posture: 0.3, BlinkRate: 0.2}

// Healthy blink range in blinks per minute.
const (
	blinkHealthyMin = 15.0
	blinkHealthyMax = 25.0
	blinkDecaySpan  = 50.0
)

// Aggregate reduces a session's samples into a Summary. An empty sample set
// returns the zero Summary rather than an error: "no data yet" is a valid
// read result, not a failure.
func Aggregate(samples []models.Sample, w Weights) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	// Timestamps are caller-supplied and may arrive out of order.
	sorted := sortByTimestamp(samples)

	var (
		focused      int
		present      int
		postureSum   float64
		blinkSum     float64
		attentionSum float64
	)
	for _, s := range sorted {
		if s.LookingAtScreen {
			focused++
		}
		if s.PresenceDetected {
			present++
		}
		// Missing posture scores stay 0 and pull the mean down.
		postureSum += s.PostureScore
		blinkSum += s.BlinkRate
		attentionSum += s.AttentionScore
	}

	n := float64(len(sorted))
	attentionRate := int(math.Round(100 * float64(focused) / n))
	avgPosture := postureSum / n
	avgBlink := blinkSum / n

	compliance := BlinkCompliance(avgBlink)
	score := float64(attentionRate)*w.Attention + avgPosture*w.Posture + compliance*w.BlinkRate

	return Summary{
		TotalSamples:     len(sorted),
		EngagementScore:  ClampScore(math.Round(score)),
		AttentionRate:    attentionRate,
		AvgPostureScore:  avgPosture,
		AvgBlinkRate:     int(math.Round(avgBlink)),
		AvgAttention:     attentionSum / n,
		PresenceRate:     100 * float64(present) / n,
		DistractionCount: CountDistractionEpisodes(sorted),
	}
}

// BlinkCompliance scores a blink rate against the healthy 15-25 BPM band:
// 100 inside the band, decaying linearly to 0 as the distance from the
// nearer bound approaches 50 BPM.
func BlinkCompliance(bpm float64) float64 {
	var dist float64
	switch {
	case bpm < blinkHealthyMin:
		dist = blinkHealthyMin - bpm
	case bpm > blinkHealthyMax:
		dist = bpm - blinkHealthyMax
	default:
		return 100
	}
	if dist > blinkDecaySpan {
		dist = blinkDecaySpan
	}
	return 100 * (1 - dist/blinkDecaySpan)
}

// CountDistractionEpisodes counts rising edges of phone-type distraction
// over the time-sorted sequence. A streak of consecutive phone-detected
// samples counts once, not once per sample.
func CountDistractionEpisodes(sorted []models.Sample) int {
	count := 0
	prev := false
	for _, s := range sorted {
		cur := s.DistractionDetected && s.DistractionType == models.DistractionPhone
		if cur && !prev {
			count++
		}
		prev = cur
	}
	return count
}

// ClampScore clamps a composite score into [0,100].
func ClampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

func sortByTimestamp(samples []models.Sample) []models.Sample {
	sorted := make([]models.Sample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})
	return sorted
}
