package analytics

import "github.com/LifeofNabin/study-guardian-backend/internal/models"

const (
	fatigueBreakThreshold  = 75.0
	maxMinutesWithoutBreak = 25.0
)

// Clamp100 clamps a raw metric value into [0,100].
func Clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ApplyBreakPolicy enforces the break invariant on a sample before it is
// written: BreakRecommended becomes true once fatigue passes 75, eye strain
// turns critical, or the student has gone more than 25 minutes without a
// break. A client-set true is never cleared.
func ApplyBreakPolicy(s *models.Sample, minutesSinceBreak float64) {
	if s.FatigueLevel > fatigueBreakThreshold {
		s.BreakRecommended = true
	}
	if s.EyeStrainRisk == models.EyeStrainCritical {
		s.BreakRecommended = true
	}
	if minutesSinceBreak > maxMinutesWithoutBreak {
		s.BreakRecommended = true
	}
}

// MinutesSinceBreak derives how long the student has studied without a
// break at the given sample timestamp: time since the latest break_end
// interaction, or since session start if there has been no break.
func MinutesSinceBreak(sampleTs float64, sessionStartMs float64, interactions []models.Interaction) float64 {
	baseline := sessionStartMs
	for _, in := range interactions {
		if in.Type == models.InteractionBreakEnd && in.Timestamp > baseline && in.Timestamp <= sampleTs {
			baseline = in.Timestamp
		}
	}
	if sampleTs <= baseline {
		return 0
	}
	return (sampleTs - baseline) / 60000
}
