package analytics

import (
	"fmt"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"
)

// Anomaly types and severities.
const (
	AnomalyEngagementDrop   = "engagement_drop"
	AnomalyProlongedAbsence = "prolonged_absence"

	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

const (
	dropThreshold     = 30.0
	dropHighThreshold = 50.0
	absenceRunLength  = 5
)

// Anomaly flags an abrupt engagement drop or a prolonged absence inside a
// session's sample sequence.
type Anomaly struct {
	Type      string  `json:"type"`
	Timestamp float64 `json:"timestamp"`
	Severity  string  `json:"severity"`
	Details   string  `json:"details"`
}

// DetectAnomalies does a single pass over the samples in time order.
//
// An engagement drop fires when an adjacent pair falls by more than 30
// points (high severity past 50). A prolonged absence fires exactly once
// per contiguous run of absent samples, at the 5th consecutive miss; the
// run counter resets only when presence resumes.
func DetectAnomalies(samples []models.Sample) []Anomaly {
	anomalies := []Anomaly{}
	if len(samples) == 0 {
		return anomalies
	}

	sorted := sortByTimestamp(samples)

	absentRun := 0
	for i, s := range sorted {
		if i > 0 {
			drop := sorted[i-1].EngagementScore - s.EngagementScore
			if drop > dropThreshold {
				severity := SeverityMedium
				if drop > dropHighThreshold {
					severity = SeverityHigh
				}
				anomalies = append(anomalies, Anomaly{
					Type:      AnomalyEngagementDrop,
					Timestamp: s.Timestamp,
					Severity:  severity,
					Details:   fmt.Sprintf("engagement fell %.0f points", drop),
				})
			}
		}

		if s.PresenceDetected {
			absentRun = 0
			continue
		}
		absentRun++
		if absentRun == absenceRunLength {
			anomalies = append(anomalies, Anomaly{
				Type:      AnomalyProlongedAbsence,
				Timestamp: s.Timestamp,
				Severity:  SeverityHigh,
				Details:   fmt.Sprintf("no face detected for %d consecutive samples", absenceRunLength),
			})
		}
	}
	return anomalies
}
