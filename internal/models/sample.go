package models

import "time"

// Distraction types reported on a sample.
const (
	DistractionNone           = "none"
	DistractionPhone          = "phone"
	DistractionLookingAway    = "looking_away"
	DistractionMultiplePeople = "multiple_people"
	DistractionAbsence        = "absence"
	DistractionOther          = "other"
)

// Eye strain risk levels.
const (
	EyeStrainLow      = "low"
	EyeStrainMedium   = "medium"
	EyeStrainHigh     = "high"
	EyeStrainCritical = "critical"
)

// Sample is one webcam-derived observation tick. Samples are immutable once
// written; Timestamp is caller-supplied Unix milliseconds, so readers must
// sort by it and never assume insertion order.
type Sample struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"index"`
	UserID    uint
	Timestamp float64 `json:"timestamp"`

	// Presence
	PresenceDetected   bool    `json:"presence_detected"`
	PresenceConfidence float64 `json:"presence_confidence"`
	FaceCount          int     `json:"face_count"`

	// Facial
	BlinkRate       float64 `json:"blink_rate"`
	LookingAtScreen bool    `json:"looking_at_screen"`
	Emotion         string  `json:"emotion"`
	EyeAspectRatio  float64 `json:"eye_aspect_ratio"`
	GazeDirection   string  `json:"gaze_direction"`
	HeadPoseYaw     float64 `json:"head_pose_yaw"`
	HeadPosePitch   float64 `json:"head_pose_pitch"`

	// Posture
	PostureScore   float64 `json:"posture_score"`
	PostureQuality string  `json:"posture_quality"`
	Slouching      bool    `json:"slouching"`

	// Distraction
	DistractionDetected bool    `json:"distraction_detected"`
	DistractionType     string  `json:"distraction_type"`
	AttentionScore      float64 `json:"attention_score"`

	// Health
	EyeStrainRisk    string  `json:"eye_strain_risk"`
	FatigueLevel     float64 `json:"fatigue_level"`
	BreakRecommended bool    `json:"break_recommended"`

	EngagementScore float64 `json:"engagement_score"`

	CreatedAt time.Time
}
