package models

import (
	"encoding/json"
	"time"
)

// Interaction event types.
const (
	InteractionHighlight  = "highlight"
	InteractionPageTurn   = "page_turn"
	InteractionPageChange = "page_change"
	InteractionWebcam     = "webcam"
	InteractionBreakStart = "break_start"
	InteractionBreakEnd   = "break_end"
	InteractionNote       = "note"
)

// Interaction is one event recorded against a session (a highlight, a page
// turn, a break boundary). Webcam observations live in Sample instead.
type Interaction struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"index"`
	Type      string
	Page      string
	TimeSpent float64 // seconds, page_turn/page_change only
	Payload   json.RawMessage `gorm:"type:jsonb"`
	Timestamp float64

	CreatedAt time.Time
}
