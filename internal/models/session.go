package models

import (
	"encoding/json"
	"time"
)

// StudySession is one continuous study period for one student. The metrics
// columns form a snapshot written exactly once when the session ends; until
// then they are zero.
type StudySession struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"index"`
	User   User `gorm:"foreignKey:UserID"`
	RoomID *uint
	Room   *Room `gorm:"foreignKey:RoomID"`

	Title     string
	Subject   string
	StartTime time.Time
	EndTime   *time.Time
	IsActive  bool `gorm:"index"`

	DurationSeconds int

	// Final metrics snapshot, written at session end.
	EngagementScore  int
	AttentionRate    int
	AvgPostureScore  float64
	AvgBlinkRate     int
	DistractionCount int
	TotalHighlights  int
	PagesVisited     int
	TotalSamples     int
	PageTime         json.RawMessage `gorm:"type:jsonb"` // page -> seconds spent

	CreatedAt time.Time
	UpdatedAt time.Time
}
