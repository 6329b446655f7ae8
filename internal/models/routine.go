package models

import (
	"time"

	"github.com/lib/pq"
)

// Routine is a recurring planned study slot, e.g. "maths, mon/wed/fri
// 18:00-19:30".
type Routine struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	Title     string
	Subject   string
	Days      pq.StringArray `gorm:"type:text[]"` // "mon".."sun"
	StartTime string         // "HH:MM"
	EndTime   string
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
