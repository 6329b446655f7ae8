package models

import "time"

type Highlight struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"index"`
	UserID    uint
	Page      string
	Text      string
	Color     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Annotation is a free-text note, optionally attached to a highlight.
type Annotation struct {
	ID          uint `gorm:"primaryKey"`
	HighlightID *uint
	SessionID   uint `gorm:"index"`
	UserID      uint
	Page        string
	Text        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
