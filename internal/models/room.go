package models

import "time"

// Room is an optional scope for sessions: a host creates a room with a
// short join code and other students attach their sessions to it.
type Room struct {
	ID       uint   `gorm:"primaryKey"`
	Code     string `gorm:"uniqueIndex"`
	Name     string
	Subject  string
	HostID   uint
	Host     User `gorm:"foreignKey:HostID"`
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
