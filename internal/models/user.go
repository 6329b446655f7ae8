package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex"`
	Password  string
	FirstName string
	LastName  string

	EmailNotificationsEnabled bool
	ReminderTime              string // "HH:MM", stored in UTC
	TimeZone                  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
