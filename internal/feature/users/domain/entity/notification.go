// Package entity defines the domain entities for the users feature.
package entity

import "time"

// Notification is a message sent from one user to another.
// Broadcasts create one row per recipient.
type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Message   string `gorm:"size:1024;not null"`
	SentToID  uint   `gorm:"index;not null"`
	SentByID  uint   `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
