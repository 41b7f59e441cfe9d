package entity

import "time"

// Token is a user's bearer session credential.
// Each user holds at most one row; a new login overwrites the previous
// token via an upsert keyed by UserID.
type Token struct {
	ID uint `gorm:"primaryKey"`

	// Token is the opaque credential presented in the Authorization header.
	Token string `gorm:"uniqueIndex;size:128;not null"`

	// UserID is the owning user. The unique index enforces the
	// single-active-session model.
	UserID uint `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (Token) TableName() string {
	return "tokens"
}
