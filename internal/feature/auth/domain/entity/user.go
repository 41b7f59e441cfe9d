// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role classifies a user's position in the college.
type Role string

// The closed set of roles known to the system.
const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User represents a registered user in the system.
// It contains authentication credentials and the profile fields
// shared by admins, teachers and students.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Address is the user's postal address.
	Address string `gorm:"size:255"`

	// Contact is the user's phone number.
	Contact string `gorm:"size:32"`

	// Role decides which guarded endpoints the user may reach.
	Role Role `gorm:"size:16;not null;index"`

	// CourseID links teachers and students to their course. Nil for admins.
	CourseID *uint `gorm:"index"`

	// SemesterID is the student's active semester. Nil for staff.
	SemesterID *uint `gorm:"index"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
