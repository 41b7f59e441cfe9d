// Package entity defines the domain entities for the attendance feature.
package entity

import "time"

// Attendance records one student's presence for a subject on a date.
// The composite unique index forbids a second record for the same
// student, subject and date.
type Attendance struct {
	ID uint `gorm:"primaryKey"`

	// UserID is the student the record belongs to.
	UserID uint `gorm:"not null;uniqueIndex:idx_attendance_slot"`

	// SubjectID is the subject the record was taken for.
	SubjectID uint `gorm:"not null;uniqueIndex:idx_attendance_slot"`

	// Date is the calendar day in "2006-01-02" form.
	Date string `gorm:"size:10;not null;uniqueIndex:idx_attendance_slot"`

	// Present reports whether the student attended.
	Present bool `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
