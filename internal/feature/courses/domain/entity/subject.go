package entity

import "time"

// Subject is a taught unit within a course and semester.
// The composite unique index forbids two subjects with the same code in
// the same course and semester.
type Subject struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:255;not null"`
	Code       string `gorm:"size:64;not null;uniqueIndex:idx_subject_slot"`
	CourseID   uint   `gorm:"not null;uniqueIndex:idx_subject_slot"`
	SemesterID uint   `gorm:"not null;uniqueIndex:idx_subject_slot"`
	TeacherID  uint   `gorm:"index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
