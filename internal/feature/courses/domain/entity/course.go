// Package entity defines the domain entities for the courses feature.
package entity

import "time"

// Course is a program of study offered by the college.
type Course struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Semester is a term within a course. Students reference their active
// semester and subjects are taught per semester.
type Semester struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
