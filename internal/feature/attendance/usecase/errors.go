// Package usecase implements the business logic for the attendance feature.
package usecase

import "errors"

var (
	// ErrAttendanceAlreadyExists is returned when a record already exists
	// for the same student, subject and date.
	ErrAttendanceAlreadyExists = errors.New("attendance already exists")
)
