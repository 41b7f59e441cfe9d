// Package usecase implements the business logic for the courses feature.
package usecase

import "errors"

var (
	// ErrCourseNotFound is returned when no course exists for the given ID.
	ErrCourseNotFound = errors.New("course does not exist")

	// ErrSubjectNotFound is returned when no subject exists for the given ID.
	ErrSubjectNotFound = errors.New("subject does not exist")

	// ErrSubjectAlreadyExists is returned when a subject with the same code
	// already exists for the course and semester.
	ErrSubjectAlreadyExists = errors.New("subject already exists")
)
