// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("user with that email already exists")

	// ErrTeacherNotFound is returned when no teacher exists for the given ID.
	ErrTeacherNotFound = errors.New("teacher does not exist")

	// ErrStudentNotFound is returned when no student exists for the given ID.
	ErrStudentNotFound = errors.New("student does not exist")

	// ErrUserNotFound is returned when no user exists for the given ID.
	ErrUserNotFound = errors.New("user does not exist")
)
