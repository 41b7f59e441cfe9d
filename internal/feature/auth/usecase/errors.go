// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user with that email does not exist")

	// ErrInvalidPassword is returned when the submitted password does not
	// match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTokenNotFound is returned when no stored token matches the presented value.
	ErrTokenNotFound = errors.New("token not found")
)
