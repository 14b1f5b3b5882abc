// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	// It is never surfaced to clients directly; login collapses it into
	// ErrInvalidCredentials to avoid revealing which field was wrong.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with
	// an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on any login failure, covering both
	// unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when a registration password does not meet
	// the minimum length requirement.
	ErrWeakPassword = errors.New("password must be at least 8 characters long")
)
