// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create or update a
	// user with an email that is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login failure. It is deliberately
	// generic: the caller must not learn whether the email or the password
	// was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordTooShort is returned when a password does not meet the
	// minimum length requirement.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
)
