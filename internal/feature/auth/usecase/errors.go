// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with
	// an email that is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMissingFields is returned on registration when name, email or
	// password is empty after trimming.
	ErrMissingFields = errors.New("name, email and password are required")

	// ErrCredentialsRequired is returned on login when email or password is empty.
	ErrCredentialsRequired = errors.New("email and password are required")

	// ErrPasswordTooShort is returned when a registration password is shorter
	// than the minimum length.
	ErrPasswordTooShort = errors.New("password is too short")
)
