// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is the opaque unique identifier for the user, assigned at creation.
	ID string

	// Name is the user's display name.
	Name string

	// Email is the user's email address, stored lowercased and trimmed.
	// It must be unique across all users.
	Email string

	// Password is the bcrypt hash of the user's password.
	// This field never leaves the auth feature.
	Password string

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time
}
