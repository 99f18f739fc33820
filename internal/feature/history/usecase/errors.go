// Package usecase implements the business logic for the history feature.
package usecase

import "errors"

var (
	// ErrSessionNotFound is returned when a session does not exist or is
	// owned by a different user. The two cases are deliberately
	// indistinguishable so callers cannot probe for other users' records.
	ErrSessionNotFound = errors.New("session not found or not owned by caller")

	// ErrNameRequired is returned when a rename target is empty after trimming.
	ErrNameRequired = errors.New("session name is required")
)
