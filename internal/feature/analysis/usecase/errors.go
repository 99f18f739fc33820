// Package usecase implements the business logic for the analysis feature.
package usecase

import "errors"

var (
	// ErrCodeRequired is returned when the submitted code is empty after trimming.
	ErrCodeRequired = errors.New("code is required")

	// ErrInvalidLevel is returned when the optimization level is not one of
	// none, level1, level2 after alias normalization.
	ErrInvalidLevel = errors.New("invalid optimization level")
)
