// Package entity defines the domain entities for the history feature.
package entity

import "time"

// Optimization levels recorded on a session.
const (
	LevelNone = "none"
	Level1    = "level1"
	Level2    = "level2"
)

// OptimizationSession is one persisted optimization run. Every operation on a
// session must match OwnerID against the caller's authenticated identity.
type OptimizationSession struct {
	// ID is the opaque unique identifier, assigned at creation.
	ID string

	// OwnerID references the owning user. Set at creation, never changed.
	OwnerID string

	// Name is a human-readable label, auto-generated from the creation
	// timestamp and mutable via rename.
	Name string

	// OriginalCode is the code the user submitted.
	OriginalCode string

	// OptimizedCode is the code returned by the pipeline (may equal the original).
	OptimizedCode string

	// Level is one of none, level1, level2.
	Level string

	// Changes describes the transformations the pipeline applied, in order.
	Changes []string

	// OriginalAnalysis and OptimizedAnalysis are opaque structured records
	// produced by the pipeline.
	OriginalAnalysis  map[string]any
	OptimizedAnalysis map[string]any

	// Error holds a non-fatal analysis problem reported by the pipeline, if any.
	Error *string

	// Starred defaults to false at creation.
	Starred bool

	// CreatedAt is the timestamp when the run was saved.
	CreatedAt time.Time
}

// Stats aggregates a user's optimization history.
type Stats struct {
	Total        int64
	Level1Count  int64
	Level2Count  int64
	StarredCount int64

	// LastActive is the newest CreatedAt across the user's sessions, or nil
	// when the user has none.
	LastActive *time.Time
}
