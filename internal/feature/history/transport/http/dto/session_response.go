// Package dto defines data transfer objects for the history feature's HTTP transport layer.
package dto

import (
	"time"

	"opticode_backend/internal/feature/history/domain/entity"
)

// SessionResponse is the wire representation of one optimization session.
type SessionResponse struct {
	ID                string         `json:"_id"`
	UserID            string         `json:"user_id"`
	Name              string         `json:"name"`
	OriginalCode      string         `json:"original_code"`
	OptimizedCode     string         `json:"optimized_code"`
	Level             string         `json:"level"`
	Changes           []string       `json:"changes"`
	OriginalAnalysis  map[string]any `json:"original_analysis"`
	OptimizedAnalysis map[string]any `json:"optimized_analysis"`
	Error             *string        `json:"error"`
	Starred           bool           `json:"starred"`
	CreatedAt         string         `json:"created_at"`
}

// SessionResponseFromEntity converts a domain session to its wire form.
func SessionResponseFromEntity(s *entity.OptimizationSession) SessionResponse {
	changes := s.Changes
	if changes == nil {
		changes = []string{}
	}
	return SessionResponse{
		ID:                s.ID,
		UserID:            s.OwnerID,
		Name:              s.Name,
		OriginalCode:      s.OriginalCode,
		OptimizedCode:     s.OptimizedCode,
		Level:             s.Level,
		Changes:           changes,
		OriginalAnalysis:  s.OriginalAnalysis,
		OptimizedAnalysis: s.OptimizedAnalysis,
		Error:             s.Error,
		Starred:           s.Starred,
		CreatedAt:         s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
