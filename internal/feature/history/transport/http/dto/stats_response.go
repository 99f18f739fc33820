package dto

import (
	"time"

	"opticode_backend/internal/feature/history/domain/entity"
)

// StatsResponse is the wire representation of a user's aggregated history.
// LastActive is null when the user has no sessions.
type StatsResponse struct {
	Total        int64   `json:"total"`
	Level1Count  int64   `json:"level1_count"`
	Level2Count  int64   `json:"level2_count"`
	StarredCount int64   `json:"starred_count"`
	LastActive   *string `json:"last_active"`
}

// StatsResponseFromEntity converts domain stats to their wire form.
func StatsResponseFromEntity(s *entity.Stats) StatsResponse {
	resp := StatsResponse{
		Total:        s.Total,
		Level1Count:  s.Level1Count,
		Level2Count:  s.Level2Count,
		StarredCount: s.StarredCount,
	}
	if s.LastActive != nil {
		formatted := s.LastActive.UTC().Format(time.RFC3339)
		resp.LastActive = &formatted
	}
	return resp
}
