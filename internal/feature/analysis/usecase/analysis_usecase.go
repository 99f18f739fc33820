package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"opticode_backend/internal/feature/analysis/domain/entity"
	historyentity "opticode_backend/internal/feature/history/domain/entity"
)

// levelAliases maps the spellings older clients still send onto the
// canonical level names.
var levelAliases = map[string]string{
	"LEVEL_1": historyentity.Level1,
	"LEVEL_2": historyentity.Level2,
	"level_1": historyentity.Level1,
	"level_2": historyentity.Level2,
}

// validLevels is the set of canonical optimization levels.
var validLevels = map[string]struct{}{
	historyentity.LevelNone: {},
	historyentity.Level1:    {},
	historyentity.Level2:    {},
}

// Pipeline is the external code-optimization engine, opaque to this service.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type Pipeline interface {
	Run(ctx context.Context, code, level string) (*entity.PipelineResult, error)
}

// SessionSaver persists one optimization run for a user.
type SessionSaver interface {
	Save(ctx context.Context, s *historyentity.OptimizationSession) error
}

// analysisUsecase orchestrates pipeline runs and best-effort persistence.
type analysisUsecase struct {
	pipeline Pipeline
	sessions SessionSaver
}

// NewAnalysisUsecase creates a new instance of analysisUsecase.
func NewAnalysisUsecase(pipeline Pipeline, sessions SessionSaver) *analysisUsecase {
	return &analysisUsecase{pipeline: pipeline, sessions: sessions}
}

// NormalizeLevel resolves aliases and validates an optimization level.
// An empty level defaults to none.
func NormalizeLevel(level string) (string, error) {
	if level == "" {
		level = historyentity.LevelNone
	}
	if canonical, ok := levelAliases[level]; ok {
		level = canonical
	}
	if _, ok := validLevels[level]; !ok {
		return "", ErrInvalidLevel
	}
	return level, nil
}

// Analyse runs the pipeline for the authenticated user and auto-saves the
// result when its error check passed. Persistence is best effort: a storage
// failure is logged and the analysis still succeeds with a nil session id.
func (u *analysisUsecase) Analyse(ctx context.Context, ownerID, code, level string) (*entity.PipelineResult, *string, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil, ErrCodeRequired
	}

	level, err := NormalizeLevel(level)
	if err != nil {
		return nil, nil, err
	}

	result, err := u.pipeline.Run(ctx, code, level)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline run failed: %w", err)
	}

	var sessionID *string
	if result.PassedErrorCheck {
		session := &historyentity.OptimizationSession{
			OwnerID:           ownerID,
			OriginalCode:      result.OriginalCode,
			OptimizedCode:     result.OptimizedCode,
			Level:             level,
			Changes:           result.ChangesForLevel(level),
			OriginalAnalysis:  result.OriginalAnalysis,
			OptimizedAnalysis: result.OptimizedAnalysis,
			Error:             result.Error,
		}
		if saveErr := u.sessions.Save(ctx, session); saveErr != nil {
			// Deliberate discard: analysis success must not depend on storage.
			slog.Error("failed to persist optimization session", "error", saveErr, "user_id", ownerID)
		} else {
			sessionID = &session.ID
		}
	}

	return result, sessionID, nil
}
