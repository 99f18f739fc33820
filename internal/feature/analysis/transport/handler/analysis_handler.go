// Package handler provides the HTTP handlers for the analysis feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"opticode_backend/internal/feature/analysis/domain/entity"
	"opticode_backend/internal/feature/analysis/transport/http/dto"
	"opticode_backend/internal/feature/analysis/usecase"
	jwtmw "opticode_backend/internal/platform/jwt"
)

// AnalysisUsecase defines the analysis operation consumed by this handler.
type AnalysisUsecase interface {
	Analyse(ctx context.Context, ownerID, code, level string) (*entity.PipelineResult, *string, error)
}

// analyseResponse is the pipeline result plus the id of the auto-saved
// session. A null session_id means the run was not persisted.
type analyseResponse struct {
	entity.PipelineResult
	SessionID *string `json:"session_id"`
}

// AnalysisHandler handles HTTP requests for optimization runs.
type AnalysisHandler struct {
	analysis AnalysisUsecase
}

// NewAnalysisHandler creates a new instance of AnalysisHandler.
func NewAnalysisHandler(analysis AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// Analyse handles POST /api/analyse. It requires the auth middleware upstream.
func (h *AnalysisHandler) Analyse(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)

	var req dto.AnalyseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be valid JSON"})
		return
	}

	result, sessionID, err := h.analysis.Analyse(c.Request.Context(), ownerID, req.Code, req.OptimizationLevel)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCodeRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "'code' field is required and must be a non-empty string"})
		case errors.Is(err, usecase.ErrInvalidLevel):
			c.JSON(http.StatusBadRequest, gin.H{"error": "'optimization_level' must be one of: level1, level2, none"})
		default:
			slog.Error("analysis failed", "error", err, "user_id", ownerID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error — check server logs for details."})
		}
		return
	}

	c.JSON(http.StatusOK, analyseResponse{PipelineResult: *result, SessionID: sessionID})
}
