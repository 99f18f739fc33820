// Package handler provides the HTTP handlers for the history feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"opticode_backend/internal/feature/history/domain/entity"
	"opticode_backend/internal/feature/history/transport/http/dto"
	"opticode_backend/internal/feature/history/usecase"
	jwtmw "opticode_backend/internal/platform/jwt"
)

// HistoryUsecase defines the history operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type HistoryUsecase interface {
	List(ctx context.Context, ownerID string) ([]entity.OptimizationSession, error)
	Delete(ctx context.Context, id, ownerID string) error
	Rename(ctx context.Context, id, ownerID, newName string) error
	ToggleStar(ctx context.Context, id, ownerID string) (bool, error)
	Stats(ctx context.Context, ownerID string) (*entity.Stats, error)
}

// HistoryHandler handles HTTP requests for session history operations.
// All routes require the auth middleware upstream; the owner id always comes
// from the authenticated identity, never from the request.
type HistoryHandler struct {
	history HistoryUsecase
}

// NewHistoryHandler creates a new instance of HistoryHandler.
func NewHistoryHandler(history HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// List handles GET /api/history.
func (h *HistoryHandler) List(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)

	sessions, err := h.history.List(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("history listing failed", "error", err, "user_id", ownerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load history"})
		return
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, dto.SessionResponseFromEntity(&sessions[i]))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": out})
}

// Delete handles DELETE /api/history/:id.
func (h *HistoryHandler) Delete(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)
	id := c.Param("id")

	if err := h.history.Delete(c.Request.Context(), id, ownerID); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or not yours"})
			return
		}
		slog.Error("session delete failed", "error", err, "user_id", ownerID, "session_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Rename handles PATCH /api/history/:id/rename.
func (h *HistoryHandler) Rename(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)
	id := c.Param("id")

	var req dto.RenameReq
	_ = c.ShouldBindJSON(&req)

	if err := h.history.Rename(c.Request.Context(), id, ownerID, req.Name); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "'name' is required"})
		case errors.Is(err, usecase.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or not yours"})
		default:
			slog.Error("session rename failed", "error", err, "user_id", ownerID, "session_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not rename session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"renamed": true})
}

// Star handles PATCH /api/history/:id/star and responds with the new value.
func (h *HistoryHandler) Star(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)
	id := c.Param("id")

	starred, err := h.history.ToggleStar(c.Request.Context(), id, ownerID)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or not yours"})
			return
		}
		slog.Error("session star toggle failed", "error", err, "user_id", ownerID, "session_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"starred": starred})
}

// Stats handles GET /api/profile/stats.
func (h *HistoryHandler) Stats(c *gin.Context) {
	ownerID := c.GetString(jwtmw.ContextUserID)

	stats, err := h.history.Stats(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("stats aggregation failed", "error", err, "user_id", ownerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": dto.StatsResponseFromEntity(stats)})
}
