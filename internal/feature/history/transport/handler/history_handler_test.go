package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opticode_backend/internal/feature/history/domain/entity"
	"opticode_backend/internal/feature/history/usecase"
	jwtmw "opticode_backend/internal/platform/jwt"
)

// mockHistoryUsecase is a mock implementation of the HistoryUsecase interface.
type mockHistoryUsecase struct {
	ListFunc       func(ctx context.Context, ownerID string) ([]entity.OptimizationSession, error)
	DeleteFunc     func(ctx context.Context, id, ownerID string) error
	RenameFunc     func(ctx context.Context, id, ownerID, newName string) error
	ToggleStarFunc func(ctx context.Context, id, ownerID string) (bool, error)
	StatsFunc      func(ctx context.Context, ownerID string) (*entity.Stats, error)
}

func (m *mockHistoryUsecase) List(ctx context.Context, ownerID string) ([]entity.OptimizationSession, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockHistoryUsecase) Delete(ctx context.Context, id, ownerID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, ownerID)
	}
	return usecase.ErrSessionNotFound
}

func (m *mockHistoryUsecase) Rename(ctx context.Context, id, ownerID, newName string) error {
	if m.RenameFunc != nil {
		return m.RenameFunc(ctx, id, ownerID, newName)
	}
	return usecase.ErrSessionNotFound
}

func (m *mockHistoryUsecase) ToggleStar(ctx context.Context, id, ownerID string) (bool, error) {
	if m.ToggleStarFunc != nil {
		return m.ToggleStarFunc(ctx, id, ownerID)
	}
	return false, usecase.ErrSessionNotFound
}

func (m *mockHistoryUsecase) Stats(ctx context.Context, ownerID string) (*entity.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, ownerID)
	}
	return &entity.Stats{}, nil
}

// setupRouter wires the handler behind a stand-in for the JWT middleware.
func setupRouter(h *HistoryHandler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
	})
	r.GET("/api/history", h.List)
	r.DELETE("/api/history/:id", h.Delete)
	r.PATCH("/api/history/:id/rename", h.Rename)
	r.PATCH("/api/history/:id/star", h.Star)
	r.GET("/api/profile/stats", h.Stats)
	return r
}

func TestHistoryHandler_List(t *testing.T) {
	sessions := []entity.OptimizationSession{
		{
			ID:        "s-2",
			OwnerID:   "owner-1",
			Name:      "Session · 01 Mar 2026, 12:00",
			Level:     entity.Level2,
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "s-1",
			OwnerID:   "owner-1",
			Name:      "Session · 01 Mar 2026, 10:00",
			Level:     entity.Level1,
			Starred:   true,
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	h := NewHistoryHandler(&mockHistoryUsecase{
		ListFunc: func(ctx context.Context, ownerID string) ([]entity.OptimizationSession, error) {
			assert.Equal(t, "owner-1", ownerID)
			return sessions, nil
		},
	})

	router := setupRouter(h, "owner-1")
	req, _ := http.NewRequest(http.MethodGet, "/api/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sessions []map[string]any `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, "s-2", resp.Sessions[0]["_id"])
	assert.Equal(t, "owner-1", resp.Sessions[0]["user_id"])
	assert.Equal(t, true, resp.Sessions[1]["starred"])
}

func TestHistoryHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h := NewHistoryHandler(&mockHistoryUsecase{
			DeleteFunc: func(ctx context.Context, id, ownerID string) error {
				assert.Equal(t, "s-1", id)
				assert.Equal(t, "owner-1", ownerID)
				return nil
			},
		})

		router := setupRouter(h, "owner-1")
		req, _ := http.NewRequest(http.MethodDelete, "/api/history/s-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted": true}`, w.Body.String())
	})

	t.Run("not found or not owned", func(t *testing.T) {
		h := NewHistoryHandler(&mockHistoryUsecase{})

		router := setupRouter(h, "owner-2")
		req, _ := http.NewRequest(http.MethodDelete, "/api/history/s-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Session not found or not yours")
	})
}

func TestHistoryHandler_Rename(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		renameErr      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "renamed",
			body:           gin.H{"name": "My run"},
			renameErr:      nil,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"renamed": true}`,
		},
		{
			name:           "blank name",
			body:           gin.H{"name": "  "},
			renameErr:      usecase.ErrNameRequired,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "'name' is required"}`,
		},
		{
			name:           "not found",
			body:           gin.H{"name": "My run"},
			renameErr:      usecase.ErrSessionNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "Session not found or not yours"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistoryHandler(&mockHistoryUsecase{
				RenameFunc: func(ctx context.Context, id, ownerID, newName string) error {
					return tt.renameErr
				},
			})

			router := setupRouter(h, "owner-1")
			body, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPatch, "/api/history/s-1/rename", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHistoryHandler_Star(t *testing.T) {
	t.Run("returns the new value", func(t *testing.T) {
		h := NewHistoryHandler(&mockHistoryUsecase{
			ToggleStarFunc: func(ctx context.Context, id, ownerID string) (bool, error) {
				return true, nil
			},
		})

		router := setupRouter(h, "owner-1")
		req, _ := http.NewRequest(http.MethodPatch, "/api/history/s-1/star", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"starred": true}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		h := NewHistoryHandler(&mockHistoryUsecase{})

		router := setupRouter(h, "owner-1")
		req, _ := http.NewRequest(http.MethodPatch, "/api/history/s-1/star", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHistoryHandler_Stats(t *testing.T) {
	t.Run("with history", func(t *testing.T) {
		last := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
		h := NewHistoryHandler(&mockHistoryUsecase{
			StatsFunc: func(ctx context.Context, ownerID string) (*entity.Stats, error) {
				return &entity.Stats{Total: 4, Level1Count: 2, Level2Count: 1, StarredCount: 1, LastActive: &last}, nil
			},
		})

		router := setupRouter(h, "owner-1")
		req, _ := http.NewRequest(http.MethodGet, "/api/profile/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"stats": {
			"total": 4,
			"level1_count": 2,
			"level2_count": 1,
			"starred_count": 1,
			"last_active": "2026-03-01T13:00:00Z"
		}}`, w.Body.String())
	})

	t.Run("empty history", func(t *testing.T) {
		h := NewHistoryHandler(&mockHistoryUsecase{})

		router := setupRouter(h, "owner-1")
		req, _ := http.NewRequest(http.MethodGet, "/api/profile/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"stats": {
			"total": 0,
			"level1_count": 0,
			"level2_count": 0,
			"starred_count": 0,
			"last_active": null
		}}`, w.Body.String())
	})
}
