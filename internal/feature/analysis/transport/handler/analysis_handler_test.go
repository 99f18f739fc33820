package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opticode_backend/internal/feature/analysis/domain/entity"
	"opticode_backend/internal/feature/analysis/usecase"
	jwtmw "opticode_backend/internal/platform/jwt"
)

// mockAnalysisUsecase is a mock implementation of the AnalysisUsecase interface.
type mockAnalysisUsecase struct {
	AnalyseFunc func(ctx context.Context, ownerID, code, level string) (*entity.PipelineResult, *string, error)
}

func (m *mockAnalysisUsecase) Analyse(ctx context.Context, ownerID, code, level string) (*entity.PipelineResult, *string, error) {
	if m.AnalyseFunc != nil {
		return m.AnalyseFunc(ctx, ownerID, code, level)
	}
	return &entity.PipelineResult{}, nil, nil
}

func setupAnalysisRouter(uc AnalysisUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, "owner-1")
		c.Next()
	})
	r.POST("/api/analyse", NewAnalysisHandler(uc).Analyse)
	return r
}

func TestAnalysisHandler_Analyse(t *testing.T) {
	t.Run("returns the pipeline result with the saved session id", func(t *testing.T) {
		sessionID := "session-1"
		uc := &mockAnalysisUsecase{
			AnalyseFunc: func(ctx context.Context, ownerID, code, level string) (*entity.PipelineResult, *string, error) {
				assert.Equal(t, "owner-1", ownerID)
				assert.Equal(t, "print(1)", code)
				assert.Equal(t, "level1", level)
				return &entity.PipelineResult{
					PassedErrorCheck: true,
					OriginalCode:     code,
					OptimizedCode:    "optimized",
					L1Changes:        []string{"hoisted invariant"},
				}, &sessionID, nil
			},
		}

		r := setupAnalysisRouter(uc)
		req := httptest.NewRequest(http.MethodPost, "/api/analyse",
			strings.NewReader(`{"code":"print(1)","optimization_level":"level1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"passed_error_check": true,
			"original_code": "print(1)",
			"optimized_code": "optimized",
			"l1_changes": ["hoisted invariant"],
			"l2": null,
			"original_analysis": null,
			"optimized_analysis": null,
			"error": null,
			"session_id": "session-1"
		}`, w.Body.String())
	})

	t.Run("session_id is null when the run was not persisted", func(t *testing.T) {
		uc := &mockAnalysisUsecase{
			AnalyseFunc: func(ctx context.Context, ownerID, code, level string) (*entity.PipelineResult, *string, error) {
				return &entity.PipelineResult{PassedErrorCheck: false}, nil, nil
			},
		}

		r := setupAnalysisRouter(uc)
		req := httptest.NewRequest(http.MethodPost, "/api/analyse",
			strings.NewReader(`{"code":"print(1)"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"session_id":null`)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name     string
			body     string
			ucErr    error
			wantCode int
			wantMsg  string
		}{
			{
				name:     "malformed JSON",
				body:     `{not json`,
				wantCode: http.StatusBadRequest,
				wantMsg:  "Request body must be valid JSON",
			},
			{
				name:     "missing code",
				body:     `{"code":""}`,
				ucErr:    usecase.ErrCodeRequired,
				wantCode: http.StatusBadRequest,
				wantMsg:  "'code' field is required and must be a non-empty string",
			},
			{
				name:     "invalid level",
				body:     `{"code":"print(1)","optimization_level":"turbo"}`,
				ucErr:    usecase.ErrInvalidLevel,
				wantCode: http.StatusBadRequest,
				wantMsg:  "'optimization_level' must be one of: level1, level2, none",
			},
			{
				name:     "pipeline failure",
				body:     `{"code":"print(1)"}`,
				ucErr:    errors.New("pipeline crashed"),
				wantCode: http.StatusInternalServerError,
				wantMsg:  "Internal server error — check server logs for details.",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := &mockAnalysisUsecase{
					AnalyseFunc: func(ctx context.Context, ownerID, code, level string) (*entity.PipelineResult, *string, error) {
						return nil, nil, tt.ucErr
					},
				}

				r := setupAnalysisRouter(uc)
				req := httptest.NewRequest(http.MethodPost, "/api/analyse", strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				assert.Equal(t, tt.wantCode, w.Code)
				assert.Contains(t, w.Body.String(), tt.wantMsg)
			})
		}
	})
}
