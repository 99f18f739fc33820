// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "opticode_backend/internal/feature/analysis/transport/handler"
	authhandler "opticode_backend/internal/feature/auth/transport/handler"
	historyhandler "opticode_backend/internal/feature/history/transport/handler"
	"opticode_backend/internal/platform/http/handler"
	jwtmw "opticode_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(authH *authhandler.AuthHandler, analysisH *analysishandler.AnalysisHandler,
	historyH *historyhandler.HistoryHandler, verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")

	// 認証不要
	api.GET("/health", handler.Health)
	api.HEAD("/health", handler.Health)
	api.OPTIONS("/health", handler.Health)
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	// 認証必須のルート
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.GET("/auth/me", authH.Me)
		auth.POST("/analyse", analysisH.Analyse)
		auth.GET("/history", historyH.List)
		auth.DELETE("/history/:id", historyH.Delete)
		auth.PATCH("/history/:id/rename", historyH.Rename)
		auth.PATCH("/history/:id/star", historyH.Star)
		auth.GET("/profile/stats", historyH.Stats)
	}

	return r
}
