package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"opticode_backend/internal/app/di"
	"opticode_backend/internal/app/router"
	analysishandler "opticode_backend/internal/feature/analysis/transport/handler"
	analysisusecase "opticode_backend/internal/feature/analysis/usecase"
	authadapters "opticode_backend/internal/feature/auth/adapters"
	authhandler "opticode_backend/internal/feature/auth/transport/handler"
	authusecase "opticode_backend/internal/feature/auth/usecase"
	historyhandler "opticode_backend/internal/feature/history/transport/handler"
	historyusecase "opticode_backend/internal/feature/history/usecase"
	platformdb "opticode_backend/internal/platform/db"
	jwtmw "opticode_backend/internal/platform/jwt"
	platformredis "opticode_backend/internal/platform/redis"
)

// tokenLifetime is how long an issued login token stays valid.
const tokenLifetime = 7 * 24 * time.Hour

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewGenerator(secret, tokenLifetime)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	historyUC := historyusecase.NewHistoryUsecase(sessionRepo)
	analysisUC := analysisusecase.NewAnalysisUsecase(di.NewPipeline(), sessionRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	historyH := historyhandler.NewHistoryHandler(historyUC)
	analysisH := analysishandler.NewAnalysisHandler(analysisUC)

	// ルータ生成
	r := router.NewRouter(authH, analysisH, historyH, tokens)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
