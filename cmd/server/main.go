package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"login_backend/internal/app/di"
	"login_backend/internal/app/router"
	authhandler "login_backend/internal/feature/auth/transport/handler"
	authusecase "login_backend/internal/feature/auth/usecase"
	"login_backend/internal/platform/db"
	"login_backend/internal/platform/externalapi/facerec"
	platformhttp "login_backend/internal/platform/http"
	platformredis "login_backend/internal/platform/redis"
)

func main() {
	// db
	gormDB := db.OpenDB()

	// Redis（任意）障害時はキャッシュなしで継続する
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

	// Repository
	userRepo := di.NewUserRepository(rdb, gormDB)

	// 顔認識クライアント
	faceCfg := facerec.LoadConfig()
	recognizer := facerec.NewClient(faceCfg, platformhttp.NewHTTPClient(faceCfg.Timeout))
	if faceCfg.BaseURL == "" {
		log.Println("[WARN] FACE_RECOGNITION_URL is not set. Face login will always fail.")
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, recognizer)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// ルータ生成
	r := router.NewRouter(authH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
