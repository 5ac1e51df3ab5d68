package router

import (
	"github.com/gin-gonic/gin"

	authhandler "login_backend/internal/feature/auth/transport/handler"
	platformhandler "login_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを配線したGinエンジンを生成します。
func NewRouter(authHandler *authhandler.AuthHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)

	// 元サービスと同じ /user プレフィックスを維持する
	user := r.Group("/user")
	{
		// ログイン
		user.POST("/login", authHandler.Login)
		// 新規ユーザー登録
		user.POST("/register", authHandler.Register)
		// 顔認識ログイン
		user.POST("/login/face", authHandler.FaceLogin)
	}

	return r
}
