// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"login_backend/internal/api"
	"login_backend/internal/feature/auth/domain/entity"
	"login_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザー名とパスワードでユーザーを認証し、サニタイズ済みユーザーを返します。
	Login(ctx context.Context, username, password string) (*entity.User, error)
	// Register は新規ユーザーを登録し、サニタイズ済みユーザーを返します。
	Register(ctx context.Context, username, password string) (*entity.User, error)
	// FaceLogin はBase64画像から顔認識でユーザーを認証し、サニタイズ済みユーザーを返します。
	FaceLogin(ctx context.Context, imageBase64 string) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// toUserResponse はエンティティをレスポンスDTOに変換します。
// DTOには資格情報フィールドが存在しないため、ハッシュが漏れることはありません。
func toUserResponse(u *entity.User) api.UserResponse {
	return api.UserResponse{ID: u.ID, Username: u.Username}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginRequestにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（ユーザー名不明とパスワード誤りを区別しない）
// - 認証成功時はサニタイズ済みユーザー付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid username or password"})
		return
	}
	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterRequestにバインド
// - バリデーションエラー時は400を返却
// - ユーザー名重複時は409を返却
// - ストレージ障害時は500を返却（業務エラーと区別する）
// - 成功時はサニタイズ済みユーザー付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameAlreadyExists) {
			slog.Warn("register rejected", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "username already exists"})
			return
		}
		slog.Error("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		return
	}
	slog.Info("user registered", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// FaceLogin は顔認識ログインAPIエンドポイントを処理します。
// - リクエストJSONをFaceLoginRequestにバインド
// - 画像が空の場合は400を返却（リモート呼び出しは行われない）
// - マッチしない場合は401を返却（候補IDは公開しない）
// - 成功時はサニタイズ済みユーザー付きで200を返却
func (h *AuthHandler) FaceLogin(c *gin.Context) {
	var req api.FaceLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("face login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	user, err := h.auth.FaceLogin(c.Request.Context(), req.Image)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyImage) {
			slog.Warn("face login without image", "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image data is required"})
			return
		}
		slog.Warn("face login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "face not recognized"})
		return
	}
	slog.Info("face login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, toUserResponse(user))
}
