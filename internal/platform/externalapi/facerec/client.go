package facerec

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"login_backend/internal/feature/auth/usecase"
	"login_backend/internal/platform/externalapi/facerec/dto"
)

// Client は外部の顔認識マイクロサービスを呼び出すFaceRecognizer実装です。
// 契約上、トランスポート障害・タイムアウト・非2xx・不正なボディはすべて
// 「ノーマッチ」として扱い、呼び出し元へエラーの詳細を伝播しません。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがFaceRecognizerを実装していることをコンパイル時に検証します。
var _ usecase.FaceRecognizer = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// recognizeRequest は/recognizeエンドポイントへのリクエストボディです。
type recognizeRequest struct {
	Image string `json:"image"`
}

// Recognize はBase64画像を認識サービスにPOSTし、候補ユーザーIDを返します。
// マッチしない場合や呼び出しに失敗した場合はusecase.ErrFaceNotRecognizedを返します。
func (c *Client) Recognize(ctx context.Context, imageBase64 string) (uint, error) {
	body, err := json.Marshal(recognizeRequest{Image: imageBase64})
	if err != nil {
		return 0, usecase.ErrFaceNotRecognized
	}

	u := c.cfg.BaseURL + "/recognize"

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		slog.Warn("failed to build recognize request", "error", err)
		return 0, usecase.ErrFaceNotRecognized
	}
	req.Header.Set("Content-Type", "application/json")

	// リクエストを実行（タイムアウトはクライアント側で設定済み）
	res, err := c.client.Do(req)
	if err != nil {
		// 通信障害・タイムアウトはノーマッチとして吸収する
		slog.Warn("face recognition request failed", "error", err)
		return 0, usecase.ErrFaceNotRecognized
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		slog.Warn("face recognition returned non-2xx", "status", res.StatusCode)
		return 0, usecase.ErrFaceNotRecognized
	}

	// JSONレスポンスをDTOにデコード
	var resp dto.RecognizeResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		slog.Warn("failed to decode recognize response", "error", err)
		return 0, usecase.ErrFaceNotRecognized
	}

	// uidフィールド自体が無い場合はノーマッチ
	if resp.UID == nil {
		return 0, usecase.ErrFaceNotRecognized
	}

	return uint(*resp.UID), nil
}
