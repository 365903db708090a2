package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hitoshi/viewtrack/internal/model"
)

// ProfileBootstrapper はアカウント作成イベントからプロファイルを初期化するインターフェース。
type ProfileBootstrapper interface {
	// CreateDefaultProfile はデフォルトプロファイルを作成する。失敗はログのみで伝播しない。
	CreateDefaultProfile(ctx context.Context, record model.AuthUserRecord)
}

// WebhookHandler はIdPからのWebhook通知を処理するHTTPハンドラー。
// Webhook用の共有シークレットで認証する。
type WebhookHandler struct {
	bootstrapper ProfileBootstrapper
	secret       string
}

// NewWebhookHandler はWebhookHandlerを生成する。
func NewWebhookHandler(bootstrapper ProfileBootstrapper, secret string) *WebhookHandler {
	return &WebhookHandler{
		bootstrapper: bootstrapper,
		secret:       secret,
	}
}

// UserCreated はアカウント作成イベントを処理する。
// POST /webhooks/auth/user-created
//
// プロファイル作成はベストエフォートで、失敗してもIdP側のアカウント作成を
// ブロックしないよう、認証とボディ解析を通過したら常に204を返す。
func (h *WebhookHandler) UserCreated(w http.ResponseWriter, r *http.Request) {
	got := r.Header.Get("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	var record model.AuthUserRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		// 解析できないペイロードもIdPにはリトライさせない
		slog.Warn("Webhookペイロードの解析に失敗しました", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.bootstrapper.CreateDefaultProfile(r.Context(), record)

	w.WriteHeader(http.StatusNoContent)
}
