package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// Version はアプリケーションのバージョン。ビルド時に-ldflagsで上書きされる。
var Version = "dev"

// healthResponse はヘルスチェックのレスポンス。
type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// HealthHandler はヘルスチェックのHTTPハンドラー。
type HealthHandler struct{}

// NewHealthHandler はHealthHandlerを生成する。
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check はヘルスチェックを処理する。認証・依存チェックなしで常に200を返す。
// GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
		Services: map[string]string{
			"api": "operational",
		},
	})
}
