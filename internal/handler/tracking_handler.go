package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/viewtrack/internal/middleware"
	"github.com/hitoshi/viewtrack/internal/model"
	"github.com/hitoshi/viewtrack/internal/tracking"
)

// TrackingServiceInterface はトラッキングハンドラーが必要とするサービスインターフェース。
type TrackingServiceInterface interface {
	// TrackVideoView は視聴イベントを視聴履歴と日次分析パーティションに記録する。
	TrackVideoView(ctx context.Context, userID string, req tracking.TrackViewRequest) error
	// TrackUserEngagement はエンゲージメントイベントを日次分析パーティションに記録する。
	TrackUserEngagement(ctx context.Context, userID string, req tracking.TrackEngagementRequest) error
}

// TrackingHandler はイベント記録のHTTPハンドラー。
type TrackingHandler struct {
	service TrackingServiceInterface
}

// NewTrackingHandler はTrackingHandlerを生成する。
func NewTrackingHandler(service TrackingServiceInterface) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// TrackView は視聴イベントの記録を処理する。
// POST /api/track/view
func (h *TrackingHandler) TrackView(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	var req tracking.TrackViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidArgumentError("リクエストボディの解析に失敗しました"))
		return
	}

	if err := h.service.TrackVideoView(r.Context(), userID, req); err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w)
}

// TrackEngagement はエンゲージメントイベントの記録を処理する。
// POST /api/track/engagement
func (h *TrackingHandler) TrackEngagement(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	var req tracking.TrackEngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidArgumentError("リクエストボディの解析に失敗しました"))
		return
	}

	if err := h.service.TrackUserEngagement(r.Context(), userID, req); err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w)
}
