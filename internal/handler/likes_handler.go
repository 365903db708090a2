package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/viewtrack/internal/middleware"
	"github.com/hitoshi/viewtrack/internal/model"
)

// LikesServiceInterface はお気に入りハンドラーが必要とするサービスインターフェース。
type LikesServiceInterface interface {
	// AddLikedVideo はお気に入りエントリを作成または上書きする（冪等）。
	AddLikedVideo(ctx context.Context, userID, videoID, note string) error
	// RemoveLikedVideo はお気に入りエントリを削除する。存在しないキーも成功扱い。
	RemoveLikedVideo(ctx context.Context, userID, videoID string) error
	// ListLikedVideos はお気に入り一覧を登録日時の降順で返す。
	ListLikedVideos(ctx context.Context, userID string) ([]*model.LikedVideo, error)
}

// LikesHandler はお気に入り管理のHTTPハンドラー。
type LikesHandler struct {
	service LikesServiceInterface
}

// NewLikesHandler はLikesHandlerを生成する。
func NewLikesHandler(service LikesServiceInterface) *LikesHandler {
	return &LikesHandler{service: service}
}

// addLikedVideoRequest はお気に入り登録リクエストのボディ。
type addLikedVideoRequest struct {
	VideoID string `json:"videoId"`
	Note    string `json:"note"`
}

// likedVideoResponse はお気に入りエントリのAPIレスポンス。
type likedVideoResponse struct {
	VideoID string `json:"videoId"`
	Note    string `json:"note"`
	LikedAt string `json:"likedAt"`
}

// likedVideoListResponse はお気に入り一覧のAPIレスポンス。
type likedVideoListResponse struct {
	Videos []likedVideoResponse `json:"videos"`
}

// AddLiked はお気に入り登録を処理する。
// POST /api/videos/liked
func (h *LikesHandler) AddLiked(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	var req addLikedVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidArgumentError("リクエストボディの解析に失敗しました"))
		return
	}

	if err := h.service.AddLikedVideo(r.Context(), userID, req.VideoID, req.Note); err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w)
}

// RemoveLiked はお気に入り解除を処理する。
// DELETE /api/videos/liked/{videoId}
func (h *LikesHandler) RemoveLiked(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	videoID := chi.URLParam(r, "videoId")

	if err := h.service.RemoveLikedVideo(r.Context(), userID, videoID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeSuccessResponse(w)
}

// ListLiked はお気に入り一覧の取得を処理する。
// GET /api/videos/liked
func (h *LikesHandler) ListLiked(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	videos, err := h.service.ListLikedVideos(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := likedVideoListResponse{Videos: make([]likedVideoResponse, 0, len(videos))}
	for _, v := range videos {
		resp.Videos = append(resp.Videos, likedVideoResponse{
			VideoID: v.VideoID,
			Note:    v.Note,
			LikedAt: v.LikedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
