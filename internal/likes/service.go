// Package likes はユーザーごとのお気に入り動画セットの管理を提供する。
package likes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/viewtrack/internal/metrics"
	"github.com/hitoshi/viewtrack/internal/model"
	"github.com/hitoshi/viewtrack/internal/repository"
	"github.com/hitoshi/viewtrack/internal/security"
)

// Service はお気に入り管理のサービス層。
// 登録・解除はともに冪等で、同一キーへの再登録はタイムスタンプとメモを更新する。
type Service struct {
	likedRepo repository.LikedVideoRepository
	sanitizer security.NoteSanitizerService
	collector metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	likedRepo repository.LikedVideoRepository,
	sanitizer security.NoteSanitizerService,
	collector metrics.MetricsCollector,
) *Service {
	return &Service{
		likedRepo: likedRepo,
		sanitizer: sanitizer,
		collector: collector,
	}
}

// AddLikedVideo はお気に入りエントリを作成または上書きする。
// メモはサニタイズしてから保存する。タイムスタンプはストレージ側で採番される。
func (s *Service) AddLikedVideo(ctx context.Context, userID, videoID, note string) error {
	if videoID == "" {
		return model.NewInvalidArgumentError("videoIdは必須です")
	}

	sanitized := s.sanitizer.Sanitize(note)

	if err := s.likedRepo.Upsert(ctx, userID, videoID, sanitized); err != nil {
		return fmt.Errorf("お気に入りの登録に失敗しました: %w", err)
	}

	slog.Info("お気に入りを登録しました",
		slog.String("user_id", userID),
		slog.String("video_id", videoID),
	)
	s.collector.RecordLikeAdded()

	return nil
}

// RemoveLikedVideo はお気に入りエントリを削除する。
// 存在しないキーの削除は成功として扱う（冪等）。
func (s *Service) RemoveLikedVideo(ctx context.Context, userID, videoID string) error {
	if videoID == "" {
		return model.NewInvalidArgumentError("videoIdは必須です")
	}

	if err := s.likedRepo.Delete(ctx, userID, videoID); err != nil {
		return fmt.Errorf("お気に入りの解除に失敗しました: %w", err)
	}

	slog.Info("お気に入りを解除しました",
		slog.String("user_id", userID),
		slog.String("video_id", videoID),
	)
	s.collector.RecordLikeRemoved()

	return nil
}

// ListLikedVideos はユーザーのお気に入り一覧を登録日時の降順で返す。
func (s *Service) ListLikedVideos(ctx context.Context, userID string) ([]*model.LikedVideo, error) {
	videos, err := s.likedRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("お気に入り一覧の取得に失敗しました: %w", err)
	}
	if videos == nil {
		videos = []*model.LikedVideo{}
	}
	return videos, nil
}
