// Package tracking は視聴イベントとエンゲージメントイベントの記録を提供する。
//
// 視聴イベントは2箇所への逐次書き込み（ユーザーの視聴履歴と日次分析パーティション）、
// エンゲージメントイベントは日次分析パーティションへの単一書き込みとなる。
// 2書き込みはトランザクションで保護されない: 片方だけ成功した状態で失敗が報告されうる。
package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hitoshi/viewtrack/internal/metrics"
	"github.com/hitoshi/viewtrack/internal/model"
	"github.com/hitoshi/viewtrack/internal/repository"
)

// TrackViewRequest は視聴イベント記録の入力。
// watchTimeとcompletionPercentageは数値または数値文字列を受け付けるためany型で受ける。
type TrackViewRequest struct {
	VideoID              string `json:"videoId" validate:"required"`
	WatchTime            any    `json:"watchTime"`
	CompletionPercentage any    `json:"completionPercentage"`
	DeviceType           string `json:"deviceType"`
}

// TrackEngagementRequest はエンゲージメントイベント記録の入力。
type TrackEngagementRequest struct {
	Action     string         `json:"action" validate:"required"`
	Parameters map[string]any `json:"parameters"`
}

// Service はイベント記録のサービス層。
type Service struct {
	historyRepo   repository.WatchHistoryRepository
	analyticsRepo repository.AnalyticsRepository
	collector     metrics.MetricsCollector
	validate      *validator.Validate

	// テストで日付境界をまたぐケースを再現するため差し替え可能にする
	now func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	historyRepo repository.WatchHistoryRepository,
	analyticsRepo repository.AnalyticsRepository,
	collector metrics.MetricsCollector,
) *Service {
	return &Service{
		historyRepo:   historyRepo,
		analyticsRepo: analyticsRepo,
		collector:     collector,
		validate:      validator.New(),
		now:           time.Now,
	}
}

// dayPartition は現在時刻から日次分析パーティションのキー（YYYY-MM-DD、UTC）を導出する。
func dayPartition(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// TrackVideoView は視聴イベントを記録する。
// 書き込み順序: (1) ユーザーの視聴履歴へ追記、(2) 当日の分析パーティションへ追記。
// どちらかが失敗した場合、先行する書き込みのロールバックは行わず失敗を返す。
// タイムスタンプはすべてストレージ側で採番され、呼び出し元の時刻は信用しない。
func (s *Service) TrackVideoView(ctx context.Context, userID string, req TrackViewRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return model.NewInvalidArgumentError("videoIdは必須です")
	}

	if req.WatchTime == nil {
		return model.NewInvalidArgumentError("watchTimeは必須です")
	}
	watchTime, err := coerceInt(req.WatchTime)
	if err != nil {
		return model.NewInvalidArgumentError("watchTimeが不正です")
	}
	if watchTime <= 0 {
		return model.NewInvalidArgumentError("watchTimeは正の整数である必要があります")
	}

	// completionPercentageは0を有効値として受け付ける。欠落のみ拒否する。
	if req.CompletionPercentage == nil {
		return model.NewInvalidArgumentError("completionPercentageは必須です")
	}
	completion, err := coerceFloat(req.CompletionPercentage)
	if err != nil {
		return model.NewInvalidArgumentError("completionPercentageが不正です")
	}

	deviceType := req.DeviceType
	if deviceType == "" {
		deviceType = model.DefaultDeviceType
	}

	// パーティションキーは呼び出しごとに1回だけ書き込み時点で導出する
	day := dayPartition(s.now())

	entry := &model.WatchHistoryEntry{
		UserID:               userID,
		VideoID:              req.VideoID,
		WatchTime:            watchTime,
		CompletionPercentage: completion,
		DeviceType:           deviceType,
	}
	if err := s.historyRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("視聴履歴の追記に失敗しました: %w", err)
	}

	event := &model.VideoViewEvent{
		Day:                  day,
		VideoID:              req.VideoID,
		UserID:               userID,
		WatchTime:            watchTime,
		CompletionPercentage: completion,
		DeviceType:           deviceType,
	}
	if err := s.analyticsRepo.AppendVideoView(ctx, event); err != nil {
		// 視聴履歴の書き込みは既に成功している。補償処理は行わない。
		return fmt.Errorf("分析イベントの追記に失敗しました: %w", err)
	}

	slog.Info("視聴イベントを記録しました",
		slog.String("user_id", userID),
		slog.String("video_id", req.VideoID),
		slog.String("day", day),
	)
	s.collector.RecordViewTracked()

	return nil
}

// TrackUserEngagement はエンゲージメントイベントを当日の分析パーティションに記録する。
func (s *Service) TrackUserEngagement(ctx context.Context, userID string, req TrackEngagementRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return model.NewInvalidArgumentError("actionは必須です")
	}

	params := req.Parameters
	if params == nil {
		params = map[string]any{}
	}

	day := dayPartition(s.now())

	event := &model.EngagementEvent{
		Day:        day,
		UserID:     userID,
		Action:     req.Action,
		Parameters: params,
	}
	if err := s.analyticsRepo.AppendEngagement(ctx, event); err != nil {
		return fmt.Errorf("エンゲージメントイベントの追記に失敗しました: %w", err)
	}

	slog.Info("エンゲージメントイベントを記録しました",
		slog.String("user_id", userID),
		slog.String("action", req.Action),
		slog.String("day", day),
	)
	s.collector.RecordEngagementTracked(req.Action)

	return nil
}
