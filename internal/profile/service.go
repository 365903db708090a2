// Package profile は新規アカウントのデフォルトプロファイル作成を提供する。
package profile

import (
	"context"
	"log/slog"

	"github.com/hitoshi/viewtrack/internal/metrics"
	"github.com/hitoshi/viewtrack/internal/model"
	"github.com/hitoshi/viewtrack/internal/repository"
)

// Service はプロファイル初期化のサービス層。
// アカウント作成イベントを受けてデフォルトプロファイルを書き込む。
type Service struct {
	profileRepo repository.ProfileRepository
	collector   metrics.MetricsCollector
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(profileRepo repository.ProfileRepository, collector metrics.MetricsCollector) *Service {
	return &Service{
		profileRepo: profileRepo,
		collector:   collector,
	}
}

// CreateDefaultProfile はアカウント作成イベントからデフォルトプロファイルを作成する。
// 既にプロファイルが存在する場合は上書きしない（first-write-wins）。
// 失敗はログに記録するのみで、呼び出し元のアカウント作成処理には影響させない。
func (s *Service) CreateDefaultProfile(ctx context.Context, record model.AuthUserRecord) {
	if record.UID == "" {
		slog.Warn("アカウントIDが空のためプロファイル作成をスキップします")
		s.collector.RecordProfileBootstrapFailure()
		return
	}

	p := &model.UserProfile{
		UserID:      record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
		PhoneNumber: record.PhoneNumber,
		Role:        model.RoleUser,
		Preferences: defaultPreferences(),
		Profile:     defaultProfileDetails(record.DisplayName),
	}

	created, err := s.profileRepo.CreateIfAbsent(ctx, p)
	if err != nil {
		slog.Error("デフォルトプロファイルの作成に失敗しました",
			slog.String("user_id", record.UID),
			slog.String("error", err.Error()),
		)
		s.collector.RecordProfileBootstrapFailure()
		return
	}

	if !created {
		// 既存プロファイルは維持する
		slog.Info("プロファイルは既に存在するため作成をスキップしました",
			slog.String("user_id", record.UID),
		)
		return
	}

	slog.Info("デフォルトプロファイルを作成しました",
		slog.String("user_id", record.UID),
	)
	s.collector.RecordProfileBootstrapSuccess()
}
