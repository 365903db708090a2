// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/viewtrack/internal/model"
)

// ProfileRepository はプロファイルドキュメントの永続化インターフェース。
type ProfileRepository interface {
	// CreateIfAbsent はプロファイルを作成する。first-write-wins:
	// 同一user_idのプロファイルが既に存在する場合は何もせずfalseを返す。
	// created_atとlast_login_atはストレージ側で採番される。
	CreateIfAbsent(ctx context.Context, profile *model.UserProfile) (created bool, err error)

	// FindByID は指定ユーザーのプロファイルを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, userID string) (*model.UserProfile, error)
}

// WatchHistoryRepository は視聴履歴の永続化インターフェース。
type WatchHistoryRepository interface {
	// Append は視聴履歴エントリを追記する。キーは新規採番され、
	// watched_atはストレージ側で採番される。既存エントリは変更されない。
	Append(ctx context.Context, entry *model.WatchHistoryEntry) error
}

// AnalyticsRepository は日次分析パーティションへの追記インターフェース。
// 各イベントはパーティションキー（YYYY-MM-DD）と新規採番キーで追記される。
type AnalyticsRepository interface {
	// AppendVideoView は視聴イベントを指定日のパーティションに追記する。
	AppendVideoView(ctx context.Context, event *model.VideoViewEvent) error

	// AppendEngagement はエンゲージメントイベントを指定日のパーティションに追記する。
	AppendEngagement(ctx context.Context, event *model.EngagementEvent) error
}

// LikedVideoRepository はいいね済みビデオセットの永続化インターフェース。
type LikedVideoRepository interface {
	// Upsert はいいねエントリを作成または上書きする。
	// 既存エントリの場合はliked_atとnoteが更新される（冪等）。
	Upsert(ctx context.Context, userID, videoID, note string) error

	// Delete は指定エントリを削除する。存在しないキーの削除はエラーにならない。
	Delete(ctx context.Context, userID, videoID string) error

	// FindByUserAndVideo は(userID, videoID)のエントリを取得する。見つからない場合はnilを返す。
	FindByUserAndVideo(ctx context.Context, userID, videoID string) (*model.LikedVideo, error)

	// ListByUserID はユーザーのいいね一覧をliked_at降順で返す。
	ListByUserID(ctx context.Context, userID string) ([]*model.LikedVideo, error)
}
