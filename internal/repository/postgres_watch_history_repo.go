package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/hitoshi/viewtrack/internal/model"
)

// PostgresWatchHistoryRepo はPostgreSQLを使用した視聴履歴リポジトリ。
type PostgresWatchHistoryRepo struct {
	db *sql.DB
}

// NewPostgresWatchHistoryRepo はPostgresWatchHistoryRepoを生成する。
func NewPostgresWatchHistoryRepo(db *sql.DB) *PostgresWatchHistoryRepo {
	return &PostgresWatchHistoryRepo{db: db}
}

// Append は視聴履歴エントリを追記する。
// キーはuuidで新規採番し、watched_atはDBのnow()で採番する。
// 採番されたIDとタイムスタンプはentryに書き戻される。
func (r *PostgresWatchHistoryRepo) Append(ctx context.Context, entry *model.WatchHistoryEntry) error {
	id := uuid.New().String()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO watch_history
		   (id, user_id, video_id, watch_time, completion_percentage, device_type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING watched_at`,
		id, entry.UserID, entry.VideoID, entry.WatchTime,
		entry.CompletionPercentage, entry.DeviceType,
	).Scan(&entry.WatchedAt)
	if err != nil {
		return fmt.Errorf("failed to append watch history entry: %w", err)
	}

	entry.ID = id
	return nil
}

// compile-time interface check
var _ WatchHistoryRepository = (*PostgresWatchHistoryRepo)(nil)
