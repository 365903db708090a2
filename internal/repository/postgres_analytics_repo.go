package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hitoshi/viewtrack/internal/model"
)

// PostgresAnalyticsRepo はPostgreSQLを使用した日次分析リポジトリ。
// 各イベントはdayカラム（YYYY-MM-DD）をパーティションキーとして追記される。
type PostgresAnalyticsRepo struct {
	db *sql.DB
}

// NewPostgresAnalyticsRepo はPostgresAnalyticsRepoを生成する。
func NewPostgresAnalyticsRepo(db *sql.DB) *PostgresAnalyticsRepo {
	return &PostgresAnalyticsRepo{db: db}
}

// AppendVideoView は視聴イベントを指定日のパーティションに追記する。
// キーはuuidで新規採番し、recorded_atはDBのnow()で採番する。
func (r *PostgresAnalyticsRepo) AppendVideoView(ctx context.Context, event *model.VideoViewEvent) error {
	id := uuid.New().String()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO analytics_video_views
		   (id, day, video_id, user_id, watch_time, completion_percentage, device_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING recorded_at`,
		id, event.Day, event.VideoID, event.UserID,
		event.WatchTime, event.CompletionPercentage, event.DeviceType,
	).Scan(&event.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to append video view event: %w", err)
	}

	event.ID = id
	return nil
}

// AppendEngagement はエンゲージメントイベントを指定日のパーティションに追記する。
// パラメータマップはJSONBとして受領値のまま保存する（欠落時は空マップ）。
func (r *PostgresAnalyticsRepo) AppendEngagement(ctx context.Context, event *model.EngagementEvent) error {
	id := uuid.New().String()

	params := event.Parameters
	if params == nil {
		params = map[string]any{}
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal engagement parameters: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		`INSERT INTO analytics_user_engagement
		   (id, day, user_id, action, parameters)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING recorded_at`,
		id, event.Day, event.UserID, event.Action, paramsJSON,
	).Scan(&event.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to append engagement event: %w", err)
	}

	event.ID = id
	return nil
}

// compile-time interface check
var _ AnalyticsRepository = (*PostgresAnalyticsRepo)(nil)
