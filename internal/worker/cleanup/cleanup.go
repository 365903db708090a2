// Package cleanup は保持期限切れイベントデータの自動削除ジョブを提供する。
// 保持期間を超過した日次分析イベントと、設定されている場合は視聴履歴を
// 日次バッチで削除する。
package cleanup

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/hitoshi/viewtrack/internal/metrics"
)

// Executor はSQLのExecContextを抽象化するインターフェース。
// *sql.DB や *sql.Tx を受け付けることができる。
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// RetentionJob は保持期間を超過したイベントデータの自動削除ジョブ。
// 日次実行のバッチジョブとして設計されており、冪等な削除処理を保証する。
type RetentionJob struct {
	db        Executor
	logger    *slog.Logger
	collector metrics.MetricsCollector

	// AnalyticsRetentionDays は分析イベントの保持日数（デフォルト: 400）
	AnalyticsRetentionDays int
	// HistoryRetentionDays は視聴履歴の保持日数。0以下の場合は無期限保持。
	HistoryRetentionDays int
}

// NewRetentionJob は新しいRetentionJobを生成する。
func NewRetentionJob(db Executor, logger *slog.Logger, collector metrics.MetricsCollector) *RetentionJob {
	return &RetentionJob{
		db:                     db,
		logger:                 logger,
		collector:              collector,
		AnalyticsRetentionDays: 400,
		HistoryRetentionDays:   0,
	}
}

// Run は保持期間を超過したイベントデータを削除する。
// 分析テーブル2種は常に対象、視聴履歴はHistoryRetentionDaysが正の場合のみ対象。
// 冪等: 削除対象がない場合でもエラーにならない。
func (j *RetentionJob) Run(ctx context.Context) error {
	start := time.Now()

	targets := []struct {
		table  string
		column string
		days   int
	}{
		{table: "analytics_video_views", column: "recorded_at", days: j.AnalyticsRetentionDays},
		{table: "analytics_user_engagement", column: "recorded_at", days: j.AnalyticsRetentionDays},
	}
	if j.HistoryRetentionDays > 0 {
		targets = append(targets, struct {
			table  string
			column string
			days   int
		}{table: "watch_history", column: "watched_at", days: j.HistoryRetentionDays})
	}

	var total int64
	for _, target := range targets {
		interval := fmt.Sprintf("%d days", target.days)
		query := fmt.Sprintf(`DELETE FROM %s WHERE %s < now() - $1::interval`, target.table, target.column)

		result, err := j.db.ExecContext(ctx, query, interval)
		if err != nil {
			j.logger.Error("保持期限切れデータの削除に失敗しました",
				slog.String("table", target.table),
				slog.String("error", err.Error()),
				slog.Int("retention_days", target.days),
			)
			return fmt.Errorf("%sの削除に失敗: %w", target.table, err)
		}

		deleted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("削除件数の取得に失敗: %w", err)
		}

		j.collector.RecordRetentionDeleted(target.table, deleted)
		total += deleted
	}

	duration := time.Since(start)
	j.logger.Info("保持期限クリーンアップジョブが完了しました",
		slog.Int64("deleted_count", total),
		slog.Int("analytics_retention_days", j.AnalyticsRetentionDays),
		slog.Int("history_retention_days", j.HistoryRetentionDays),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)

	return nil
}
