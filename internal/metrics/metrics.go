// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層およびワーカーから利用する。
type MetricsCollector interface {
	RecordViewTracked()
	RecordEngagementTracked(eventType string)
	RecordLikeAdded()
	RecordLikeRemoved()
	RecordProfileBootstrapSuccess()
	RecordProfileBootstrapFailure()
	RecordHTTPStatus(statusCode int)
	RecordRetentionDeleted(table string, count int64)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	viewsTracked      prometheus.Counter
	engagementTracked *prometheus.CounterVec
	likesAdded        prometheus.Counter
	likesRemoved      prometheus.Counter
	bootstrapSuccess  prometheus.Counter
	bootstrapFail     prometheus.Counter
	httpStatus        *prometheus.CounterVec
	retentionDeleted  *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		viewsTracked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viewtrack_views_tracked_total",
			Help: "記録された動画視聴イベントの合計数",
		}),
		engagementTracked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "viewtrack_engagement_tracked_total",
			Help: "イベント種別ごとのエンゲージメントイベント数",
		}, []string{"event_type"}),
		likesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viewtrack_likes_added_total",
			Help: "お気に入り登録の合計数",
		}),
		likesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viewtrack_likes_removed_total",
			Help: "お気に入り解除の合計数",
		}),
		bootstrapSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viewtrack_profile_bootstrap_success_total",
			Help: "デフォルトプロファイル作成成功の合計数",
		}),
		bootstrapFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viewtrack_profile_bootstrap_fail_total",
			Help: "デフォルトプロファイル作成失敗の合計数",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "viewtrack_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		retentionDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "viewtrack_retention_deleted_total",
			Help: "保持期限切れで削除された行数（テーブル別）",
		}, []string{"table"}),
	}

	reg.MustRegister(
		c.viewsTracked,
		c.engagementTracked,
		c.likesAdded,
		c.likesRemoved,
		c.bootstrapSuccess,
		c.bootstrapFail,
		c.httpStatus,
		c.retentionDeleted,
	)

	return c
}

// RecordViewTracked は視聴イベントの記録成功を記録する。
func (c *Collector) RecordViewTracked() {
	c.viewsTracked.Inc()
}

// RecordEngagementTracked はエンゲージメントイベントの記録成功を記録する。
func (c *Collector) RecordEngagementTracked(eventType string) {
	c.engagementTracked.WithLabelValues(eventType).Inc()
}

// RecordLikeAdded はお気に入り登録を記録する。
func (c *Collector) RecordLikeAdded() {
	c.likesAdded.Inc()
}

// RecordLikeRemoved はお気に入り解除を記録する。
func (c *Collector) RecordLikeRemoved() {
	c.likesRemoved.Inc()
}

// RecordProfileBootstrapSuccess はプロファイル作成成功を記録する。
func (c *Collector) RecordProfileBootstrapSuccess() {
	c.bootstrapSuccess.Inc()
}

// RecordProfileBootstrapFailure はプロファイル作成失敗を記録する。
func (c *Collector) RecordProfileBootstrapFailure() {
	c.bootstrapFail.Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRetentionDeleted は保持期限切れデータの削除行数を記録する。
func (c *Collector) RecordRetentionDeleted(table string, count int64) {
	c.retentionDeleted.WithLabelValues(table).Add(float64(count))
}

// SetupMetricsRoute は/metricsエンドポイントのハンドラーを返す。
// メトリクス用ポートは管理系のため、認証・レート制限の対象外。
func SetupMetricsRoute(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux
}

// NopCollector は何も記録しないMetricsCollector実装。テスト用。
type NopCollector struct{}

func (NopCollector) RecordViewTracked()                               {}
func (NopCollector) RecordEngagementTracked(eventType string)         {}
func (NopCollector) RecordLikeAdded()                                 {}
func (NopCollector) RecordLikeRemoved()                               {}
func (NopCollector) RecordProfileBootstrapSuccess()                   {}
func (NopCollector) RecordProfileBootstrapFailure()                   {}
func (NopCollector) RecordHTTPStatus(statusCode int)                  {}
func (NopCollector) RecordRetentionDeleted(table string, count int64) {}

var _ MetricsCollector = (*Collector)(nil)
var _ MetricsCollector = NopCollector{}
