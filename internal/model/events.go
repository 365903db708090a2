package model

import "time"

// DefaultDeviceType はdeviceType未指定時のデフォルト値。
const DefaultDeviceType = "mobile"

// WatchHistoryEntry はユーザー所有の視聴履歴エントリ。
// 追記専用で、同一videoIdの複数エントリ（再視聴）を許容する。
// WatchedAtはストレージ側で採番され、呼び出し元の時刻は使用しない。
type WatchHistoryEntry struct {
	ID                   string
	UserID               string
	VideoID              string
	WatchTime            int
	CompletionPercentage float64
	DeviceType           string
	WatchedAt            time.Time
}

// VideoViewEvent は日次分析パーティションに追記される視聴イベント。
type VideoViewEvent struct {
	ID                   string
	Day                  string // YYYY-MM-DD（UTC）
	VideoID              string
	UserID               string
	WatchTime            int
	CompletionPercentage float64
	DeviceType           string
	RecordedAt           time.Time
}

// EngagementEvent は日次分析パーティションに追記されるエンゲージメントイベント。
// Parametersは自由形式のマップで、欠落時は空マップとして扱う。
type EngagementEvent struct {
	ID         string
	Day        string // YYYY-MM-DD（UTC）
	UserID     string
	Action     string
	Parameters map[string]any
	RecordedAt time.Time
}
