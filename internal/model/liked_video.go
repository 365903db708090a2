package model

import "time"

// LikedVideo は(ユーザーID, ビデオID)ごとに1件のいいねエントリ。
// addで作成または上書き（タイムスタンプとノートを更新）、removeで削除される。
// 両操作とも冪等で、存在しないエントリのremoveはエラーにならない。
type LikedVideo struct {
	UserID  string
	VideoID string
	Note    string
	LikedAt time.Time
}
