// Package security はアプリケーションのセキュリティ機能を提供する。
//
// NoteSanitizerService はお気に入り動画に添付されるメモをサニタイズし、
// 保存データにHTMLタグやスクリプトが混入することを防ぐ。
// bluemondayのStrictPolicyを使用し、すべてのタグを除去してプレーンテキストのみを残す。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NoteSanitizerService はメモのサニタイズ機能のインターフェースを定義する。
// お気に入り動画の登録時に使用される。
type NoteSanitizerService interface {
	// Sanitize はメモ文字列からすべてのHTMLタグを除去してプレーンテキストを返す。
	// 前後の空白はトリムされる。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// noteSanitizer はNoteSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type noteSanitizer struct {
	policy *bluemonday.Policy
}

// NewNoteSanitizer はNoteSanitizerServiceの新しいインスタンスを生成する。
// メモはリッチテキストではないため、StrictPolicy（全タグ除去）を使用する。
func NewNoteSanitizer() *noteSanitizer {
	return &noteSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize はメモからHTMLタグを除去してプレーンテキストを返す。
func (s *noteSanitizer) Sanitize(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
