// Package security はアプリケーションのセキュリティ機能を提供する。
//
// MarkupDetector は従業員の自由記述フィールドにHTMLタグが含まれるかを判定する。
// 値は拒否も書き換えもしない。検出結果は監査ログに使う。
// 描画側の安全性はJSONエンコード時のHTMLエスケープで担保する。
// 判定にはbluemondayのStrictPolicy（全タグ除去）を使用する。
package security

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// MarkupDetector はテキストにHTMLマークアップが含まれるかを判定する。
type MarkupDetector interface {
	// ContainsMarkup はsにタグまたはコメントが含まれる場合にtrueを返す。
	// 「R&D」「R&amp;D」「a < b」のようなテキストはマークアップとみなさない。
	ContainsMarkup(s string) bool
}

// markupDetector はMarkupDetectorの実装。
// bluemondayのポリシーはスレッドセーフなので共有して使う。
type markupDetector struct {
	policy *bluemonday.Policy
}

// NewMarkupDetector はMarkupDetectorを生成する。
func NewMarkupDetector() *markupDetector {
	return &markupDetector{
		policy: bluemonday.StrictPolicy(),
	}
}

// ContainsMarkup はStrictPolicyでサニタイズした結果と元の文字列を
// それぞれ逆エスケープして比較する。エンティティ表記の差は無視される。
func (d *markupDetector) ContainsMarkup(s string) bool {
	if s == "" {
		return false
	}
	return html.UnescapeString(d.policy.Sanitize(s)) != html.UnescapeString(s)
}
