package security

import "testing"

// TestContainsMarkup_PlainText は通常のテキストがマークアップと判定されないことを検証する。
func TestContainsMarkup_PlainText(t *testing.T) {
	d := NewMarkupDetector()

	tests := []struct {
		name  string
		input string
	}{
		{"空文字列", ""},
		{"英字の氏名", "Ann Lee"},
		{"日本語の氏名", "山田 太郎"},
		{"アンパサンド", "R&D Lead"},
		{"不等号", "a < b"},
		{"引用符", `Senior "Platform" Engineer`},
		{"アポストロフィ", "O'Brien"},
		{"エンティティ参照", "R&amp;D Lead"},
		{"エスケープ済みの山括弧", "Ann&lt;b&gt;"},
		{"閉じない山括弧", "x > y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d.ContainsMarkup(tt.input) {
				t.Errorf("ContainsMarkup(%q) = true, want false", tt.input)
			}
		})
	}
}

// TestContainsMarkup_HTML はタグやスクリプトがマークアップと判定されることを検証する。
func TestContainsMarkup_HTML(t *testing.T) {
	d := NewMarkupDetector()

	tests := []struct {
		name  string
		input string
	}{
		{"scriptタグ", "<script>alert(1)</script>"},
		{"bタグ", "<b>Ann</b>"},
		{"imgのonerror", `<img src=x onerror=alert(1)>`},
		{"閉じタグのみ", "Ann</div>"},
		{"HTMLコメント", "Ann<!-- x -->"},
		{"未知のタグ", "Dev <ops>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !d.ContainsMarkup(tt.input) {
				t.Errorf("ContainsMarkup(%q) = false, want true", tt.input)
			}
		})
	}
}

// TestMarkupDetector_ImplementsInterface はインターフェースを満たすことを検証する。
func TestMarkupDetector_ImplementsInterface(t *testing.T) {
	var _ MarkupDetector = NewMarkupDetector()
}
