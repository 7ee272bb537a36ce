// Package validation は複数のドメインで共有する入力検証の部品を提供する。
package validation

import (
	"net/mail"
	"strings"
)

// NormalizeEmail は前後の空白を除去し小文字化する。
// メールアドレスは大文字小文字を区別しない自然キーとして扱う。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail はsが表示名やコメントを含まない単一のメールアドレスかを判定する。
// ドメイン部にはドット区切りのTLDを要求する。
func IsEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return false
	}
	domain := s[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}

// IsDigits はsが空でなく、ASCII数字のみで構成されているかを判定する。
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
