package model

import "time"

// Admin は管理画面にサインインできる管理者（プリンシパル）を表す。
// メールアドレスが自然キーで、パスワードはハッシュのみ保持する。
type Admin struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// SessionClaims は検証済みトークンから取り出した認証情報。
// Resource Guardを通過したリクエストのコンテキストにのみ存在する。
type SessionClaims struct {
	AdminID   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session はログイン・サインアップ成功時に発行される結果。
type Session struct {
	Token string
	Admin *Admin
}
