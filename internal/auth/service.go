// Package auth は管理者の資格情報管理とセッショントークンの発行・検証を提供する。
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/hitoshi/staffroll/internal/model"
	"github.com/hitoshi/staffroll/internal/validation"
)

var (
	// ErrInvalidCredentials はメールアドレス不明またはパスワード不一致を表す。
	// 呼び出し側にはどちらであるかを区別させない。
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken はメールアドレスが既に登録済みであることを表す。
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidToken は形式不正・署名不一致・アルゴリズム不一致のトークンを表す。
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken は有効期限を過ぎたトークンを表す。
	ErrExpiredToken = errors.New("token expired")
)

const (
	minPasswordLength = 8
	maxPasswordBytes  = 72 // bcryptが扱える上限
	maxNameLength     = 100
	maxEmailLength    = 255 // admins.emailの列幅
)

// Recorder は認証イベントを記録するインターフェース。
type Recorder interface {
	RecordLogin(success bool)
	RecordSignup()
}

type noopRecorder struct{}

func (noopRecorder) RecordLogin(bool) {}
func (noopRecorder) RecordSignup()    {}

// Service はログイン・サインアップ・トークン検証のビジネスロジックを提供する。
type Service struct {
	creds    *CredentialStore
	tokens   *TokenIssuer
	recorder Recorder
}

// NewService はServiceを生成する。recorderがnilの場合は何も記録しない。
func NewService(creds *CredentialStore, tokens *TokenIssuer, recorder Recorder) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		creds:    creds,
		tokens:   tokens,
		recorder: recorder,
	}
}

// Login はメールアドレスとパスワードを検証し、セッションを発行する。
// 初回呼び出し時、管理者が1人もいなければ初期管理者を作成する。
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if err := s.creds.EnsureDefaultAdmin(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure default admin: %w", err)
	}

	email = validation.NormalizeEmail(email)
	verr := &model.ValidationError{}
	checkEmail(verr, email)
	if password == "" {
		verr.Add("password", "Password required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	admin, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !s.creds.VerifyPassword(admin, password) {
		s.recorder.RecordLogin(false)
		slog.Warn("login failed", slog.String("email", email))
		return nil, ErrInvalidCredentials
	}

	session, err := s.issue(admin)
	if err != nil {
		return nil, err
	}
	s.recorder.RecordLogin(true)
	slog.Info("admin logged in", slog.String("admin_id", admin.ID))
	return session, nil
}

// Signup は管理者を新規登録し、そのままセッションを発行する。
// 入力の違反はすべて収集してValidationErrorとして返す。
func (s *Service) Signup(ctx context.Context, name, email, password string) (*model.Session, error) {
	name = strings.TrimSpace(name)
	email = validation.NormalizeEmail(email)

	verr := &model.ValidationError{}
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		verr.Add("name", "Name is required")
	case n > maxNameLength:
		verr.Add("name", "Name must be at most 100 characters")
	}
	checkEmail(verr, email)
	for _, msg := range PasswordViolations(password) {
		verr.Add("password", msg)
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	existing, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	admin, err := s.creds.Create(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	session, err := s.issue(admin)
	if err != nil {
		return nil, err
	}
	s.recorder.RecordSignup()
	slog.Info("admin signed up",
		slog.String("admin_id", admin.ID),
		slog.String("email", admin.Email),
	)
	return session, nil
}

// Verify はトークンを検証してクレームを返す。
func (s *Service) Verify(token string) (*model.SessionClaims, error) {
	return s.tokens.Verify(token)
}

func (s *Service) issue(admin *model.Admin) (*model.Session, error) {
	token, err := s.tokens.Mint(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &model.Session{Token: token, Admin: admin}, nil
}

// checkEmail は正規化済みメールアドレスの形式と長さを検証する。
func checkEmail(verr *model.ValidationError, email string) {
	switch {
	case !validation.IsEmail(email):
		verr.Add("email", "Valid email required")
	case len(email) > maxEmailLength:
		verr.Add("email", "Email must be at most 255 characters")
	}
}

// PasswordViolations はパスワードポリシーに違反する項目のメッセージを返す。
// 違反がなければnilを返す。
func PasswordViolations(password string) []string {
	var out []string
	if utf8.RuneCountInString(password) < minPasswordLength {
		out = append(out, "Password must be at least 8 characters")
	}
	if len(password) > maxPasswordBytes {
		out = append(out, "Password must be at most 72 bytes")
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper {
		out = append(out, "Password must contain an uppercase letter")
	}
	if !hasDigit {
		out = append(out, "Password must contain a number")
	}
	return out
}
