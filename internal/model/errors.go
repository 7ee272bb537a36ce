// Package model はドメインモデルを定義する。
package model

import (
	"fmt"
	"strings"
)

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string       // エラーコード
	Message  string       // エラーメッセージ
	Category string       // カテゴリ: auth, validation, employee, system
	Action   string       // ユーザー向け対処方法
	Fields   []FieldError // フィールド単位のエラー（バリデーション時のみ）
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeEmployeeNotFound   = "EMPLOYEE_NOT_FOUND"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// FieldError は1フィールド分のバリデーション違反を表す。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError は入力検証で見つかった全ての違反をまとめたエラー。
// 最初の違反で打ち切らず、呼び出し側に完全なレポートを返すために使う。
type ValidationError struct {
	Fields []FieldError
}

// Add は違反を1件追加する。
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Has は指定フィールドに違反があるかを返す。
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err は違反が1件以上あれば自身を、なければnilを返す。
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationAPIError はバリデーションエラーを統一フォーマットに変換する。
// Messageには最初の違反メッセージを入れる（クライアントはmessageのみ表示する）。
func NewValidationAPIError(verr *ValidationError) *APIError {
	msg := "Validation failed"
	if len(verr.Fields) > 0 {
		msg = verr.Fields[0].Message
	}
	return &APIError{
		Code:     ErrCodeValidationFailed,
		Message:  msg,
		Category: "validation",
		Action:   "Correct the highlighted fields and try again.",
		Fields:   verr.Fields,
	}
}

// NewInvalidRequestError はリクエストボディの解析失敗エラーを生成する。
func NewInvalidRequestError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  "Request body could not be parsed",
		Category: "validation",
		Action:   "Send a valid JSON object.",
	}
}

// NewUnauthorizedError は認証失敗エラーを生成する。
// トークン欠落・改ざん・期限切れを区別しない。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "Invalid or expired token",
		Category: "auth",
		Action:   "Sign in again.",
	}
}

// NewInvalidCredentialsError はログイン失敗エラーを生成する。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid credentials",
		Category: "auth",
		Action:   "Check your email and password.",
	}
}

// NewEmailTakenError はメールアドレス重複エラーを生成する。
func NewEmailTakenError() *APIError {
	return &APIError{
		Code:     ErrCodeEmailTaken,
		Message:  "Email already registered",
		Category: "auth",
		Action:   "Sign in with the existing account or use another email.",
	}
}

// NewEmployeeNotFoundError は従業員未検出エラーを生成する。
func NewEmployeeNotFoundError(id string) *APIError {
	return &APIError{
		Code:     ErrCodeEmployeeNotFound,
		Message:  "Employee not found",
		Category: "employee",
		Action:   fmt.Sprintf("Check the employee ID: %s", id),
	}
}

// NewInternalError は内部エラーを生成する。詳細はログにのみ記録する。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  "Internal server error",
		Category: "system",
		Action:   "Try again later.",
	}
}
