// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/staffroll/internal/model"
)

// ErrDuplicate は一意制約違反で書き込みが拒否されたことを表す。
var ErrDuplicate = errors.New("duplicate key")

// AdminRepository は管理者データの永続化インターフェース。
type AdminRepository interface {
	// FindByEmail は正規化済みメールアドレスで管理者を取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)

	// Create は管理者を作成する。メールアドレスが既に存在する場合はErrDuplicateを返す。
	Create(ctx context.Context, admin *model.Admin) error

	// Count は登録済み管理者の総数を返す。
	Count(ctx context.Context) (int, error)
}

// EmployeeRepository は従業員データの永続化インターフェース。
// 入力検証は呼び出し側で済ませ、ここでは検証済みの値のみを扱う。
type EmployeeRepository interface {
	// List は全従業員を作成日時の降順（同時刻はID降順）で返す。
	List(ctx context.Context) ([]*model.Employee, error)

	// FindByID は指定IDの従業員を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Employee, error)

	// Create は従業員を作成し、created_at/updated_atを埋めて返す。
	Create(ctx context.Context, employee *model.Employee) error

	// Replace は指定IDの従業員の全フィールドを置き換える。
	// 対象が存在しない場合はnilを返し、何も変更しない。
	Replace(ctx context.Context, employee *model.Employee) (*model.Employee, error)

	// Delete は指定IDの従業員を削除する。削除した場合はtrueを返す。
	Delete(ctx context.Context, id string) (bool, error)
}
