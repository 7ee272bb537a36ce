package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hitoshi/staffroll/internal/database"
	"github.com/hitoshi/staffroll/internal/model"
	"github.com/jmoiron/sqlx"
)

// adminRow はadminsテーブルの1行。
type adminRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r adminRow) toModel() *model.Admin {
	return &model.Admin{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// PostgresAdminRepo はPostgreSQLを使用した管理者リポジトリ。
type PostgresAdminRepo struct {
	db *sqlx.DB
}

// NewPostgresAdminRepo はPostgresAdminRepoを生成する。
func NewPostgresAdminRepo(db *sqlx.DB) *PostgresAdminRepo {
	return &PostgresAdminRepo{db: db}
}

// FindByEmail は正規化済みメールアドレスで管理者を取得する。見つからない場合はnilを返す。
func (r *PostgresAdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var row adminRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, email, name, password_hash, created_at FROM admins WHERE email = $1`,
		email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return row.toModel(), nil
}

// Create は管理者を作成する。
// email列の一意制約が重複登録に対する唯一の保証となる。
func (r *PostgresAdminRepo) Create(ctx context.Context, admin *model.Admin) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO admins (id, email, name, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		admin.ID, admin.Email, admin.Name, admin.PasswordHash,
	).Scan(&admin.CreatedAt)
	if database.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

// Count は登録済み管理者の総数を返す。
func (r *PostgresAdminRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM admins`); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return n, nil
}

// compile-time interface check
var _ AdminRepository = (*PostgresAdminRepo)(nil)
