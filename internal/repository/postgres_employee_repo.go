package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hitoshi/staffroll/internal/model"
	"github.com/jmoiron/sqlx"
)

const employeeColumns = `id, name, email, phone, role, department, salary, joining_date, created_at, updated_at`

// employeeRow はemployeesテーブルの1行。
type employeeRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Role        string    `db:"role"`
	Department  string    `db:"department"`
	Salary      float64   `db:"salary"`
	JoiningDate string    `db:"joining_date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r employeeRow) toModel() *model.Employee {
	return &model.Employee{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Role:        r.Role,
		Department:  model.Department(r.Department),
		Salary:      r.Salary,
		JoiningDate: r.JoiningDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// PostgresEmployeeRepo はPostgreSQLを使用した従業員リポジトリ。
type PostgresEmployeeRepo struct {
	db *sqlx.DB
}

// NewPostgresEmployeeRepo はPostgresEmployeeRepoを生成する。
func NewPostgresEmployeeRepo(db *sqlx.DB) *PostgresEmployeeRepo {
	return &PostgresEmployeeRepo{db: db}
}

// List は全従業員を作成日時の降順で返す。同時刻の場合はID降順で安定させる。
func (r *PostgresEmployeeRepo) List(ctx context.Context) ([]*model.Employee, error) {
	var rows []employeeRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]*model.Employee, len(rows))
	for i, row := range rows {
		employees[i] = row.toModel()
	}
	return employees, nil
}

// FindByID は指定IDの従業員を取得する。見つからない場合はnilを返す。
func (r *PostgresEmployeeRepo) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	var row employeeRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	return row.toModel(), nil
}

// Create は従業員を作成する。タイムスタンプはDB側で付与し、employeeに書き戻す。
func (r *PostgresEmployeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO employees (id, name, email, phone, role, department, salary, joining_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		employee.ID, employee.Name, employee.Email, employee.Phone, employee.Role,
		string(employee.Department), employee.Salary, employee.JoiningDate,
	).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// Replace は指定IDの従業員を単一のUPDATE文で置き換える（後勝ち）。
// 対象が存在しない場合はnilを返す。
func (r *PostgresEmployeeRepo) Replace(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	var row employeeRow
	err := r.db.GetContext(ctx, &row,
		`UPDATE employees
		 SET name = $2, email = $3, phone = $4, role = $5, department = $6,
		     salary = $7, joining_date = $8, updated_at = now()
		 WHERE id = $1
		 RETURNING `+employeeColumns,
		employee.ID, employee.Name, employee.Email, employee.Phone, employee.Role,
		string(employee.Department), employee.Salary, employee.JoiningDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return row.toModel(), nil
}

// Delete は指定IDの従業員を削除する。
func (r *PostgresEmployeeRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM employees WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// compile-time interface check
var _ EmployeeRepository = (*PostgresEmployeeRepo)(nil)
