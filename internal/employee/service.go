// Package employee は従業員レコードの登録・参照・更新・削除のドメインロジックを提供する。
package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hitoshi/staffroll/internal/model"
	"github.com/hitoshi/staffroll/internal/repository"
)

// 変更操作の種別。メトリクスのラベルにも使う。
const (
	OpCreate  = "create"
	OpReplace = "replace"
	OpRemove  = "remove"
)

// Recorder は従業員の変更操作を記録するインターフェース。
type Recorder interface {
	RecordEmployeeMutation(op string)
}

type noopRecorder struct{}

func (noopRecorder) RecordEmployeeMutation(string) {}

// Service は従業員管理のサービス層。
// 検証はストアへのアクセスより前に行い、検証に失敗した場合は何も書き込まない。
type Service struct {
	repo      repository.EmployeeRepository
	validator *Validator
	recorder  Recorder
}

// NewService はServiceを生成する。recorderがnilの場合は何も記録しない。
func NewService(repo repository.EmployeeRepository, validator *Validator, recorder Recorder) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		repo:      repo,
		validator: validator,
		recorder:  recorder,
	}
}

// List は全従業員を新しく作成された順に返す。
func (s *Service) List(ctx context.Context) ([]*model.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Get は指定IDの従業員を返す。
// IDがUUIDとして解釈できない場合も存在しない場合と同じくNotFoundを返す。
func (s *Service) Get(ctx context.Context, id string) (*model.Employee, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, model.NewEmployeeNotFoundError(id)
	}

	employee, err := s.repo.FindByID(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if employee == nil {
		return nil, model.NewEmployeeNotFoundError(id)
	}
	return employee, nil
}

// Create は入力を検証して従業員を登録する。
func (s *Service) Create(ctx context.Context, in *model.EmployeeInput) (*model.Employee, error) {
	employee, err := s.validator.Validate(in)
	if err != nil {
		return nil, err
	}

	employee.ID = uuid.New().String()
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.recorder.RecordEmployeeMutation(OpCreate)
	slog.Info("employee created", slog.String("employee_id", employee.ID))
	s.auditMarkup(employee)
	return employee, nil
}

// Replace は指定IDの従業員の全フィールドを入力で置き換える。
// 部分更新は行わず、入力は作成時と同じ規則で検証する。
func (s *Service) Replace(ctx context.Context, id string, in *model.EmployeeInput) (*model.Employee, error) {
	candidate, err := s.validator.Validate(in)
	if err != nil {
		return nil, err
	}

	key, ok := parseID(id)
	if !ok {
		return nil, model.NewEmployeeNotFoundError(id)
	}
	candidate.ID = key

	updated, err := s.repo.Replace(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	if updated == nil {
		return nil, model.NewEmployeeNotFoundError(id)
	}

	s.recorder.RecordEmployeeMutation(OpReplace)
	slog.Info("employee updated", slog.String("employee_id", updated.ID))
	s.auditMarkup(updated)
	return updated, nil
}

// Remove は指定IDの従業員を削除する。
func (s *Service) Remove(ctx context.Context, id string) error {
	key, ok := parseID(id)
	if !ok {
		return model.NewEmployeeNotFoundError(id)
	}

	deleted, err := s.repo.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if !deleted {
		return model.NewEmployeeNotFoundError(id)
	}

	s.recorder.RecordEmployeeMutation(OpRemove)
	slog.Info("employee deleted", slog.String("employee_id", key))
	return nil
}

// auditMarkup は保存した自由記述フィールドにHTMLタグがあれば警告ログを出す。
// 値はそのまま保存・返却する。
func (s *Service) auditMarkup(e *model.Employee) {
	if fields := s.validator.MarkupFields(e); len(fields) > 0 {
		slog.Warn("employee text contains markup",
			slog.String("employee_id", e.ID),
			slog.Any("fields", fields),
		)
	}
}

// parseID はIDを正規形のUUID文字列に変換する。
func parseID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
