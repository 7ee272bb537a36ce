package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/staffroll/internal/model"
)

// EmployeeServiceInterface は従業員ハンドラーが必要とするサービスインターフェース。
type EmployeeServiceInterface interface {
	List(ctx context.Context) ([]*model.Employee, error)
	Get(ctx context.Context, id string) (*model.Employee, error)
	Create(ctx context.Context, in *model.EmployeeInput) (*model.Employee, error)
	Replace(ctx context.Context, id string, in *model.EmployeeInput) (*model.Employee, error)
	Remove(ctx context.Context, id string) error
}

// EmployeeHandler は従業員レコードのHTTPハンドラー。
type EmployeeHandler struct {
	service EmployeeServiceInterface
}

// NewEmployeeHandler はEmployeeHandlerを生成する。
func NewEmployeeHandler(service EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type messageResponse struct {
	Message string `json:"message"`
}

// ListEmployees は全従業員を作成日時の新しい順で返す。
// GET /employees
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if employees == nil {
		employees = []*model.Employee{}
	}

	writeJSON(w, http.StatusOK, employees)
}

// GetEmployee は従業員を1件返す。
// GET /employees/{id}
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// CreateEmployee は従業員を登録する。
// POST /employees
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var in model.EmployeeInput
	if !decodeJSON(w, r, &in) {
		return
	}

	employee, err := h.service.Create(r.Context(), &in)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, employee)
}

// ReplaceEmployee は従業員レコードを全フィールド置換する。
// PUT /employees/{id}
func (h *EmployeeHandler) ReplaceEmployee(w http.ResponseWriter, r *http.Request) {
	var in model.EmployeeInput
	if !decodeJSON(w, r, &in) {
		return
	}

	employee, err := h.service.Replace(r.Context(), chi.URLParam(r, "id"), &in)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

// DeleteEmployee は従業員を削除する。
// DELETE /employees/{id}
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Employee deleted"})
}
