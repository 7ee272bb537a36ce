package model

import (
	"encoding/json"
	"time"
)

// Department は従業員の所属部署。クライアントと共有する閉じた列挙型。
type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
	DepartmentOperations  Department = "Operations"
	DepartmentDesign      Department = "Design"
	DepartmentSupport     Department = "Support"
)

var departments = []Department{
	DepartmentEngineering,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentFinance,
	DepartmentOperations,
	DepartmentDesign,
	DepartmentSupport,
}

// Departments は定義済みの部署を定義順で返す。
func Departments() []Department {
	out := make([]Department, len(departments))
	copy(out, departments)
	return out
}

// ParseDepartment は文字列を部署に変換する。完全一致のみ受け付ける。
func ParseDepartment(s string) (Department, bool) {
	for _, d := range departments {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Employee は従業員レコードを表す。
type Employee struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	Department  Department `json:"department"`
	Salary      float64    `json:"salary"`
	JoiningDate string     `json:"joiningDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// EmployeeInput は作成・置換リクエストの未検証フィールド。
// salaryは数値と数値文字列の両方を受け付けるため生のJSONのまま保持する。
type EmployeeInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Role        string          `json:"role"`
	Department  string          `json:"department"`
	Salary      json.RawMessage `json:"salary"`
	JoiningDate string          `json:"joiningDate"`
}
