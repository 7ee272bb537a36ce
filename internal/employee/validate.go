package employee

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hitoshi/staffroll/internal/model"
	"github.com/hitoshi/staffroll/internal/security"
	"github.com/hitoshi/staffroll/internal/validation"
)

const (
	maxNameLength        = 100
	maxRoleLength        = 100
	maxEmailLength       = 255
	minPhoneLength       = 7
	maxPhoneLength       = 15
	maxJoiningDateLength = 64 // employees.joining_dateの列幅
	minSalary            = 1
	maxSalary            = 10_000_000
)

// Validator は従業員入力を検証し、正規化済みの値を組み立てる。
// 自由記述フィールドの内容は長さ以外で拒否しない。
type Validator struct {
	markup security.MarkupDetector
}

// NewValidator はValidatorを生成する。
func NewValidator(markup security.MarkupDetector) *Validator {
	return &Validator{markup: markup}
}

// Validate は全フィールドを検証し、違反があれば全件をValidationErrorで返す。
// 成功時はID・タイムスタンプ未設定のEmployeeを返す。
func (v *Validator) Validate(in *model.EmployeeInput) (*model.Employee, error) {
	verr := &model.ValidationError{}

	name := strings.TrimSpace(in.Name)
	checkText(verr, "name", name, maxNameLength, "Name required", "Name must be at most 100 characters")

	email := validation.NormalizeEmail(in.Email)
	switch {
	case !validation.IsEmail(email):
		verr.Add("email", "Valid email required")
	case len(email) > maxEmailLength:
		verr.Add("email", "Email must be at most 255 characters")
	}

	phone := strings.TrimSpace(in.Phone)
	if n := utf8.RuneCountInString(phone); n < minPhoneLength || n > maxPhoneLength {
		verr.Add("phone", "Phone 7-15 digits")
	} else if !validation.IsDigits(phone) {
		verr.Add("phone", "Phone must be numeric")
	}

	role := strings.TrimSpace(in.Role)
	checkText(verr, "role", role, maxRoleLength, "Role required", "Role must be at most 100 characters")

	dept, ok := model.ParseDepartment(in.Department)
	if !ok {
		verr.Add("department", "Invalid department")
	}

	salary, ok := parseSalary(in.Salary)
	if !ok || !(salary >= minSalary && salary <= maxSalary) {
		verr.Add("salary", "Salary 1-10,000,000")
	}

	joiningDate := strings.TrimSpace(in.JoiningDate)
	checkText(verr, "joiningDate", joiningDate, maxJoiningDateLength, "Joining date required", "Joining date must be at most 64 characters")

	if err := verr.Err(); err != nil {
		return nil, err
	}

	return &model.Employee{
		Name:        name,
		Email:       email,
		Phone:       phone,
		Role:        role,
		Department:  dept,
		Salary:      salary,
		JoiningDate: joiningDate,
	}, nil
}

// MarkupFields はHTMLタグを含む自由記述フィールド名を返す。
func (v *Validator) MarkupFields(e *model.Employee) []string {
	var fields []string
	if v.markup.ContainsMarkup(e.Name) {
		fields = append(fields, "name")
	}
	if v.markup.ContainsMarkup(e.Role) {
		fields = append(fields, "role")
	}
	return fields
}

// checkText は必須テキストの空チェックと文字数上限チェックを行う。
func checkText(verr *model.ValidationError, field, value string, limit int, requiredMsg, tooLongMsg string) {
	switch n := utf8.RuneCountInString(value); {
	case n == 0:
		verr.Add(field, requiredMsg)
	case n > limit:
		verr.Add(field, tooLongMsg)
	}
}

// parseSalary はJSON数値または数値文字列を受け付ける。
func parseSalary(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if !isDecimal(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

// isDecimal はsが符号・数字・小数点・指数表記のみで構成されているかを判定する。
// ParseFloatが受け付ける16進表記、桁区切りの_、Inf、NaNを除外する。
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '+', r == '-', r == '.', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}
