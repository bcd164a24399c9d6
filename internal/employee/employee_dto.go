package employee

import (
	"sort"
	"strings"
)

type CreateEmployeeRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Department    string `json:"department"`
	Position      string `json:"position"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
	HireDate      string `json:"hireDate" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

type EmployeeResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Department    string `json:"department,omitempty"`
	Position      string `json:"position,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	HireDate      string `json:"hireDate,omitempty"`
}

type ListEmployeesQuery struct {
	Q          string `form:"q"`
	Department string `form:"department"`
	SortBy     string `form:"sortBy" binding:"omitempty,oneof=name email hireDate"`
}

// apply filters rows by a case-insensitive name/email search and exact department,
// then orders them. Rows arrive ordered by name.
func (q ListEmployeesQuery) apply(rows []EmployeeResponse) []EmployeeResponse {
	search := strings.ToLower(strings.TrimSpace(q.Q))
	out := make([]EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		if q.Department != "" && !strings.EqualFold(e.Department, q.Department) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.FullName), search) &&
			!strings.Contains(strings.ToLower(e.Email), search) {
			continue
		}
		out = append(out, e)
	}

	switch q.SortBy {
	case "email":
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Email) < strings.ToLower(out[j].Email)
		})
	case "hireDate":
		// YYYY-MM-DD sorts lexically; employees without a hire date go last.
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].HireDate, out[j].HireDate
			if a == "" || b == "" {
				return b == "" && a != ""
			}
			return a < b
		})
	}
	return out
}
