package overtime

import "github.com/shopspring/decimal"

type SubmitOvertimeRequest struct {
	OvertimeDate   string          `json:"overtimeDate" binding:"required"`
	RequestedHours decimal.Decimal `json:"requestedHours"`
	Reason         *string         `json:"reason" binding:"omitempty,max=1000"`
}

type OvertimeResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employeeId"`
	EmployeeFullName string  `json:"employeeFullName,omitempty"`
	RequestDateTime  string  `json:"requestDateTime"`
	OvertimeDate     string  `json:"overtimeDate"`
	RequestedHours   string  `json:"requestedHours"`
	Status           string  `json:"status"`
	Reason           *string `json:"reason,omitempty"`
}
