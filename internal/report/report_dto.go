package report

type HoursQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

type EmployeeQuery struct {
	EmployeeID string `form:"employeeId" binding:"required,uuid"`
}

type HoursResponse struct {
	EmployeeID string  `json:"employeeId"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Hours      float64 `json:"hours"`
}
