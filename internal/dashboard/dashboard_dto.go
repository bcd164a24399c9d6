package dashboard

type AdminStats struct {
	TotalEmployees          int64  `json:"totalEmployees"`
	PendingOvertimeRequests int64  `json:"pendingOvertimeRequests"`
	EmployeesClockedIn      int64  `json:"employeesClockedIn"`
	TotalHoursToday         string `json:"totalHoursAcrossAllEmployeesToday"`
}

type RecentPunch struct {
	ID        string `json:"id"`
	PunchType string `json:"punchType"`
	Timestamp string `json:"timestamp"`
}

type EmployeeStats struct {
	EmployeeID              string        `json:"employeeId"`
	EmployeeFullName        string        `json:"employeeFullName"`
	Department              string        `json:"department,omitempty"`
	TodayHours              string        `json:"todayHours"`
	WeeklyHours             string        `json:"weeklyHours"`
	CurrentStatus           string        `json:"currentStatus"`
	LastPunchTime           *string       `json:"lastPunchTime"`
	RecentPunches           []RecentPunch `json:"recentPunches"`
	PendingOvertimeRequests int64         `json:"pendingEmployeeOvertimeRequests"`
}

type Activity struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	PunchType    string `json:"punchType"`
	Timestamp    string `json:"timestamp"`
}

type RecentActivityQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
