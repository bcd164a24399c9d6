package punch

type PunchResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	PunchType  string `json:"punchType"`
	Timestamp  string `json:"timestamp"`
}

type ListAllQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}
