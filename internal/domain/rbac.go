package domain

// Role names as stored on credentials and carried in tokens.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Resources and actions guarded by the route policy.
const (
	ResourcePunch      = "punch"
	ResourceOvertime   = "overtime"
	ResourceCredential = "credential"
	ResourceEmployee   = "employee"
	ResourceDashboard  = "dashboard"

	ActionCreate   = "create"
	ActionRead     = "read"
	ActionReadOwn  = "read_own"
	ActionReadAll  = "read_all"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionApprove  = "approve"
	ActionReset    = "reset"
)

// EnforceRequest asks the policy whether role may perform action on resource.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
