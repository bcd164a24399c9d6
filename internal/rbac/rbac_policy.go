package rbac

import "optitrack/internal/domain"

type PolicyRow struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicy lists which roles may reach each guarded route.
// Owner-or-admin checks on per-employee resources are applied separately.
var DefaultPolicy = []PolicyRow{
	{domain.RoleEmployee, domain.ResourcePunch, domain.ActionCreate},
	{domain.RoleAdmin, domain.ResourcePunch, domain.ActionCreate},
	{domain.RoleAdmin, domain.ResourcePunch, domain.ActionReadAll},

	{domain.RoleEmployee, domain.ResourceOvertime, domain.ActionCreate},
	{domain.RoleEmployee, domain.ResourceOvertime, domain.ActionReadOwn},
	{domain.RoleAdmin, domain.ResourceOvertime, domain.ActionReadAll},
	{domain.RoleAdmin, domain.ResourceOvertime, domain.ActionApprove},

	{domain.RoleAdmin, domain.ResourceCredential, domain.ActionCreate},
	{domain.RoleAdmin, domain.ResourceCredential, domain.ActionReset},

	{domain.RoleAdmin, domain.ResourceEmployee, domain.ActionRead},
	{domain.RoleAdmin, domain.ResourceEmployee, domain.ActionCreate},
	{domain.RoleAdmin, domain.ResourceEmployee, domain.ActionUpdate},
	{domain.RoleAdmin, domain.ResourceEmployee, domain.ActionDelete},

	{domain.RoleAdmin, domain.ResourceDashboard, domain.ActionReadAll},
}
