package dashboard

import (
	"optitrack/internal/domain"
	"optitrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	admin := r.Group("/admin/dashboard")
	admin.Use(middleware.Authorize(rbacService, domain.ResourceDashboard, domain.ActionReadAll))
	{
		admin.GET("/stats", h.AdminStats)
		admin.GET("/recent-activity", h.RecentActivity)
	}

	r.GET("/employee/dashboard/stats/:employeeId",
		middleware.RequireSelfOrAdmin(middleware.FromParam("employeeId")),
		h.EmployeeStats,
	)
}
