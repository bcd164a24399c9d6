package report

import (
	"optitrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/punches/employee/:id/hours",
		middleware.RequireSelfOrAdmin(middleware.FromParam("id")),
		h.HoursBetween,
	)

	reports := r.Group("/reports")
	reports.Use(middleware.RequireSelfOrAdmin(middleware.FromQuery("employeeId")))
	{
		reports.GET("/today-hours", h.TodayHours)
		reports.GET("/weekly-hours", h.WeeklyHours)
	}
}
