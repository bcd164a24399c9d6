package punch

import (
	"optitrack/internal/domain"
	"optitrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	punches := r.Group("/punches")
	{
		punches.POST("/in",
			middleware.Authorize(rbacService, domain.ResourcePunch, domain.ActionCreate),
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb, nil),
			h.ClockIn,
		)
		punches.POST("/out",
			middleware.Authorize(rbacService, domain.ResourcePunch, domain.ActionCreate),
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb, nil),
			h.ClockOut,
		)
		punches.GET("/employee/:id",
			middleware.RequireSelfOrAdmin(middleware.FromParam("id")),
			h.ListByEmployee,
		)
	}

	admin := r.Group("/admin/punches")
	{
		admin.GET("/all",
			middleware.Authorize(rbacService, domain.ResourcePunch, domain.ActionReadAll),
			h.ListAll,
		)
	}
}
