package overtime

import (
	"optitrack/internal/domain"
	"optitrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	overtime := r.Group("/overtime")
	{
		overtime.POST("/request",
			middleware.Authorize(rbacService, domain.ResourceOvertime, domain.ActionCreate),
			middleware.Idempotency(rdb, nil),
			h.Submit,
		)

		own := overtime.Group("/employee")
		own.Use(middleware.Authorize(rbacService, domain.ResourceOvertime, domain.ActionReadOwn))
		{
			own.GET("/pending", h.ListPending)
			own.GET("/approved", h.ListApproved)
		}

		admin := overtime.Group("/admin")
		{
			admin.GET("/pending",
				middleware.Authorize(rbacService, domain.ResourceOvertime, domain.ActionReadAll),
				h.ListAllPending,
			)
			admin.PUT("/approve/:id",
				middleware.Authorize(rbacService, domain.ResourceOvertime, domain.ActionApprove),
				h.Approve,
			)
			admin.PUT("/reject/:id",
				middleware.Authorize(rbacService, domain.ResourceOvertime, domain.ActionApprove),
				h.Reject,
			)
		}
	}
}
