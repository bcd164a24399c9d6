package employee

import (
	"optitrack/internal/domain"
	"optitrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	employees := r.Group("/employees")
	employees.Use(middleware.RateLimitByUser(5, 20))
	{
		employees.GET("",
			middleware.Authorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.GetAll,
		)
		employees.GET("/:id",
			middleware.RequireSelfOrAdmin(middleware.FromParam("id")),
			handler.GetByID,
		)
		employees.POST("",
			middleware.Authorize(rbacService, domain.ResourceEmployee, domain.ActionCreate),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.Authorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.Authorize(rbacService, domain.ResourceEmployee, domain.ActionDelete),
			handler.Delete,
		)
	}
}
