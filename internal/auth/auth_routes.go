package auth

import (
	"optitrack/internal/domain"
	"optitrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.GET("/me", middleware.RequireAuth(), handler.Me)
		auth.POST("/provision",
			middleware.Authorize(rbacService, domain.ResourceCredential, domain.ActionCreate),
			handler.Provision,
		)
	}

	setup := r.Group("/password-setup")
	{
		setup.POST("/initiate",
			middleware.Authorize(rbacService, domain.ResourceCredential, domain.ActionReset),
			handler.InitiatePasswordSetup,
		)
		setup.POST("/set", middleware.RateLimitByIP(0.2, 5), handler.CompletePasswordSetup)
	}
}
