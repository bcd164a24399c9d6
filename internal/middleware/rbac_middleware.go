package middleware

import (
	"optitrack/internal/domain"
	"optitrack/internal/shared/apperror"
	"optitrack/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can answer a role policy question.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// Authorize checks the caller's role against the policy for resource and action.
// Anonymous callers get 401, denied roles get 403.
func Authorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p.IsAnonymous() {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     p.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.AbortWithError(c, apperror.Wrap(err, apperror.CodeInternalError, "authorization check failed", 500))
			return
		}

		if !allowed {
			response.AbortWithError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
