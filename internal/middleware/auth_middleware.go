package middleware

import (
	"context"
	"strings"

	"optitrack/internal/domain"
	"optitrack/internal/shared/apperror"
	"optitrack/internal/shared/contextutil"
	"optitrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalContextKey = "principal"

// PrincipalResolver turns a bearer token into the identity it names.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (domain.Principal, error)
}

// Authenticate resolves the bearer token, if any, into a principal.
// A missing, invalid or expired token, or one naming an unknown subject,
// leaves the request anonymous; it never rejects the request itself.
func Authenticate(resolver PrincipalResolver, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("middleware.auth")

	return func(c *gin.Context) {
		principal := domain.Principal{}

		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if found && token != "" {
			p, err := resolver.ResolvePrincipal(c.Request.Context(), token)
			if err != nil {
				logger.Debug("bearer token rejected, continuing anonymous",
					zap.String("path", c.FullPath()),
					zap.Error(err),
				)
			} else {
				principal = p
			}
		}

		c.Set(principalContextKey, principal)
		c.Request = c.Request.WithContext(contextutil.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// GetPrincipal returns the principal attached by Authenticate, or anonymous.
func GetPrincipal(c *gin.Context) domain.Principal {
	if v, ok := c.Get(principalContextKey); ok {
		if p, ok := v.(domain.Principal); ok {
			return p
		}
	}
	return contextutil.GetPrincipal(c.Request.Context())
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetPrincipal(c).IsAnonymous() {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// RequireRole admits only the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p.IsAnonymous() {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}
		if !domain.HasRole(p, roles...) {
			response.AbortWithError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}

// EmployeeIDFunc extracts the target employee id of a per-employee route.
type EmployeeIDFunc func(c *gin.Context) string

func FromParam(name string) EmployeeIDFunc {
	return func(c *gin.Context) string { return c.Param(name) }
}

func FromQuery(name string) EmployeeIDFunc {
	return func(c *gin.Context) string { return c.Query(name) }
}

// RequireSelfOrAdmin lets admins through, and employees only for their own records.
func RequireSelfOrAdmin(target EmployeeIDFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p.IsAnonymous() {
			response.AbortWithError(c, apperror.ErrUnauthorized)
			return
		}
		if !domain.CanAccessEmployee(p, target(c)) {
			response.AbortWithError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
