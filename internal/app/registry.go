package app

import (
	"database/sql"
	"net/http"
	"time"

	"optitrack/internal/auth"
	"optitrack/internal/config"
	"optitrack/internal/dashboard"
	"optitrack/internal/employee"
	"optitrack/internal/metrics"
	"optitrack/internal/middleware"
	"optitrack/internal/notification"
	"optitrack/internal/overtime"
	"optitrack/internal/punch"
	"optitrack/internal/rbac"
	"optitrack/internal/rbac/infra"
	"optitrack/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	sender notification.Sender,
	loc *time.Location,
) (auth.Service, error) {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	overtimeRepo := overtime.NewRepository(gormDB)
	punchRepo := punch.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(enforcer, logger)
	if err := rbacService.LoadPolicy(rbac.DefaultPolicy); err != nil {
		return nil, err
	}

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, rdb, logger)
	authService := auth.NewService(
		db,
		authRepo,
		auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		employeeService,
		sender,
		auth.Options{FrontendURL: cfg.Mail.FrontendURL, ResetTokenTTL: cfg.Auth.ResetTokenTTL},
		logger,
	)
	punchService := punch.NewService(db, punchRepo, logger)
	reportService := report.NewService(punchRepo, loc, logger)
	overtimeService := overtime.NewService(db, overtimeRepo, employeeService, sender, logger)
	dashboardService := dashboard.NewService(employeeService, punchRepo, overtimeService, reportService, rdb, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	punchHandler := punch.NewHandler(punchService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	overtimeHandler := overtime.NewHandler(overtimeService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api",
		middleware.Authenticate(authService, logger),
		middleware.ContextLogger(logger),
	)
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		punch.RegisterRoutes(api, punchHandler, rbacService, rdb)
		report.RegisterRoutes(api, reportHandler)
		overtime.RegisterRoutes(api, overtimeHandler, rbacService, rdb)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
	}

	return authService, nil
}
