package app

import (
	"context"
	"fmt"

	"optitrack/internal/auth"
	"optitrack/internal/config"
	"optitrack/internal/employee"
	"optitrack/internal/events"
	"optitrack/internal/messaging/kafka/producer"
	"optitrack/internal/metrics"
	"optitrack/internal/middleware"
	"optitrack/internal/notification"
	"optitrack/internal/overtime"
	"optitrack/internal/punch"
	"optitrack/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure, migrates the schema and mounts every module on router.
// The returned cleanup closes the connections it opened.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		return cleanup, fmt.Errorf("load timezone %q: %w", cfg.Server.Timezone, err)
	}

	gormDB, err := connection.ConnectGORMWithRetry(postgresOptions(cfg), cfg.Database.MaxRetries)
	if err != nil {
		return cleanup, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return cleanup, err
	}
	closers = append(closers, func() { _ = sqlDB.Close() })
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return cleanup, fmt.Errorf("migrate schema: %w", err)
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		return cleanup, err
	}
	closers = append(closers, func() { _ = rdb.Close() })
	logger.Info("redis connection established")

	sender, closeSender, err := buildSender(cfg, logger)
	if err != nil {
		return cleanup, err
	}
	closers = append(closers, closeSender)

	router.Use(
		middleware.RequestID(),
		metrics.Middleware("/metrics", "/healthz"),
	)

	authService, err := registerModules(router, cfg, sqlDB, gormDB, rdb, sender, loc)
	if err != nil {
		return cleanup, err
	}

	if err := authService.EnsureAdmin(ctx, cfg.Auth.BootstrapAdminEmail, cfg.Auth.BootstrapAdminPassword); err != nil {
		return cleanup, fmt.Errorf("bootstrap admin: %w", err)
	}

	return cleanup, nil
}

func postgresOptions(cfg *config.Config) connection.PostgresOptions {
	return connection.PostgresOptions{
		Host:     cfg.Database.Host,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		Port:     cfg.Database.Port,
		SSLMode:  cfg.Database.SSLMode,
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&auth.User{},
		&punch.Punch{},
		&overtime.OvertimeRequest{},
	)
}

// buildSender picks the outbound email path: the kafka topic when a broker is configured,
// direct delivery through resend when only an api key is set, otherwise a logging no-op.
func buildSender(cfg *config.Config, logger *zap.Logger) (notification.Sender, func(), error) {
	switch {
	case cfg.Kafka.Broker != "":
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, events.EmailRequestedTopic, cfg.Database.MaxRetries)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Info("email notifications queued through kafka", zap.String("topic", events.EmailRequestedTopic))
		return producer.NewEmailPublisher(writer), func() { _ = writer.Close() }, nil
	case cfg.Mail.ResendAPIKey != "":
		logger.Info("email notifications delivered directly through resend")
		return notification.NewResendSender(cfg.Mail.ResendAPIKey, cfg.Mail.From), func() {}, nil
	default:
		logger.Warn("no email transport configured, notifications are only logged")
		return notification.NewNoopSender(logger), func() {}, nil
	}
}
