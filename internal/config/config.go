package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type ServerConfig struct {
	Port         string        `env:"PORT, default=8080"`
	Env          string        `env:"APP_ENV, default=development"`
	Timezone     string        `env:"APP_TIMEZONE, default=Local"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT, default=5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT, default=10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT, default=60s"`
}

type AuthConfig struct {
	JWTSecret              string        `env:"JWT_SECRET, required"`
	TokenTTL               time.Duration `env:"TOKEN_TTL, default=24h"`
	ResetTokenTTL          time.Duration `env:"RESET_TOKEN_TTL, default=24h"`
	BootstrapAdminEmail    string        `env:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapAdminPassword string        `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

type DatabaseConfig struct {
	Host       string `env:"HOST, default=localhost"`
	User       string `env:"USER, default=postgres"`
	Password   string `env:"PASSWORD"`
	Name       string `env:"NAME, default=optitrack"`
	Port       string `env:"PORT, default=5432"`
	SSLMode    string `env:"SSLMODE, default=disable"`
	MaxRetries int    `env:"MAX_RETRIES, default=5"`
}

type RedisConfig struct {
	Addr string `env:"ADDR, default=localhost:6379"`
}

type KafkaConfig struct {
	Broker  string `env:"BROKER"`
	GroupID string `env:"GROUP_ID, default=optitrack-notification"`
}

type MailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	From         string `env:"MAIL_FROM, default=OptiTrack <noreply@optitrack.local>"`
	FrontendURL  string `env:"FRONTEND_URL, default=http://localhost:3000"`
}

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Database DatabaseConfig `env:", prefix=DB_"`
	Redis    RedisConfig    `env:", prefix=REDIS_"`
	Kafka    KafkaConfig    `env:", prefix=KAFKA_"`
	Mail     MailConfig
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Location resolves the timezone used for "today" and "this week" windows.
func (c *Config) Location() (*time.Location, error) {
	if c.Server.Timezone == "" || c.Server.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Server.Timezone)
}
