package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
)

func TestProcess_Defaults(t *testing.T) {
	cfg, err := process(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Database.MaxRetries)
	assert.Equal(t, "", cfg.Kafka.Broker)
	assert.False(t, cfg.IsProduction())

	loc, err := cfg.Location()
	assert.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestProcess_Prefixes(t *testing.T) {
	cfg, err := process(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "s3cret",
		"DB_HOST":      "db",
		"DB_NAME":      "ot",
		"REDIS_ADDR":   "cache:6379",
		"KAFKA_BROKER": "kafka:9092",
		"APP_ENV":      "production",
		"APP_TIMEZONE": "Asia/Manila",
	}))

	assert.NoError(t, err)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "ot", cfg.Database.Name)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "kafka:9092", cfg.Kafka.Broker)
	assert.True(t, cfg.IsProduction())

	loc, err := cfg.Location()
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Manila", loc.String())
}

func TestProcess_MissingSecret(t *testing.T) {
	_, err := process(context.Background(), envconfig.MapLookuper(map[string]string{}))
	assert.Error(t, err)
}
