package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "aivault", cfg.Database.DBName)
	assert.Equal(t, 300*time.Second, cfg.Cache.DirectoryTTL)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.InDelta(t, 0.3, cfg.AI.Temperature, 0.0001)
	assert.Equal(t, time.Minute, cfg.Jobs.CouponExpiryInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DIRECTORY_CACHE_TTL", "10s")
	t.Setenv("AI_TEMPERATURE", "0.7")
	t.Setenv("AI_MODEL", "local-model")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 10*time.Second, cfg.Cache.DirectoryTTL)
	assert.InDelta(t, 0.7, cfg.AI.Temperature, 0.0001)
	assert.Equal(t, "local-model", cfg.AI.Model)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("DIRECTORY_CACHE_TTL", "not-a-duration")
	t.Setenv("AI_TEMPERATURE", "not-a-float")

	cfg := Load()
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 300*time.Second, cfg.Cache.DirectoryTTL)
	assert.InDelta(t, 0.3, cfg.AI.Temperature, 0.0001)
}

func TestDatabaseURL(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "aivault", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/aivault?sslmode=disable", db.URL())
}
