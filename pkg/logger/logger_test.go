package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitAndGetLogger(t *testing.T) {
	Init("development")
	assert.NotNil(t, GetLogger())

	// Init is idempotent
	Init("production")
	assert.NotNil(t, GetLogger())
}

func TestWithContext(t *testing.T) {
	Init("development")

	assert.NotNil(t, WithContext(nil))
	assert.NotNil(t, WithContext(context.Background()))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	assert.NotNil(t, WithContext(ctx))
}

func TestLogHelpers(t *testing.T) {
	Init("development")
	ctx := context.Background()

	// must not panic
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")
	Debug(ctx, "debug message")
	LogRequest(ctx, "GET", "/api/v1/business/directory-view", 200, 5*time.Millisecond, "127.0.0.1")
}
