package config

import (
	"ecare-automation/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := NewInternalConfig()
		require.NoError(t, err)

		assert.Equal(t, "stage", cfg.Ecare.DefaultEnvironment)
		assert.Equal(t, 5.0, cfg.Ecare.RequestsPerSecond)
		assert.Equal(t, 5*time.Minute, cfg.Workflow.RunTimeout())
		assert.Equal(t, 10*time.Minute, cfg.Workflow.LockTTL())
		assert.Empty(t, cfg.Workflow.Schedule)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("APP_PORT", ":9090")
		t.Setenv("ECARE_DEFAULT_ENVIRONMENT", "dev")
		t.Setenv("WORKFLOW_LOCK_TTL_IN_MINUTES", "2")
		t.Setenv("WORKFLOW_SCHEDULE", "*/30 * * * *")

		cfg, err := NewInternalConfig()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.App.Port)
		assert.Equal(t, "dev", cfg.Ecare.DefaultEnvironment)
		assert.Equal(t, 2*time.Minute, cfg.Workflow.LockTTL())
		assert.Equal(t, "*/30 * * * *", cfg.Workflow.Schedule)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("MINIO_BUCKET_NAME", "reports")

	cfg, err := NewDriverConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled)
	assert.False(t, cfg.MongoDB.Enabled)
	assert.Equal(t, "reports", cfg.Minio.BucketName)
	assert.Equal(t, "6379", cfg.Redis.Port)
}

func TestResolveEnvironment(t *testing.T) {
	t.Run("Stage Profile", func(t *testing.T) {
		env, err := ResolveEnvironment("stage", nil)
		require.NoError(t, err)

		assert.Equal(t, "https://stage-api.ecarehealth.com/api/master", env.BaseUrl)
		assert.Equal(t, "stage_aithinkitive", env.TenantID)
		assert.Equal(t, "rose.gomez@jourrapide.com", env.Credentials.Username)
		assert.Equal(t, 30*time.Second, env.Timeouts.Request)
		assert.Equal(t, 3, env.Retry.MaxAttempts)
		assert.Equal(t, time.Second, env.Retry.Delay)
	})

	t.Run("Dev Credentials From Environment", func(t *testing.T) {
		t.Setenv("DEV_USERNAME", "qa@example.com")
		t.Setenv("DEV_PASSWORD", "secret")

		env, err := ResolveEnvironment("dev", nil)
		require.NoError(t, err)

		assert.Equal(t, "dev_aithinkitive", env.TenantID)
		assert.Equal(t, "qa@example.com", env.Credentials.Username)
		assert.Equal(t, "secret", env.Credentials.Password)
	})

	t.Run("Dev Credentials Defaults", func(t *testing.T) {
		env, err := ResolveEnvironment("dev", nil)
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", env.Credentials.Username)
		assert.Equal(t, "testpass", env.Credentials.Password)
	})

	t.Run("Overrides And Default Name", func(t *testing.T) {
		cfg := &InternalConfig{Ecare: Ecare{
			DefaultEnvironment:       "dev",
			BaseUrl:                  "http://127.0.0.1:9999",
			RetryMaxAttempts:         5,
			RetryDelayInMilliseconds: 10,
		}}

		env, err := ResolveEnvironment("", cfg)
		require.NoError(t, err)

		assert.Equal(t, "dev", env.Name)
		assert.Equal(t, "http://127.0.0.1:9999", env.BaseUrl)
		assert.Equal(t, 5, env.Retry.MaxAttempts)
		assert.Equal(t, 10*time.Millisecond, env.Retry.Delay)
	})

	t.Run("Unknown Environment", func(t *testing.T) {
		_, err := ResolveEnvironment("prod", nil)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
	})
}
