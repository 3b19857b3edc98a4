package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "PORT", "API_PREFIX", "MYSQL_DSN", "RABBITMQ_URL",
		"CORS_ALLOW_ORIGINS", "SSE_HEARTBEAT_SECONDS", "HISTORY_LIMIT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := New()
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "/api", cfg.APIPrefix)
	require.Empty(t, cfg.MySQLDSN)
	require.Empty(t, cfg.RabbitMQURL)
	require.Equal(t, "log", cfg.RabbitPublishPrefix)
	require.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	require.Equal(t, 15*time.Second, cfg.SSEHeartbeat)
	require.Equal(t, 20, cfg.HistoryLimit)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "4567")
	t.Setenv("API_PREFIX", "v1/")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SSE_HEARTBEAT_SECONDS", "3")
	t.Setenv("HISTORY_LIMIT", "-1")

	cfg := New()
	require.Equal(t, ":4567", cfg.HTTPAddr)
	require.Equal(t, "/v1", cfg.APIPrefix)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
	require.Equal(t, 3*time.Second, cfg.SSEHeartbeat)
	require.Equal(t, 20, cfg.HistoryLimit)
}

func TestNormalizePrefix(t *testing.T) {
	require.Equal(t, "/api", normalizePrefix("api"))
	require.Equal(t, "/api", normalizePrefix("/api/"))
	require.Equal(t, "/api/v2", normalizePrefix(" /api/v2 "))
	require.Equal(t, "", normalizePrefix("/"))
}
