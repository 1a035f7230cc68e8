package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, int32(10), cfg.PGMaxConns)
	require.Equal(t, 10*time.Second, cfg.PGStatementTimeout)
	require.Equal(t, 5*time.Minute, cfg.ReportCacheTTL)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "*/5 * * * *", cfg.ReportWarmupCron)
	require.Equal(t, 2, cfg.WorkerConcurrency)
	require.Equal(t, ":9091", cfg.WorkerMetricsAddr)
	require.Empty(t, cfg.RedisAddr)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PG_MAX_CONNS", "25")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REPORT_CACHE_TTL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.Equal(t, int32(25), cfg.PGMaxConns)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("negative rate", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_PER_MINUTE", "-1")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "RATE_LIMIT_PER_MINUTE")
	})
	t.Run("unparseable duration", func(t *testing.T) {
		t.Setenv("PG_STATEMENT_TIMEOUT", "soon")
		_, err := LoadConfig()
		require.Error(t, err)
	})
}
