package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendSheets, cfg.PersistenceBackend)
	assert.Equal(t, 5000000.0, cfg.TotalBudget)
	assert.Equal(t, 45, cfg.DaysToGo)
	assert.Equal(t, "PKR", cfg.Currency)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 15*time.Second, cfg.SyncTimeout)
	assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9090")
	t.Setenv("PERSISTENCE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/wedding")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("TOTAL_BUDGET", "2500000")
	t.Setenv("SYNC_TIMEOUT", "3s")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendPostgres, cfg.PersistenceBackend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2500000.0, cfg.TotalBudget)
	assert.Equal(t, 3*time.Second, cfg.SyncTimeout)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.True(t, cfg.Email.SESInsecureSkipVerify)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"PERSISTENCE_BACKEND": "mongo"}},
		{"postgres without url", map[string]string{"PERSISTENCE_BACKEND": "postgres", "DATABASE_URL": ""}},
		{"negative budget", map[string]string{"TOTAL_BUDGET": "-1"}},
		{"bad duration", map[string]string{"SYNC_TIMEOUT": "soon"}},
		{"zero timeout", map[string]string{"REQUEST_TIMEOUT": "0s"}},
		{"production default secret", map[string]string{"GO_ENV": "production", "SESSION_SECRET": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "test")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var stdout, stderr bytes.Buffer

	prod := newLogger(&Config{Environment: EnvProduction, LogLevel: "warn"}, &stdout, &stderr)
	prod.Info("hidden")
	prod.Warn("sync failed", "action", "addGuest")
	require.Empty(t, stderr.String())

	var line map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &line))
	assert.Equal(t, "sync failed", line["msg"])
	assert.Equal(t, "addGuest", line["action"])

	dev := newLogger(&Config{Environment: "development", LogLevel: "debug"}, &stdout, &stderr)
	dev.Debug("visible")
	assert.Contains(t, stderr.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
