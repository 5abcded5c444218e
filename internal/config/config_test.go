package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "tracker.yaml", `
server:
  addr: ":9090"
storage:
  driver: memory
auth:
  secret: from-yaml
  token_ttl: 2h
access:
  admins: [ops, lead]
rsvp:
  rate_per_minute: 30
  burst: 3
log:
  level: debug
  format: json
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "from-yaml", cfg.Auth.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"ops", "lead"}, cfg.Access.Admins)
	assert.Equal(t, 30.0, cfg.RSVP.RatePerMinute)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "tracker.yaml", "auth:\n  secret: from-yaml\n")
	t.Setenv("TRACKER_AUTH_SECRET", "from-env")
	t.Setenv("TRACKER_ACCESS_ADMINS", "a, b,,c")
	t.Setenv("TRACKER_RSVP_BURST", "9")
	t.Setenv("TRACKER_AUTH_TOKEN_TTL", "15m")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Access.Admins)
	assert.Equal(t, 9, cfg.RSVP.Burst)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
}

func TestDotEnvFile(t *testing.T) {
	t.Setenv("TRACKER_STORAGE_DRIVER", "")
	os.Unsetenv("TRACKER_STORAGE_DRIVER")
	env := writeFile(t, ".env", "TRACKER_STORAGE_DRIVER=memory\n")

	cfg, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
}

func TestMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestMissingYAMLIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad driver", "TRACKER_STORAGE_DRIVER", "postgres"},
		{"bad format", "TRACKER_LOG_FORMAT", "xml"},
		{"bad ttl", "TRACKER_AUTH_TOKEN_TTL", "soon"},
		{"zero burst", "TRACKER_RSVP_BURST", "0"},
		{"bad rate", "TRACKER_RSVP_RATE_PER_MINUTE", "fast"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load("", "")
			assert.Error(t, err)
		})
	}
}
