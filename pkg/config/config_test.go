package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"handoff-address/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
places:
  base_url: https://edge.example.com/functions/v1/
  api_key: anon-key
redis:
  enabled: true
  place_ttl: 2h
auth:
  jwt_secret: secret
address:
  strict: false
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://edge.example.com/functions/v1", cfg.Places.BaseURL)
	assert.Equal(t, "us", cfg.Places.Country)
	assert.Equal(t, []string{"address"}, cfg.Places.Types)
	assert.Equal(t, 2*time.Hour, cfg.Redis.PlaceTTL)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.False(t, cfg.StrictDefault())
	assert.Equal(t, 5*time.Minute, cfg.Modes.FallbackRetry)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
places:
  base_url: https://file.example.com
auth:
  jwt_secret: from-file
`)
	t.Setenv("PLACES_BASE_URL", "https://env.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("DEBUG_MODE", "true")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Places.BaseURL)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.True(t, cfg.StrictDefault())
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("PLACES_BASE_URL", "https://env.example.com")
	t.Setenv("AUTH_DISABLED", "true")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Auth.Disabled)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"no base url": `
auth:
  jwt_secret: s
`,
		"no secret": `
places:
  base_url: https://x.example.com
`,
		"bad redis port": `
places:
  base_url: https://x.example.com
auth:
  disabled: true
redis:
  port: 70000
`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_BadEnvNumber(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	_, err := config.LoadConfig(writeConfig(t, "places:\n  base_url: https://x.example.com\n"))
	assert.ErrorContains(t, err, "invalid REDIS_DB value")
}

func TestLoadConfig_ListOverrides(t *testing.T) {
	t.Setenv("PLACES_BASE_URL", "https://env.example.com")
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("PLACES_TYPES", "address, geocode ,")
	t.Setenv("CORS_ORIGINS", "https://app.example.com")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"address", "geocode"}, cfg.Places.Types)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.CORSOrigins)
}
