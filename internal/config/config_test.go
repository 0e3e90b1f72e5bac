package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithEnv(t *testing.T) {
	t.Setenv("CAPPLAN_POSTGRES_DSN", "postgres://localhost/capplan")

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.Equal(t, 15*time.Second, c.HTTP.ReadTimeout)
	assert.Equal(t, "info", c.Log.Level)
	assert.True(t, c.Metrics.Enabled)
	assert.False(t, c.Migrations.Auto)
	assert.True(t, c.IsDevelopment())
	assert.Equal(t, int32(25), c.Pool().MaxConns)
	assert.Equal(t, "capplan", c.Pool().ApplicationName)
}

func TestLoad_FileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capplan.yaml")
	yaml := `
app:
  env: production
http:
  addr: ":9090"
  write_timeout: 45s
postgres:
  dsn: postgres://db/capplan
  max_conns: 10
log:
  level: debug
migrations:
  auto: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CAPPLAN_HTTP_ADDR", ":7070")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", c.HTTP.Addr, "env overrides file")
	assert.Equal(t, 45*time.Second, c.HTTP.WriteTimeout)
	assert.Equal(t, "postgres://db/capplan", c.Postgres.DSN)
	assert.Equal(t, int32(10), c.Postgres.MaxConns)
	assert.Equal(t, "debug", c.Logger().Level)
	assert.False(t, c.Logger().Development)
	assert.True(t, c.Migrations.Auto)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing dsn", func(t *testing.T) {
		_, err := Load("")
		assert.ErrorContains(t, err, "postgres.dsn is required")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CAPPLAN_POSTGRES_DSN", "postgres://localhost/capplan")
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "read config")
	})

	t.Run("pool bounds", func(t *testing.T) {
		t.Setenv("CAPPLAN_POSTGRES_DSN", "postgres://localhost/capplan")
		t.Setenv("CAPPLAN_POSTGRES_MIN_CONNS", "50")
		_, err := Load("")
		assert.ErrorContains(t, err, "exceeds max_conns")
	})
}
