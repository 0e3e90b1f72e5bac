package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PoolConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *PoolConfig) {}},
		{name: "empty dsn", mutate: func(c *PoolConfig) { c.DSN = "" }, wantErr: "dsn is empty"},
		{name: "zero max", mutate: func(c *PoolConfig) { c.MaxConns = 0 }, wantErr: "max conns"},
		{name: "min above max", mutate: func(c *PoolConfig) { c.MinConns = 30 }, wantErr: "min conns"},
		{name: "min zero", mutate: func(c *PoolConfig) { c.MinConns = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPoolConfig("postgres://capplan@localhost:5432/capplan")
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPoolConfig_PgxSettings(t *testing.T) {
	cfg := DefaultPoolConfig("postgres://capplan@localhost:5432/capplan")
	cfg.ApplicationName = "capplan-test"
	cfg.MaxConns = 7
	cfg.MaxConnIdleTime = time.Minute

	pc, err := cfg.pgx()
	require.NoError(t, err)

	assert.EqualValues(t, 7, pc.MaxConns)
	assert.Equal(t, time.Minute, pc.MaxConnIdleTime)
	assert.Equal(t, "capplan-test", pc.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_BadDSN(t *testing.T) {
	cfg := DefaultPoolConfig("postgres://%zz")
	_, err := cfg.pgx()
	assert.Error(t, err)
}
