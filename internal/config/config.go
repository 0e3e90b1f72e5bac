// Package config loads service settings from an optional YAML file and
// CAPPLAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"capplan/internal/infrastructure/storage/postgres"
	"capplan/pkg/logger"
)

// EnvPrefix is prepended to every environment override (CAPPLAN_HTTP_ADDR).
const EnvPrefix = "CAPPLAN"

type Config struct {
	App struct {
		Env  string
		Name string
	} `mapstructure:"app"`

	HTTP struct {
		Addr            string
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"http"`

	Postgres struct {
		DSN              string
		MaxConns         int32         `mapstructure:"max_conns"`
		MinConns         int32         `mapstructure:"min_conns"`
		MaxConnLifetime  time.Duration `mapstructure:"max_conn_lifetime"`
		MaxConnIdleTime  time.Duration `mapstructure:"max_conn_idle_time"`
		StatementTimeout time.Duration `mapstructure:"statement_timeout"`
	} `mapstructure:"postgres"`

	Log struct {
		Level string
	} `mapstructure:"log"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Migrations struct {
		Auto bool
	} `mapstructure:"migrations"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.name", "capplan")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 30*time.Second)

	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.max_conns", 25)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.max_conn_lifetime", time.Hour)
	v.SetDefault("postgres.max_conn_idle_time", 30*time.Minute)
	v.SetDefault("postgres.statement_timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("migrations.auto", false)
}

// Load reads path (if not empty) and applies environment overrides on top.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks settings that have no usable default.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Postgres.DSN) == "" {
		return errors.New("postgres.dsn is required (CAPPLAN_POSTGRES_DSN)")
	}
	if c.Postgres.MinConns > c.Postgres.MaxConns {
		return fmt.Errorf("postgres.min_conns (%d) exceeds max_conns (%d)", c.Postgres.MinConns, c.Postgres.MaxConns)
	}
	return nil
}

// IsDevelopment reports whether app.env is "development".
func (c Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Logger returns the logger settings.
func (c Config) Logger() logger.Config {
	return logger.Config{
		Level:       c.Log.Level,
		Development: c.IsDevelopment(),
	}
}

// Pool returns the connection pool settings.
func (c Config) Pool() postgres.PoolConfig {
	p := postgres.DefaultPoolConfig(c.Postgres.DSN)
	p.ApplicationName = c.App.Name
	p.MaxConns = c.Postgres.MaxConns
	p.MinConns = c.Postgres.MinConns
	p.MaxConnLifetime = c.Postgres.MaxConnLifetime
	p.MaxConnIdleTime = c.Postgres.MaxConnIdleTime
	return p
}
