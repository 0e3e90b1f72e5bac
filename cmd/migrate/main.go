// Package main provides the schema migration CLI.
// Usage: migrate [-config file] up|down|status|reset
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"capplan/internal/config"
	"capplan/internal/infrastructure/storage/postgres"
	"capplan/internal/infrastructure/storage/postgres/migrations"
	"capplan/pkg/logger"
)

func main() {
	configPath := flag.String("config", os.Getenv("CAPPLAN_CONFIG"), "path to config file (yaml)")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	cmd := migrations.Command(flag.Arg(0))
	if !cmd.Valid() {
		fmt.Printf("Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	base, err := logger.New(cfg.Logger())
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = base.Sync() }()
	log := base.WithComponent("migrate")

	ctx := logger.WithLogger(context.Background(), log)

	poolCfg := cfg.Pool()
	poolCfg.MinConns = 0
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := migrations.Run(ctx, pool.Unwrap(), cmd); err != nil {
		log.Errorw("migration failed", "command", cmd, "error", err)
		pool.Close()
		os.Exit(1)
	}

	log.Infow("migration finished", "command", cmd)
}

func printUsage() {
	fmt.Println(`capplan schema migrations

Usage:
  migrate [-config file] <command>

Commands:
  up      Apply all pending migrations
  down    Roll back the latest migration
  status  Print migration status
  reset   Roll back all migrations

Environment:
  CAPPLAN_POSTGRES_DSN  Database connection string
  CAPPLAN_CONFIG        Config file (same as -config)`)
}
