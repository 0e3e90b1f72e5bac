// Package migrations embeds the schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Command is a goose command supported by Run.
type Command string

const (
	Up     Command = "up"
	Down   Command = "down"
	Status Command = "status"
	Reset  Command = "reset"
)

// newDB opens a database/sql handle over the pgx pool for goose.
func newDB(pool *pgxpool.Pool) *sql.DB {
	return stdlib.OpenDBFromPool(pool)
}

// Valid reports whether cmd is a known command.
func (c Command) Valid() bool {
	switch c {
	case Up, Down, Status, Reset:
		return true
	}
	return false
}

// Run executes a goose command against the pool.
func Run(ctx context.Context, pool *pgxpool.Pool, cmd Command) error {
	if !cmd.Valid() {
		return fmt.Errorf("unknown migration command %q", cmd)
	}

	db := newDB(pool)
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	var err error
	switch cmd {
	case Up:
		err = goose.UpContext(ctx, db, ".")
	case Down:
		err = goose.DownContext(ctx, db, ".")
	case Status:
		err = goose.StatusContext(ctx, db, ".")
	case Reset:
		err = goose.ResetContext(ctx, db, ".")
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", cmd, err)
	}
	return nil
}
