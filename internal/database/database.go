// Package database handles PostgreSQL connection management and migration
// execution using goose. Each logical store (users, categories, drafts,
// posts) gets its own bounded connection pool and its own migration
// directory, so the stores can share one database or be split across several.
package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var embedMigrations embed.FS

// maxPoolSize bounds each logical store's connection pool.
const maxPoolSize = 10

// Connect opens a PostgreSQL connection pool using the provided DSN.
// It verifies the connection with a ping before returning.
func Connect(name, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", name, err)
	}

	db.SetMaxOpenConns(maxPoolSize)

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", name, err)
	}

	slog.Info("database connected", "store", name)
	return db, nil
}

// Migrate runs the pending goose migrations for one logical store.
// Each store tracks its own version table so several stores can share a
// physical database without colliding.
func Migrate(db *sql.DB, store string) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetTableName("goose_" + store + "_version")
	defer goose.SetTableName("goose_db_version")

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations/"+store); err != nil {
		return fmt.Errorf("goose up %s: %w", store, err)
	}

	slog.Info("database migrations applied", "store", store)
	return nil
}
