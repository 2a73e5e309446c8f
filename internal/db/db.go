package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// PoolOptions tunes the database/sql connection pool.
type PoolOptions struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

func Connect(ctx context.Context, dsn string, pool PoolOptions) (*sqlx.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
	}

	// Bounded dial: a dead server surfaces at the ping below, not later.
	cfg.ConnectTimeout = 5 * time.Second

	db := sqlx.NewDb(stdlib.OpenDB(*cfg), "pgx")

	db.SetMaxOpenConns(pool.MaxOpen)
	db.SetMaxIdleConns(pool.MaxIdle)
	db.SetConnMaxLifetime(pool.MaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db: failed to connect to Postgres: %w", err)
	}

	// The posts table must already exist; schema changes are applied out-of-band.
	var exists bool
	if err := db.GetContext(ctx, &exists, `SELECT to_regclass('posts') IS NOT NULL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db: health check failed: %w", err)
	}
	if !exists {
		_ = db.Close()
		return nil, fmt.Errorf("db: table %q not found (see `goposts schema`)", "posts")
	}

	return db, nil
}
