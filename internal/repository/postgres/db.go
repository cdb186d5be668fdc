package postgres

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"cidgate/internal/config"
)

// DB wraps the connection pool shared by the repositories.
type DB struct {
	*sqlx.DB
}

// NewDB creates a new PostgreSQL connection pool.
func NewDB(cfg *config.DBConfig) (*DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	return &DB{DB: db}, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.PingContext(ctx)
}
