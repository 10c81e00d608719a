// internal/common/database/postgres.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	"credit-scoring-api/internal/common/config"

	_ "github.com/lib/pq"
)

// NewPostgres opens a PostgreSQL-backed client
func NewPostgres(cfg config.PostgresConfig) (*Client, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &Client{DB: db, Driver: config.DriverPostgres}, nil
}
