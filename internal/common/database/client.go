// internal/common/database/client.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"credit-scoring-api/internal/common/config"
)

// Client wraps the SQL database handle together with the driver it was
// opened with, so the store can pick matching SQL.
type Client struct {
	DB     *sql.DB
	Driver string
}

// New opens the database selected by cfg.Driver.
func New(cfg config.DatabaseConfig) (*Client, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewSQLite(cfg.SQLite)
	case config.DriverPostgres:
		return NewPostgres(cfg.Postgres)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Ping tests the database connection
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Close closes the database connection
func (c *Client) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// GetDB returns the underlying *sql.DB
func (c *Client) GetDB() *sql.DB {
	return c.DB
}
