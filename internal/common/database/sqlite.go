// internal/common/database/sqlite.go
package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"credit-scoring-api/internal/common/config"

	_ "modernc.org/sqlite"
)

// NewSQLite opens the file-backed SQLite database at cfg.Path, creating
// the parent directory and the file on first use.
func NewSQLite(cfg config.SQLiteConfig) (*Client, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if cfg.MaxConnections > 0 {
		db.SetMaxOpenConns(cfg.MaxConnections)
		db.SetMaxIdleConns(cfg.MaxConnections)
	}

	return &Client{DB: db, Driver: config.DriverSQLite}, nil
}

// sqliteDSN applies the pragmas every connection needs: WAL for
// concurrent readers alongside the single writer, and a busy timeout so
// concurrent inserts wait for the write lock instead of failing.
func sqliteDSN(cfg config.SQLiteConfig) string {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5000
	}

	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")

	return "file:" + uriPathEscaper.Replace(cfg.Path) + "?" + q.Encode()
}

// uriPathEscaper escapes the characters that end the path part of an
// SQLite URI filename.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")
