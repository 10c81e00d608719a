package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"credit-scoring-api/internal/common/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "credit.db")

	client, err := NewSQLite(config.SQLiteConfig{Path: path, MaxConnections: 2})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, config.DriverSQLite, client.Driver)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewSQLite_AppliesPragmas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credit.db")

	client, err := NewSQLite(config.SQLiteConfig{Path: path, BusyTimeout: 2500})
	require.NoError(t, err)
	defer client.Close()

	var mode string
	require.NoError(t, client.DB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var busy int
	require.NoError(t, client.DB.QueryRow("PRAGMA busy_timeout").Scan(&busy))
	assert.Equal(t, 2500, busy)
}

func TestSQLiteDSN(t *testing.T) {
	dsn := sqliteDSN(config.SQLiteConfig{Path: "credit.db"})
	assert.Contains(t, dsn, "file:credit.db?")
	assert.Contains(t, dsn, "busy_timeout%285000%29")
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNewPostgres_LazyOpen(t *testing.T) {
	client, err := NewPostgres(config.PostgresConfig{
		Host: "localhost", Port: 5432, Database: "credit", User: "u",
		SSLMode: "disable", MaxConnections: 2, MaxIdle: 1,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, config.DriverPostgres, client.Driver)
	assert.NotNil(t, client.GetDB())
}

func TestSQLiteDSN_EscapesURIDelimiters(t *testing.T) {
	dsn := sqliteDSN(config.SQLiteConfig{Path: "data/q?a#b%c.db"})
	assert.True(t, strings.HasPrefix(dsn, "file:data/q%3Fa%23b%25c.db?"), dsn)
}

func TestNewSQLite_PathWithURIDelimiters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd?dir#1", "credit%20.db")

	client, err := NewSQLite(config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
