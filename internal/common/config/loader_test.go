package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, "app:\n  environment: test\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Credit Scoring API", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, ":8000", cfg.Server.Address)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "credit.db", cfg.Database.SQLite.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadFromFile_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9090"
  request_timeout: 1500
database:
  driver: sqlite
  sqlite:
    path: /var/lib/credit/credit.db
logging:
  level: debug
  format: console
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 1500, cfg.Server.RequestTimeout)
	assert.Equal(t, "/var/lib/credit/credit.db", cfg.Database.SQLite.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":7000")
	t.Setenv("LOGGING_LEVEL", "warn")
	t.Setenv("CREDIT_DB_PATH", "/tmp/override.db")

	cfg, err := LoadFromFile(writeConfig(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Address)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/override.db", cfg.Database.SQLite.Path)
}

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	t.Setenv("PG_HOST_FOR_TEST", "db.internal")

	cfg, err := LoadFromFile(writeConfig(t, `
database:
  driver: postgres
  postgres:
    host: ${PG_HOST_FOR_TEST}
    database: credit
    user: scorer
`))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Contains(t, cfg.Database.Postgres.GetDSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.Postgres.GetDSN(), "dbname=credit")
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown driver",
			body:    "database:\n  driver: mysql\n",
			wantErr: `database.driver "mysql" is not supported`,
		},
		{
			name:    "postgres without host",
			body:    "database:\n  driver: postgres\n  postgres:\n    database: credit\n    user: u\n",
			wantErr: "database.postgres.host is required",
		},
		{
			name:    "zero request timeout",
			body:    "server:\n  request_timeout: 0\n",
			wantErr: "server.request_timeout must be positive",
		},
		{
			name:    "metrics path",
			body:    "metrics:\n  path: metrics\n",
			wantErr: "metrics.path must start with /",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWith_BoundValueWins(t *testing.T) {
	v := viper.New()
	v.Set("server.address", ":6060")

	cfg, err := LoadWith(v, writeConfig(t, "server:\n  address: \":9999\"\n"))
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Address)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, "1.5s", GetDuration(1500).String())
}
