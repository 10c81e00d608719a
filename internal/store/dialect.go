// internal/store/dialect.go
package store

import "credit-scoring-api/internal/common/config"

// dialect holds the SQL text for one database engine.
type dialect struct {
	createTable string
	insert      string
	selectByID  string
}

var sqliteDialect = dialect{
	createTable: `
		CREATE TABLE IF NOT EXISTS applicants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			income REAL NOT NULL,
			age INTEGER NOT NULL,
			existing_loans INTEGER NOT NULL
		)`,
	insert: `
		INSERT INTO applicants (name, income, age, existing_loans)
		VALUES (?, ?, ?, ?)
		RETURNING id`,
	selectByID: `
		SELECT id, name, income, age, existing_loans
		FROM applicants WHERE id = ?`,
}

var postgresDialect = dialect{
	createTable: `
		CREATE TABLE IF NOT EXISTS applicants (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			income DOUBLE PRECISION NOT NULL,
			age INTEGER NOT NULL,
			existing_loans INTEGER NOT NULL
		)`,
	insert: `
		INSERT INTO applicants (name, income, age, existing_loans)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
	selectByID: `
		SELECT id, name, income, age, existing_loans
		FROM applicants WHERE id = $1`,
}

func dialectFor(driver string) dialect {
	if driver == config.DriverPostgres {
		return postgresDialect
	}
	return sqliteDialect
}
