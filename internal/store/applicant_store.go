// internal/store/applicant_store.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "credit-scoring-api/internal/common/errors"
	"credit-scoring-api/internal/common/logger"
	"credit-scoring-api/internal/models"
)

// ErrApplicantNotFound is returned by Get when no row matches.
var ErrApplicantNotFound = errors.New("APPLICANT_NOT_FOUND")

// ApplicantStore persists applicants in the single applicants table. It
// performs no validation of its own.
type ApplicantStore struct {
	db      *sql.DB
	dialect dialect
	logger  logger.Logger
}

// NewApplicantStore builds a store over db using SQL for driver
// ("sqlite" or "postgres").
func NewApplicantStore(db *sql.DB, driver string, log logger.Logger) *ApplicantStore {
	return &ApplicantStore{
		db:      db,
		dialect: dialectFor(driver),
		logger:  log.WithFields(map[string]interface{}{"component": "applicant-store"}),
	}
}

// withConn acquires a dedicated connection for one operation and always
// returns it to the pool, whatever fn does.
func (s *ApplicantStore) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// Initialize creates the applicants table if it does not exist. Safe to
// call on every start.
func (s *ApplicantStore) Initialize(ctx context.Context) error {
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, s.dialect.createTable)
		return err
	})
	if err != nil {
		s.logger.Error("error creating tables", map[string]interface{}{"error": err})
		return apperrors.NewStorageInitError(err)
	}

	s.logger.Info("tables created successfully", nil)
	return nil
}

// Insert appends one applicant and returns its new identifier.
func (s *ApplicantStore) Insert(ctx context.Context, a models.NewApplicant) (int64, error) {
	var id int64
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, s.dialect.insert,
			a.Name,
			a.Income,
			a.Age,
			a.ExistingLoans,
		).Scan(&id)
	})
	if err != nil {
		s.logger.Error("error inserting applicant", map[string]interface{}{"error": err})
		return 0, apperrors.NewStorageWriteError(err)
	}

	s.logger.Info("inserted applicant", map[string]interface{}{"applicantId": id})
	return id, nil
}

// Get returns the applicant with the given id, or ErrApplicantNotFound.
func (s *ApplicantStore) Get(ctx context.Context, id int64) (*models.Applicant, error) {
	var a models.Applicant
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, s.dialect.selectByID, id).
			Scan(&a.ID, &a.Name, &a.Income, &a.Age, &a.ExistingLoans)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrApplicantNotFound, id)
	}
	if err != nil {
		s.logger.Error("error retrieving applicant", map[string]interface{}{
			"error":       err,
			"applicantId": id,
		})
		return nil, apperrors.NewStorageReadError(err)
	}

	return &a, nil
}

// Ping reports whether the underlying database is reachable.
func (s *ApplicantStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
