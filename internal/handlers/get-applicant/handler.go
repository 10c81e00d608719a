// internal/handlers/get-applicant/handler.go
package getapplicant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "credit-scoring-api/internal/common/errors"
	"credit-scoring-api/internal/common/logger"
	"credit-scoring-api/internal/models"
	"credit-scoring-api/internal/store"
)

const (
	Route = "GET /applicants/{id}"
)

type ApplicantReader interface {
	Get(ctx context.Context, id int64) (*models.Applicant, error)
}

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}

// Handler serves GET /applicants/{id}.
type Handler struct {
	config *Config
	store  ApplicantReader
	errs   *apperrors.ErrorHandler
	logger logger.Logger
}

func NewHandler(config *Config, store ApplicantReader, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	log = log.WithFields(map[string]interface{}{"handler": "get-applicant"})
	return &Handler{
		config: config,
		store:  store,
		errs:   apperrors.NewErrorHandler(log),
		logger: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.errs.HandleHTTPError(w, r, apperrors.NewValidationError([]apperrors.FieldViolation{{
			Field:   "id",
			Message: fmt.Sprintf("%q is not a valid applicant id", raw),
			Code:    "invalid_id",
		}}))
		return
	}

	applicant, err := h.Execute(r.Context(), id)
	if err != nil {
		h.errs.HandleHTTPError(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, applicant)
}

// Execute looks up one stored applicant.
func (h *Handler) Execute(ctx context.Context, id int64) (*models.Applicant, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	applicant, err := h.store.Get(ctx, id)
	if errors.Is(err, store.ErrApplicantNotFound) {
		return nil, apperrors.NewApplicantNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return applicant, nil
}
