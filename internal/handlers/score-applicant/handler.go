// internal/handlers/score-applicant/handler.go
package scoreapplicant

import (
	"context"
	"errors"
	"io"
	"net/http"

	apperrors "credit-scoring-api/internal/common/errors"
	"credit-scoring-api/internal/common/logger"
	"credit-scoring-api/internal/common/metrics"
	"credit-scoring-api/internal/models"
	"credit-scoring-api/internal/scoring"
)

const (
	Route = "POST /score"
)

// ApplicantStore is the persistence the handler needs.
type ApplicantStore interface {
	Insert(ctx context.Context, a models.NewApplicant) (int64, error)
}

// ScoreRecorder receives every computed score.
type ScoreRecorder interface {
	RecordScore(ctx context.Context, riskLevel string, score int)
}

// Handler serves POST /score.
type Handler struct {
	config   *Config
	store    ApplicantStore
	recorder ScoreRecorder
	errs     *apperrors.ErrorHandler
	logger   logger.Logger
}

// NewHandler falls back to LoadConfig when config is nil.
func NewHandler(config *Config, store ApplicantStore, recorder ScoreRecorder, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	log = log.WithFields(map[string]interface{}{"handler": "score-applicant"})
	return &Handler{
		config:   config,
		store:    store,
		recorder: recorder,
		errs:     apperrors.NewErrorHandler(log),
		logger:   log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.errs.HandleHTTPError(w, r, apperrors.NewInvalidJSONError(err))
			return
		}
		h.errs.HandleHTTPError(w, r, apperrors.NewUnexpectedError(err))
		return
	}

	input, err := decodeRequest(body)
	if err != nil {
		h.recordFailure(err)
		h.errs.HandleHTTPError(w, r, err)
		return
	}

	output, err := h.Execute(r.Context(), input)
	if err != nil {
		h.recordFailure(err)
		h.errs.HandleHTTPError(w, r, err)
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, output)
}

// Execute persists an already validated applicant and scores it. The
// record is stored before the score is computed; a storage failure means
// no score is returned.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	id, err := h.store.Insert(ctx, input.toNewApplicant())
	if err != nil {
		return nil, err
	}
	metrics.ApplicantsStored.Inc()

	result := scoring.Calculate(input.Income, input.Age, input.ExistingLoans)
	if h.recorder != nil {
		h.recorder.RecordScore(ctx, string(result.RiskLevel), result.Score)
	}

	h.logger.Info("applicant scored", map[string]interface{}{
		"applicantId": id,
		"creditScore": result.Score,
		"riskLevel":   string(result.RiskLevel),
	})

	return &Output{
		ApplicantID: id,
		CreditScore: result.Score,
		Explanation: result.Explanation,
		RiskLevel:   result.RiskLevel,
	}, nil
}

func (h *Handler) recordFailure(err error) {
	metrics.RequestErrors.WithLabelValues(Route, string(apperrors.Normalize(err).Code)).Inc()
}
