// internal/server/server.go
package server

import (
	"context"
	"net/http"

	"credit-scoring-api/internal/common/config"
	apperrors "credit-scoring-api/internal/common/errors"
	"credit-scoring-api/internal/common/logger"
	getapplicant "credit-scoring-api/internal/handlers/get-applicant"
	"credit-scoring-api/internal/handlers/health"
	scoreapplicant "credit-scoring-api/internal/handlers/score-applicant"
	"credit-scoring-api/internal/models"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store is the persistence surface the routes use.
type Store interface {
	Insert(ctx context.Context, a models.NewApplicant) (int64, error)
	Get(ctx context.Context, id int64) (*models.Applicant, error)
	Ping(ctx context.Context) error
}

type Dependencies struct {
	Store    Store
	Recorder scoreapplicant.ScoreRecorder
	Logger   logger.Logger
}

// NewRouter builds the full route table wrapped in the shared middleware.
func NewRouter(cfg *config.Config, deps Dependencies) http.Handler {
	log := deps.Logger
	requestTimeout := config.GetDuration(cfg.Server.RequestTimeout)

	score := scoreapplicant.NewHandler(&scoreapplicant.Config{
		Timeout:      requestTimeout,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}, deps.Store, deps.Recorder, log)
	lookup := getapplicant.NewHandler(&getapplicant.Config{
		Timeout: requestTimeout,
	}, deps.Store, log)
	probes := health.NewHandler(deps.Store, requestTimeout, log)

	mux := http.NewServeMux()
	handle := func(pattern string, h http.Handler) {
		mux.Handle(pattern, Metrics(pattern, h))
	}

	handle(scoreapplicant.Route, score)
	handle(getapplicant.Route, lookup)
	handle("GET /{$}", http.HandlerFunc(probes.Root))
	handle("GET /health", http.HandlerFunc(probes.Health))
	handle("GET /ready", http.HandlerFunc(probes.Ready))
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.Handler())
	}

	errs := apperrors.NewErrorHandler(log)
	var h http.Handler = mux
	h = Recover(errs, log)(h)
	h = Logging(log)(h)
	h = RequestID(h)
	return h
}

// New returns an http.Server for cfg. The caller owns ListenAndServe and
// Shutdown.
func New(cfg *config.Config, deps Dependencies) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      NewRouter(cfg, deps),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}
}
