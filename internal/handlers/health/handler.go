// internal/handlers/health/handler.go
package health

import (
	"context"
	"net/http"
	"time"

	apperrors "credit-scoring-api/internal/common/errors"
	"credit-scoring-api/internal/common/logger"
)

const RootMessage = "Credit Scoring API is running"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db      Pinger
	timeout time.Duration
	logger  logger.Logger
	now     func() time.Time
}

func NewHandler(db Pinger, timeout time.Duration, log logger.Logger) *Handler {
	return &Handler{
		db:      db,
		timeout: timeout,
		logger:  log.WithFields(map[string]interface{}{"handler": "health"}),
		now:     time.Now,
	}
}

// Root answers GET / with a fixed liveness message.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	apperrors.WriteJSON(w, http.StatusOK, map[string]string{"message": RootMessage})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	apperrors.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   h.now().Format(time.RFC3339),
	})
}

// Ready reports ready only while the database answers a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed", map[string]interface{}{"error": err})
		apperrors.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"time":   h.now().Format(time.RFC3339),
		})
		return
	}

	apperrors.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"time":   h.now().Format(time.RFC3339),
	})
}
