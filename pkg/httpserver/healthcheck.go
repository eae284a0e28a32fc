package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/nipvalidator/pkg/logger"
)

// Check reports whether a dependency is ready to serve traffic.
type Check func(r *http.Request) error

// HealthCheckHandler answers liveness probes with "ALIVE" when no checks are
// given. With checks it answers "READY", or 503 "NOT_READY" as soon as one fails.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r); err != nil {
				log.WarnContext(r.Context(), "readiness check failed", logger.Component("health"), logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
