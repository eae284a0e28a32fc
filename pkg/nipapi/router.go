package nipapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/nipvalidator/pkg/clientip"
	"github.com/dmitrymomot/nipvalidator/pkg/httpserver"
	"github.com/dmitrymomot/nipvalidator/pkg/logger"
	"github.com/dmitrymomot/nipvalidator/pkg/ratelimiter"
	"github.com/dmitrymomot/nipvalidator/pkg/requestid"
)

// NewRouter mounts the handler routes on a chi router.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		middleware.Recoverer,
		requestLogger(h.log),
	)

	r.NotFound(h.serve(func(*http.Request) Response {
		return JSONError(http.StatusNotFound, errNotFound)
	}))
	r.MethodNotAllowed(h.serve(func(*http.Request) Response {
		return JSONError(http.StatusMethodNotAllowed, errMethodNotAllowed)
	}))

	r.Route("/v1/nip", func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimiter.Middleware(h.limiter, ratelimiter.ByClientIP, h.log))
		}
		r.Post("/validate", h.serve(h.Validate))
		r.Get("/pattern", h.serve(h.Pattern))
	})

	r.Get("/health/live", httpserver.HealthCheckHandler(h.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(h.log, h.Ready))

	return r
}

func (h *Handler) serve(fn func(*http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r).Render(w, r); err != nil {
			h.log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			log.DebugContext(r.Context(), "http request",
				logger.Component("nipapi"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
