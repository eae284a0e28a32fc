package ratelimiter

import (
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/nipvalidator/pkg/clientip"
	"github.com/dmitrymomot/nipvalidator/pkg/logger"
)

const maxKeyLength = 64

// KeyFunc attributes a request to a bucket. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the client address.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

// Composite joins the non-empty keys of fns. Keys longer than 64 bytes are
// replaced by their FNV-1a hash.
func Composite(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// Middleware rejects requests whose bucket is empty with 429. Store failures
// are logged and let the request through.
func Middleware(l *Limiter, keyFn KeyFunc, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), key)
			if err != nil {
				log.ErrorContext(r.Context(), "rate limit check failed", logger.Component("ratelimiter"), logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				h.Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter().Seconds()))))
				h.Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})

				log.WarnContext(r.Context(), "rate limit exceeded", logger.Component("ratelimiter"), slog.String("key", key))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
