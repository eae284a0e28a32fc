package commands

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/nipvalidator/pkg/config"
	"github.com/dmitrymomot/nipvalidator/pkg/httpserver"
	"github.com/dmitrymomot/nipvalidator/pkg/logger"
	"github.com/dmitrymomot/nipvalidator/pkg/nip"
	"github.com/dmitrymomot/nipvalidator/pkg/nipapi"
	"github.com/dmitrymomot/nipvalidator/pkg/ratelimiter"
)

type serveConfig struct {
	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

// RunServe serves the HTTP API until ctx is cancelled or the process is
// interrupted. Server settings come from NIP_HTTP_* variables,
// rate limiting from NIP_RATE_LIMIT_* variables.
func RunServe(ctx context.Context, v *nip.Validator, log *slog.Logger, opts ...httpserver.Option) error {
	var cfg serveConfig
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return err
	}

	handlerOpts := []nipapi.Option{nipapi.WithLogger(log)}
	if cfg.RateLimit.Enabled() {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		limiter, err := ratelimiter.New(store, cfg.RateLimit)
		if err != nil {
			return err
		}
		handlerOpts = append(handlerOpts, nipapi.WithRateLimiter(limiter))
	}

	h := nipapi.NewHandler(v, handlerOpts...)
	srv := httpserver.NewFromConfig(cfg.HTTP, append([]httpserver.Option{httpserver.WithLogger(log)}, opts...)...)

	log.InfoContext(ctx, "serving nip api", logger.Component("serve"), logger.Pattern(v.Pattern()))
	return srv.Run(ctx, nipapi.NewRouter(h))
}
