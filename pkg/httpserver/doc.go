// Package httpserver runs an http.Handler with sane timeouts, logs its
// lifecycle through slog and shuts down gracefully on context cancellation,
// SIGINT or SIGTERM.
//
// Servers are built with New and functional options, or from an
// environment-loaded Config with NewFromConfig:
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg, config.WithPrefix("NIP_")); err != nil {
//		return err
//	}
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	return srv.Run(ctx, router)
//
// HealthCheckHandler serves liveness and readiness probes.
//
// Run wraps bind and serve failures with ErrStart; Shutdown wraps drain
// failures with ErrShutdown.
package httpserver
