// Package logger builds *slog.Logger instances for the NIP validator binaries
// and libraries.
//
// New creates a logger from Option values: output format (text or json),
// minimum level, static attributes and ContextExtractor callbacks that copy
// request-scoped values (such as the HTTP request id) into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "nipvalidator"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.InfoContext(ctx, "nip rejected", logger.Kind(kind), logger.Value(v))
//
// NewNop returns a logger that drops everything; libraries use it when the
// caller did not supply a logger.
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error, so it can be passed unconditionally.
package logger
