// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a well-formed X-Request-ID header or generates a new one,
// stores it in the request context and echoes it in the response. Extractor
// plugs the identifier into loggers built with logger.WithContextExtractors,
// so every record logged while serving a request carries its request_id.
package requestid
