package httpserver

import "errors"

var (
	// ErrStart is returned by Run when the listener cannot be bound or serving fails.
	ErrStart = errors.New("httpserver: failed to start")
	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("httpserver: server already running")
	// ErrShutdown is returned when in-flight requests do not finish in time.
	ErrShutdown = errors.New("httpserver: failed to shut down gracefully")
)
