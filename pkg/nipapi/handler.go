package nipapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/nipvalidator/pkg/logger"
	"github.com/dmitrymomot/nipvalidator/pkg/nip"
	"github.com/dmitrymomot/nipvalidator/pkg/ratelimiter"
)

// DefaultMaxBodyBytes limits the size of validation requests.
const DefaultMaxBodyBytes int64 = 64 << 10

// ValidateRequest is the body of POST /v1/nip/validate.
type ValidateRequest struct {
	// Value may be a JSON string, number, boolean or null.
	Value    any           `json:"value"`
	Settings *nip.Settings `json:"settings,omitempty"`
}

// Handler serves the validation endpoints.
type Handler struct {
	validator    *nip.Validator
	log          *slog.Logger
	maxBodyBytes int64
	limiter      *ratelimiter.Limiter
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for request logs and per-request validators.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes. Values below 1 are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithRateLimiter limits the /v1/nip routes per client IP.
func WithRateLimiter(l *ratelimiter.Limiter) Option {
	return func(h *Handler) { h.limiter = l }
}

// NewHandler returns a Handler that validates with v unless a request
// carries its own settings.
func NewHandler(v *nip.Validator, opts ...Option) *Handler {
	h := &Handler{
		validator:    v,
		log:          logger.NewNop(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Validate handles POST /v1/nip/validate.
func (h *Handler) Validate(r *http.Request) Response {
	var req ValidateRequest
	if err := h.decode(r, &req); err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			return JSONError(http.StatusRequestEntityTooLarge, err)
		}
		return JSONError(http.StatusBadRequest, err)
	}

	v := h.validator
	if req.Settings != nil {
		var err error
		v, err = req.Settings.Validator(nip.WithLogger(h.log))
		if err != nil {
			return JSONError(http.StatusBadRequest, err)
		}
	}
	if v == nil {
		return JSONError(http.StatusServiceUnavailable, ErrNotReady)
	}

	violation, err := v.Validate(req.Value)
	if err != nil {
		return JSONError(http.StatusBadRequest, err)
	}
	if violation == nil {
		return JSON(ValidateResponse{Valid: true})
	}

	h.log.InfoContext(r.Context(), "nip rejected",
		logger.Component("nipapi"),
		logger.Kind(violation.Kind.String()),
	)

	return JSON(ValidateResponse{
		Valid:   false,
		Code:    violation.Code().String(),
		Error:   violation.Kind.String(),
		Message: violation.Message(),
		Value:   violation.Value,
		Pattern: violation.Pattern,
	})
}

// Pattern handles GET /v1/nip/pattern.
func (h *Handler) Pattern(_ *http.Request) Response {
	if h.validator == nil {
		return JSONError(http.StatusServiceUnavailable, ErrNotReady)
	}
	return JSON(PatternResponse{Pattern: h.validator.Pattern()})
}

// Ready is the readiness check of the handler.
func (h *Handler) Ready(_ *http.Request) error {
	if h.validator == nil {
		return ErrNotReady
	}
	return nil
}

func (h *Handler) decode(r *http.Request, dst *ValidateRequest) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodyBytes+1))
	if err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if int64(len(body)) > h.maxBodyBytes {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, h.maxBodyBytes)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON object", ErrMalformedBody)
	}
	return nil
}
