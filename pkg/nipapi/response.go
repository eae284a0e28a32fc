package nipapi

import (
	"encoding/json"
	"net/http"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ValidateResponse is the body of POST /v1/nip/validate. Only Valid is set
// for accepted values.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Value   string `json:"value,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

// PatternResponse is the body of GET /v1/nip/pattern.
type PatternResponse struct {
	Pattern string `json:"pattern"`
}

// ErrorResponse is the body of every 4xx and 5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders v with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: v}
}

// JSONError renders err as {"error": "..."} with the given status.
func JSONError(status int, err error) Response {
	return jsonResponse{status: status, body: ErrorResponse{Error: err.Error()}}
}
