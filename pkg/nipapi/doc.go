// Package nipapi exposes NIP validation over HTTP.
//
// Routes:
//
//	POST /v1/nip/validate  validate {"value": ..., "settings": {...}}
//	GET  /v1/nip/pattern   pattern of the server's default settings
//	GET  /health/live      liveness probe
//	GET  /health/ready     readiness probe
//
// A validation request without settings uses the server's validator. With
// settings a validator is built for that request only; the settings use the
// same JSON form as nip.Settings.
package nipapi
