// Package controller holds the net/http plumbing shared by every route of the
// API server: CORS, access logging with request IDs, Prometheus route metrics
// and an optional pprof mux. Handlers themselves live in internal/api.
package controller
