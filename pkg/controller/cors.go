package controller

import "net/http"

// WithCORS returns a middleware that sets CORS headers for origin on every
// response and short-circuits OPTIONS preflight requests with 204 No Content.
// An empty origin falls back to "*".
func WithCORS(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				// credentials are not allowed with a wildcard origin
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Request-Id")
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
