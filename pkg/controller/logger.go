package controller

import (
	"context"
	"homoglyph/pkg/logger"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// statusRecorder remembers the status code and body size a handler wrote.
type statusRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n

	return n, err //nolint: wrapcheck
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// GetClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// connection's remote address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		client, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(client)
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// CtxKey types the context keys of this package.
type CtxKey string

// RequestIDKey holds the request ID in the request context.
const RequestIDKey CtxKey = "RequestID"

const maxRequestIDLen = 128

// RequestID returns the request ID stored by WithLogger, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// validRequestID accepts caller supplied IDs made of printable ASCII only, so
// they can be echoed in a header and logged as is.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := range len(id) {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}

	return true
}

// WithLogger tags the request context with a request ID and a logger carrying
// it, echoes the ID in the response and writes one access log line per
// request. Server errors log at error level and client errors at warn.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String(string(RequestIDKey), requestID))
		w.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		log := logger.Info
		switch {
		case rec.status >= http.StatusInternalServerError:
			log = logger.Error
		case rec.status >= http.StatusBadRequest:
			log = logger.Warn
		}
		log(ctx, "Access log",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Int("status_code", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("referer", r.Referer()),
		)
	})
}
