package controller_test

import (
	"homoglyph/pkg/controller"
	"homoglyph/pkg/logger"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		value      string
		remoteAddr string
		want       string
	}{
		{"x-forwarded-for", "X-Forwarded-For", "1.2.3.4, 5.6.7.8", "", "1.2.3.4"},
		{"x-real-ip", "X-Real-IP", "9.8.7.6", "", "9.8.7.6"},
		{"remote addr", "", "", "10.0.0.1:12345", "10.0.0.1"},
		{"invalid remote addr", "", "", "not-an-addr", "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("{}"))
	})

	// request provides X-Request-Id header
	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	req1.Header.Set(controller.RequestIDHeader, "abc-123")
	rec1 := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec1, req1)
	require.Equal(t, http.StatusCreated, rec1.Code)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec1.Header().Get(controller.RequestIDHeader))

	// request without header still receives a generated ID
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	rec2 := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec2, req2)
	require.Equal(t, http.StatusCreated, rec2.Code)
	require.NotEmpty(t, seen)
	require.NotEqual(t, "abc-123", seen)
	require.Equal(t, seen, rec2.Header().Get(controller.RequestIDHeader))
}

func TestWithLogger_ReplacesInvalidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"too long", strings.Repeat("a", 129)},
		{"space", "abc 123"},
		{"control character", "abc\x01"},
		{"non ascii", "réquest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = controller.RequestID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(controller.RequestIDHeader, tt.id)
			rec := httptest.NewRecorder()
			controller.WithLogger(next).ServeHTTP(rec, req)

			require.NotEqual(t, tt.id, seen)
			require.Len(t, seen, 36)
			require.Equal(t, seen, rec.Header().Get(controller.RequestIDHeader))
		})
	}
}

func TestWithLogger_ErrorStatuses(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		})
		require.Equal(t, status, rec.Code)
	}
}
