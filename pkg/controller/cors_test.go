package controller_test

import (
	"homoglyph/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/detect", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS("")(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestWithCORS_ConfiguredOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/r/abc123", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS("https://app.example.com")(next).ServeHTTP(rec, req)

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)

	require.Equal(t, "https://app.example.com", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
}
