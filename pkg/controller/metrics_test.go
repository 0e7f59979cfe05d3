package controller_test

import (
	"homoglyph/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := controller.NewHTTPMetrics(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /r/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})
	handler := m.Middleware(mux)

	for _, path := range []string{"/r/abc", "/r/def", "/nope"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 2)

	// one series for the route and one for the unmatched request
	counts := map[string]uint64{}
	sizes := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			key := labels["route"] + " " + labels["code"]
			switch family.GetName() {
			case "http_request_duration_seconds":
				counts[key] = metric.GetHistogram().GetSampleCount()
			case "http_response_size_bytes":
				sizes[key] = metric.GetHistogram().GetSampleSum()
			}
		}
	}
	require.Equal(t, map[string]uint64{
		"GET /r/{code} 302": 2,
		"unmatched 404":     1,
	}, counts)
	require.Equal(t, map[string]float64{
		"GET /r/{code} 302": 0,
		"unmatched 404":     float64(len("404 page not found\n")),
	}, sizes)
}
