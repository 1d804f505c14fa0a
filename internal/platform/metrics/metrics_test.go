package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/v1/meanings/{category}/{number}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/v1/meanings/destiny/1", "/v1/meanings/lifePath/7"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues(http.MethodGet, "/v1/meanings/{category}/{number}", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.RequestsTotal.WithLabelValues(http.MethodPost, "/v1/readings", "200").Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "numerology_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestRoutePatternWithoutRouter(t *testing.T) {
	assert.Equal(t, "unmatched", RoutePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}
