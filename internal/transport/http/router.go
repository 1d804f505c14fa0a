package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"numerology/internal/platform/metrics"
	"numerology/internal/platform/middleware"
	"numerology/pkg/platform/httputil"
	"numerology/pkg/platform/middleware/metadata"
	"numerology/pkg/platform/middleware/requestid"
	"numerology/pkg/platform/middleware/requesttime"
)

// Module mounts its endpoints on the router.
type Module interface {
	Register(r chi.Router)
}

// Deps are the collaborators the router wires together.
type Deps struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics // nil disables /metrics and HTTP metrics
	RequestTimeout time.Duration
	Modules        []Module
}

// NewRouter wires middleware, operational endpoints and every module.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.RequestLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(chimw.Recoverer)
	if d.RequestTimeout > 0 {
		r.Use(chimw.Timeout(d.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "not_found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{Error: "method_not_allowed"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	for _, m := range d.Modules {
		m.Register(r)
	}
	return r
}
