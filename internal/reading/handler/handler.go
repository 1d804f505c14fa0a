package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"numerology/internal/numerology"
	"numerology/internal/reading"
	"numerology/pkg/domain"
	dErrors "numerology/pkg/domain-errors"
	"numerology/pkg/platform/httputil"
	"numerology/pkg/requestcontext"
)

// Service defines the interface for reading operations.
type Service interface {
	Calculate(ctx context.Context, req reading.Request) (*reading.Reading, error)
	Meaning(ctx context.Context, category domain.Category, number numerology.Number) (*reading.Figure, error)
}

// Handler wires reading endpoints to the reading service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a reading handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts reading endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/readings", h.HandleCalculate)
	r.Get("/v1/meanings/{category}/{number}", h.HandleMeaning)
}

// HandleCalculate handles POST /v1/readings requests.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CalculateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Calculate(ctx, reading.Request{
		FullName:  req.FullName,
		BirthDate: req.ParsedBirthDate(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "reading calculation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "reading calculated",
		"request_id", requestID,
		"life_path", result.LifePath.Number,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromReading(result))
}

// HandleMeaning handles GET /v1/meanings/{category}/{number} requests.
func (h *Handler) HandleMeaning(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	n, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInvalidInput, "number must be an integer"))
		return
	}

	figure, err := h.service.Meaning(ctx, category, numerology.Number(n))
	if err != nil {
		h.logger.WarnContext(ctx, "meaning lookup rejected",
			"request_id", requestID,
			"category", category,
			"number", n,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromFigure(*figure))
}
