package reading

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"numerology/internal/interpretation"
	"numerology/internal/numerology"
	"numerology/internal/reading/metrics"
	"numerology/pkg/domain"
	dErrors "numerology/pkg/domain-errors"
	"numerology/pkg/platform/sentinel"
	"numerology/pkg/requestcontext"
)

// Catalog resolves interpretation text. A miss is reported as sentinel.ErrNotFound.
type Catalog interface {
	Lookup(category domain.Category, number numerology.Number) (string, error)
}

// Service derives readings and attaches interpretations.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	catalog Catalog
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(catalog Catalog, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		logger:  slog.New(slog.DiscardHandler),
		tracer:  otel.Tracer("numerology/internal/reading"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate derives the four figures for req.
func (s *Service) Calculate(ctx context.Context, req Request) (*Reading, error) {
	ctx, span := s.tracer.Start(ctx, "reading.Calculate")
	defer span.End()
	start := time.Now()

	if req.BirthDate.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "birth date is required")
	}

	derive := func(category domain.Category, number numerology.Number) Figure {
		f, interpreted := s.figure(ctx, category, number)
		s.metrics.IncrementNumber(string(category), strconv.Itoa(int(number)))
		if !interpreted {
			s.metrics.IncrementUninterpreted(string(category))
		}
		return f
	}

	result := &Reading{
		FullName:     req.FullName,
		BirthDate:    req.BirthDate,
		LifePath:     derive(domain.CategoryLifePath, numerology.LifePathNumber(req.BirthDate)),
		Destiny:      derive(domain.CategoryDestiny, numerology.DestinyNumber(req.FullName)),
		SoulUrge:     derive(domain.CategorySoulUrge, numerology.SoulUrgeNumber(req.FullName)),
		Personality:  derive(domain.CategoryPersonality, numerology.PersonalityNumber(req.FullName)),
		CalculatedAt: requestcontext.Now(ctx),
	}

	span.SetAttributes(
		attribute.Int("numerology.life_path", int(result.LifePath.Number)),
		attribute.Int("numerology.destiny", int(result.Destiny.Number)),
		attribute.Int("numerology.soul_urge", int(result.SoulUrge.Number)),
		attribute.Int("numerology.personality", int(result.Personality.Number)),
	)

	s.metrics.IncrementReadings()
	s.metrics.ObserveCalculateLatency(time.Since(start))
	s.logger.DebugContext(ctx, "reading calculated",
		"request_id", requestcontext.RequestID(ctx),
		"life_path", result.LifePath.Number,
		"destiny", result.Destiny.Number,
		"soul_urge", result.SoulUrge.Number,
		"personality", result.Personality.Number,
	)
	return result, nil
}

// Meaning returns the interpretation of a single (category, number) pair.
// Numbers that no derivation can produce are rejected. Lookups are not
// derivations and leave the reading metrics untouched.
func (s *Service) Meaning(ctx context.Context, category domain.Category, number numerology.Number) (*Figure, error) {
	if !category.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown category")
	}
	if !number.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, "number must be 0-9, 11, 22 or 33")
	}
	f, _ := s.figure(ctx, category, number)
	return &f, nil
}

// figure attaches the catalog text to number. It reports false when the
// fallback text was used.
func (s *Service) figure(ctx context.Context, category domain.Category, number numerology.Number) (Figure, bool) {
	text, err := s.catalog.Lookup(category, number)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "interpretation lookup failed",
				"request_id", requestcontext.RequestID(ctx),
				"category", category,
				"number", number,
				"error", err,
			)
		}
		return Figure{Category: category, Number: number, Meaning: interpretation.Uninterpreted}, false
	}
	return Figure{Category: category, Number: number, Meaning: text}, true
}
