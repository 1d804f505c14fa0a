package reading

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"numerology/internal/interpretation"
	"numerology/internal/numerology"
	"numerology/internal/reading/metrics"
	"numerology/pkg/domain"
	dErrors "numerology/pkg/domain-errors"
	"numerology/pkg/platform/sentinel"
	"numerology/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	metrics *metrics.Metrics
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(interpretation.Default(), WithMetrics(s.metrics))
}

func (s *ServiceSuite) TestCalculateJohn() {
	result, err := s.service.Calculate(s.ctx, Request{
		FullName:  "John",
		BirthDate: domain.BirthDate{Year: 1990, Month: 7, Day: 16},
	})
	s.Require().NoError(err)

	s.Equal(numerology.Number(6), result.LifePath.Number)
	s.Equal(numerology.Number(2), result.Destiny.Number)
	s.Equal(numerology.Number(6), result.SoulUrge.Number)
	s.Equal(numerology.Number(5), result.Personality.Number)
	s.Equal(s.now, result.CalculatedAt)
	s.Equal("John", result.FullName)

	s.Equal(interpretation.Default().Meaning(domain.CategoryLifePath, 6), result.LifePath.Meaning)
	s.Equal(interpretation.Default().Meaning(domain.CategoryPersonality, 5), result.Personality.Meaning)

	categories := []domain.Category{}
	for _, f := range result.Figures() {
		categories = append(categories, f.Category)
	}
	s.Equal(domain.AllCategories(), categories)

	s.InDelta(1, promtest.ToFloat64(s.metrics.ReadingsTotal), 0)
	s.InDelta(1, promtest.ToFloat64(s.metrics.NumbersDerived.WithLabelValues("lifePath", "6")), 0)
	s.InDelta(0, promtest.ToFloat64(s.metrics.UninterpretedTotal.WithLabelValues("soulUrge")), 0)
}

func (s *ServiceSuite) TestCalculateMasterAndZero() {
	result, err := s.service.Calculate(s.ctx, Request{
		FullName:  "Rhythm",
		BirthDate: domain.BirthDate{Year: 2009, Month: 11, Day: 29},
	})
	s.Require().NoError(err)

	s.Equal(numerology.Number(33), result.LifePath.Number)
	s.True(result.LifePath.Master())
	s.Equal(numerology.Number(11), result.Destiny.Number)

	s.Equal(numerology.Number(0), result.SoulUrge.Number)
	s.False(result.SoulUrge.Master())
	s.Equal(interpretation.Uninterpreted, result.SoulUrge.Meaning)
	s.InDelta(1, promtest.ToFloat64(s.metrics.UninterpretedTotal.WithLabelValues("soulUrge")), 0)
}

func (s *ServiceSuite) TestCalculateRequiresBirthDate() {
	_, err := s.service.Calculate(s.ctx, Request{FullName: "John"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.InDelta(0, promtest.ToFloat64(s.metrics.ReadingsTotal), 0)
}

func (s *ServiceSuite) TestMeaning() {
	s.Run("derivable number", func() {
		f, err := s.service.Meaning(s.ctx, domain.CategoryDestiny, 22)
		s.Require().NoError(err)
		s.True(f.Master())
		s.Contains(f.Meaning, "master builder")
	})

	s.Run("zero uses the fallback", func() {
		f, err := s.service.Meaning(s.ctx, domain.CategorySoulUrge, 0)
		s.Require().NoError(err)
		s.Equal(interpretation.Uninterpreted, f.Meaning)
	})

	s.Run("non derivable number", func() {
		_, err := s.service.Meaning(s.ctx, domain.CategoryDestiny, 10)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown category", func() {
		_, err := s.service.Meaning(s.ctx, domain.Category("maturity"), 1)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestMeaningIsNotCountedAsDerivation() {
	for range 5 {
		_, err := s.service.Meaning(s.ctx, domain.CategoryLifePath, 7)
		s.Require().NoError(err)
	}
	_, err := s.service.Meaning(s.ctx, domain.CategorySoulUrge, 0)
	s.Require().NoError(err)

	s.InDelta(0, promtest.ToFloat64(s.metrics.ReadingsTotal), 0)
	s.Equal(0, promtest.CollectAndCount(s.metrics.NumbersDerived))
	s.Equal(0, promtest.CollectAndCount(s.metrics.UninterpretedTotal))
}

type failingCatalog struct{ err error }

func (f failingCatalog) Lookup(domain.Category, numerology.Number) (string, error) {
	return "", f.err
}

func TestCalculateCatalogFailureFallsBack(t *testing.T) {
	for name, err := range map[string]error{
		"miss":   sentinel.ErrNotFound,
		"broken": errors.New("catalog offline"),
	} {
		t.Run(name, func(t *testing.T) {
			svc := New(failingCatalog{err: err})
			result, calcErr := svc.Calculate(context.Background(), Request{
				FullName:  "John",
				BirthDate: domain.BirthDate{Year: 1990, Month: 7, Day: 16},
			})
			require.NoError(t, calcErr)
			for _, f := range result.Figures() {
				assert.Equal(t, interpretation.Uninterpreted, f.Meaning)
			}
			assert.Equal(t, numerology.Number(6), result.LifePath.Number)
		})
	}
}

func TestCalculateConcurrentCallsAgree(t *testing.T) {
	svc := New(interpretation.Default())
	req := Request{FullName: "Mary Ann Evans", BirthDate: domain.BirthDate{Year: 1819, Month: 11, Day: 22}}
	ctx := requestcontext.WithTime(context.Background(), time.Unix(0, 0).UTC())

	want, err := svc.Calculate(ctx, req)
	require.NoError(t, err)

	results := make([]*Reading, 32)
	g, gctx := errgroup.WithContext(ctx)
	for i := range results {
		g.Go(func() error {
			r, err := svc.Calculate(gctx, req)
			results[i] = r
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, r := range results {
		assert.Equal(t, want.Figures(), r.Figures())
	}
}
