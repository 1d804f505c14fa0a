package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the reading module.
type Metrics struct {
	// Readings calculated
	ReadingsTotal prometheus.Counter

	// Derived numbers by category and value
	NumbersDerived *prometheus.CounterVec

	// Meaning lookups that fell back to the uninterpreted text
	UninterpretedTotal *prometheus.CounterVec

	CalculateLatency prometheus.Histogram
}

// New creates the reading metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReadingsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "numerology_readings_total",
			Help: "Total number of readings calculated",
		}),

		NumbersDerived: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "numerology_numbers_derived_total",
			Help: "Derived numbers by category and value",
		}, []string{"category", "number"}),

		UninterpretedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "numerology_uninterpreted_total",
			Help: "Figures that had no catalog text and used the fallback",
		}, []string{"category"}),

		CalculateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "numerology_reading_duration_seconds",
			Help:    "Duration of a full reading calculation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementReadings records a completed reading.
func (m *Metrics) IncrementReadings() {
	if m != nil {
		m.ReadingsTotal.Inc()
	}
}

// IncrementNumber records one derived figure.
func (m *Metrics) IncrementNumber(category, number string) {
	if m != nil {
		m.NumbersDerived.WithLabelValues(category, number).Inc()
	}
}

// IncrementUninterpreted records a fallback meaning.
func (m *Metrics) IncrementUninterpreted(category string) {
	if m != nil {
		m.UninterpretedTotal.WithLabelValues(category).Inc()
	}
}

// ObserveCalculateLatency records the reading duration.
func (m *Metrics) ObserveCalculateLatency(d time.Duration) {
	if m != nil {
		m.CalculateLatency.Observe(d.Seconds())
	}
}
