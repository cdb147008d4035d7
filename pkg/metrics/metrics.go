package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "golf_api"

// Metrics holds the Prometheus collectors of the calculator and the weather lookups.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Calculations       *prometheus.CounterVec // labels: mode={single,sweep}
	CalculationErrors  *prometheus.CounterVec // labels: kind={parse,validation,not_found}
	ClubsPerBatch      prometheus.Histogram
	ConditionsLookups  *prometheus.CounterVec // labels: source={cache,api}
	WeatherAPIFailures prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Adjusted distance calculations by mode.",
		}, []string{"mode"}),
		CalculationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculation_errors_total",
			Help:      "Rejected calculation requests by error kind.",
		}, []string{"kind"}),
		ClubsPerBatch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "clubs_per_batch",
			Help:      "Number of clubs adjusted per calculation request.",
			Buckets:   []float64{1, 2, 4, 6, 8, 10, 12, 14, 20},
		}),
		ConditionsLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_conditions_lookups_total",
			Help:      "Weather conditions lookups by the source that answered them.",
		}, []string{"source"}),
		WeatherAPIFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_api_failures_total",
			Help:      "Failed calls to the National Weather Service.",
		}),
	}

	reg.MustRegister(
		m.Calculations,
		m.CalculationErrors,
		m.ClubsPerBatch,
		m.ConditionsLookups,
		m.WeatherAPIFailures,
	)

	return m
}

// ObserveBatch records a successful calculation over clubs clubs
func (m *Metrics) ObserveBatch(mode string, clubs int) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(mode).Inc()
	m.ClubsPerBatch.Observe(float64(clubs))
}

// ObserveCalculationError counts a rejected calculation by kind
func (m *Metrics) ObserveCalculationError(kind string) {
	if m == nil {
		return
	}
	m.CalculationErrors.WithLabelValues(kind).Inc()
}

// ObserveConditionsLookup counts a conditions lookup answered by source
func (m *Metrics) ObserveConditionsLookup(source string) {
	if m == nil {
		return
	}
	m.ConditionsLookups.WithLabelValues(source).Inc()
}

// ObserveWeatherAPIFailure counts a failed weather service call
func (m *Metrics) ObserveWeatherAPIFailure() {
	if m == nil {
		return
	}
	m.WeatherAPIFailures.Inc()
}
