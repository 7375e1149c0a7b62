package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds service-wide Prometheus metrics. Feature modules register
// their own metrics in their metrics subpackages.
type Metrics struct {
	CasesSubmitted   *prometheus.CounterVec
	ValidationErrors prometheus.Counter
}

// New creates and registers all service-wide metrics.
func New() *Metrics {
	return &Metrics{
		CasesSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aeroclaim_cases_submitted_total",
			Help: "Total dispute cases submitted, labeled by resulting case status",
		}, []string{"status"}),

		ValidationErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aeroclaim_validation_rejections_total",
			Help: "Total submissions rejected by form validation",
		}),
	}
}

// IncrementCasesSubmitted records a persisted case by status.
func (m *Metrics) IncrementCasesSubmitted(status string) {
	if m != nil {
		m.CasesSubmitted.WithLabelValues(status).Inc()
	}
}

// IncrementValidationErrors records a submission blocked by validation.
func (m *Metrics) IncrementValidationErrors() {
	if m != nil {
		m.ValidationErrors.Inc()
	}
}
