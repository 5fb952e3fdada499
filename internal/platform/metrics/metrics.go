package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ClientRequestsTotal counts dispatched Valet requests by method and outcome.
	ClientRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valet_client_requests_total",
			Help: "Total number of requests dispatched to the Valet API",
		},
		[]string{"method", "outcome"},
	)

	ClientRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "valet_client_request_duration_seconds",
			Help:    "Valet API round trip latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"method", "outcome"},
	)

	// AverageComputationsTotal counts average computations by result (ok, invalid_input, upstream_error, no_data, decode_error).
	AverageComputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valet_average_computations_total",
			Help: "Total number of average conversion rate computations",
		},
		[]string{"result"},
	)
)

// Register registers the collectors; collectors that are already registered are skipped.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{ClientRequestsTotal, ClientRequestDurationSeconds, AverageComputationsTotal} {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
