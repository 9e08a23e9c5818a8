package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_cpf_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CPFValidations counts validations by input source and outcome
	CPFValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cpf_validations_total",
			Help: "Number of CPF validations",
		},
		[]string{"source", "result"},
	)

	// BatchSize tracks the number of entries per batch validation request
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "app_cpf_batch_size",
			Help:    "Number of entries in batch validation requests",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_cpf_active_connections",
			Help: "Number of active connections",
		},
	)
)
