package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gogate components.
type Registry struct {
	// Admission metrics
	Requests     *prometheus.CounterVec
	Allowed      *prometheus.CounterVec
	Denied       *prometheus.CounterVec
	WaitDuration *prometheus.HistogramVec
	QueueDepth   *prometheus.GaugeVec
	Tokens       *prometheus.GaugeVec

	// Lifecycle metrics
	Instances *prometheus.GaugeVec
	Created   prometheus.Counter
	Destroyed prometheus.Counter
	Evicted   prometheus.Counter
}

// DefaultRegistry is the default metrics registry used by gogate components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "limiter",
				Name:      "requests_total",
				Help:      "Total number of admission requests",
			},
			[]string{"algorithm", "name"},
		),

		Allowed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "limiter",
				Name:      "allowed_total",
				Help:      "Total number of allowed requests",
			},
			[]string{"algorithm", "name"},
		),

		Denied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "limiter",
				Name:      "denied_total",
				Help:      "Total number of denied requests",
			},
			[]string{"algorithm", "name"},
		),

		WaitDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gogate",
				Subsystem: "limiter",
				Name:      "wait_duration_seconds",
				Help:      "Time spent waiting for admission",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"algorithm", "name"},
		),

		QueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gogate",
				Subsystem: "limiter",
				Name:      "queue_depth",
				Help:      "Number of callers currently queued in a leaky bucket",
			},
			[]string{"name"},
		),

		Tokens: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gogate",
				Subsystem: "limiter",
				Name:      "tokens_available",
				Help:      "Number of tokens currently available in a token bucket",
			},
			[]string{"name"},
		),

		Instances: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gogate",
				Subsystem: "registry",
				Name:      "instances",
				Help:      "Number of live limiter instances",
			},
			[]string{"algorithm"},
		),

		Created: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "registry",
				Name:      "created_total",
				Help:      "Total number of limiter instances created",
			},
		),

		Destroyed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "registry",
				Name:      "destroyed_total",
				Help:      "Total number of limiter instances destroyed",
			},
		),

		Evicted: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "registry",
				Name:      "evicted_total",
				Help:      "Total number of limiter instances evicted for idleness",
			},
		),
	}
}
