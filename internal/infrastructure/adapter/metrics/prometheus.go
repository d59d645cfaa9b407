package metrics

import (
	"time"

	"github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Gateway operation results
const (
	resultOK    = "ok"
	resultError = "error"
)

// PrometheusMetrics records bank counters on a Prometheus registerer
type PrometheusMetrics struct {
	floorOutcomes     *prometheus.CounterVec
	cardDraws         *prometheus.CounterVec
	gatewayOperations *prometheus.CounterVec
	gatewayDuration   *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the bank metrics and registers them on registerer.
// A nil registerer means the default registry.
func NewPrometheusMetrics(registerer prometheus.Registerer, namespace string) (*PrometheusMetrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &PrometheusMetrics{
		floorOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "floor_outcomes_total",
				Help:      "Balance floor settlements by outcome.",
			},
			[]string{"outcome"},
		),
		cardDraws: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "card_draws_total",
				Help:      "Risk cards drawn by card type.",
			},
			[]string{"type"},
		),
		gatewayOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gateway_operations_total",
				Help:      "Persistence gateway calls by operation and result.",
			},
			[]string{"operation", "result"},
		),
		gatewayDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_operation_duration_seconds",
				Help:      "Persistence gateway call latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	for _, c := range []prometheus.Collector{m.floorOutcomes, m.cardDraws, m.gatewayOperations, m.gatewayDuration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordFloorOutcome counts one settle-floor result
func (m *PrometheusMetrics) RecordFloorOutcome(outcome string) {
	m.floorOutcomes.WithLabelValues(outcome).Inc()
}

// RecordCardDraw counts one risk card draw
func (m *PrometheusMetrics) RecordCardDraw(cardType string) {
	m.cardDraws.WithLabelValues(cardType).Inc()
}

// RecordGatewayOperation records the latency and result of one persistence call
func (m *PrometheusMetrics) RecordGatewayOperation(operation string, failed bool, elapsed time.Duration) {
	result := resultOK
	if failed {
		result = resultError
	}
	m.gatewayOperations.WithLabelValues(operation, result).Inc()
	m.gatewayDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// NoopMetrics drops every measurement
type NoopMetrics struct{}

// NewNoopMetrics creates metrics that record nothing
func NewNoopMetrics() core.Metrics {
	return NoopMetrics{}
}

func (NoopMetrics) RecordFloorOutcome(string) {}
func (NoopMetrics) RecordCardDraw(string) {}
func (NoopMetrics) RecordGatewayOperation(string, bool, time.Duration) {}
