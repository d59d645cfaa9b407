package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg, "partybank")
	require.NoError(t, err)

	m.RecordFloorOutcome(core.FloorOutcomeRevived)
	m.RecordFloorOutcome(core.FloorOutcomeGameOver)
	m.RecordFloorOutcome(core.FloorOutcomeGameOver)
	m.RecordCardDraw("lucky")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.floorOutcomes.WithLabelValues(core.FloorOutcomeRevived)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.floorOutcomes.WithLabelValues(core.FloorOutcomeGameOver)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cardDraws.WithLabelValues("lucky")))

	expected := `
# HELP partybank_floor_outcomes_total Balance floor settlements by outcome.
# TYPE partybank_floor_outcomes_total counter
partybank_floor_outcomes_total{outcome="game_over"} 2
partybank_floor_outcomes_total{outcome="revived"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "partybank_floor_outcomes_total"))
}

func TestPrometheusMetrics_GatewayOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg, "partybank")
	require.NoError(t, err)

	m.RecordGatewayOperation("conditional_grant", false, 3*time.Millisecond)
	m.RecordGatewayOperation("conditional_grant", true, 5*time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.gatewayOperations.WithLabelValues("conditional_grant", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gatewayOperations.WithLabelValues("conditional_grant", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.gatewayDuration))
}

func TestPrometheusMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMetrics(reg, "partybank")
	require.NoError(t, err)

	_, err = NewPrometheusMetrics(reg, "partybank")
	assert.Error(t, err)
}

func TestNoopMetrics(t *testing.T) {
	m := NewNoopMetrics()
	assert.NotPanics(t, func() {
		m.RecordFloorOutcome(core.FloorOutcomeActive)
		m.RecordCardDraw("drink")
		m.RecordGatewayOperation("read_revive_flag", false, time.Millisecond)
	})
}
