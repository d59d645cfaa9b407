package core

import "time"

// Floor outcome labels recorded by the balance guard
const (
	FloorOutcomeActive      = "active"
	FloorOutcomeRevived     = "revived"
	FloorOutcomeGameOver    = "game_over"
	FloorOutcomeReadFailed  = "read_failed"
	FloorOutcomeGrantFailed = "grant_failed"
)

// Metrics records business and gateway counters
type Metrics interface {
	// RecordFloorOutcome counts one settle-floor result by outcome label
	RecordFloorOutcome(outcome string)
	// RecordCardDraw counts one risk card draw by card type
	RecordCardDraw(cardType string)
	// RecordGatewayOperation records the latency and result of one persistence call
	RecordGatewayOperation(operation string, failed bool, elapsed time.Duration)
}
