package entity

// Balance floor constants
const (
	// ReviveAmount is the balance granted by the one-time revive
	ReviveAmount int64 = 10
	// MinBalance is the floor no reported balance goes below
	MinBalance int64 = 0
)

// FloorOutcome is the total result of settling a balance against the floor
type FloorOutcome struct {
	Revived    bool
	GameOver   bool
	NewBalance int64
}

// FloorState is the per-user position relative to the balance floor.
// It is derived from persisted fields and never stored.
type FloorState string

// Floor states
const (
	StateActive           FloorState = "active"
	StateAtFloorEligible  FloorState = "at_floor_eligible"
	StateAtFloorExhausted FloorState = "at_floor_exhausted"
)

// NormalizeBalance clamps a raw balance to MinBalance
func NormalizeBalance(raw int64) int64 {
	return ClampBalance(raw, MinBalance)
}

// ClampBalance returns max(raw, floor)
func ClampBalance(raw, floor int64) int64 {
	return max(raw, floor)
}

// DeriveFloorState computes the floor state for a balance and revive flag
func DeriveFloorState(balance int64, hasRevived bool) FloorState {
	if NormalizeBalance(balance) > MinBalance {
		return StateActive
	}
	if hasRevived {
		return StateAtFloorExhausted
	}
	return StateAtFloorEligible
}
