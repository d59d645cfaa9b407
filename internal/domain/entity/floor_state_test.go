package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBalance(t *testing.T) {
	inputs := []int64{math.MinInt64, -1000, -3, -1, 0, 1, 10, 999, math.MaxInt64}

	for _, b := range inputs {
		got := NormalizeBalance(b)
		assert.GreaterOrEqual(t, got, int64(0), "NormalizeBalance(%d)", b)
		if b >= 0 {
			assert.Equal(t, b, got, "NormalizeBalance(%d) must be the identity", b)
		}
	}
}

func TestClampBalance(t *testing.T) {
	assert.Equal(t, int64(5), ClampBalance(-2, 5))
	assert.Equal(t, int64(7), ClampBalance(7, 5))
}

func TestDeriveFloorState(t *testing.T) {
	testCases := []struct {
		name       string
		balance    int64
		hasRevived bool
		expected   FloorState
	}{
		{"positive balance is active", 4, false, StateActive},
		{"positive balance after revive is active", 4, true, StateActive},
		{"zero without revive is eligible", 0, false, StateAtFloorEligible},
		{"zero after revive is exhausted", 0, true, StateAtFloorExhausted},
		{"negative is treated as zero", -3, false, StateAtFloorEligible},
		{"negative after revive is exhausted", -3, true, StateAtFloorExhausted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveFloorState(tc.balance, tc.hasRevived))
		})
	}
}

func TestMissionTemplate_NeedsConfirmer(t *testing.T) {
	assert.False(t, MissionTemplate{Verification: VerifyHonor}.NeedsConfirmer())
	assert.True(t, MissionTemplate{Verification: VerifyHonor, RequiresConfirmation: true}.NeedsConfirmer())
	assert.True(t, MissionTemplate{Verification: VerifyWitness}.NeedsConfirmer())
	assert.True(t, MissionTemplate{Verification: VerifyTarget}.NeedsConfirmer())
}

func TestHuntChain_StepIndex(t *testing.T) {
	chain := HuntChain{ID: "c", Steps: []HuntStep{{Code: "HUNT-A"}, {Code: "HUNT-B"}}}

	assert.Equal(t, 1, chain.StepIndex("HUNT-B"))
	assert.Equal(t, -1, chain.StepIndex("HUNT-Z"))
}
