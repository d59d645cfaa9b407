package catalog

import (
	"strings"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
)

// HuntPrefix marks codes that belong to a scavenger-hunt chain
const HuntPrefix = "HUNT-"

var huntChains = []entity.HuntChain{
	{
		ID:   "kitchen_trail",
		Name: "Kitchen Trail",
		Steps: []entity.HuntStep{
			{Code: "HUNT-K1", Clue: "Where the cold things sleep.", Reward: 2},
			{Code: "HUNT-K2", Clue: "It whistles when it's ready.", Reward: 3},
			{Code: "HUNT-K3", Clue: "Under the thing that holds the forks.", Reward: 5},
		},
	},
	{
		ID:   "garden_trail",
		Name: "Garden Trail",
		Steps: []entity.HuntStep{
			{Code: "HUNT-G1", Clue: "Wet feet start here.", Reward: 2},
			{Code: "HUNT-G2", Clue: "Count the gnomes, check the third.", Reward: 2},
			{Code: "HUNT-G3", Clue: "The bench that never gets sat on.", Reward: 3},
			{Code: "HUNT-G4", Clue: "Behind the gate, above the latch.", Reward: 6},
		},
	},
}

// FindHuntStep locates the chain and step that own code. The chain is a copy.
func FindHuntStep(code string) (entity.HuntChain, int, bool) {
	for _, chain := range huntChains {
		if i := chain.StepIndex(code); i >= 0 {
			chain.Steps = append([]entity.HuntStep(nil), chain.Steps...)
			return chain, i, true
		}
	}
	return entity.HuntChain{}, -1, false
}

// CodeKind is the catalog a scanned code belongs to
type CodeKind string

// Code kinds
const (
	CodeHunt    CodeKind = "hunt"
	CodeHidden  CodeKind = "hidden"
	CodeUnknown CodeKind = "unknown"
)

// IsHuntCode reports whether code uses the scavenger-hunt prefix
func IsHuntCode(code string) bool {
	return strings.HasPrefix(strings.ToUpper(code), HuntPrefix)
}

// IsHiddenQRCode reports whether code uses the hidden QR prefix
func IsHiddenQRCode(code string) bool {
	return strings.HasPrefix(strings.ToUpper(code), HiddenQRPrefix)
}

// ClassifyCode sorts a scanned code into its catalog by prefix
func ClassifyCode(code string) CodeKind {
	switch {
	case IsHuntCode(code):
		return CodeHunt
	case IsHiddenQRCode(code):
		return CodeHidden
	default:
		return CodeUnknown
	}
}
