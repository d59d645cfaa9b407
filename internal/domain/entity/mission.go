package entity

// VerificationMode says who vouches for a completed mission
type VerificationMode string

// Verification modes
const (
	VerifyHonor   VerificationMode = "honor"
	VerifyWitness VerificationMode = "witness"
	VerifyTarget  VerificationMode = "target"
)

// MissionTemplate is one mission offered to guests with a trait
type MissionTemplate struct {
	Title                string
	Description          string
	Reward               int64
	Verification         VerificationMode
	RequiresConfirmation bool
}

// NeedsConfirmer reports whether another guest must confirm the mission
func (m MissionTemplate) NeedsConfirmer() bool {
	return m.RequiresConfirmation || m.Verification != VerifyHonor
}

// Trait is a personality trait with its ordered missions
type Trait struct {
	ID          string
	Name        string
	Emoji       string
	Description string
	Missions    []MissionTemplate
}
