package entity

// RewardType is what a hidden QR code pays out
type RewardType string

// Hidden QR reward types
const (
	RewardCoins RewardType = "coins"
	RewardCard  RewardType = "card"
	RewardTrap  RewardType = "trap"
)

// HiddenQR is an immutable entry of the hidden QR catalog.
// RewardAmount applies to coins and trap codes (traps are negative);
// RewardCardID applies to card codes.
type HiddenQR struct {
	ID           string
	MaxScans     int64
	RewardType   RewardType
	RewardAmount int64
	RewardCardID string
	Message      string
}
