package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
)

// TransactionType classifies a ledger entry
type TransactionType string

// Ledger entry types
const (
	TypeRegistration  TransactionType = "registration"
	TypeRevive        TransactionType = "revive"
	TypeAdjustment    TransactionType = "adjustment"
	TypeRiskCard      TransactionType = "risk_card"
	TypeHiddenQR      TransactionType = "hidden_qr"
	TypeScavengerHunt TransactionType = "scavenger_hunt"
	TypeMission       TransactionType = "mission"
)

// IsValid reports whether t is a known ledger type
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeRegistration, TypeRevive, TypeAdjustment, TypeRiskCard,
		TypeHiddenQR, TypeScavengerHunt, TypeMission:
		return true
	}
	return false
}

// Transaction is an append-only ledger entry. It is never mutated once stored.
type Transaction struct {
	ID          uint64          // Assigned by the store
	ToUserID    string          // User whose balance the entry belongs to
	Amount      int64           // Signed coin amount
	Type        TransactionType // Ledger type
	Description string          // Human readable reason
	CreatedAt   time.Time       // When the entry was appended
}

// NewTransaction builds a ledger entry stamped with the current time
func NewTransaction(toUserID string, amount int64, txType TransactionType, description string, timeProvider coreport.TimeProvider) *Transaction {
	return &Transaction{
		ToUserID:    toUserID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}
}
