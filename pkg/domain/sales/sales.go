// Package sales provides the append-only ledger of monetary events. Ledger
// history lives in storage only; every query re-reads it in full, nothing is
// cached across calls.
package sales

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies a monetary event. The values are the tags written to the
// persisted ledger document.
type Type string

const (
	TypeProduct                Type = "producto"
	TypeMembershipRenewal      Type = "membresia"
	TypeMembershipCancellation Type = "cancelacion"
	TypeRenewalPayment         Type = "pago_renovacion"
)

// IsValid returns true if the type is a recognized sale type.
func (t Type) IsValid() bool {
	switch t {
	case TypeProduct, TypeMembershipRenewal, TypeMembershipCancellation, TypeRenewalPayment:
		return true
	default:
		return false
	}
}

// String returns the persisted tag of the sale type.
func (t Type) String() string {
	return string(t)
}

// Entry is one immutable line of the sales ledger.
type Entry struct {
	ID          string
	Timestamp   time.Time
	Type        Type
	ClientID    string
	Description string
	Amount      float64
}

// NewEntry creates a ledger entry stamped with the current time.
func NewEntry(t Type, clientID, description string, amount float64) Entry {
	return Entry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now(),
		Type:        t,
		ClientID:    clientID,
		Description: description,
		Amount:      amount,
	}
}

// Ledger is the append capability handed to the aggregate. Implementations
// are write-once-append; entries are never mutated or deleted.
type Ledger interface {
	Append(Entry) error
	All() ([]Entry, error)
}

// TotalsByType sums ledger entries overall and per sale type.
func TotalsByType(entries []Entry) (total float64, byType map[Type]float64) {
	byType = make(map[Type]float64)
	for _, e := range entries {
		total += e.Amount
		byType[e.Type] += e.Amount
	}
	return total, byType
}
