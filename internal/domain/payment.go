package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodCash   PaymentMethod = "cash"
	MethodOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCard, MethodCash, MethodOnline:
		return true
	}
	return false
}

// Payment records a simulated payment attempt. It is created pending
// (Successful=false) and flipped to successful by an explicit settlement
// step; a pending payment is not evidence of a completed transaction.
type Payment struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	PaidAt     time.Time       `json:"paid_at"`
	Successful bool            `json:"successful"`
}
