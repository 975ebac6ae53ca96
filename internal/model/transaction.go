package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTransaction is one statement row as produced by a statement parser.
// Amount is signed: negative = outgoing, non-negative = incoming.
type RawTransaction struct {
	Date   time.Time
	Detail string
	Amount decimal.Decimal
}

// Incoming reports whether the transaction counts toward the incoming view.
func (t RawTransaction) Incoming() bool {
	return !t.Amount.IsNegative()
}

// CategorizedTransaction is a RawTransaction enriched by the
// categorization engine. Invoice and Counterparty are empty when the
// extractors found nothing; Category is never empty.
type CategorizedTransaction struct {
	RawTransaction
	Category     Category
	Invoice      string
	Counterparty string
}
