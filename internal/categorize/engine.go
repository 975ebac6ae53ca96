// Package categorize assigns a category, an optional invoice
// reference, and an optional counterparty name to raw statement
// transactions. Classification is a pure function of (detail, amount):
// no I/O, no shared state, total over all inputs.
package categorize

import (
	"github.com/bankcat-dev/bankcat/internal/model"
)

// Engine bundles the category resolver with the two extractors. The
// three run independently: any of them can fail to find anything
// without affecting the others.
type Engine struct {
	resolver *Resolver
	invoice  *InvoiceExtractor
	cparty   *CounterpartyExtractor
}

// NewEngine creates an Engine from its parts.
func NewEngine(resolver *Resolver, invoice *InvoiceExtractor, cparty *CounterpartyExtractor) *Engine {
	return &Engine{resolver: resolver, invoice: invoice, cparty: cparty}
}

// DefaultEngine returns an Engine with the built-in rule table and
// default extraction thresholds.
func DefaultEngine() *Engine {
	return NewEngine(
		DefaultResolver(),
		NewInvoiceExtractor(DefaultInvoiceMinDigits),
		NewCounterpartyExtractor(DefaultCounterpartyMaxWords),
	)
}

// Categorize enriches a single transaction. The input is not modified.
func (e *Engine) Categorize(t model.RawTransaction) model.CategorizedTransaction {
	return model.CategorizedTransaction{
		RawTransaction: t,
		Category:       e.resolver.Resolve(t.Detail, t.Amount),
		Invoice:        e.invoice.Extract(t.Detail),
		Counterparty:   e.cparty.Extract(t.Detail),
	}
}

// CategorizeAll enriches a sequence, preserving order and count.
func (e *Engine) CategorizeAll(txns []model.RawTransaction) []model.CategorizedTransaction {
	out := make([]model.CategorizedTransaction, len(txns))
	for i, t := range txns {
		out[i] = e.Categorize(t)
	}
	return out
}

// Rules exposes the resolver's ordered rule table.
func (e *Engine) Rules() []Rule {
	return e.resolver.Rules()
}
