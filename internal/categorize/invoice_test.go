package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceExtract_Labeled(t *testing.T) {
	e := NewInvoiceExtractor(DefaultInvoiceMinDigits)

	tests := []struct {
		detail string
		want   string
	}{
		{"Payment Invoice INV-4521 Acme Ltd", "INV-4521"},
		{"invoice 1042 consulting services", "1042"},
		{"Fattura nr 8821 fornitore", "8821"},
		{"Fatt nr 993", "993"},
		{"transfer ref 7061", "7061"},
		{"payment no. 55443", "55443"},
		{"invoice: 7788001", "7788001"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Extract(tt.detail), "detail %q", tt.detail)
	}
}

func TestInvoiceExtract_BareNumber(t *testing.T) {
	e := NewInvoiceExtractor(DefaultInvoiceMinDigits)

	// A long digit run with no label still counts.
	assert.Equal(t, "1234567", e.Extract("Payment order 1234567 to supplier"))

	// Short runs are date fragments or card digits, not invoices.
	assert.Empty(t, e.Extract("42"))
	assert.Empty(t, e.Extract("paid 03/04/2025"))
}

func TestInvoiceExtract_LabeledBeforeBare(t *testing.T) {
	e := NewInvoiceExtractor(DefaultInvoiceMinDigits)

	// The labeled match wins even when a longer bare run appears first,
	// and labeled codes ignore the bare-number threshold.
	assert.Equal(t, "111", e.Extract("9988776 then ref 111"))
}

func TestInvoiceExtract_FirstMatchOnly(t *testing.T) {
	e := NewInvoiceExtractor(DefaultInvoiceMinDigits)
	assert.Equal(t, "100", e.Extract("invoice 100 and invoice 200"))
}

func TestInvoiceExtract_Empty(t *testing.T) {
	e := NewInvoiceExtractor(DefaultInvoiceMinDigits)
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("no numbers here"))
}

func TestInvoiceExtract_ConfigurableThreshold(t *testing.T) {
	strict := NewInvoiceExtractor(8)
	assert.Empty(t, strict.Extract("order 1234567"))
	assert.Equal(t, "123456789", strict.Extract("order 123456789"))

	lax := NewInvoiceExtractor(3)
	assert.Equal(t, "1042", lax.Extract("order 1042"))
}

func TestInvoiceExtract_Deterministic(t *testing.T) {
	e := NewInvoiceExtractor(DefaultInvoiceMinDigits)
	first := e.Extract("Payment Invoice INV-4521 Acme Ltd")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Extract("Payment Invoice INV-4521 Acme Ltd"))
	}
}
