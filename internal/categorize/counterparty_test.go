package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterparty_DelimitedFields(t *testing.T) {
	e := NewCounterpartyExtractor(DefaultCounterpartyMaxWords)

	tests := []struct {
		detail string
		want   string
	}{
		{"CARD PAYMENT | STARBUCKS LONDON | GBP 4.50", "STARBUCKS LONDON"},
		{"DIRECT DEBIT | MELITA PLC | EUR 35.00", "MELITA PLC"},
		{"TRANSFER | Jane Fenech | memo rent", "Jane Fenech"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Extract(tt.detail), "detail %q", tt.detail)
	}
}

func TestCounterparty_LabeledPhrases(t *testing.T) {
	e := NewCounterpartyExtractor(DefaultCounterpartyMaxWords)

	tests := []struct {
		detail string
		want   string
	}{
		{"Sent money to John Baker transaction: 12345", "John Baker"},
		{"Sent money to Olive Grove Ltd", "Olive Grove Ltd"},
		{"Received money from ACME LTD with reference invoice 42", "ACME LTD"},
		{"Card transaction of EUR 23.10 issued by STARBUCKS MALTA card ending in 1234", "STARBUCKS MALTA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Extract(tt.detail), "detail %q", tt.detail)
	}
}

func TestCounterparty_TaxAdministrationReference(t *testing.T) {
	e := NewCounterpartyExtractor(DefaultCounterpartyMaxWords)
	assert.Equal(t, "123456789", e.Extract("PAYMENT TO TAX ADMINISTRATIO 123456789"))
}

func TestCounterparty_CleanupHeuristics(t *testing.T) {
	e := NewCounterpartyExtractor(DefaultCounterpartyMaxWords)

	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{"company suffix", "SCT OUTWARDS Olive Grove Catering Ltd REF: 2024-9", "Olive Grove Catering Ltd"},
		{"person title", "payment order outwards Mr John Smith", "Mr John Smith"},
		{"uppercase run", "24x7 PAY THIRD PARTIES WHITE STONE BAKERY", "WHITE STONE BAKERY"},
		{"capitalized run", "standing instruction Valletta Stationers monthly", "Valletta Stationers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.detail))
		})
	}
}

func TestCounterparty_Absent(t *testing.T) {
	e := NewCounterpartyExtractor(DefaultCounterpartyMaxWords)

	// Nothing left after cleanup, or the residual is a pure code.
	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   "))
	assert.Empty(t, e.Extract("cheque 000123 4456"))
	assert.Empty(t, e.Extract("zzz-no-match-xyz"))
	assert.Empty(t, e.Extract("0042 1177 2024/09/30"))
}

func TestCounterparty_FallbackWordCap(t *testing.T) {
	e := NewCounterpartyExtractor(3)
	got := e.Extract("some long lowercase memo text that keeps going")
	assert.Equal(t, "some long lowercase", got)
}

func TestCounterparty_Deterministic(t *testing.T) {
	e := NewCounterpartyExtractor(DefaultCounterpartyMaxWords)
	first := e.Extract("Sent money to John Baker transaction: 12345")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Extract("Sent money to John Baker transaction: 12345"))
	}
}
