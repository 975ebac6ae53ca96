package categorize

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultInvoiceMinDigits is the minimum length for a bare digit run to
// count as an invoice reference. Shorter runs are usually day numbers,
// years, or card last-fours.
const DefaultInvoiceMinDigits = 5

// labeledInvoiceRe matches a label token (invoice, inv, fattura nr,
// ref, no.) followed by an adjacent alphanumeric code containing at
// least one digit.
var labeledInvoiceRe = regexp.MustCompile(`(?i)\b(?:invoice|inv|fatt(?:ura)?\s*nr?|ref|no\.)[\s.:#-]*([A-Za-z0-9][A-Za-z0-9-]*[0-9][A-Za-z0-9-]*)`)

// InvoiceExtractor finds invoice-like references in transaction detail
// text. Labeled patterns are tried first; a bare digit run of at least
// minDigits is the last resort.
type InvoiceExtractor struct {
	minDigits int
	bareRe    *regexp.Regexp
}

// NewInvoiceExtractor creates an extractor with the given bare-number
// threshold. Values below 1 fall back to DefaultInvoiceMinDigits.
func NewInvoiceExtractor(minDigits int) *InvoiceExtractor {
	if minDigits < 1 {
		minDigits = DefaultInvoiceMinDigits
	}
	return &InvoiceExtractor{
		minDigits: minDigits,
		bareRe:    regexp.MustCompile(fmt.Sprintf(`\b[0-9]{%d,}\b`, minDigits)),
	}
}

// Extract returns the first invoice-like reference in detail, or ""
// when none is found. Only one match is ever returned: the first
// labeled occurrence if any, otherwise the first long-enough bare
// digit run.
func (e *InvoiceExtractor) Extract(detail string) string {
	if detail == "" {
		return ""
	}

	if m := labeledInvoiceRe.FindStringSubmatch(detail); m != nil {
		return strings.Trim(m[1], "-.")
	}

	if m := e.bareRe.FindString(detail); m != "" {
		return m
	}
	return ""
}
