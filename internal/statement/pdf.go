package statement

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// PDFParser parses PDF statements of the Date / Description / Incoming /
// Outgoing / Balance layout. It works on extracted text lines, not page
// geometry: a date-prefixed line starts a transaction, trailing amounts
// carry the money columns (the last one is the running balance), and
// undated lines continue the previous description.
type PDFParser struct{}

// Format returns the parser name.
func (p *PDFParser) Format() string { return "pdf" }

var (
	pdfTableStartRe = regexp.MustCompile(`(?i)Description\s+Incoming\s+Outgoing\s+Amount`)
	pdfTableStopRe  = regexp.MustCompile(`(?i)Opening Balance|Closing Balance|Total|Page \d+`)
	pdfDateLineRe   = regexp.MustCompile(`^(\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4})\s+(.+)`)
	pdfAmountRe     = regexp.MustCompile(`-?[\d,]+\.\d{2}`)
)

// Parse extracts transactions from a PDF statement.
func (p *PDFParser) Parse(r io.Reader) ([]model.RawTransaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement PDF: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening statement PDF: %w", err)
	}

	var lines []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		lines = append(lines, strings.Split(text, "\n")...)
	}

	return parseStatementLines(lines), nil
}

// pendingTxn accumulates one transaction across wrapped lines.
type pendingTxn struct {
	date        time.Time
	dateOK      bool
	detail      []string
	incoming    decimal.Decimal
	outgoing    decimal.Decimal
	hasIncoming bool
	hasOutgoing bool
}

func (t *pendingTxn) takeAmounts(amounts []string) {
	// The last amount on a transaction line is the running balance; the
	// one before it is the money movement, signed for outgoing.
	if len(amounts) < 2 {
		return
	}
	moved := amounts[len(amounts)-2]
	if strings.HasPrefix(moved, "-") {
		t.outgoing = ParseAmount(moved).Abs()
		t.hasOutgoing = true
	} else {
		t.incoming = ParseAmount(moved).Abs()
		t.hasIncoming = true
	}
}

func (t *pendingTxn) finalize() (model.RawTransaction, bool) {
	detail := strings.TrimSpace(strings.Join(t.detail, " "))
	if !t.dateOK || detail == "" {
		return model.RawTransaction{}, false
	}
	amount := decimal.Zero
	switch {
	case t.hasIncoming:
		amount = t.incoming
	case t.hasOutgoing:
		amount = t.outgoing.Neg()
	}
	return model.RawTransaction{Date: t.date, Detail: detail, Amount: amount}, true
}

// parseStatementLines runs the line state machine over extracted text.
func parseStatementLines(lines []string) []model.RawTransaction {
	var txns []model.RawTransaction
	var current *pendingTxn
	inTable := false

	flush := func() {
		if current == nil {
			return
		}
		if txn, ok := current.finalize(); ok {
			txns = append(txns, txn)
		}
		current = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if pdfTableStartRe.MatchString(line) {
			inTable = true
			continue
		}
		if inTable && pdfTableStopRe.MatchString(line) {
			inTable = false
			continue
		}
		if !inTable {
			continue
		}

		if m := pdfDateLineRe.FindStringSubmatch(line); m != nil {
			flush()

			current = &pendingTxn{}
			if date, err := ParseDate(m[1]); err == nil {
				current.date = date
				current.dateOK = true
			}

			rest := m[2]
			current.takeAmounts(pdfAmountRe.FindAllString(rest, -1))
			if detail := stripAmounts(rest); detail != "" {
				current.detail = append(current.detail, detail)
			}
			continue
		}

		if current == nil {
			continue
		}

		// Continuation of the previous transaction's description,
		// possibly carrying the amounts that wrapped off the first line.
		current.takeAmounts(pdfAmountRe.FindAllString(line, -1))
		if detail := stripAmounts(line); detail != "" {
			current.detail = append(current.detail, detail)
		}
	}

	flush()
	return txns
}

func stripAmounts(line string) string {
	return strings.Join(strings.Fields(pdfAmountRe.ReplaceAllString(line, "")), " ")
}
