package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// CSVParser parses CSV statement exports. The transaction table sits
// below an account-summary preamble; it is located by its header row
// (Date / Detail / Amount) rather than a fixed offset.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

type csvColumns struct {
	date   int
	detail int
	amount int
}

// Parse reads a CSV statement and returns its transactions. Rows whose
// date cell does not parse (section titles, running totals) are
// skipped, matching how the source files interleave them.
func (p *CSVParser) Parse(r io.Reader) ([]model.RawTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	headerIdx, cols, err := findHeader(records)
	if err != nil {
		return nil, err
	}

	var txns []model.RawTransaction
	for _, rec := range records[headerIdx+1:] {
		if len(rec) <= cols.date || len(rec) <= cols.detail || len(rec) <= cols.amount {
			continue
		}
		date, err := ParseDate(rec[cols.date])
		if err != nil {
			continue
		}
		txns = append(txns, model.RawTransaction{
			Date:   date,
			Detail: strings.TrimSpace(rec[cols.detail]),
			Amount: ParseAmount(rec[cols.amount]),
		})
	}
	return txns, nil
}

// findHeader locates the transaction header row and maps its columns.
func findHeader(records [][]string) (int, csvColumns, error) {
	for i, rec := range records {
		cols := csvColumns{date: -1, detail: -1, amount: -1}
		for j, cell := range rec {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "date":
				cols.date = j
			case "detail", "description":
				cols.detail = j
			case "amount":
				cols.amount = j
			}
		}
		if cols.date >= 0 && cols.detail >= 0 && cols.amount >= 0 {
			return i, cols, nil
		}
	}
	return 0, csvColumns{}, fmt.Errorf("transaction header row not found")
}
