package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bankcat-dev/bankcat/internal/model"
	"github.com/bankcat-dev/bankcat/internal/statement"
)

// Header is the CSV header for categorized transaction exports.
const Header = "date,detail,amount,category,invoice,counterparty"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colDate    = 0
	colDetail  = 1
	colAmount  = 2
	colCat     = 3
	colInvoice = 4
	colCparty  = 5
)

// MarshalTransaction converts a categorized transaction to a CSV row.
func MarshalTransaction(txn model.CategorizedTransaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colDetail] = txn.Detail
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colCat] = string(txn.Category)
	row[colInvoice] = txn.Invoice
	row[colCparty] = txn.Counterparty
	return row
}

// UnmarshalTransaction converts a CSV row back to a categorized transaction.
func UnmarshalTransaction(row []string) (model.CategorizedTransaction, error) {
	if len(row) != numFields {
		return model.CategorizedTransaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	date, err := statement.ParseDate(row[colDate])
	if err != nil {
		return model.CategorizedTransaction{}, fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	return model.CategorizedTransaction{
		RawTransaction: model.RawTransaction{
			Date:   date,
			Detail: row[colDetail],
			Amount: statement.ParseAmount(row[colAmount]),
		},
		Category:     model.Category(row[colCat]),
		Invoice:      row[colInvoice],
		Counterparty: row[colCparty],
	}, nil
}

// WriteCSV writes categorized transactions (including header) to w.
func WriteCSV(w io.Writer, txns []model.CategorizedTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadCSV reads categorized transactions from a previous export.
func ReadCSV(r io.Reader) ([]model.CategorizedTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categorized CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.CategorizedTransaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
