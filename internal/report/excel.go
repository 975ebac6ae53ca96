package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// Sheet names in the output workbook.
const (
	SheetSource   = "SOURCE"
	SheetIncoming = "INCOMING"
	SheetOutgoing = "OUTGOING"
)

var sheetColumns = []string{"Date", "Detail", "Amount", "Category", "Invoice", "Counterparty"}

// monthFills tints each row by statement month so runs of the same month
// read as blocks when scanning the sheet.
var monthFills = map[time.Month]string{
	time.January:   "FFCCCC",
	time.February:  "FFE5CC",
	time.March:     "FFFFCC",
	time.April:     "E5FFCC",
	time.May:       "CCFFCC",
	time.June:      "CCFFE5",
	time.July:      "CCFFFF",
	time.August:    "CCE5FF",
	time.September: "CCCCFF",
	time.October:   "E5CCFF",
	time.November:  "FFCCFF",
	time.December:  "FFCCE5",
}

// excelWriter builds one workbook, caching styles across sheets.
type excelWriter struct {
	f           *excelize.File
	headerStyle int
	monthStyles map[time.Month]int
}

// WriteExcel writes the workbook at path: the full categorized statement on
// SOURCE, then the incoming/outgoing halves on their own sheets.
func WriteExcel(path string, txns []model.CategorizedTransaction) error {
	incoming, outgoing := Split(txns)

	w := &excelWriter{
		f:           excelize.NewFile(),
		monthStyles: make(map[time.Month]int),
	}
	defer w.f.Close()

	style, err := w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	w.headerStyle = style

	for _, sheet := range []struct {
		name string
		txns []model.CategorizedTransaction
	}{
		{SheetSource, txns},
		{SheetIncoming, incoming},
		{SheetOutgoing, outgoing},
	} {
		if err := w.writeSheet(sheet.name, sheet.txns); err != nil {
			return fmt.Errorf("writing sheet %s: %w", sheet.name, err)
		}
	}

	// Drop the default sheet so SOURCE opens first.
	if err := w.f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func (w *excelWriter) writeSheet(name string, txns []model.CategorizedTransaction) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return err
	}

	for col, title := range sheetColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(name, cell, title); err != nil {
			return err
		}
	}
	if err := w.f.SetCellStyle(name, "A1", "F1", w.headerStyle); err != nil {
		return err
	}

	for i, txn := range txns {
		row := i + 2
		values := []any{
			txn.Date.Format("2006-01-02"),
			txn.Detail,
			txn.Amount.InexactFloat64(),
			string(txn.Category),
			txn.Invoice,
			txn.Counterparty,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := w.f.SetCellValue(name, cell, v); err != nil {
				return err
			}
		}

		style, err := w.monthStyle(txn.Date.Month())
		if err != nil {
			return err
		}
		if err := w.f.SetCellStyle(name, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), style); err != nil {
			return err
		}
	}

	for _, width := range []struct {
		start, end string
		w          float64
	}{
		{"A", "A", 12},
		{"B", "B", 50},
		{"C", "C", 15},
		{"D", "F", 26},
	} {
		if err := w.f.SetColWidth(name, width.start, width.end, width.w); err != nil {
			return err
		}
	}
	return nil
}

func (w *excelWriter) monthStyle(month time.Month) (int, error) {
	if style, ok := w.monthStyles[month]; ok {
		return style, nil
	}
	style, err := w.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{monthFills[month]}, Pattern: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("creating fill for %s: %w", month, err)
	}
	w.monthStyles[month] = style
	return style, nil
}
