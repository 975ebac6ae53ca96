// Package report turns categorized transactions into the output artifacts:
// an Excel workbook with source/incoming/outgoing sheets and, optionally, a
// flat CSV of the categorized rows.
package report

import (
	"sort"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// Split partitions transactions into incoming (amount >= 0) and outgoing
// (amount < 0), each sorted by date. The sort is stable so rows sharing a
// date keep their statement order.
func Split(txns []model.CategorizedTransaction) (incoming, outgoing []model.CategorizedTransaction) {
	for _, txn := range txns {
		if txn.Incoming() {
			incoming = append(incoming, txn)
		} else {
			outgoing = append(outgoing, txn)
		}
	}

	byDate := func(txns []model.CategorizedTransaction) {
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Date.Before(txns[j].Date)
		})
	}
	byDate(incoming)
	byDate(outgoing)
	return incoming, outgoing
}
