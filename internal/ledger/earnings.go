package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tappio/internal/model"
)

// ErrNoResultTree is returned when a document lacks the result account tree.
var ErrNoResultTree = errors.New("document has no result account tree")

// EarningsRow is one result account with its earnings for the period.
type EarningsRow struct {
	Number int
	Name   string
	Amount decimal.Decimal // credit balance, so income is positive
}

// Earnings lists every numbered account in the result tree, in tree order,
// with the negated total of its entries.
func Earnings(doc *model.Document) ([]EarningsRow, error) {
	result, ok := doc.Branch(model.BranchResult)
	if !ok {
		return nil, ErrNoResultTree
	}

	totals := CollectTotals(doc.Events)
	var rows []EarningsRow
	result.Walk(func(acct *model.Account, _ int) {
		if acct.Number == nil {
			return
		}
		rows = append(rows, EarningsRow{
			Number: *acct.Number,
			Name:   acct.Name,
			Amount: Cents(-totals[*acct.Number]),
		})
	})
	return rows, nil
}

// WriteEarningsCSV writes rows as "number,name,amount" records.
func WriteEarningsCSV(w io.Writer, rows []EarningsRow) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		rec := []string{strconv.Itoa(row.Number), row.Name, row.Amount.StringFixed(2)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing earnings row %d: %w", row.Number, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing earnings: %w", err)
	}
	return nil
}

// Cents converts minor units to a decimal amount.
func Cents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders cents as a fixed two-place amount, e.g. -12.50.
func FormatCents(cents int64) string {
	return Cents(cents).StringFixed(2)
}
