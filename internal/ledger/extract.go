package ledger

import (
	"fmt"
	"slices"
	"time"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/model"
)

// Defaults for the opening balances event created by Extract.
const (
	DefaultOpeningDescription = "Tilinavaukset"
	DefaultOpeningNumber      = 0
)

// ExtractOptions configures the opening balances event.
type ExtractOptions struct {
	Description string
	Number      int
}

// DefaultExtractOptions returns the conventional opening event settings.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		Description: DefaultOpeningDescription,
		Number:      DefaultOpeningNumber,
	}
}

// CollectTotals sums entry cents per account number. Each call returns a new map.
func CollectTotals(events []model.Event) map[int]int64 {
	totals := make(map[int]int64)
	for _, ev := range events {
		for _, entry := range ev.Entries {
			totals[entry.AccountNumber] += entry.Cents
		}
	}
	return totals
}

// OpeningBalances returns an event dated at carrying, for every balance
// sheet account (assets and liabilities trees) with entries before at,
// the sum of those entries. Entries are ordered by account number.
func OpeningBalances(doc *model.Document, at time.Time, description string, number int) model.Event {
	ev := model.Event{Number: number, Date: at, Description: description}

	var before []model.Event
	for _, e := range doc.Events {
		if e.Date.Before(at) {
			before = append(before, e)
		}
	}
	totals := CollectTotals(before)

	svc := accounts.NewService(doc.Accounts)
	var numbers []int
	for _, branch := range []int{model.BranchAssets, model.BranchLiabilities} {
		for _, n := range svc.InBranch(branch) {
			if _, ok := totals[n]; ok {
				numbers = append(numbers, n)
			}
		}
	}
	slices.Sort(numbers)

	for _, n := range numbers {
		ev.Entries = append(ev.Entries, model.Entry{AccountNumber: n, Cents: totals[n]})
	}
	return ev
}

// Extract narrows doc to the period from..to inclusive. Balances brought
// forward from earlier events become the first event, dated from.
func Extract(doc *model.Document, from, to time.Time, opts ExtractOptions) error {
	if from.After(to) {
		return fmt.Errorf("extracting period: start %s is after end %s",
			from.Format(model.DateFormat), to.Format(model.DateFormat))
	}

	events := []model.Event{OpeningBalances(doc, from, opts.Description, opts.Number)}
	for _, ev := range doc.Events {
		if !ev.Date.Before(from) && !ev.Date.After(to) {
			events = append(events, ev)
		}
	}

	doc.Events = events
	doc.Begin = from
	doc.End = to
	return nil
}
