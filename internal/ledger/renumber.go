// Package ledger holds document-level transformations and checks built on
// the parsed model: sorting and renumbering, moving entries, merging fiscal
// years, extracting a period with opening balances, earnings and validation.
package ledger

import (
	"cmp"
	"slices"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/model"
)

// SortAccounts orders the subaccounts of every tree by account number.
func SortAccounts(doc *model.Document) {
	accounts.Sort(doc.Accounts)
}

// SortEvents orders events by date, then number. Ties keep document order.
func SortEvents(events []model.Event) {
	slices.SortStableFunc(events, func(a, b model.Event) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Number, b.Number)
	})
}

// RenumberEvents numbers events consecutively from start, in slice order.
func RenumberEvents(events []model.Event, start int) {
	for i := range events {
		events[i].Number = start + i
	}
}

// Renumber sorts accounts and events and renumbers events from 1.
func Renumber(doc *model.Document) {
	SortAccounts(doc)
	SortEvents(doc.Events)
	RenumberEvents(doc.Events, 1)
}
