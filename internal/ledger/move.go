package ledger

import (
	"github.com/cleared-dev/tappio/internal/model"
)

// MoveEntries rebooks every entry on account from to account to.
// It returns the number of entries changed.
func MoveEntries(events []model.Event, from, to int) int {
	moved := 0
	for i := range events {
		for j := range events[i].Entries {
			entry := &events[i].Entries[j]
			if entry.AccountNumber == from {
				entry.AccountNumber = to
				moved++
			}
		}
	}
	return moved
}
