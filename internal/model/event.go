package model

import "time"

// Event is a dated accounting event carrying one or more entries.
type Event struct {
	Number      int
	Date        time.Time
	Description string
	Entries     []Entry
}

// Entry is one line of an event: an amount booked to an account.
type Entry struct {
	AccountNumber int   // by value; not checked against the account trees
	Cents         int64 // negative = credit, positive = debit
}

// Total returns the sum of the event's entries in cents.
func (e Event) Total() int64 {
	var sum int64
	for _, entry := range e.Entries {
		sum += entry.Cents
	}
	return sum
}
