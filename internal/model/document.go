package model

import (
	"errors"
	"fmt"
	"time"
)

// DefaultIdentity is the identity string every Tappio document starts with.
const DefaultIdentity = "Tappio"

// DateFormat is the layout used when dates are printed or read from the command line.
const DateFormat = "2006-01-02"

// Document is a parsed Tappio ledger: one fiscal year of accounts and events.
//
// Accounts holds the three top-level trees in fixed order: assets, liabilities
// and result (see BranchAssets and friends).
type Document struct {
	Identity string
	Version  string
	Name     string // fiscal year label
	Begin    time.Time
	End      time.Time
	Accounts []Account
	Events   []Event
}

// NewDocument returns an empty document for the 2010 calendar year, produced by version.
func NewDocument(version string) *Document {
	return &Document{
		Identity: DefaultIdentity,
		Version:  version,
		Begin:    time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2010, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Branch returns the top-level account at index i, or false if the document lacks it.
func (d *Document) Branch(i int) (*Account, bool) {
	if i < 0 || i >= len(d.Accounts) {
		return nil, false
	}
	return &d.Accounts[i], true
}

// Validate checks the structural invariants of the document header.
func (d *Document) Validate() error {
	if d.Begin.After(d.End) {
		return fmt.Errorf("fiscal year begins %s after it ends %s",
			d.Begin.Format(DateFormat), d.End.Format(DateFormat))
	}
	return nil
}

// ErrInvalidDate is returned by NewDate for dates that do not exist.
var ErrInvalidDate = errors.New("invalid date")

// NewDate returns the calendar date year-month-day at UTC midnight.
// Unlike time.Date it does not normalize: 2010-13-01 is an error.
func NewDate(year, month, day int) (time.Time, error) {
	if year < 1 || year > 9999 {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if day < 1 || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidDate, day, year, month)
	}
	return t, nil
}

// MustDate is NewDate for literals known to be valid. It panics otherwise.
func MustDate(year, month, day int) time.Time {
	t, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
