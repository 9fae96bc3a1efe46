package ledger

import (
	"fmt"
	"time"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Subject     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Subject, e.Description)
}

// AccountChecker tests whether an account number exists.
type AccountChecker interface {
	Exists(number int) bool
}

// Validate enforces 6 bookkeeping invariants the parser leaves to callers.
func Validate(doc *model.Document) []ValidationError {
	var errs []ValidationError

	// Invariant 1: Fiscal year bounds are ordered.
	if err := doc.Validate(); err != nil {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Subject:     "fiscal-year",
			Description: err.Error(),
		})
	}

	// Invariant 2: Exactly three top-level account trees.
	if len(doc.Accounts) != model.NumBranches {
		errs = append(errs, ValidationError{
			Invariant:   2,
			Subject:     "account-map",
			Description: fmt.Sprintf("expected %d top-level accounts, got %d", model.NumBranches, len(doc.Accounts)),
		})
	}

	// Invariant 3: Account numbers are unique across all trees.
	seen := make(map[int]string)
	for i := range doc.Accounts {
		doc.Accounts[i].Walk(func(acct *model.Account, _ int) {
			if acct.Number == nil {
				return
			}
			n := *acct.Number
			if first, dup := seen[n]; dup {
				errs = append(errs, ValidationError{
					Invariant:   3,
					Subject:     fmt.Sprintf("account %d", n),
					Description: fmt.Sprintf("number used by both %q and %q", first, acct.Name),
				})
				return
			}
			seen[n] = acct.Name
		})
	}

	errs = append(errs, ValidateEvents(doc.Events, accounts.NewService(doc.Accounts), doc.Begin, doc.End)...)
	return errs
}

// ValidateEvents checks invariants 4 to 6 on events: known accounts,
// balanced entries and dates within begin..end.
func ValidateEvents(events []model.Event, accts AccountChecker, begin, end time.Time) []ValidationError {
	var errs []ValidationError

	for _, ev := range events {
		subject := fmt.Sprintf("event %d", ev.Number)

		// Invariant 4: Valid account references.
		for _, entry := range ev.Entries {
			if !accts.Exists(entry.AccountNumber) {
				errs = append(errs, ValidationError{
					Invariant:   4,
					Subject:     subject,
					Description: fmt.Sprintf("unknown account %d", entry.AccountNumber),
				})
			}
		}

		// Invariant 5: Debits equal credits.
		if total := ev.Total(); total != 0 {
			errs = append(errs, ValidationError{
				Invariant:   5,
				Subject:     subject,
				Description: fmt.Sprintf("entries sum to %s, not 0.00", FormatCents(total)),
			})
		}

		// Invariant 6: Date within the fiscal year.
		if ev.Date.Before(begin) || ev.Date.After(end) {
			errs = append(errs, ValidationError{
				Invariant: 6,
				Subject:   subject,
				Description: fmt.Sprintf("date %s not in %s..%s", ev.Date.Format(model.DateFormat),
					begin.Format(model.DateFormat), end.Format(model.DateFormat)),
			})
		}
	}

	return errs
}
