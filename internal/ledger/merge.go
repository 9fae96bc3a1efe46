package ledger

import (
	"errors"
	"slices"

	"github.com/cleared-dev/tappio/internal/model"
)

// ErrNoDocuments is returned by Merge when called without input.
var ErrNoDocuments = errors.New("no documents to merge")

// Merge combines documents in order into a new document. Header fields
// come from the latest document that sets them, the fiscal year spans all
// inputs, the account trees are the last document's and events are
// concatenated.
func Merge(docs ...*model.Document) (*model.Document, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	first := docs[0]
	merged := &model.Document{
		Identity: first.Identity,
		Version:  first.Version,
		Name:     first.Name,
		Begin:    first.Begin,
		End:      first.End,
		Accounts: first.Accounts,
		Events:   slices.Clone(first.Events),
	}

	for _, later := range docs[1:] {
		merged.Identity = orDefault(later.Identity, merged.Identity)
		merged.Version = orDefault(later.Version, merged.Version)
		merged.Name = orDefault(later.Name, merged.Name)
		if later.Begin.Before(merged.Begin) {
			merged.Begin = later.Begin
		}
		if later.End.After(merged.End) {
			merged.End = later.End
		}
		merged.Accounts = later.Accounts
		merged.Events = append(merged.Events, later.Events...)
	}
	return merged, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
