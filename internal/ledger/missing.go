package ledger

import (
	"slices"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/model"
)

// NamedDocument pairs a document with the file it came from.
type NamedDocument struct {
	Name string
	Doc  *model.Document
}

// AccountPresence lists the files that define an account number.
type AccountPresence struct {
	Number int
	Files  []string // sorted
}

// MissingAccounts compares the account trees of several files and returns
// every account number that some, but not all, of them define, ascending.
// Files sharing a name count once.
func MissingAccounts(docs []NamedDocument) []AccountPresence {
	files := make(map[string]*accounts.Service)
	for _, d := range docs {
		if _, seen := files[d.Name]; !seen {
			files[d.Name] = accounts.NewService(d.Doc.Accounts)
		}
	}

	havers := make(map[int][]string)
	for name, svc := range files {
		for _, n := range svc.Numbers() {
			havers[n] = append(havers[n], name)
		}
	}

	var result []AccountPresence
	for n, names := range havers {
		if len(names) == len(files) {
			continue
		}
		slices.Sort(names)
		result = append(result, AccountPresence{Number: n, Files: names})
	}
	slices.SortFunc(result, func(a, b AccountPresence) int {
		return a.Number - b.Number
	})
	return result
}
