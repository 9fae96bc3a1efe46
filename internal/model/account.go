package model

// Top-level account trees, in the fixed order they appear in a document.
const (
	BranchAssets      = 0
	BranchLiabilities = 1
	BranchResult      = 2

	// NumBranches is the number of top-level accounts a document carries.
	NumBranches = 3
)

// GroupNumber is the textual account number of a grouping node.
const GroupNumber = -1

// Account is a node in one of the three account trees.
type Account struct {
	Number      *int // nil = grouping node without a ledger number
	Name        string
	Subaccounts []Account
}

// Num returns a pointer to n, for building accounts by hand.
func Num(n int) *int {
	return &n
}

// NewAccount returns a numbered account.
func NewAccount(number int, name string, subaccounts ...Account) Account {
	return Account{Number: Num(number), Name: name, Subaccounts: subaccounts}
}

// NewGroup returns a grouping node.
func NewGroup(name string, subaccounts ...Account) Account {
	return Account{Name: name, Subaccounts: subaccounts}
}

// IsGroup reports whether the account has no ledger number.
func (a Account) IsGroup() bool {
	return a.Number == nil
}

// NumberOr returns the account number, or def for a grouping node.
func (a Account) NumberOr(def int) int {
	if a.Number == nil {
		return def
	}
	return *a.Number
}

// Walk calls fn for a and every account below it, depth first, parents before children.
func (a *Account) Walk(fn func(acct *Account, depth int)) {
	a.walk(fn, 0)
}

func (a *Account) walk(fn func(acct *Account, depth int), depth int) {
	fn(a, depth)
	for i := range a.Subaccounts {
		a.Subaccounts[i].walk(fn, depth+1)
	}
}
