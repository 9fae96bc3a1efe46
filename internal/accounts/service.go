package accounts

import (
	"slices"

	"github.com/cleared-dev/tappio/internal/model"
)

// Service provides in-memory lookup over a document's account trees.
type Service struct {
	accounts []model.Account
	byNumber map[int]model.Account
	branch   map[int]int
}

// NewService flattens the numbered accounts of tree. tree is usually
// Document.Accounts, whose index is the branch (assets, liabilities, result).
// If a number appears twice, the first occurrence wins.
func NewService(tree []model.Account) *Service {
	s := &Service{
		byNumber: make(map[int]model.Account),
		branch:   make(map[int]int),
	}
	for i := range tree {
		tree[i].Walk(func(acct *model.Account, _ int) {
			if acct.Number == nil {
				return
			}
			n := *acct.Number
			if _, dup := s.byNumber[n]; dup {
				return
			}
			s.byNumber[n] = *acct
			s.branch[n] = i
			s.accounts = append(s.accounts, *acct)
		})
	}
	return s
}

// All returns all numbered accounts in tree order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by number.
func (s *Service) Get(number int) (model.Account, bool) {
	a, ok := s.byNumber[number]
	return a, ok
}

// Exists reports whether an account number exists.
func (s *Service) Exists(number int) bool {
	_, ok := s.byNumber[number]
	return ok
}

// BranchOf returns the index of the top-level tree holding number.
func (s *Service) BranchOf(number int) (int, bool) {
	b, ok := s.branch[number]
	return b, ok
}

// InBranch returns the account numbers of one top-level tree, ascending.
func (s *Service) InBranch(branch int) []int {
	var result []int
	for n, b := range s.branch {
		if b == branch {
			result = append(result, n)
		}
	}
	slices.Sort(result)
	return result
}

// Numbers returns all account numbers, ascending.
func (s *Service) Numbers() []int {
	result := make([]int, 0, len(s.byNumber))
	for n := range s.byNumber {
		result = append(result, n)
	}
	slices.Sort(result)
	return result
}
