package accounts

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cleared-dev/tappio/internal/model"
)

// WriteTree prints one line per account, "number name" or just "name" for
// groups, indented by step spaces per level.
func WriteTree(w io.Writer, tree []model.Account, step int) error {
	bw := bufio.NewWriter(w)
	for i := range tree {
		tree[i].Walk(func(acct *model.Account, depth int) {
			indent := strings.Repeat(" ", depth*step)
			if acct.Number == nil {
				fmt.Fprintf(bw, "%s%s\n", indent, acct.Name)
				return
			}
			fmt.Fprintf(bw, "%s%d %s\n", indent, *acct.Number, acct.Name)
		})
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing account tree: %w", err)
	}
	return nil
}

// Sort orders subaccounts by number at every level, groups first.
// Top-level trees keep their positions.
func Sort(tree []model.Account) {
	for i := range tree {
		tree[i].Walk(func(acct *model.Account, _ int) {
			sortChildren(acct.Subaccounts)
		})
	}
}

func sortChildren(children []model.Account) {
	slices.SortStableFunc(children, func(a, b model.Account) int {
		return cmp.Compare(a.NumberOr(model.GroupNumber), b.NumberOr(model.GroupNumber))
	})
}
