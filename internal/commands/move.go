package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/ledger"
)

func newMoveEntriesCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "move-entries <from> <to> [input] [output]",
		Short: "Rebook all entries from one account to another",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing source account: %w", err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing target account: %w", err)
			}

			doc, err := g.load(cmd, argAt(args, 2))
			if err != nil {
				return err
			}

			svc := accounts.NewService(doc.Accounts)
			target, ok := svc.Get(to)
			if !ok {
				g.log.Warn("target account is not in the account map", "account", to)
			}
			fromBranch, fromOK := svc.BranchOf(from)
			toBranch, toOK := svc.BranchOf(to)
			if fromOK && toOK && fromBranch != toBranch {
				g.log.Warn("moving entries between account trees", "from", from, "to", to)
			}

			moved := ledger.MoveEntries(doc.Events, from, to)
			g.log.Info("entries moved", "from", from, "to", to, "target", target.Name, "count", moved)

			return g.save(cmd, argAt(args, 3), doc)
		},
	}
}
