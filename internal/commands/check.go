package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/ledger"
)

func newCheckCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "check [input]",
		Short: "Validate bookkeeping invariants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.load(cmd, argAt(args, 0))
			if err != nil {
				return err
			}

			errs := ledger.Validate(doc)
			out := cmd.OutOrStdout()
			for _, e := range errs {
				fmt.Fprintln(out, e.Error())
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d invariant violation(s)", len(errs))
			}

			fmt.Fprintf(out, "ok: %d accounts, %d events\n",
				len(accounts.NewService(doc.Accounts).All()), len(doc.Events))
			return nil
		},
	}
}
