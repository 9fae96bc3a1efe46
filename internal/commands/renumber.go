package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/ledger"
)

func newRenumberCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "renumber [input] [output]",
		Short: "Sort accounts and events and renumber events from 1",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.load(cmd, argAt(args, 0))
			if err != nil {
				return err
			}

			ledger.Renumber(doc)
			g.log.Info("events renumbered", "events", len(doc.Events))

			return g.save(cmd, argAt(args, 1), doc)
		},
	}
}
