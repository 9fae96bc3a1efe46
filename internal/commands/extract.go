package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/ledger"
	"github.com/cleared-dev/tappio/internal/model"
)

func newExtractCommand(g *globals) *cobra.Command {
	var description string
	var number int

	cmd := &cobra.Command{
		Use:   "extract <from> <to> [input] [output]",
		Short: "Cut a ledger down to a period, carrying balances forward",
		Long: `Extract keeps the events dated from..to (YYYY-MM-DD, inclusive) and
prepends an opening event holding the balance sheet account totals
of everything before the period.`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := model.ParseDate(args[0])
			if err != nil {
				return err
			}
			to, err := model.ParseDate(args[1])
			if err != nil {
				return err
			}

			opts := g.cfg.Extract.Options()
			if cmd.Flags().Changed("description") {
				opts.Description = description
			}
			if cmd.Flags().Changed("number") {
				opts.Number = number
			}

			doc, err := g.load(cmd, argAt(args, 2))
			if err != nil {
				return err
			}
			if err := ledger.Extract(doc, from, to, opts); err != nil {
				return err
			}
			g.log.Info("period extracted",
				"from", args[0],
				"to", args[1],
				"opening_entries", len(doc.Events[0].Entries),
				"events", len(doc.Events)-1)

			return g.save(cmd, argAt(args, 3), doc)
		},
	}

	cmd.Flags().StringVar(&description, "description", ledger.DefaultOpeningDescription, "opening event description")
	cmd.Flags().IntVar(&number, "number", ledger.DefaultOpeningNumber, "opening event number")

	return cmd
}
