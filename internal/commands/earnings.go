package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/ledger"
)

func newEarningsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "earnings [input] [output]",
		Short: "Write result account totals as CSV",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.load(cmd, argAt(args, 0))
			if err != nil {
				return err
			}
			rows, err := ledger.Earnings(doc)
			if err != nil {
				return err
			}

			w, closeOut, err := openOutput(cmd, argAt(args, 1))
			if err != nil {
				return err
			}
			if err := ledger.WriteEarningsCSV(w, rows); err != nil {
				_ = closeOut()
				return err
			}
			if err := closeOut(); err != nil {
				return fmt.Errorf("closing output: %w", err)
			}
			return nil
		},
	}
}
