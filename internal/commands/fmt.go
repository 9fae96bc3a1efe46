package commands

import (
	"github.com/spf13/cobra"
)

func newFmtCommand(g *globals) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "fmt [input] [output]",
		Short: "Rewrite a ledger in canonical layout, indented unless --compact",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.load(cmd, argAt(args, 0))
			if err != nil {
				return err
			}
			return g.saveWith(cmd, argAt(args, 1), doc, !compact)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "write the whole document on one line")

	return cmd
}
