package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/accounts"
)

func newAccountsCommand(g *globals) *cobra.Command {
	var step int
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "accounts [input]",
		Short: "Print the account trees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.load(cmd, argAt(args, 0))
			if err != nil {
				return err
			}
			if asCSV {
				return accounts.WriteAccounts(cmd.OutOrStdout(), doc.Accounts)
			}
			return accounts.WriteTree(cmd.OutOrStdout(), doc.Accounts, step)
		},
	}

	cmd.Flags().IntVar(&step, "step", 2, "indentation per level")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write level,number,name CSV rows")

	return cmd
}
