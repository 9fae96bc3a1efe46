package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/ledger"
)

func newMissingAccountsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "missing-accounts <input>...",
		Short: "List account numbers not defined in every given ledger",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var docs []ledger.NamedDocument
			for _, path := range args {
				doc, err := g.load(cmd, path)
				if err != nil {
					return err
				}
				docs = append(docs, ledger.NamedDocument{Name: path, Doc: doc})
			}

			out := cmd.OutOrStdout()
			for _, p := range ledger.MissingAccounts(docs) {
				if _, err := fmt.Fprintf(out, "%d: ONLY %s\n", p.Number, strings.Join(p.Files, " ")); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
			}
			return nil
		},
	}
}
