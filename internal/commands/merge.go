package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/ledger"
	"github.com/cleared-dev/tappio/internal/model"
)

func newMergeCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <output> <input>...",
		Short: "Merge ledgers into one, in the order given",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var docs []*model.Document
			for _, path := range args[1:] {
				doc, err := g.load(cmd, path)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
			}

			merged, err := ledger.Merge(docs...)
			if err != nil {
				return err
			}
			g.log.Info("ledgers merged", "inputs", len(docs), "events", len(merged.Events))

			return g.save(cmd, args[0], merged)
		},
	}
}
