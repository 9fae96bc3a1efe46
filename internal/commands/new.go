package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/ledger"
	"github.com/cleared-dev/tappio/internal/model"
)

func newNewCommand(g *globals) *cobra.Command {
	var begin, end, chart, chartCSV string

	cmd := &cobra.Command{
		Use:   "new [output]",
		Short: "Create an empty ledger with the standard account trees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := g.newDocument(chart, begin, end)
			if err != nil {
				return err
			}
			if chartCSV != "" {
				if doc.Accounts, err = readChart(chartCSV); err != nil {
					return err
				}
				if errs := ledger.Validate(doc); len(errs) > 0 {
					return fmt.Errorf("%s: %w", chartCSV, errs[0])
				}
			}
			return g.save(cmd, argAt(args, 0), doc)
		},
	}

	cmd.Flags().StringVar(&begin, "begin", "", "fiscal year start, YYYY-MM-DD (default 2010-01-01)")
	cmd.Flags().StringVar(&end, "end", "", "fiscal year end, YYYY-MM-DD (default 2010-12-31)")
	cmd.Flags().StringVar(&chart, "chart", accounts.ChartEmpty, "starter accounts: empty or basic")
	cmd.Flags().StringVar(&chartCSV, "accounts-csv", "", "read the account trees from a CSV file written by accounts --csv")

	return cmd
}

func (g *globals) newDocument(chart, begin, end string) (*model.Document, error) {
	tree, err := accounts.DefaultTree(chart)
	if err != nil {
		return nil, err
	}

	doc := model.NewDocument(g.cfg.Document.Version)
	doc.Name = g.cfg.Document.Name
	doc.Accounts = tree

	if begin != "" {
		if doc.Begin, err = model.ParseDate(begin); err != nil {
			return nil, err
		}
	}
	if end != "" {
		if doc.End, err = model.ParseDate(end); err != nil {
			return nil, err
		}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func readChart(path string) ([]model.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart: %w", err)
	}
	defer f.Close()

	tree, err := accounts.ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}
