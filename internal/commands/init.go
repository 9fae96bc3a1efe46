package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/accounts"
	"github.com/cleared-dev/tappio/internal/config"
)

// LedgerFileName is the ledger file created by init.
const LedgerFileName = "ledger.tappio"

func newInitCommand(g *globals) *cobra.Command {
	var name, chart string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a " + config.FileName + " and an empty ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return g.runInit(cmd, absDir, name, chart)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "fiscal year name stored in the config")
	cmd.Flags().StringVar(&chart, "chart", accounts.ChartBasic, "starter accounts: empty or basic")

	return cmd
}

func (g *globals) runInit(cmd *cobra.Command, dir, name, chart string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	ledgerPath := filepath.Join(dir, LedgerFileName)
	for _, path := range []string{cfgPath, ledgerPath} {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write tappio.yaml. Environment overrides stay out of the file.
	cfg := config.Default()
	cfg.Document.Name = name
	flags := cmd.Flags()
	if flags.Changed("pretty") {
		cfg.Format.Pretty = g.pretty
	}
	if flags.Changed("charset") {
		cfg.Format.Charset = g.charset
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	g.cfg = cfg

	// Write the ledger.
	doc, err := g.newDocument(chart, "", "")
	if err != nil {
		return err
	}
	if err := g.save(cmd, ledgerPath, doc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized Tappio ledger at %s\n", ledgerPath)
	return nil
}
