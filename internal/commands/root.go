package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tappio/internal/buildinfo"
	"github.com/cleared-dev/tappio/internal/config"
)

// globals holds the persistent flags and the state derived from them.
type globals struct {
	configPath string
	debug      bool
	charset    string
	pretty     bool

	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "tappio",
		Short:   "Read, rewrite and check Tappio ledger files",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "config file (default ./"+config.FileName+" if present)")
	flags.BoolVar(&g.debug, "debug", false, "enable debug logging")
	flags.StringVar(&g.charset, "charset", "", "ledger file charset: utf-8, latin1 or cp1252")
	flags.BoolVar(&g.pretty, "pretty", false, "write indented output")

	rootCmd.AddCommand(
		newInitCommand(g),
		newNewCommand(g),
		newFmtCommand(g),
		newAccountsCommand(g),
		newRenumberCommand(g),
		newMoveEntriesCommand(g),
		newMergeCommand(g),
		newExtractCommand(g),
		newMissingAccountsCommand(g),
		newEarningsCommand(g),
		newCheckCommand(g),
	)

	return rootCmd
}

func (g *globals) setup(cmd *cobra.Command) error {
	// Setup logging.
	logLevel := slog.LevelInfo
	if g.debug {
		logLevel = slog.LevelDebug
	}
	g.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(g.log)

	cfg, err := config.Resolve(g.configPath)
	if err != nil {
		return err
	}

	// Flags win over config and environment.
	flags := cmd.Flags()
	if flags.Changed("charset") {
		cfg.Format.Charset = g.charset
	}
	if flags.Changed("pretty") {
		cfg.Format.Pretty = g.pretty
	}
	if _, err := cfg.Format.Encoding(); err != nil {
		return err
	}
	if _, err := cfg.Format.Options(); err != nil {
		return err
	}

	g.cfg = cfg
	g.log.Debug("configuration resolved",
		"config", g.configPath,
		"charset", cfg.Format.Charset,
		"pretty", cfg.Format.Pretty)
	return nil
}
