package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense/internal/buildinfo"
	"github.com/cleared-dev/expense/internal/config"
	"github.com/cleared-dev/expense/internal/ledger"
	"github.com/cleared-dev/expense/internal/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	ledgerPath string
	logLevel   string

	cfg   *config.Config
	log   zerolog.Logger
	store *ledger.Store
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "expense",
		Short:   "Record credits and debits and see where the money goes",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath, "config file")
	flags.StringVar(&a.ledgerPath, "ledger", "", "working ledger file (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, off (overrides config)")

	rootCmd.AddCommand(
		newInitCommand(a),
		newAddCommand(a),
		newListCommand(a),
		newSaveCommand(a),
		newLoadCommand(a),
		newChartCommand(a),
		newClearCommand(a),
		newImportCommand(a),
		newCategoriesCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	if a.ledgerPath != "" {
		cfg.Ledger.Path = a.ledgerPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	log, err := logging.New(cmd.ErrOrStderr(), logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.store = ledger.NewStore(cfg.Ledger.Path)

	a.log.Debug().
		Str("config", a.configPath).
		Str("ledger", cfg.Ledger.Path).
		Str("command", cmd.Name()).
		Msg("starting")
	return nil
}

// open loads the working ledger.
func (a *app) open() (*ledger.Ledger, error) {
	l, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("path", a.store.Path()).Int("rows", l.Len()).Msg("opened ledger")
	return l, nil
}

// commit saves the working ledger.
func (a *app) commit(l *ledger.Ledger) error {
	if err := a.store.Save(l); err != nil {
		return err
	}
	a.log.Info().Str("path", a.store.Path()).Int("rows", l.Len()).Str("balance", l.Balance().String()).Msg("saved ledger")
	return nil
}
