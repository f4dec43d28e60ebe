package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense/internal/config"
	"github.com/cleared-dev/expense/internal/display"
	"github.com/cleared-dev/expense/internal/ledger"
)

func newInitCommand(a *app) *cobra.Command {
	var theme string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default config and an empty ledger",
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

			if _, err := display.LookupTheme(theme); err != nil {
				return err
			}

			return a.runInit(cmd, absDir, theme, force)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "light", "display theme: light or dark")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

func (a *app) runInit(cmd *cobra.Command, dir, theme string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	cfg := config.Default()
	cfg.Display.Theme = theme
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Keep an existing ledger; only create an empty one.
	ledgerPath := filepath.Join(dir, cfg.Ledger.Path)
	if _, err := os.Stat(ledgerPath); errors.Is(err, fs.ErrNotExist) {
		if err := ledger.SaveFile(ledgerPath, ledger.New()); err != nil {
			return fmt.Errorf("writing ledger: %w", err)
		}
	}

	a.log.Info().Str("config", cfgPath).Str("ledger", ledgerPath).Msg("initialized")
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized expense tracker at %s\n", dir)
	return nil
}
