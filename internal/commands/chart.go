package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense/internal/display"
	"github.com/cleared-dev/expense/internal/ledger"
)

func newChartCommand(a *app) *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show spending by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if theme == "" {
				theme = a.cfg.Display.Theme
			}

			l, err := a.open()
			if err != nil {
				return err
			}

			totals, err := l.CategoryTotals()
			if errors.Is(err, ledger.ErrEmptyLedger) {
				a.log.Warn().Msg("nothing to chart")
				return err
			}
			if err != nil {
				return err
			}

			return display.Chart(cmd.OutOrStdout(), totals, display.Options{Theme: theme})
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "display theme: light or dark (default from config)")

	return cmd
}
