package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense/internal/ledger"
	"github.com/cleared-dev/expense/internal/model"
)

func newAddCommand(a *app) *cobra.Command {
	var date, credited, debited, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a credit or debit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.open()
			if err != nil {
				return err
			}

			txn, err := l.Append(date, credited, debited, category)
			var perr *ledger.ParseError
			switch {
			case errors.As(err, &perr):
				return fmt.Errorf("credited and debited values must be numbers: %w", err)
			case err != nil:
				return fmt.Errorf("please fill all required fields correctly: %w", err)
			}

			if err := a.commit(l); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s: %s (balance %s)\n",
				txn.Date, txn.Category, txn.Amount.StringFixed(2), txn.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format("01/02/2006"), "date label")
	cmd.Flags().StringVar(&credited, "credited", "", "amount added to the balance")
	cmd.Flags().StringVar(&debited, "debited", "", "amount taken from the balance")
	cmd.Flags().StringVar(&category, "category", model.CategoryOther, "category")

	return cmd
}
