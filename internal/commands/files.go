package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense/internal/importer"
	"github.com/cleared-dev/expense/internal/ledger"
)

func newSaveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Write the ledger to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.open()
			if err != nil {
				return err
			}
			if err := ledger.SaveFile(args[0], l); err != nil {
				return err
			}
			a.log.Info().Str("path", args[0]).Int("rows", l.Len()).Msg("exported ledger")
			fmt.Fprintln(cmd.OutOrStdout(), "Expenses saved successfully!")
			return nil
		},
	}
}

func newLoadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Replace the ledger with the contents of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.open()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to load CSV: %w", err)
			}
			defer f.Close()

			records, err := ledger.ReadRecords(f)
			if err != nil {
				return fmt.Errorf("failed to load CSV: %w", err)
			}
			if err := l.LoadAll(records); err != nil {
				return fmt.Errorf("failed to load CSV: %w", err)
			}

			if err := a.commit(l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expenses loaded successfully! %d rows, balance %s\n",
				l.Len(), l.Balance().StringFixed(2))
			return nil
		},
	}
}

func newImportCommand(a *app) *cobra.Command {
	var format, category string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append the lines of a bank statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(registry.Formats(), ", "))
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			entries, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			l, err := a.open()
			if err != nil {
				return err
			}
			added, err := importer.Apply(l, entries, category)
			if err != nil {
				return err
			}
			if err := a.commit(l); err != nil {
				return err
			}

			a.log.Info().Str("file", args[0]).Str("format", parser.Format()).Int("lines", len(added)).Msg("imported statement")
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions (balance %s)\n", len(added), l.Balance().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "statement format")
	cmd.Flags().StringVar(&category, "category", "", "category for every imported line (default: suggested by the statement, else Other)")

	return cmd
}
