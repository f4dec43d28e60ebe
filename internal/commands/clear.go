package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every transaction and reset the balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.open()
			if err != nil {
				return err
			}
			l.Clear()
			if err := a.commit(l); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All expenses have been cleared!")
			return nil
		},
	}
}
