package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/regform/internal/registration"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the accepted states of origin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, r := range registration.Regions() {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}
