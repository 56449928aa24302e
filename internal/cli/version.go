package cli

import (
	"fmt"

	govserver "github.com/aces-framework/aces-governance/internal/server"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "aces-governance v%s\n", govserver.Version)
			return nil
		},
	}
}
