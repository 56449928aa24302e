package cli

import (
	"fmt"

	govserver "github.com/aces-framework/aces-governance/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := a.root()
			if err != nil {
				return err
			}
			s, err := govserver.New(root, a.cfg, nil)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			return server.ServeStdio(s)
		},
	}
}
