// Package cli provides the cobra command tree for aces-governance: the MCP
// stdio server plus terminal versions of the compliance and dependency
// checks.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aces-framework/aces-governance/internal/config"
	"github.com/aces-framework/aces-governance/internal/docs"
	"github.com/aces-framework/aces-governance/internal/logger"
	"github.com/spf13/cobra"
)

// app carries state resolved by the root command for its subcommands.
type app struct {
	configPath     string
	governanceRepo string
	cfg            *config.Config
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "aces-governance",
		Short: "ACES governance MCP server and compliance checks",
		Long: `aces-governance serves the ACES standards, architecture, ADRs and templates
over MCP, and checks ACES repositories against them.

All ACES repos must be siblings in a shared parent directory; the governance
repo is found relative to the installed binary unless --governance-repo or
ACES_GOVERNANCE_REPO is set.`,
		Example: `  # Start the MCP server (stdio transport)
  aces-governance serve

  # Check a repo against the rust rules
  aces-governance check ../aces-schema --type rust

  # Validate dependency direction
  aces-governance deps aces-runtime aces-schema aces-sdl`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a .json or .toml config file")
	root.PersistentFlags().StringVar(&a.governanceRepo, "governance-repo", "", "Path to the governance repo (overrides config)")

	root.AddCommand(
		newServeCmd(a),
		newCheckCmd(a),
		newDepsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	err := NewRootCmd().Execute()
	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return ExitCode(err)
}

func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.governanceRepo != "" {
		cfg.GovernanceRepo = a.governanceRepo
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	lc := logger.DefaultConfig()
	lc.Level = level
	lc.Format = cfg.LogFormat
	lc.Output = stderr
	logger.Init(lc)

	a.cfg = cfg
	return nil
}

func (a *app) root() (*docs.Root, error) {
	return docs.Resolve(a.cfg.GovernanceRepo)
}
