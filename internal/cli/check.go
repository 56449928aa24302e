package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aces-framework/aces-governance/internal/compliance"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var repoType string

	cmd := &cobra.Command{
		Use:   "check <repo-path>",
		Short: "Check a repository against governance standards",
		Long: `Check a repository against the governance rules for its project type.

Exits 1 when the report has FAIL lines and 2 when the type or path is invalid.
WARN lines alone do not fail the check.`,
		Example: `  aces-governance check ../aces-sdl --type python`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.root()
			if err != nil {
				return err
			}
			tables, err := compliance.LoadTables()
			if err != nil {
				return err
			}

			report, err := compliance.NewChecker(root, tables).Check(args[0], repoType)
			switch {
			case errors.Is(err, compliance.ErrInvalidProjectType):
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid repo_type: %s. Must be rust, python, or governance.\n", repoType)
				return &ExitError{Code: ExitInvalid}
			case errors.Is(err, compliance.ErrTargetNotFound):
				fmt.Fprintf(cmd.ErrOrStderr(), "Directory not found: %s\n", args[0])
				return &ExitError{Code: ExitInvalid}
			case err != nil:
				return err
			}

			printColored(cmd.OutOrStdout(), report.String())
			if report.Failures() > 0 {
				return &ExitError{Code: ExitFindings}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoType, "type", "t", "", "Project type: "+typeList())
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func typeList() string {
	names := make([]string, len(compliance.ValidTypes))
	for i, t := range compliance.ValidTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
