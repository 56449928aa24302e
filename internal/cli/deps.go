package cli

import (
	"github.com/aces-framework/aces-governance/internal/compliance"
	"github.com/spf13/cobra"
)

func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <project> [dependency...]",
		Short: "Validate dependency direction against the tier table",
		Long: `Validate that an ACES project only depends on projects at its own tier or a
more upstream one. Non-ACES dependencies are ignored.

Exits 1 on violations and 2 when the project is unknown.`,
		Example: `  aces-governance deps aces-schema aces-runtime serde`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := compliance.LoadTables()
			if err != nil {
				return err
			}

			res := tables.CheckDependencies(args[0], args[1:])
			printColored(cmd.OutOrStdout(), res.String())

			switch {
			case !res.Known:
				return &ExitError{Code: ExitInvalid}
			case len(res.Violations) > 0:
				return &ExitError{Code: ExitFindings}
			}
			return nil
		},
	}
}
