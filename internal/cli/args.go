package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireControlFile validates that exactly one control_file argument is provided.
func RequireControlFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <control_file>

Usage: %s

Example:
  %s debian/control`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireControlFileAndAssignments validates a control_file argument followed
// by at least one Key=Value assignment.
func RequireControlFileAndAssignments(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`requires at least 2 arg(s): <control_file> Key=Value...

Usage: %s

Example:
  %s debian/control Section=utils`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// OptionalWorkspace accepts zero or one workspace argument and returns it,
// defaulting to the current directory.
func OptionalWorkspace(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
