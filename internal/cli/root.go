package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `  _                     _
 | |__   ___  _   _ ___| |_ ___  _ __
 | '_ \ / _ \| | | / __| __/ _ \| '_ \
 | | | | (_) | |_| \__ \ || (_) | | | |
 |_| |_|\___/ \__,_|___/\__\___/|_| |_|`

var rootCmd = &cobra.Command{
	Use:   "houston",
	Short: "Debian control file checks for package pipelines",
	Long: asciiLogo + `

houston reads, formats, amends, and validates Debian control files before a
package is accepted into a distribution pipeline.

Output meant for scripts goes to stdout. Progress and diagnostics about the
run itself go to stderr.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  12 - User denied writing amendments
  13 - Validation failed (a check reported an error, or fmt --check found changes)
  14 - Control file not found
  15 - Control file is malformed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
