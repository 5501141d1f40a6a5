package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/rupertdev/houston/internal/checksum"
	"github.com/rupertdev/houston/internal/files/scanner"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [workspace]",
	Short: "List the control files in a workspace",
	Long: `Scan walks a workspace and lists every control file (debian/control and
*.control) with its Source or Package name and normalized checksum. The
normalized checksum ignores comments and layout, so it only changes when a
field changes.

Examples:
  houston scan .
  houston scan ./workspace --json`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runScan,
	ValidArgsFunction: completeDirectories,
}

type scanFlagValues struct {
	json bool
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanFlags.json, "json", false, "Print the result as JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	workspace := OptionalWorkspace(args)

	result, err := scanner.NewScanner(checksum.New()).ScanWorkspace(workspace)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if scanFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tCHECKSUM\tSTATUS")
	for _, f := range result.Files {
		name := f.Source
		if name == "" {
			name = f.Package
		}
		if name == "" {
			name = "-"
		}
		status := "ok"
		if f.ParseError != "" {
			status = f.ParseError
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Path, name, shortChecksum(f.Checksum), status)
	}
	return w.Flush()
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
