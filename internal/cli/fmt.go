package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/internal/files/filesystem"
	"github.com/rupertdev/houston/internal/logging"
	"github.com/rupertdev/houston/pkg/houston"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <control_file>",
	Short: "Rewrite a control file in canonical form",
	Long: `Fmt prints the canonical form of a control file: known fields in
policy order, folded lists sorted and aligned under their key, comments and
blank lines removed.

Examples:
  houston fmt debian/control            # print canonical text
  houston fmt debian/control --write    # rewrite the file in place
  houston fmt debian/control --check    # exit 13 if the file is not canonical`,
	Args: RequireControlFile,
	RunE: runFmt,
}

type fmtFlagValues struct {
	write bool
	check bool
}

var fmtFlags fmtFlagValues

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false,
		"Write the canonical form back to the file")
	fmtCmd.Flags().BoolVar(&fmtFlags.check, "check", false,
		"Fail if the file is not in canonical form (does not write)")
	fmtCmd.MarkFlagsMutuallyExclusive("write", "check")
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	fsProvider := filesystem.NewOSFileSystem()

	doc, fields, err := openControl(fsProvider, path)
	if err != nil {
		return err
	}

	canonical := control.Format(fields)

	switch {
	case fmtFlags.check:
		raw, err := fsProvider.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if !bytes.Equal(raw, canonical) {
			return fmt.Errorf("%s is not in canonical form: %w", path, houston.ErrValidationFailed)
		}
		logger.Verbose("%s is in canonical form", path)
		return nil

	case fmtFlags.write:
		if _, err := doc.Write(fields); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "✓ Formatted %s\n", path)
		return nil

	default:
		_, err := cmd.OutOrStdout().Write(canonical)
		return err
	}
}
