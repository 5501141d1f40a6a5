package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/rupertdev/houston/internal/control"
	"github.com/rupertdev/houston/internal/files/filesystem"
	"github.com/rupertdev/houston/internal/logging"
	"github.com/rupertdev/houston/internal/params"
	"github.com/rupertdev/houston/pkg/houston"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <control_file> Key=Value...",
	Short: "Set fields in a control file",
	Long: `Set assigns fields and writes the file back in canonical form. The file
is created when it does not exist.

Values:
  Key=text        a simple field
  Key=a\nb        a multiline field (\n separates lines)
  Key=            removes the field
  --list Key=a,b  a folded list, split on commas and sorted

Examples:
  houston set debian/control Section=utils Priority=optional
  houston set debian/control --list Build-Depends=meson,valac,debhelper`,
	Args: RequireControlFileAndAssignments,
	RunE: runSet,
}

type setFlagValues struct {
	list bool
}

var setFlags setFlagValues

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVarP(&setFlags.list, "list", "l", false,
		"Store values as folded lists (comma separated)")
}

func runSet(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	assignments, err := params.ParseAssignments(args[1:])
	if err != nil {
		return fmt.Errorf("invalid assignment: %w: %w", err, houston.ErrInvalidConfig)
	}

	fsProvider := filesystem.NewOSFileSystem()
	doc, fields, err := openControl(fsProvider, path)
	if errors.Is(err, houston.ErrControlNotFound) {
		logger.Verbose("%s does not exist, creating it", path)
		doc, fields = control.NewDocumentWithFS(path, fsProvider), control.NewFields()
	} else if err != nil {
		return err
	}

	applyAssignments(fields, assignments, setFlags.list)

	if _, err := doc.Write(fields); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(os.Stderr, "✓ Updated %d field(s) in %s\n", len(assignments), path)
	return nil
}

func applyAssignments(fields *control.Fields, assignments []params.Assignment, asList bool) {
	for _, a := range assignments {
		switch {
		case a.Value == "":
			fields.Delete(a.Key)
		case asList:
			fields.Set(a.Key, listValue(a.Value))
		default:
			fields.Set(a.Key, control.Text(strings.ReplaceAll(a.Value, `\n`, "\n")))
		}
	}
}

func listValue(s string) control.Value {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	slices.Sort(items)
	return control.List(items...)
}
