package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rupertdev/houston/internal/scaffold"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [workspace]",
	Short: "Create a starter debian/control and houston.yaml",
	Long: `Init writes a starter control file and houston.yaml into a workspace.
Existing files are never overwritten.

The package name defaults to the workspace directory name. The maintainer
defaults to $DEBFULLNAME <$DEBEMAIL>.

Examples:
  houston init
  houston init ./app --package com.github.user.app --summary "Take notes"
  houston init --template minimal`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runInit,
	ValidArgsFunction: completeDirectories,
}

type initFlagValues struct {
	template   string
	pkg        string
	maintainer string
	summary    string
}

var initFlags = initFlagValues{template: scaffold.DefaultTemplate}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initFlags.template, "template", "t", scaffold.DefaultTemplate,
		"Template to use")
	initCmd.Flags().StringVarP(&initFlags.pkg, "package", "p", "",
		"Source and Package name (default: workspace directory name)")
	initCmd.Flags().StringVarP(&initFlags.maintainer, "maintainer", "m", "",
		"Maintainer as \"Full Name <email>\" (default: $DEBFULLNAME <$DEBEMAIL>)")
	initCmd.Flags().StringVar(&initFlags.summary, "summary", "",
		"One-line package description")

	_ = initCmd.RegisterFlagCompletionFunc("template", completeTemplates)
}

func runInit(cmd *cobra.Command, args []string) error {
	workspace := OptionalWorkspace(args)
	verbose := getVerboseFlag(cmd)

	opts := scaffold.Options{
		PackageName: initFlags.pkg,
		Maintainer:  initFlags.maintainer,
		Summary:     initFlags.summary,
	}
	if opts.PackageName == "" {
		abs, err := filepath.Abs(workspace)
		if err != nil {
			return fmt.Errorf("failed to resolve workspace: %w", err)
		}
		opts.PackageName = strings.ToLower(filepath.Base(abs))
	}
	if opts.Maintainer == "" {
		opts.Maintainer = scaffold.DefaultMaintainer(os.LookupEnv)
	}
	if opts.Summary == "" {
		opts.Summary = "Short description of " + opts.PackageName
	}

	files, err := scaffold.NewScaffolder(verbose).CreateWorkspace(opts, initFlags.template, workspace)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range files {
		fmt.Fprintf(out, "✓ Created %s\n", filepath.Join(workspace, f))
	}
	fmt.Fprintf(out, "\nNext steps:\n  houston check %s\n", workspace)
	return nil
}

// completeTemplates provides shell completion for --template.
func completeTemplates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return completeFromList(templates, toComplete)
}
