package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rupertdev/houston/internal/checks"
	"github.com/rupertdev/houston/internal/checksum"
	"github.com/rupertdev/houston/internal/config"
	"github.com/rupertdev/houston/internal/files/filesystem"
	"github.com/rupertdev/houston/internal/files/scanner"
	"github.com/rupertdev/houston/internal/logging"
	"github.com/rupertdev/houston/internal/services"
	"github.com/rupertdev/houston/internal/tui"
	"github.com/rupertdev/houston/internal/tui/components"
	"github.com/rupertdev/houston/internal/ui"
	"github.com/rupertdev/houston/pkg/houston"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [workspace]",
	Short: "Validate the control file of a package workspace",
	Long: `Check runs the control file checks against a build workspace.

Checks: ` + strings.Join(checks.Names(), ", ") + `

The control file is --control, else "control" in houston.yaml, else
debian/control. When none of those exists and the workspace holds several
control files, an interactive session asks which one to check.

Expected values come from houston.yaml, then HOUSTON_* variables (.env and
--env-file files included), then flags. Checks that know the right value amend
the field and report a warning. With --fix the amendments are written back
after approval (--yes approves without asking).

Examples:
  houston check .
  houston check ./workspace --package com.github.user.app --fix
  houston check . --fix --yes --build-depends meson,valac
  houston check . --json > report.json`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runCheck,
	ValidArgsFunction: completeDirectories,
}

type checkFlagValues struct {
	control      string
	pkg          string
	maintainer   string
	architecture string
	buildDepends []string
	disable      []string
	envFiles     []string
	fix          bool
	yes          bool
	json         bool
}

var checkFlags checkFlagValues

// selectControl asks the user to pick one of several control files.
var selectControl = func(options []components.Option) (string, error) {
	return tui.RunSelector(tui.RunProgram, "Several control files found. Which one should be checked?", options, os.Stdin, os.Stderr)
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.control, "control", "c", "",
		"Control file, relative to the workspace (default: debian/control)")
	checkCmd.Flags().StringVarP(&checkFlags.pkg, "package", "p", "",
		"Expected Source and Package name (overrides $HOUSTON_PACKAGE)")
	checkCmd.Flags().StringVarP(&checkFlags.maintainer, "maintainer", "m", "",
		"Expected maintainer as \"Full Name <email>\" (overrides $HOUSTON_MAINTAINER)")
	checkCmd.Flags().StringVar(&checkFlags.architecture, "architecture", "",
		"Expected Architecture (default: any when missing)")
	checkCmd.Flags().StringSliceVar(&checkFlags.buildDepends, "build-depends", nil,
		"Build dependencies that must be declared (can be specified multiple times)")
	checkCmd.Flags().StringSliceVar(&checkFlags.disable, "disable", nil,
		"Checks to skip (can be specified multiple times)")
	checkCmd.Flags().StringSliceVar(&checkFlags.envFiles, "env-file", nil,
		"Load HOUSTON_* variables from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, flags override all")
	checkCmd.Flags().BoolVar(&checkFlags.fix, "fix", false,
		"Write amendments back to the control file after approval")
	checkCmd.Flags().BoolVarP(&checkFlags.yes, "yes", "y", false,
		"Approve writing amendments without asking (use with --fix)")
	checkCmd.Flags().BoolVar(&checkFlags.json, "json", false,
		"Print the report as JSON")

	_ = checkCmd.RegisterFlagCompletionFunc("disable", completeCheckNames)
}

// buildValidationConfig merges houston.yaml, environment, and flags.
func buildValidationConfig(workspace string, verbose bool) (houston.ValidationConfig, error) {
	projectCfg, err := loadProjectConfig(workspace)
	if err != nil {
		return houston.ValidationConfig{}, err
	}

	lookup, err := envLookup(checkFlags.envFiles, verbose)
	if err != nil {
		return houston.ValidationConfig{}, err
	}
	if err := projectCfg.ApplyEnv(lookup); err != nil {
		return houston.ValidationConfig{}, err
	}
	applyCheckFlags(checkFlags, projectCfg)

	if err := projectCfg.Validate(checks.Names()); err != nil {
		return houston.ValidationConfig{}, err
	}

	controlPath, err := resolveControlPath(workspace, projectCfg.Control, verbose)
	if err != nil {
		return houston.ValidationConfig{}, err
	}

	cfg := houston.ValidationConfig{
		WorkspacePath:  workspace,
		ControlPath:    controlPath,
		PackageName:    projectCfg.Package.Name,
		Maintainer:     projectCfg.Package.Maintainer,
		Architecture:   projectCfg.Package.Architecture,
		BuildDepends:   projectCfg.Package.BuildDepends,
		DisabledChecks: projectCfg.Checks.Disabled,
		Fix:            projectCfg.Checks.Fix,
		Verbose:        verbose,
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Validation config resolved:\n")
		fmt.Fprintf(os.Stderr, "  Workspace: %s\n", cfg.WorkspacePath)
		fmt.Fprintf(os.Stderr, "  Control: %s\n", cfg.ControlPath)
		fmt.Fprintf(os.Stderr, "  Package: %s\n", cfg.PackageName)
		fmt.Fprintf(os.Stderr, "  Maintainer: %s\n", cfg.Maintainer)
		fmt.Fprintf(os.Stderr, "  Build-Depends: %s\n", strings.Join(cfg.BuildDepends, ", "))
		fmt.Fprintf(os.Stderr, "  Disabled checks: %s\n", strings.Join(cfg.DisabledChecks, ", "))
		fmt.Fprintf(os.Stderr, "  Fix: %t\n", cfg.Fix)
	}

	return cfg, nil
}

// applyCheckFlags overrides configuration with the flags that were given.
func applyCheckFlags(flags checkFlagValues, cfg *config.ProjectConfig) {
	if flags.control != "" {
		cfg.Control = flags.control
	}
	if flags.pkg != "" {
		cfg.Package.Name = flags.pkg
	}
	if flags.maintainer != "" {
		cfg.Package.Maintainer = flags.maintainer
	}
	if flags.architecture != "" {
		cfg.Package.Architecture = flags.architecture
	}
	if len(flags.buildDepends) > 0 {
		cfg.Package.BuildDepends = flags.buildDepends
	}
	if len(flags.disable) > 0 {
		cfg.Checks.Disabled = flags.disable
	}
	if flags.fix {
		cfg.Checks.Fix = true
	}
}

// resolveControlPath returns configured when set. Otherwise it returns
// debian/control if present, or the single control file in the workspace,
// or asks the user to choose when several exist and a terminal is attached.
func resolveControlPath(workspace, configured string, verbose bool) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if _, err := os.Stat(filepath.Join(workspace, houston.DefaultControlPath)); err == nil {
		return houston.DefaultControlPath, nil
	}

	result, err := scanner.NewScanner(checksum.New()).ScanWorkspace(workspace)
	if err != nil {
		// The validator reports the missing default path.
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Workspace scan failed: %v\n", err)
		}
		return houston.DefaultControlPath, nil
	}

	switch len(result.Files) {
	case 0:
		return houston.DefaultControlPath, nil
	case 1:
		return result.Files[0].Path, nil
	}

	if !tui.IsInteractive() {
		var paths []string
		for _, f := range result.Files {
			paths = append(paths, f.Path)
		}
		return "", fmt.Errorf("found %d control files (%s); choose one with --control: %w",
			len(paths), strings.Join(paths, ", "), houston.ErrInvalidConfig)
	}

	options := make([]components.Option, 0, len(result.Files))
	for _, f := range result.Files {
		desc := f.Source
		if desc == "" {
			desc = f.Package
		}
		options = append(options, components.Option{Label: f.Path, Description: desc, Value: f.Path})
	}
	return selectControl(options)
}

func runCheck(cmd *cobra.Command, args []string) error {
	workspace := OptionalWorkspace(args)
	verbose := getVerboseFlag(cmd)

	cfg, err := buildValidationConfig(workspace, verbose)
	if err != nil {
		return err
	}

	approver := ui.NewApprover(checkFlags.yes, verbose, tui.DetectMode())
	logger := logging.NewConsoleLogger(verbose)
	validator := services.NewValidationService(
		approver,
		logger,
		checksum.New(),
		filesystem.NewOSFileSystem(),
		checks.Default(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling checks...")
			cancel()
		case <-ctx.Done():
		}
	}()

	report, runErr := validator.Validate(ctx, cfg)
	if report != nil {
		if err := printReport(cmd, report); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	return report.Err()
}

func printReport(cmd *cobra.Command, report *houston.Report) error {
	out := cmd.OutOrStdout()
	if checkFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err := fmt.Fprint(out, tui.RenderReport(report))
	return err
}
