package cli

import (
	"strings"

	"github.com/rupertdev/houston/internal/checks"
	"github.com/spf13/cobra"
)

// outputFormats are the values accepted by read --format.
var outputFormats = []string{"text", "yaml", "json"}

func completeFromList(values []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats provides shell completion for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(outputFormats, toComplete)
}

// completeCheckNames provides shell completion for --disable.
func completeCheckNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(checks.Names(), toComplete)
}

// completeDirectories provides shell completion for workspace arguments.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
