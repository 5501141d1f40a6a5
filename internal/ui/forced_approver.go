package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rupertdev/houston/pkg/houston"
)

// ForcedApprover approves every write without asking. It is used when the
// --yes flag is provided and still prints what is about to change.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
}

func NewForcedApprover(verbose bool) houston.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr}
}

// RequestApproval prints the summary and approves unless ctx is done.
func (a *ForcedApprover) RequestApproval(ctx context.Context, path, summary string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if a.verbose && summary != "" {
		fmt.Fprintf(a.output, "\nAmendments to %s:\n%s\n", path, strings.TrimRight(summary, "\n"))
	}
	fmt.Fprintf(a.output, "✓ Writing %s (approved by --yes)\n", path)
	return true, nil
}

var _ houston.Approver = (*ForcedApprover)(nil)
