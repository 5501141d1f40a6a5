package ui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rupertdev/houston/internal/tui"
	"github.com/rupertdev/houston/pkg/houston"
)

// ConfirmApprover asks for confirmation with the terminal UI prompt. A
// cancelled prompt counts as "no".
type ConfirmApprover struct {
	run    tui.Program
	input  io.Reader
	output io.Writer
}

func NewConfirmApprover() houston.Approver {
	return &ConfirmApprover{run: tui.RunProgram, input: os.Stdin, output: os.Stderr}
}

func (a *ConfirmApprover) RequestApproval(ctx context.Context, path, summary string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	ok, err := tui.RunConfirm(a.run, "Write amendments to "+path+"?", summary, a.input, a.output)
	if errors.Is(err, tui.ErrCancelled) {
		return false, nil
	}
	return ok, err
}

var _ houston.Approver = (*ConfirmApprover)(nil)

// NewApprover picks the approver for the current session: forced when yes is
// set, the terminal UI prompt when interactive, the line prompt otherwise.
func NewApprover(yes, verbose bool, mode tui.Mode) houston.Approver {
	switch {
	case yes:
		return NewForcedApprover(verbose)
	case mode == tui.ModeInteractive:
		return NewConfirmApprover()
	default:
		return NewInteractiveApprover(verbose)
	}
}
