package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rupertdev/houston/pkg/houston"
)

// InteractiveApprover asks for confirmation on a line-based y/N prompt. It is
// used when a terminal UI is not available. End of input counts as "no".
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

func NewInteractiveApprover(verbose bool) houston.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval shows the summary and waits for an answer or ctx.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path, summary string) (bool, error) {
	fmt.Fprintf(a.output, "\nThe following amendments will be written to %s:\n", path)
	if summary != "" {
		fmt.Fprintln(a.output, strings.TrimRight(summary, "\n"))
	}
	fmt.Fprintf(a.output, "\nWrite %s? [y/N]: ", path)

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.output, "\n✗ No answer. Leaving file unchanged.")
			return false, nil
		}
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			fmt.Fprintln(a.output, "✓ Confirmed.")
			return true, nil
		default:
			fmt.Fprintf(a.output, "✗ Answer %q is not yes. Leaving file unchanged.\n", input)
			return false, nil
		}
	}
}

var _ houston.Approver = (*InteractiveApprover)(nil)
