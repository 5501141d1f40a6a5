package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rupertdev/houston/internal/tui/components"
)

// ErrCancelled is returned when the user quits a prompt without answering.
var ErrCancelled = errors.New("prompt cancelled")

// Program runs a bubbletea model to completion. Tests replace it to avoid a
// terminal.
type Program func(model tea.Model, in io.Reader, out io.Writer) (tea.Model, error)

// RunProgram is the Program backed by a real bubbletea program.
func RunProgram(model tea.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	opts := []tea.ProgramOption{}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	return tea.NewProgram(model, opts...).Run()
}

// RunConfirm asks a yes/no question and reports the answer.
func RunConfirm(run Program, prompt, detail string, in io.Reader, out io.Writer) (bool, error) {
	final, err := run(components.NewConfirm(prompt, detail), in, out)
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}

	c, ok := final.(components.Confirm)
	if !ok {
		return false, fmt.Errorf("confirm prompt: unexpected model %T", final)
	}
	if c.Cancelled() {
		return false, ErrCancelled
	}
	return c.Confirmed(), nil
}

// RunSelector asks the user to pick one option and returns its value.
func RunSelector(run Program, title string, options []components.Option, in io.Reader, out io.Writer) (string, error) {
	final, err := run(components.NewSelector(title, options), in, out)
	if err != nil {
		return "", fmt.Errorf("selector: %w", err)
	}

	s, ok := final.(components.Selector)
	if !ok {
		return "", fmt.Errorf("selector: unexpected model %T", final)
	}
	if !s.Submitted() {
		return "", ErrCancelled
	}
	return s.Value(), nil
}
