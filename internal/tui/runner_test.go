package tui

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rupertdev/houston/internal/tui/components"
	"github.com/stretchr/testify/require"
)

// scripted feeds msgs to the model instead of reading a terminal.
func scripted(msgs ...tea.Msg) Program {
	return func(model tea.Model, _ io.Reader, _ io.Writer) (tea.Model, error) {
		for _, msg := range msgs {
			model, _ = model.Update(msg)
		}
		return model, nil
	}
}

func TestRunConfirm(t *testing.T) {
	ok, err := RunConfirm(scripted(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}), "Write?", "", nil, nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = RunConfirm(scripted(tea.KeyMsg{Type: tea.KeyEnter}), "Write?", "", nil, nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRunConfirm_Cancelled(t *testing.T) {
	_, err := RunConfirm(scripted(tea.KeyMsg{Type: tea.KeyEsc}), "Write?", "", nil, nil)
	require.ErrorIs(t, err, ErrCancelled)
}

func TestRunConfirm_ProgramError(t *testing.T) {
	boom := errors.New("no tty")
	failing := func(tea.Model, io.Reader, io.Writer) (tea.Model, error) { return nil, boom }

	_, err := RunConfirm(failing, "Write?", "", nil, nil)
	require.ErrorIs(t, err, boom)
}

func TestRunSelector(t *testing.T) {
	options := []components.Option{
		{Label: "a", Value: "/a"},
		{Label: "b", Value: "/b"},
	}

	value, err := RunSelector(scripted(tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter}), "Pick", options, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "/b", value)

	_, err = RunSelector(scripted(tea.KeyMsg{Type: tea.KeyCtrlC}), "Pick", options, nil, nil)
	require.ErrorIs(t, err, ErrCancelled)
}
