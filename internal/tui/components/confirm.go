package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Confirm is a yes/no prompt. The default answer is no.
type Confirm struct {
	prompt    string
	detail    string
	choice    bool
	keyMap    confirmKeyMap
	styles    confirmStyles
	submitted bool
	cancelled bool
}

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding
}

type confirmStyles struct {
	Prompt   lipgloss.Style
	Detail   lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Help     lipgloss.Style
}

func defaultConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
		Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "toggle")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "cancel")),
	}
}

func defaultConfirmStyles() confirmStyles {
	return confirmStyles{
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1).
			MarginBottom(1),
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Padding(0, 2),
		Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 2),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

// NewConfirm creates a prompt. detail is shown in a box above the question
// and may be empty.
func NewConfirm(prompt, detail string) Confirm {
	return Confirm{
		prompt: prompt,
		detail: detail,
		keyMap: defaultConfirmKeyMap(),
		styles: defaultConfirmStyles(),
	}
}

// Init implements tea.Model.
func (c Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (c Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keyMap.Yes):
		c.choice = true
		c.submitted = true
		return c, tea.Quit
	case key.Matches(keyMsg, c.keyMap.No):
		c.choice = false
		c.submitted = true
		return c, tea.Quit
	case key.Matches(keyMsg, c.keyMap.Toggle):
		c.choice = !c.choice
	case key.Matches(keyMsg, c.keyMap.Submit):
		c.submitted = true
		return c, tea.Quit
	case key.Matches(keyMsg, c.keyMap.Quit):
		c.choice = false
		c.cancelled = true
		return c, tea.Quit
	}
	return c, nil
}

// View implements tea.Model.
func (c Confirm) View() string {
	var b strings.Builder

	if c.detail != "" {
		b.WriteString(c.styles.Detail.Render(strings.TrimRight(c.detail, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(c.styles.Prompt.Render(c.prompt))
	b.WriteString("\n\n")

	yes, no := c.styles.Inactive, c.styles.Active
	if c.choice {
		yes, no = c.styles.Active, c.styles.Inactive
	}
	b.WriteString(yes.Render("Yes"))
	b.WriteString(" ")
	b.WriteString(no.Render("No"))
	b.WriteString("\n")

	b.WriteString(c.styles.Help.Render("y yes • n no • ←/→ toggle • enter confirm • esc cancel"))
	return b.String()
}

// Confirmed reports whether the user submitted "yes".
func (c Confirm) Confirmed() bool {
	return c.submitted && c.choice
}

func (c Confirm) Submitted() bool {
	return c.submitted
}

func (c Confirm) Cancelled() bool {
	return c.cancelled
}
