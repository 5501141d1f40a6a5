package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option is one entry of a Selector.
type Option struct {
	Label       string
	Description string
	Value       string
}

// Selector lets the user pick one control file out of several found in a
// workspace. Only a window of height rows is shown at a time.
type Selector struct {
	title     string
	options   []Option
	cursor    int
	offset    int
	height    int
	selected  int
	keyMap    selectorKeyMap
	styles    selectorStyles
	submitted bool
	cancelled bool
}

type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
	Quit   key.Binding
}

type selectorStyles struct {
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
}

func defaultSelectorStyles() selectorStyles {
	return selectorStyles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

func defaultSelectorKeyMap() selectorKeyMap {
	return selectorKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q/esc", "quit")),
	}
}

const defaultSelectorHeight = 10

func NewSelector(title string, options []Option) Selector {
	return Selector{
		title:    title,
		options:  options,
		selected: -1,
		height:   defaultSelectorHeight,
		keyMap:   defaultSelectorKeyMap(),
		styles:   defaultSelectorStyles(),
	}
}

// WithHeight sets how many options are visible at once.
func (s Selector) WithHeight(height int) Selector {
	if height > 0 {
		s.height = height
	}
	return s
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Up):
			s.moveTo(s.cursor - 1)
		case key.Matches(msg, s.keyMap.Down):
			s.moveTo(s.cursor + 1)
		case key.Matches(msg, s.keyMap.Home):
			s.moveTo(0)
		case key.Matches(msg, s.keyMap.End):
			s.moveTo(len(s.options) - 1)
		case key.Matches(msg, s.keyMap.Select):
			if len(s.options) == 0 {
				return s, nil
			}
			s.selected = s.cursor
			s.submitted = true
			return s, tea.Quit
		case key.Matches(msg, s.keyMap.Quit):
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Title, blank line, and help take four rows.
		s = s.WithHeight(msg.Height - 4)
		s.moveTo(s.cursor)
	}
	return s, nil
}

func (s *Selector) moveTo(i int) {
	if len(s.options) == 0 {
		return
	}
	s.cursor = max(0, min(i, len(s.options)-1))
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
}

// View implements tea.Model.
func (s Selector) View() string {
	var b strings.Builder

	b.WriteString(s.styles.Title.Render(s.title))
	b.WriteString("\n\n")

	end := min(s.offset+s.height, len(s.options))
	for i := s.offset; i < end; i++ {
		opt := s.options[i]
		prefix, style, symbol := "  ", s.styles.Unselected, "○"
		if i == s.cursor {
			prefix, style, symbol = "", s.styles.Selected, "●"
		}

		b.WriteString(prefix)
		b.WriteString(style.Render(symbol + " " + opt.Label))
		b.WriteString("\n")
		if opt.Description != "" {
			b.WriteString(s.styles.Description.Render(opt.Description))
			b.WriteString("\n")
		}
	}

	help := "↑/↓ navigate • enter select • q quit"
	if len(s.options) > s.height {
		help = fmt.Sprintf("%d/%d • %s", s.cursor+1, len(s.options), help)
	}
	b.WriteString(s.styles.Help.Render("\n" + help))

	return b.String()
}

// Selected returns the selected option index, or -1 if none selected.
func (s Selector) Selected() int {
	return s.selected
}

// Cursor returns the index of the highlighted option.
func (s Selector) Cursor() int {
	return s.cursor
}

func (s Selector) Cancelled() bool {
	return s.cancelled
}

func (s Selector) Submitted() bool {
	return s.submitted
}

// Value returns the value of the selected option, or "" if none selected.
func (s Selector) Value() string {
	if s.selected >= 0 && s.selected < len(s.options) {
		return s.options[s.selected].Value
	}
	return ""
}
