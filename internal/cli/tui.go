package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// ttyPrompter runs bubbletea programs for menu choices and text prompts.
type ttyPrompter struct{}

func (ttyPrompter) Choose(items []menuItem) (string, error) {
	final, err := tea.NewProgram(newMenuModel(items), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(menuModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type from bubbletea: %T", final)
	}
	return m.Chosen, nil
}

func (ttyPrompter) Ask(label, placeholder string) (string, error) {
	final, err := tea.NewProgram(newAskModel(label, placeholder), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(askModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type from bubbletea: %T", final)
	}
	if m.eof {
		return "", io.EOF
	}
	return strings.TrimSpace(m.input.Value()), nil
}

// =============================================================================
// menuModel - Interactive menu selection
// =============================================================================

// menuModel is the bubbletea model for the main menu. Items can be picked
// with the arrow keys or by typing their number.
type menuModel struct {
	Items  []menuItem
	Cursor int
	Chosen string
}

func newMenuModel(items []menuItem) menuModel {
	return menuModel{Items: items}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc", "ctrl+d":
		m.Chosen = choiceQuit
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "enter":
		m.Chosen = m.Items[m.Cursor].key
		return m, tea.Quit
	default:
		for i, it := range m.Items {
			if key.String() == it.key {
				m.Cursor = i
				m.Chosen = it.key
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.Chosen != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Menu"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  0-7 jump  q quit"))
	b.WriteString("\n\n")

	for i, it := range m.Items {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s. %s", cursor, it.key, it.label)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// askModel - Single-line text prompt
// =============================================================================

// askModel wraps a textinput for one answer. Ctrl+C clears the answer;
// Ctrl+D ends input.
type askModel struct {
	input textinput.Model
	done  bool
	eof   bool
}

func newAskModel(label, placeholder string) askModel {
	ti := textinput.New()
	ti.Prompt = label + ": "
	ti.Placeholder = placeholder
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()
	return askModel{input: ti}
}

func (m askModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.input.SetValue("")
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.input.SetValue("")
			m.eof = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m askModel) View() string {
	if m.done {
		return ""
	}
	return m.input.View()
}
