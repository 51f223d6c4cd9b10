package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is an interactive terminal rendition of a Menu.
type Model struct {
	menu       Menu
	dispatcher *Dispatcher
	cursor     int
	status     string
	done       bool
}

// NewModel creates a Model that sends selections to dispatcher.
func NewModel(m Menu, dispatcher *Dispatcher) *Model {
	return &Model{menu: m, dispatcher: dispatcher}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.done = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.menu.Items)-1 {
			m.cursor++
		}

	case "enter", " ":
		return m.selectCurrent()
	}

	return m, nil
}

func (m *Model) selectCurrent() (tea.Model, tea.Cmd) {
	if len(m.menu.Items) == 0 {
		return m, nil
	}
	item := m.menu.Items[m.cursor]

	event, err := m.dispatcher.Handle(item.ID)
	switch {
	case err != nil:
		m.status = err.Error()
	case item.ID == ItemQuit:
		m.done = true
		return m, tea.Quit
	default:
		m.status = "emitted " + event
	}
	return m, nil
}

// Cursor returns the index of the highlighted item.
func (m *Model) Cursor() int {
	return m.cursor
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}

// Done reports whether the model has asked the program to quit.
func (m *Model) Done() bool {
	return m.done
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.menu.Title))
	sb.WriteString("\n\n")

	for i, item := range m.menu.Items {
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + item.Label))
		} else {
			sb.WriteString("  " + item.Label)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(statusStyle.Render("↑/↓ move • enter select • q quit"))
	sb.WriteString("\n")
	return sb.String()
}
