// Package pager shows a rendered report in a scrollable terminal view.
package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleColor  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true) // Blue
	footerColor = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // Dark grey
)

// Model is a read-only pager over a block of text.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// New creates a pager for content. The view is sized by the first
// tea.WindowSizeMsg.
func New(title, content string) *Model {
	return &Model{
		title:   title,
		content: strings.TrimSuffix(content, "\n"),
	}
}

// Run pages content on the terminal until the user quits.
func Run(title, content string, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(New(title, content), opts...).Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// the footer takes one line
func (m *Model) resize(width, height int) {
	height = max(height-1, 1)
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.viewport.SetContent(m.content)
		m.ready = true
		return
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetYOffset(m.viewport.YOffset)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	vp := &m.viewport
	switch msg.String() {
	case "j", "down":
		vp.SetYOffset(vp.YOffset + 1)
	case "k", "up":
		vp.SetYOffset(vp.YOffset - 1)
	case "pgdown", " ", "f":
		vp.SetYOffset(vp.YOffset + vp.Height)
	case "pgup", "b":
		vp.SetYOffset(vp.YOffset - vp.Height)
	case "g", "home":
		vp.SetYOffset(0)
	case "G", "end":
		vp.SetYOffset(vp.TotalLineCount())
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View() + "\n" + m.footer()
}

func (m *Model) footer() string {
	total := m.viewport.TotalLineCount()
	first := min(m.viewport.YOffset+1, total)
	last := min(m.viewport.YOffset+m.viewport.Height, total)
	status := fmt.Sprintf("lines %d-%d of %d  (q to quit)", first, last, total)
	return titleColor.Render(m.title) + "  " + footerColor.Render(status)
}
