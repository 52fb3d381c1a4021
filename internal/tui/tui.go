// Package tui provides a Bubble Tea settings editor for format-performer-tags.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/format-performer-tags/internal/config"
	"github.com/handiism/format-performer-tags/internal/performer"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	focusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// keywordLabels are shown for the keyword selectors, in config.KeywordOptions order.
var keywordLabels = []string{
	"Keyword: additional",
	"Keyword: guest",
	"Keyword: solo",
	"All vocal type keywords",
}

// Model is the Bubble Tea model for the settings editor.
//
// The first len(config.KeywordOptions) fields are keyword section
// selectors; the remaining fields are text inputs for the section display
// settings, in config.CharOptions order.
type Model struct {
	settings *config.Settings
	path     string
	inputs   []textinput.Model
	focus    int

	instruments string
	vocals      string
	status      string
	err         error

	width int
}

// NewModel creates a settings editor for the settings stored at path.
func NewModel(settings *config.Settings, path string) Model {
	m := Model{
		settings: settings,
		path:     path,
		inputs:   make([]textinput.Model, len(config.CharOptions)),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "(blank)"
		ti.Prompt = ""
		ti.CharLimit = 20
		ti.Width = 8
		m.inputs[i] = ti
	}
	m.loadInputs()
	m.updateExamples()
	return m
}

// Settings returns the settings being edited.
func (m Model) Settings() *config.Settings {
	return m.settings
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

type savedMsg struct {
	err error
}

func (m Model) numFields() int {
	return len(config.KeywordOptions) + len(m.inputs)
}

// inputIndex returns the text input for the focused field, or -1 when a
// keyword selector is focused.
func (m Model) inputIndex() int {
	return m.focus - len(config.KeywordOptions)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else {
			m.err = nil
			m.status = fmt.Sprintf("Saved to %s", m.path)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down", "enter":
			return m, m.setFocus((m.focus + 1) % m.numFields())

		case "shift+tab", "up":
			return m, m.setFocus((m.focus - 1 + m.numFields()) % m.numFields())

		case "ctrl+s":
			return m, m.save()

		case "ctrl+r":
			m.settings.ResetFormatOptions()
			m.loadInputs()
			m.updateExamples()
			m.status = "Restored defaults"
			return m, nil
		}

		if m.inputIndex() < 0 {
			m.updateKeyword(msg.String())
			return m, nil
		}
	}

	i := m.inputIndex()
	if i < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	if err := m.settings.SetOption(config.CharOptions[i], m.inputs[i].Value()); err != nil {
		m.err = err
		return m, cmd
	}
	m.updateExamples()
	return m, cmd
}

func (m *Model) updateKeyword(key string) {
	option := config.KeywordOptions[m.focus]
	v, _ := m.settings.Option(option)
	group := v.(int)

	switch key {
	case "left", "h":
		group--
	case "right", "l", " ":
		group++
	case "1", "2", "3", "4":
		group = int(key[0] - '0')
	default:
		return
	}
	group = (group-1+performer.NumGroups)%performer.NumGroups + 1

	if err := m.settings.SetOption(option, group); err != nil {
		m.err = err
		return
	}
	m.updateExamples()
}

func (m *Model) setFocus(focus int) tea.Cmd {
	if i := m.inputIndex(); i >= 0 {
		m.inputs[i].Blur()
	}
	m.focus = focus
	if i := m.inputIndex(); i >= 0 {
		return m.inputs[i].Focus()
	}
	return nil
}

func (m *Model) loadInputs() {
	for i, key := range config.CharOptions {
		v, _ := m.settings.Option(key)
		m.inputs[i].SetValue(v.(string))
	}
}

// updateExamples re-renders both example blocks from the current settings.
func (m *Model) updateExamples() {
	f, err := performer.New(m.settings.ToFormatConfig(), nil)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.instruments = performer.BuildExample(f, performer.InstrumentCredits)
	m.vocals = performer.BuildExample(f, performer.VocalCredits)
}

func (m Model) save() tea.Cmd {
	settings := *m.settings
	path := m.path
	return func() tea.Msg {
		return savedMsg{err: settings.Save(path)}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Format Performer Tags"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[1]Instrument/Vocals[2][3]: Performer[4]"))
	b.WriteString("\n\n")

	b.WriteString(m.viewKeywords())
	b.WriteString("\n")
	b.WriteString(m.viewSections())
	b.WriteString("\n")
	b.WriteString(m.viewExamples())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab/↑↓: move • ←→/1-4: section • ctrl+s: save • ctrl+r: defaults • esc: quit"))

	return b.String()
}

func (m Model) viewKeywords() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Keyword Sections Assignment"))
	b.WriteString("\n")
	for i, option := range config.KeywordOptions {
		v, _ := m.settings.Option(option)
		group := v.(int)

		label := fmt.Sprintf("  %-26s", keywordLabels[i])
		if m.focus == i {
			label = focusStyle.Render(fmt.Sprintf("› %-26s", keywordLabels[i]))
		}
		b.WriteString(label)
		for n := 1; n <= performer.NumGroups; n++ {
			if n == group {
				b.WriteString(fmt.Sprintf(" (•) %d", n))
			} else {
				b.WriteString(fmt.Sprintf(" ( ) %d", n))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewSections() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Section Display Settings"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-12s %-10s %-10s %-10s", "", "Start", "Sep", "End")))
	b.WriteString("\n")
	for section := 0; section < performer.NumGroups; section++ {
		b.WriteString(fmt.Sprintf("  %-12s", fmt.Sprintf("Section %d", section+1)))
		for j := 0; j < 3; j++ {
			i := section*3 + j
			cell := "[" + m.inputs[i].View() + "]"
			if m.inputIndex() == i {
				cell = focusStyle.Render(cell)
			}
			b.WriteString(" " + cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewExamples() string {
	body := infoStyle.Render(m.instruments) + "\n\n" + infoStyle.Render(m.vocals)
	return subtitleStyle.Render("Examples") + "\n" + boxStyle.Render(body)
}

// Run starts the settings editor for the settings file at path.
func Run(path string) error {
	settings, err := config.Load(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(settings, path), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
