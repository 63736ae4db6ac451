package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/platewatch/platewatch/internal/models"
	"github.com/platewatch/platewatch/internal/tracker"
)

// Source is what the model needs from the daemon.
type Source interface {
	DisplayFields() models.PlateInfo
	Status() tracker.Status
	Refresh()
	SetCounts(primary, overflow int) error
}

// Model is the bubbletea model for the plate view.
type Model struct {
	source Source

	labels  tracker.Labels
	editing bool
	input   textinput.Model
	note    *noteMsg
}

// NewModel creates a model reading from source.
func NewModel(source Source) Model {
	ti := textinput.New()
	ti.Placeholder = "60/255"
	ti.CharLimit = 9
	ti.Width = 12
	ti.Prompt = "primary/overflow: "

	m := Model{
		source: source,
		input:  ti,
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	m.labels = tracker.FormatLabels(m.source.DisplayFields(), m.source.Status())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.reload()
		return m, nil

	case noteMsg:
		m.note = &msg
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.source.Refresh()
			m.reload()
		case "u":
			m.editing = true
			m.note = nil
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		primary, overflow, err := models.ParseCounts(m.input.Value())
		if err != nil {
			m.note = &noteMsg{message: err.Error(), severity: tracker.SeverityError}
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		return m, m.saveCounts(primary, overflow)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// saveCounts writes the counts off the UI goroutine.
func (m Model) saveCounts(primary, overflow int) tea.Cmd {
	source := m.source
	return func() tea.Msg {
		if err := source.SetCounts(primary, overflow); err != nil {
			return noteMsg{message: err.Error(), severity: tracker.SeverityError}
		}
		return noteMsg{message: "Waveplates updated.", severity: tracker.SeverityInfo}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	body := strings.Join([]string{
		headerStyle.Render("Platewatch"),
		"",
		valueStyle.Render(m.labels.Primary),
		valueStyle.Render(m.labels.Overflow),
		valueStyle.Render(m.labels.TimeToFull),
	}, "\n")
	b.WriteString(panelStyle.Render(body))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter to save, esc to cancel"))
	} else {
		b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
			keyStyle.Render("r"), hintStyle.Render(strings.ToLower(m.labels.Refresh)),
			keyStyle.Render("u"), hintStyle.Render("update manually"),
			keyStyle.Render("q"), hintStyle.Render("quit"),
		))
	}

	if m.note != nil {
		b.WriteString("\n\n")
		if m.note.severity == tracker.SeverityError {
			b.WriteString(errorStyle.Render(m.note.message))
		} else {
			b.WriteString(infoStyle.Render(m.note.message))
		}
	}
	b.WriteString("\n")
	return b.String()
}
