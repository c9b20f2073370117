package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kevinmel2000/Vita3K/titles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#0F4C81")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#0F4C81"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type selectorModel struct {
	all      []titles.Title
	shown    []titles.Title
	filter   textinput.Model
	filtered bool
	selected int
	choice   *titles.Title
}

func newSelectorModel(ts []titles.Title) *selectorModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Width = 30

	return &selectorModel{
		all:    ts,
		shown:  ts,
		filter: ti,
	}
}

func (m *selectorModel) Init() tea.Cmd {
	return nil
}

func (m *selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtered && m.filter.Focused() {
		switch key.String() {
		case "enter", "esc":
			m.filter.Blur()
			if key.String() == "esc" {
				m.filter.SetValue("")
				m.applyFilter()
			}
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.shown)-1 {
			m.selected++
		}

	case "/":
		m.filtered = true
		m.filter.Focus()

	case "esc":
		m.filtered = false
		m.filter.SetValue("")
		m.applyFilter()

	case "enter":
		if m.selected < len(m.shown) {
			chosen := m.shown[m.selected]
			m.choice = &chosen
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *selectorModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	if needle == "" {
		m.shown = m.all
	} else {
		m.shown = nil
		for _, t := range m.all {
			if strings.Contains(strings.ToLower(t.Title), needle) ||
				strings.Contains(strings.ToLower(t.ID), needle) {
				m.shown = append(m.shown, t)
			}
		}
	}
	if m.selected >= len(m.shown) {
		m.selected = 0
	}
}

func (m *selectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Vita3K"))
	b.WriteString(" Select a title to boot\n\n")

	if m.filtered {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.shown) == 0 {
		b.WriteString("No titles found.\n")
	}

	for i, t := range m.shown {
		line := idStyle.Render(t.ID) + "  " + t.Title
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + t.ID + "  " + t.Title))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter boot • / filter • q quit"))
	return b.String()
}

// selectTitle runs the interactive selector and returns the chosen title.
func selectTitle(ts []titles.Title) (titles.Title, error) {
	if len(ts) == 0 {
		return titles.Title{}, fmt.Errorf("no titles installed")
	}

	p := tea.NewProgram(newSelectorModel(ts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return titles.Title{}, err
	}

	m := final.(*selectorModel)
	if m.choice == nil {
		return titles.Title{}, fmt.Errorf("no title selected")
	}
	return *m.choice, nil
}
