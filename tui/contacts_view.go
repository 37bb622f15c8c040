// ABOUTME: Contacts tab for the TUI
// ABOUTME: Searchable, filterable table of contacts with cursor navigation
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kindredhq/kindred/engine"
	"github.com/kindredhq/kindred/models"
)

func (m Model) handleContactsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searchActive = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < len(m.visibleContacts())-1 {
			m.selectedRow++
		}
	case "s":
		m.sortMode = nextSortMode(m.sortMode)
	case "esc":
		m.filter = engine.Filter{}
		m.searchInput.SetValue("")
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.filter.Query = m.searchInput.Value()
		m.selectedRow = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.Query = m.searchInput.Value()
	return m, cmd
}

func nextSortMode(mode engine.SortMode) engine.SortMode {
	switch mode {
	case engine.SortName:
		return engine.SortRecent
	case engine.SortRecent:
		return engine.SortStrength
	default:
		return engine.SortName
	}
}

func (m Model) visibleContacts() []models.Contact {
	contacts := m.filter.Apply(m.contacts, time.Now())
	engine.Sort(contacts, m.sortMode)
	return contacts
}

func (m Model) renderContactsView() string {
	if m.loading {
		return "Loading contacts..."
	}
	if m.err != nil {
		return errStyle.Render("Error: "+m.err.Error()) + helpStyle.Render("\nr: retry • q: quit")
	}

	var b strings.Builder
	if m.searchActive {
		b.WriteString("Search: " + m.searchInput.View() + "\n\n")
	} else if m.filter.Query != "" {
		b.WriteString(fmt.Sprintf("Filter: %q  (esc to clear)\n\n", m.filter.Query))
	}

	contacts := m.visibleContacts()
	if len(contacts) == 0 {
		b.WriteString("No contacts match.\n")
	} else {
		b.WriteString(m.renderContactsTable(contacts))
	}

	b.WriteString(helpStyle.Render("\n↑/↓: navigate • /: search • s: sort (" + string(m.sortMode) + ") • tab: next view • r: refresh • q: quit"))
	return b.String()
}

func (m Model) renderContactsTable(contacts []models.Contact) string {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Company", Width: 18},
		{Title: "Strength", Width: 10},
		{Title: "Last Contact", Width: 14},
	}

	rows := make([]table.Row, 0, len(contacts))
	now := time.Now()
	for _, c := range contacts {
		last := "never"
		if c.LastContactedAt != nil {
			last = fmt.Sprintf("%dd ago", c.DaysSinceContact(now))
		}
		rows = append(rows, table.Row{
			c.DisplayName(),
			c.Company,
			stars(c.RelationshipStrength),
			last,
		})
	}

	height := len(rows) + 1
	if max := m.height - 10; max > 1 && height > max {
		height = max
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	t.SetCursor(m.selectedRow)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("170"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return t.View()
}

func stars(strength int) string {
	s := models.ClampStrength(strength)
	return strings.Repeat("★", s) + strings.Repeat("☆", 5-s)
}
