// ABOUTME: Follow-ups tab for the TUI
// ABOUTME: Shows urgency buckets computed from contact cadence thresholds
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kindredhq/kindred/followup"
)

var (
	urgentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	dueSoonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	onTrackStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
)

func (m Model) renderFollowupsView() string {
	if m.loading {
		return "Loading follow-ups..."
	}
	if m.err != nil {
		return errStyle.Render("Error: "+m.err.Error()) + helpStyle.Render("\nr: retry • q: quit")
	}

	buckets := followup.Categorize(m.contacts, time.Now())

	var b strings.Builder
	writeBucket(&b, urgentStyle.Render("🔴 URGENT"), buckets.Urgent)
	writeBucket(&b, dueSoonStyle.Render("🟡 DUE SOON"), buckets.DueSoon)
	writeBucket(&b, onTrackStyle.Render("🟢 ON TRACK"), buckets.OnTrack)

	b.WriteString(helpStyle.Render("tab: next view • r: refresh • q: quit"))
	return b.String()
}

func writeBucket(b *strings.Builder, header string, entries []followup.Entry) {
	b.WriteString(header + "\n")
	if len(entries) == 0 {
		b.WriteString("  (none)\n\n")
		return
	}
	for _, e := range entries {
		since := "never contacted"
		if e.Contact.LastContactedAt != nil {
			since = fmt.Sprintf("%d days ago", e.DaysSince)
		}
		b.WriteString(fmt.Sprintf("  %-28s %s %s\n",
			e.Contact.DisplayName(), stars(e.Contact.RelationshipStrength), since))
	}
	b.WriteString("\n")
}

// fallbackName keeps the raw id visible when a contact lookup misses.
func fallbackName(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}
