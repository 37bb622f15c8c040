// ABOUTME: Interactions tab for the TUI
// ABOUTME: Chronological interaction feed grouped by calendar day
package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderInteractionsView() string {
	if m.loading {
		return "Loading interactions..."
	}
	if m.err != nil {
		return errStyle.Render("Error: "+m.err.Error()) + helpStyle.Render("\nr: retry • q: quit")
	}
	if len(m.interactions) == 0 {
		return "No interactions logged yet.\n" + helpStyle.Render("tab: next view • r: refresh • q: quit")
	}

	names := displayNames(m.contacts)

	var b strings.Builder
	var lastDay string
	for _, in := range m.interactions {
		day := in.Date.Format("Monday, January 2, 2006")
		if day != lastDay {
			if lastDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(titleStyle.Render(day) + "\n")
			lastDay = day
		}
		b.WriteString(fmt.Sprintf("  %s %-10s %s",
			sentimentDot(in.Sentiment), in.Type, fallbackName(names, in.ContactID.String())))
		if in.Notes != "" {
			b.WriteString(" — " + in.Notes)
		}
		b.WriteString("\n")
		if len(in.KeyTopics) > 0 {
			b.WriteString("      topics: " + strings.Join(in.KeyTopics, ", ") + "\n")
		}
		for _, a := range in.ActionItems {
			box := "[ ]"
			if a.Completed {
				box = "[x]"
			}
			b.WriteString(fmt.Sprintf("      %s %s (%s)\n", box, a.Text, a.Owner))
		}
	}

	b.WriteString(helpStyle.Render("\ntab: next view • r: refresh • q: quit"))
	return b.String()
}

func sentimentDot(sentiment string) string {
	switch sentiment {
	case "POSITIVE":
		return "🟢"
	case "NEGATIVE":
		return "🔴"
	default:
		return "🟡"
	}
}
