// ABOUTME: Analytics tab for the TUI
// ABOUTME: Network health dashboard rendered from server-computed metrics
package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderAnalyticsView() string {
	if m.loading {
		return "Loading analytics..."
	}
	if m.err != nil {
		return errStyle.Render("Error: "+m.err.Error()) + helpStyle.Render("\nr: retry • q: quit")
	}
	if !m.haveMetrics || m.metrics.TotalContacts == 0 {
		return "No analytics yet. Add contacts and log interactions to build your network picture.\n" +
			helpStyle.Render("tab: next view • r: refresh • q: quit")
	}

	d := m.metrics
	var b strings.Builder
	b.WriteString(titleStyle.Render("NETWORK HEALTH") + "\n")
	b.WriteString(strings.Repeat("━", 40) + "\n")
	b.WriteString(fmt.Sprintf("  Health score:        %.0f/100\n", d.NetworkHealthScore))
	b.WriteString(fmt.Sprintf("  Contacts:            %d (%d active)\n", d.TotalContacts, d.ActiveContacts))
	b.WriteString(fmt.Sprintf("  Interactions:        %d (%d this month)\n", d.TotalInteractions, d.InteractionsThisMonth))
	b.WriteString(fmt.Sprintf("  Avg strength:        %.1f\n", d.AverageStrength))
	b.WriteString(fmt.Sprintf("  Introductions made:  %d\n", d.IntroductionsMade))

	if len(d.StrengthDistribution) > 0 {
		b.WriteString("\n" + titleStyle.Render("STRENGTH DISTRIBUTION") + "\n")
		for s := 5; s >= 1; s-- {
			key := fmt.Sprintf("%d", s)
			count := d.StrengthDistribution[key]
			b.WriteString(fmt.Sprintf("  %s %s (%d)\n", stars(s), strings.Repeat("█", count), count))
		}
	}

	b.WriteString(helpStyle.Render("\ntab: next view • r: refresh • q: quit"))
	return b.String()
}
