// ABOUTME: Introductions tab for the TUI
// ABOUTME: Suggested intro pairings ranked by match score
package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderIntrosView() string {
	if m.loading {
		return "Loading introductions..."
	}
	if m.err != nil {
		return errStyle.Render("Error: "+m.err.Error()) + helpStyle.Render("\nr: retry • q: quit")
	}
	if len(m.intros) == 0 {
		return "No suggested introductions right now.\n" + helpStyle.Render("tab: next view • r: refresh • q: quit")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("SUGGESTED INTRODUCTIONS") + "\n")
	for _, intro := range m.intros {
		src := fallbackName(m.introNames, intro.SourceContactID.String())
		dst := fallbackName(m.introNames, intro.TargetContactID.String())
		b.WriteString(fmt.Sprintf("  %3d%%  %s ↔ %s\n", intro.DisplayScore(), src, dst))
		if intro.Reason != "" {
			b.WriteString("        " + intro.Reason + "\n")
		}
	}

	b.WriteString(helpStyle.Render("\ntab: next view • r: refresh • q: quit"))
	return b.String()
}
