// ABOUTME: Analytics CLI commands
// ABOUTME: Renders pre-aggregated dashboard metrics and at-risk contacts
package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
)

// DashboardCommand renders the server's dashboard payload verbatim; the
// client does no aggregation of its own.
func DashboardCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	metrics, err := app.Client.Dashboard(context.Background())
	if err != nil {
		return err
	}

	out := app.out()
	if metrics.TotalContacts == 0 {
		_, _ = fmt.Fprintln(out, "No analytics yet — add some contacts and log interactions first.")
		return nil
	}

	_, _ = fmt.Fprintln(out, "NETWORK HEALTH")
	_, _ = fmt.Fprintln(out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = fmt.Fprintf(out, "  contacts: %d (%d active)\n", metrics.TotalContacts, metrics.ActiveContacts)
	_, _ = fmt.Fprintf(out, "  interactions: %d (%d this month)\n", metrics.TotalInteractions, metrics.InteractionsThisMonth)
	_, _ = fmt.Fprintf(out, "  average strength: %.1f\n", metrics.AverageStrength)
	_, _ = fmt.Fprintf(out, "  introductions made: %d\n", metrics.IntroductionsMade)
	_, _ = fmt.Fprintf(out, "  health score: %.0f\n", metrics.NetworkHealthScore)
	if len(metrics.StrengthDistribution) > 0 {
		_, _ = fmt.Fprintln(out, "  strength distribution:")
		for _, band := range []string{"5", "4", "3", "2", "1", "0"} {
			if n, ok := metrics.StrengthDistribution[band]; ok {
				_, _ = fmt.Fprintf(out, "    %s: %d\n", band, n)
			}
		}
	}
	return nil
}

// AtRiskCommand lists the server's at-risk relationships.
func AtRiskCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("at-risk", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	rows, err := app.Client.AtRisk(context.Background())
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(app.out(), "No at-risk relationships — nice work.")
		return nil
	}

	w := tabwriter.NewWriter(app.out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDAYS SINCE\tTHRESHOLD\tSTRENGTH")
	_, _ = fmt.Fprintln(w, "----\t----------\t---------\t--------")
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			r.Contact.DisplayName(), r.DaysSinceContact, r.Threshold,
			renderStars(r.Contact.RelationshipStrength))
	}
	return w.Flush()
}
