// ABOUTME: Follow-up CLI commands
// ABOUTME: Urgency buckets and the outstanding action item list
package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/kindredhq/kindred/followup"
	"github.com/kindredhq/kindred/models"
)

// FollowupListCommand buckets contacts by follow-up urgency.
func FollowupListCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	urgentOnly := fs.Bool("urgent-only", false, "Show only the urgent bucket")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	contacts, err := app.Client.AllContacts(context.Background())
	if err != nil {
		return err
	}

	buckets := followup.Categorize(contacts, app.now())

	w := tabwriter.NewWriter(app.out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STATUS\tNAME\tDAYS SINCE\tTHRESHOLD\tSTRENGTH\tEMAIL")
	_, _ = fmt.Fprintln(w, "------\t----\t----------\t---------\t--------\t-----")

	printBucket := func(icon string, entries []followup.Entry) {
		for _, e := range entries {
			days := fmt.Sprintf("%d", e.DaysSince)
			if e.Contact.LastContactedAt == nil {
				days = "never"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				icon, e.Contact.DisplayName(), days, e.Threshold,
				renderStars(e.Contact.RelationshipStrength), e.Contact.Email)
		}
	}

	printBucket("🔴", buckets.Urgent)
	if !*urgentOnly {
		printBucket("🟡", buckets.DueSoon)
		printBucket("🟢", buckets.OnTrack)
	}
	return w.Flush()
}

// ActionsCommand lists every outstanding action item, soonest due first.
// Contacts and interactions are fetched concurrently and joined before
// rendering.
func ActionsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("actions", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}

	var (
		contacts     []models.Contact
		interactions []models.Interaction
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		contacts, err = app.Client.AllContacts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		interactions, err = app.Client.ListInteractions(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	actions := followup.PendingActions(interactions, contacts)
	if len(actions) == 0 {
		_, _ = fmt.Fprintln(app.out(), "No outstanding action items")
		return nil
	}

	w := tabwriter.NewWriter(app.out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DUE\tACTION\tOWNER\tCONTACT")
	_, _ = fmt.Fprintln(w, "---\t------\t-----\t-------")
	for _, a := range actions {
		due := "—"
		if a.DueDate != nil {
			due = a.DueDate.Format("2006-01-02")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", due, a.Text, a.Owner, a.ContactName)
	}
	return w.Flush()
}
