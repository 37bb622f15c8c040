// ABOUTME: Interaction CLI commands
// ABOUTME: Lists history grouped by calendar date and logs new conversations
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kindredhq/kindred/api"
	"github.com/kindredhq/kindred/models"
)

// dayGroup is one calendar date's worth of interactions, in the order the
// server returned them.
type dayGroup struct {
	Label string
	Items []models.Interaction
}

// groupByDay groups interactions by calendar date, preserving input order
// within each group. The server returns the list most-recent-first, so
// groups come out most-recent-first too.
func groupByDay(interactions []models.Interaction) []dayGroup {
	var groups []dayGroup
	for _, in := range interactions {
		label := in.Date.Format("Monday, January 2, 2006")
		if len(groups) == 0 || groups[len(groups)-1].Label != label {
			groups = append(groups, dayGroup{Label: label})
		}
		groups[len(groups)-1].Items = append(groups[len(groups)-1].Items, in)
	}
	return groups
}

func sentimentIcon(s string) string {
	switch s {
	case models.SentimentPositive:
		return "🟢"
	case models.SentimentNegative:
		return "🔴"
	default:
		return "🟡"
	}
}

func printGroupedInteractions(out io.Writer, interactions []models.Interaction) {
	if len(interactions) == 0 {
		_, _ = fmt.Fprintln(out, "  (no interactions logged)")
		return
	}
	for _, g := range groupByDay(interactions) {
		_, _ = fmt.Fprintf(out, "\n%s\n", g.Label)
		for _, in := range g.Items {
			_, _ = fmt.Fprintf(out, "  %s %s", sentimentIcon(in.Sentiment), strings.ToLower(in.Type))
			if in.Notes != "" {
				_, _ = fmt.Fprintf(out, " — %s", in.Notes)
			}
			_, _ = fmt.Fprintln(out)
			if len(in.KeyTopics) > 0 {
				_, _ = fmt.Fprintf(out, "      topics: %s\n", strings.Join(in.KeyTopics, ", "))
			}
			for _, item := range in.ActionItems {
				box := "[ ]"
				if item.Completed {
					box = "[x]"
				}
				_, _ = fmt.Fprintf(out, "      %s %s (%s)\n", box, item.Text, item.Owner)
			}
		}
	}
}

// ListInteractionsCommand shows interaction history, grouped by date.
func ListInteractionsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	contactID := fs.String("contact", "", "Limit to one contact id")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	ctx := context.Background()

	var interactions []models.Interaction
	var err error
	if *contactID != "" {
		id, perr := uuid.Parse(*contactID)
		if perr != nil {
			return fmt.Errorf("--contact must be a valid contact id")
		}
		interactions, err = app.Client.ListContactInteractions(ctx, id)
	} else {
		interactions, err = app.Client.ListInteractions(ctx)
	}
	if err != nil {
		return err
	}

	printGroupedInteractions(app.out(), interactions)
	return nil
}

// LogInteractionCommand records a conversation with a contact. Action
// items use the form "text|owner|2025-07-01" with owner and due date
// optional.
func LogInteractionCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	contactID := fs.String("contact", "", "Contact id (required)")
	kind := fs.String("type", models.InteractionMeeting, "MEETING, CALL, EMAIL, MESSAGE, SOCIAL, EVENT, or OTHER")
	date := fs.String("date", "", "Interaction date (YYYY-MM-DD, default today)")
	sentiment := fs.String("sentiment", models.SentimentNeutral, "POSITIVE, NEUTRAL, or NEGATIVE")
	notes := fs.String("notes", "", "Free-text notes")
	topics := fs.String("topics", "", "Comma-separated key topics")
	var actions actionItemFlags
	fs.Var(&actions, "action", "Action item as text|owner|due (repeatable)")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	id, err := uuid.Parse(*contactID)
	if err != nil {
		return fmt.Errorf("--contact must be a valid contact id")
	}

	when := app.now()
	if *date != "" {
		when, err = time.Parse("2006-01-02", *date)
		if err != nil {
			return fmt.Errorf("--date must be YYYY-MM-DD")
		}
	}

	created, err := app.Client.CreateInteraction(context.Background(), api.InteractionRequest{
		ContactID:   id,
		Type:        strings.ToUpper(*kind),
		Date:        when,
		Sentiment:   strings.ToUpper(*sentiment),
		Notes:       *notes,
		KeyTopics:   splitList(*topics),
		ActionItems: actions.items,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.out(), "Logged %s interaction (%s)\n", strings.ToLower(created.Type), created.ID)
	return nil
}

// actionItemFlags parses repeatable --action flags.
type actionItemFlags struct {
	items []models.ActionItem
}

func (f *actionItemFlags) String() string { return fmt.Sprintf("%d action items", len(f.items)) }

func (f *actionItemFlags) Set(v string) error {
	parts := strings.SplitN(v, "|", 3)
	item := models.ActionItem{Text: strings.TrimSpace(parts[0]), Owner: models.OwnerMe}
	if item.Text == "" {
		return fmt.Errorf("action item text is required")
	}
	if len(parts) > 1 && parts[1] != "" {
		owner := strings.ToLower(strings.TrimSpace(parts[1]))
		switch owner {
		case models.OwnerMe, models.OwnerThem, models.OwnerBoth:
			item.Owner = owner
		default:
			return fmt.Errorf("action item owner must be me, them, or both")
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		due, err := time.Parse("2006-01-02", strings.TrimSpace(parts[2]))
		if err != nil {
			return fmt.Errorf("action item due date must be YYYY-MM-DD")
		}
		item.DueDate = &due
	}
	f.items = append(f.items, item)
	return nil
}
