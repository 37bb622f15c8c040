// ABOUTME: Introduction CLI commands
// ABOUTME: Lists suggestions ordered by match score and requests new intros
package cli

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kindredhq/kindred/api"
	"github.com/kindredhq/kindred/models"
)

// contactNames builds an id -> display name index for rendering the
// bidirectional pairing.
func contactNames(contacts []models.Contact) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(contacts))
	for _, c := range contacts {
		names[c.ID] = c.DisplayName()
	}
	return names
}

func printIntros(app *App, intros []models.Introduction, names map[uuid.UUID]string) error {
	if len(intros) == 0 {
		_, _ = fmt.Fprintln(app.out(), "No introductions to show")
		return nil
	}
	w := tabwriter.NewWriter(app.out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "MATCH\tPAIRING\tSTATUS\tREASON")
	_, _ = fmt.Fprintln(w, "-----\t-------\t------\t------")
	for _, in := range intros {
		src, dst := names[in.SourceContactID], names[in.TargetContactID]
		if src == "" {
			src = in.SourceContactID.String()
		}
		if dst == "" {
			dst = in.TargetContactID.String()
		}
		_, _ = fmt.Fprintf(w, "%d%%\t%s ↔ %s\t%s\t%s\n",
			in.DisplayScore(), src, dst, strings.ToLower(in.Status), in.Reason)
	}
	return w.Flush()
}

// ListIntrosCommand lists all introductions for the account.
func ListIntrosCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}

	var (
		intros   []models.Introduction
		contacts []models.Contact
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		intros, err = app.Client.ListIntroductions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = app.Client.AllContacts(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return printIntros(app, intros, contactNames(contacts))
}

// SuggestedIntrosCommand lists server-computed suggestions, best match
// first.
func SuggestedIntrosCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("suggested", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}

	var (
		intros   []models.Introduction
		contacts []models.Contact
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		intros, err = app.Client.SuggestedIntroductions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = app.Client.AllContacts(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(intros, func(i, j int) bool {
		return intros[i].DisplayScore() > intros[j].DisplayScore()
	})
	return printIntros(app, intros, contactNames(contacts))
}

// RequestIntroCommand asks for an introduction between two contacts.
func RequestIntroCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("request", flag.ExitOnError)
	source := fs.String("source", "", "Source contact id (required)")
	target := fs.String("target", "", "Target contact id (required)")
	reason := fs.String("reason", "", "Why these two should meet")
	context_ := fs.String("context", "", "Context to include in the intro")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	sourceID, err := uuid.Parse(*source)
	if err != nil {
		return fmt.Errorf("--source must be a valid contact id")
	}
	targetID, err := uuid.Parse(*target)
	if err != nil {
		return fmt.Errorf("--target must be a valid contact id")
	}

	intro, err := app.Client.CreateIntroduction(context.Background(), api.IntroductionRequest{
		SourceContactID: sourceID,
		TargetContactID: targetID,
		Status:          models.IntroPending,
		Reason:          *reason,
		Context:         *context_,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.out(), "Introduction requested (%s)\n", intro.ID)
	return nil
}

// UpdateIntroCommand moves an introduction through its lifecycle.
func UpdateIntroCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	idStr := fs.String("id", "", "Introduction id (required)")
	status := fs.String("status", "", "SUGGESTED, PENDING, MADE, COMPLETED, or DECLINED")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	id, err := uuid.Parse(*idStr)
	if err != nil {
		return fmt.Errorf("--id must be a valid introduction id")
	}
	if *status == "" {
		return fmt.Errorf("--status is required")
	}

	intro, err := app.Client.UpdateIntroduction(context.Background(), id, api.IntroductionRequest{
		Status: strings.ToUpper(*status),
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.out(), "Introduction is now %s\n", strings.ToLower(intro.Status))
	return nil
}
