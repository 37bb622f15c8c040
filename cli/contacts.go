// ABOUTME: Contact CLI commands
// ABOUTME: List with client-side filtering, CRUD, and CSV/JSON export
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kindredhq/kindred/api"
	"github.com/kindredhq/kindred/engine"
	"github.com/kindredhq/kindred/models"
)

// renderStars draws the 0-5 strength indicator, clamping out-of-range
// values rather than rejecting them.
func renderStars(strength int) string {
	s := models.ClampStrength(strength)
	return strings.Repeat("★", s) + strings.Repeat("☆", 5-s)
}

// contactFilterFlags registers the shared filter/sort flags.
func contactFilterFlags(fs *flag.FlagSet) (query *string, minStrength *int, sector, bucket, sortMode *string, preset *int) {
	query = fs.String("search", "", "Free-text search across name, email, company, tags, notes")
	minStrength = fs.Int("min-strength", 0, "Minimum relationship strength (0 = no filter)")
	sector = fs.String("sector", "", "Exact sector filter")
	bucket = fs.String("last-contact", "", "Last-contact bucket: 30, 60, 90, or 90+")
	sortMode = fs.String("sort", "name", "Sort order: name, recent, strength")
	preset = fs.Int("preset", -1, "Load the saved filter preset at this index")
	return
}

func (a *App) buildFilter(query string, minStrength int, sector, bucket string, presetIndex int) (engine.Filter, error) {
	f := engine.Filter{
		Query:             query,
		MinStrength:       minStrength,
		Sector:            sector,
		LastContactBucket: bucket,
	}
	if presetIndex < 0 {
		return f, nil
	}
	presets, err := a.Presets.List()
	if err != nil {
		return f, err
	}
	if presetIndex >= len(presets) {
		return f, fmt.Errorf("preset index %d out of range", presetIndex)
	}
	return f.WithPreset(presets[presetIndex]), nil
}

// ListContactsCommand lists contacts, filtered and sorted client-side.
func ListContactsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	query, minStrength, sector, bucket, sortMode, preset := contactFilterFlags(fs)
	page := fs.Int("page", 0, "Fetch a single server page instead of the full list")
	pageSize := fs.Int("page-size", 25, "Server page size when --page is set")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	ctx := context.Background()

	var contacts []models.Contact
	if *page > 0 {
		result, err := app.Client.ListContacts(ctx, *page, *pageSize)
		if err != nil {
			return err
		}
		contacts = result.Items
		defer func() {
			_, _ = fmt.Fprintf(app.out(), "\nPage %d of %d (%d contacts total)\n", result.Page, result.TotalPages, result.Total)
		}()
	} else {
		all, err := app.Client.AllContacts(ctx)
		if err != nil {
			return err
		}
		contacts = all
	}

	f, err := app.buildFilter(*query, *minStrength, *sector, *bucket, *preset)
	if err != nil {
		return err
	}
	contacts = f.Apply(contacts, app.now())
	engine.Sort(contacts, engine.SortMode(*sortMode))

	w := tabwriter.NewWriter(app.out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSTRENGTH\tCOMPANY\tSECTORS\tLAST CONTACT\tEMAIL")
	_, _ = fmt.Fprintln(w, "----\t--------\t-------\t-------\t------------\t-----")
	for _, c := range contacts {
		last := "never"
		if c.LastContactedAt != nil {
			last = fmt.Sprintf("%dd ago", c.DaysSinceContact(app.now()))
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.DisplayName(), renderStars(c.RelationshipStrength), c.Company,
			strings.Join(c.Sectors, ", "), last, c.Email)
	}
	return w.Flush()
}

// GetContactCommand shows one contact alongside its interaction history.
// The two fetches run concurrently and join before rendering.
func GetContactCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	idStr := fs.String("id", "", "Contact id (required)")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	id, err := uuid.Parse(*idStr)
	if err != nil {
		return fmt.Errorf("--id must be a valid contact id")
	}

	var (
		contact      models.Contact
		interactions []models.Interaction
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		contact, err = app.Client.GetContact(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		interactions, err = app.Client.ListContactInteractions(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	out := app.out()
	_, _ = fmt.Fprintf(out, "%s  %s\n", contact.DisplayName(), renderStars(contact.RelationshipStrength))
	if contact.Company != "" {
		_, _ = fmt.Fprintf(out, "  %s", contact.Company)
		if contact.Role != "" {
			_, _ = fmt.Fprintf(out, " (%s)", contact.Role)
		}
		_, _ = fmt.Fprintln(out)
	}
	if contact.Email != "" {
		_, _ = fmt.Fprintf(out, "  %s\n", contact.Email)
	}
	if len(contact.Tags) > 0 {
		_, _ = fmt.Fprintf(out, "  tags: %s\n", strings.Join(contact.Tags, ", "))
	}
	if len(contact.Needs) > 0 {
		_, _ = fmt.Fprintf(out, "  needs: %s\n", strings.Join(contact.Needs, ", "))
	}
	if len(contact.Offers) > 0 {
		_, _ = fmt.Fprintf(out, "  offers: %s\n", strings.Join(contact.Offers, ", "))
	}
	if contact.Notes != "" {
		_, _ = fmt.Fprintf(out, "  notes: %s\n", contact.Notes)
	}

	_, _ = fmt.Fprintf(out, "\nHistory (%d interactions):\n", len(interactions))
	printGroupedInteractions(out, interactions)
	return nil
}

// AddContactCommand creates a new contact.
func AddContactCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	first := fs.String("first-name", "", "First name (required)")
	last := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	role := fs.String("role", "", "Role or title")
	notes := fs.String("notes", "", "Free-form notes")
	tags := fs.String("tags", "", "Comma-separated tags")
	sectors := fs.String("sectors", "", "Comma-separated sectors")
	needs := fs.String("needs", "", "Comma-separated needs")
	offers := fs.String("offers", "", "Comma-separated offers")
	strength := fs.Int("strength", 0, "Relationship strength 0-5")
	_ = fs.Parse(args)

	if strings.TrimSpace(*first) == "" {
		return fmt.Errorf("--first-name is required")
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	contact, err := app.Client.CreateContact(context.Background(), api.ContactRequest{
		FirstName:            *first,
		LastName:             *last,
		Email:                *email,
		Phone:                *phone,
		Company:              *company,
		Role:                 *role,
		Notes:                *notes,
		Tags:                 splitList(*tags),
		Sectors:              splitList(*sectors),
		Needs:                splitList(*needs),
		Offers:               splitList(*offers),
		RelationshipStrength: *strength,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.out(), "Added contact: %s (%s)\n", contact.DisplayName(), contact.ID)
	return nil
}

// UpdateContactCommand updates an existing contact. The current state is
// fetched first so unset flags keep their existing values.
func UpdateContactCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	idStr := fs.String("id", "", "Contact id (required)")
	first := fs.String("first-name", "", "First name")
	last := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Email address")
	company := fs.String("company", "", "Company name")
	notes := fs.String("notes", "", "Free-form notes")
	strength := fs.Int("strength", -1, "Relationship strength 0-5")
	archive := fs.Bool("archive", false, "Archive this contact")
	unarchive := fs.Bool("unarchive", false, "Restore this contact from the archive")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	id, err := uuid.Parse(*idStr)
	if err != nil {
		return fmt.Errorf("--id must be a valid contact id")
	}
	ctx := context.Background()

	current, err := app.Client.GetContact(ctx, id)
	if err != nil {
		return err
	}

	req := api.ContactRequest{
		FirstName:            pick(*first, current.FirstName),
		LastName:             pick(*last, current.LastName),
		Email:                pick(*email, current.Email),
		Phone:                current.Phone,
		Company:              pick(*company, current.Company),
		Role:                 current.Role,
		Notes:                pick(*notes, current.Notes),
		Tags:                 current.Tags,
		Sectors:              current.Sectors,
		Needs:                current.Needs,
		Offers:               current.Offers,
		RelationshipStrength: current.RelationshipStrength,
	}
	if *strength >= 0 {
		req.RelationshipStrength = *strength
	}
	if *archive {
		v := true
		req.IsArchived = &v
	}
	if *unarchive {
		v := false
		req.IsArchived = &v
	}

	updated, err := app.Client.UpdateContact(ctx, id, req)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.out(), "Updated contact: %s\n", updated.DisplayName())
	return nil
}

// DeleteContactCommand removes a contact.
func DeleteContactCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	idStr := fs.String("id", "", "Contact id (required)")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	id, err := uuid.Parse(*idStr)
	if err != nil {
		return fmt.Errorf("--id must be a valid contact id")
	}
	if err := app.Client.DeleteContact(context.Background(), id); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(app.out(), "Contact deleted")
	return nil
}

// ExportContactsCommand writes the filtered contact set to a dated file.
func ExportContactsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	query, minStrength, sector, bucket, sortMode, preset := contactFilterFlags(fs)
	format := fs.String("format", "csv", "Export format: csv or json")
	dir := fs.String("dir", ".", "Directory to write the export into")
	_ = fs.Parse(args)

	if err := app.requireAuth(); err != nil {
		return err
	}
	contacts, err := app.Client.AllContacts(context.Background())
	if err != nil {
		return err
	}
	f, err := app.buildFilter(*query, *minStrength, *sector, *bucket, *preset)
	if err != nil {
		return err
	}
	contacts = f.Apply(contacts, app.now())
	engine.Sort(contacts, engine.SortMode(*sortMode))

	var name string
	var payload []byte
	switch *format {
	case "csv":
		name = engine.CSVFileName(app.now())
		payload = []byte(engine.ExportCSV(contacts))
	case "json":
		name = engine.JSONFileName(app.now())
		payload, err = engine.ExportJSON(contacts)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format %q", *format)
	}

	path := filepath.Join(*dir, name)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	_, _ = fmt.Fprintf(app.out(), "Exported %d contacts to %s\n", len(contacts), path)
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func pick(flagVal, current string) string {
	if flagVal != "" {
		return flagVal
	}
	return current
}
