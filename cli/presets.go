// ABOUTME: Filter preset CLI commands
// ABOUTME: Saves, lists, and deletes named filter snapshots kept locally
package cli

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/kindredhq/kindred/engine"
)

// ListPresetsCommand prints the saved presets with their indexes.
func ListPresetsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	_ = fs.Parse(args)

	presets, err := app.Presets.List()
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		_, _ = fmt.Fprintln(app.out(), "No saved presets")
		return nil
	}

	w := tabwriter.NewWriter(app.out(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "INDEX\tNAME\tMIN STRENGTH\tSECTOR\tLAST CONTACT")
	_, _ = fmt.Fprintln(w, "-----\t----\t------------\t------\t------------")
	for i, p := range presets {
		sector, bucket := p.Sector, p.LastContactBucket
		if sector == "" {
			sector = "—"
		}
		if bucket == "" {
			bucket = "—"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", i, p.Name, p.MinStrength, sector, bucket)
	}
	return w.Flush()
}

// SavePresetCommand captures the given filter parameters under a name.
// The free-text query is deliberately not part of a preset.
func SavePresetCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	name := fs.String("name", "", "Preset name (required, need not be unique)")
	minStrength := fs.Int("min-strength", 0, "Minimum relationship strength (0 = no filter)")
	sector := fs.String("sector", "", "Exact sector filter")
	bucket := fs.String("last-contact", "", "Last-contact bucket: 30, 60, 90, or 90+")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	preset, err := app.Presets.Save(*name, engine.Filter{
		MinStrength:       *minStrength,
		Sector:            *sector,
		LastContactBucket: *bucket,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.out(), "Saved preset %q\n", preset.Name)
	return nil
}

// DeletePresetCommand removes the preset at the given index.
func DeletePresetCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	index := fs.Int("index", -1, "Index of the preset to delete (required)")
	_ = fs.Parse(args)

	if *index < 0 {
		return fmt.Errorf("--index is required")
	}
	if err := app.Presets.Delete(*index); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(app.out(), "Deleted preset %d\n", *index)
	return nil
}
