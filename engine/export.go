// ABOUTME: CSV and JSON export of a filtered contact set
// ABOUTME: CSV wraps every field in double quotes, doubling embedded quotes
package engine

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kindredhq/kindred/models"
)

// Fixed CSV column order. The JSON export carries the same field set.
var exportColumns = []string{
	"first_name", "last_name", "email", "phone", "company", "role",
	"tags", "sectors", "relationship_strength", "last_contacted_at", "notes",
}

// CSVFileName returns contacts-<YYYY-MM-DD>.csv for the given day.
func CSVFileName(now time.Time) string {
	return fmt.Sprintf("contacts-%s.csv", now.Format("2006-01-02"))
}

// JSONFileName returns contacts-<YYYY-MM-DD>.json for the given day.
func JSONFileName(now time.Time) string {
	return fmt.Sprintf("contacts-%s.json", now.Format("2006-01-02"))
}

// ExportCSV serializes the contacts, one row per contact, header first.
// Every value is quoted and embedded quotes are doubled, so any standard
// CSV parser recovers the original strings.
func ExportCSV(contacts []models.Contact) string {
	var b strings.Builder
	writeRow(&b, exportColumns)
	for _, c := range contacts {
		writeRow(&b, exportRow(c))
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func exportRow(c models.Contact) []string {
	last := ""
	if c.LastContactedAt != nil {
		last = c.LastContactedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Company,
		c.Role,
		strings.Join(c.Tags, "; "),
		strings.Join(c.Sectors, "; "),
		fmt.Sprint(c.RelationshipStrength),
		last,
		c.Notes,
	}
}

type exportObject struct {
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	Email                string     `json:"email"`
	Phone                string     `json:"phone"`
	Company              string     `json:"company"`
	Role                 string     `json:"role"`
	Tags                 []string   `json:"tags"`
	Sectors              []string   `json:"sectors"`
	RelationshipStrength int        `json:"relationship_strength"`
	LastContactedAt      *time.Time `json:"last_contacted_at"`
	Notes                string     `json:"notes"`
}

// ExportJSON serializes the contacts as an array of plain objects with a
// fixed field set.
func ExportJSON(contacts []models.Contact) ([]byte, error) {
	out := make([]exportObject, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, exportObject{
			FirstName:            c.FirstName,
			LastName:             c.LastName,
			Email:                c.Email,
			Phone:                c.Phone,
			Company:              c.Company,
			Role:                 c.Role,
			Tags:                 c.Tags,
			Sectors:              c.Sectors,
			RelationshipStrength: c.RelationshipStrength,
			LastContactedAt:      c.LastContactedAt,
			Notes:                c.Notes,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
