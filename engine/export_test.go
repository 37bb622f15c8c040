// ABOUTME: Tests for CSV/JSON export of contact sets
// ABOUTME: Verifies quote escaping round-trips through a standard CSV parser
package engine

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredhq/kindred/models"
)

func TestCSVQuoteRoundTrip(t *testing.T) {
	contacts := []models.Contact{{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Notes:     `He said "hi"`,
	}}

	out := ExportCSV(contacts)
	assert.Contains(t, out, `"He said ""hi"""`)

	r := csv.NewReader(strings.NewReader(out))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header, row := rows[0], rows[1]
	idx := -1
	for i, col := range header {
		if col == "notes" {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, `He said "hi"`, row[idx])
}

func TestCSVQuotesEveryField(t *testing.T) {
	out := ExportCSV([]models.Contact{{FirstName: "Ada", RelationshipStrength: 5}})
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		for _, field := range strings.Split(line, `","`) {
			assert.True(t, strings.HasPrefix(field, `"`) || strings.HasSuffix(field, `"`) ||
				!strings.Contains(field, `,`), "field %q must be quoted", field)
		}
		assert.True(t, strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`))
	}
}

func TestJSONExportFixedFields(t *testing.T) {
	last := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	contacts := []models.Contact{{
		FirstName:            "Grace",
		LastName:             "Hopper",
		Company:              "US Navy",
		RelationshipStrength: 4,
		LastContactedAt:      &last,
		// Server-side fields like id and owner_id must not leak into the export.
	}}

	raw, err := ExportJSON(contacts)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)

	obj := decoded[0]
	assert.Equal(t, "Grace", obj["first_name"])
	assert.Equal(t, float64(4), obj["relationship_strength"])
	assert.NotContains(t, obj, "id")
	assert.NotContains(t, obj, "is_archived")
}

func TestExportFileNames(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "contacts-2025-06-15.csv", CSVFileName(now))
	assert.Equal(t, "contacts-2025-06-15.json", JSONFileName(now))
}

func TestJSONExportEmptySetIsEmptyArray(t *testing.T) {
	raw, err := ExportJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
