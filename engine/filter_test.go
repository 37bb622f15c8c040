// ABOUTME: Tests for contact filtering and sorting policies
// ABOUTME: Exercises AND-combination, bucket boundaries, and sort stability
package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kindredhq/kindred/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func contactedDaysAgo(days int) *time.Time {
	t := testNow.AddDate(0, 0, -days)
	return &t
}

func sampleContacts() []models.Contact {
	return []models.Contact{
		{
			ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace",
			Email: "ada@analytical.dev", Company: "Analytical Engines",
			Tags: []string{"mentor", "maths"}, Sectors: []string{"technology"},
			RelationshipStrength: 5, LastContactedAt: contactedDaysAgo(10),
		},
		{
			ID: uuid.New(), FirstName: "Grace", LastName: "Hopper",
			Email: "grace@navy.mil", Company: "US Navy",
			Sectors:              []string{"government", "technology"},
			RelationshipStrength: 4, LastContactedAt: contactedDaysAgo(75),
		},
		{
			ID: uuid.New(), FirstName: "Alan", LastName: "Turing",
			Email: "alan@bletchley.uk", Notes: "met at the cryptography conference",
			Sectors:              []string{"academia"},
			RelationshipStrength: 2, LastContactedAt: contactedDaysAgo(120),
		},
		{
			ID: uuid.New(), FirstName: "Margaret", LastName: "Hamilton",
			Email: "margaret@mit.edu", Company: "MIT",
			Sectors:              []string{"aerospace"},
			RelationshipStrength: 3, // never contacted
		},
	}
}

func names(contacts []models.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.FirstName
	}
	return out
}

func TestFreeTextMatchesAnyField(t *testing.T) {
	contacts := sampleContacts()

	assert.Equal(t, []string{"Ada"}, names(Filter{Query: "ANALYTICAL"}.Apply(contacts, testNow)))
	assert.Equal(t, []string{"Grace"}, names(Filter{Query: "navy"}.Apply(contacts, testNow)))
	assert.Equal(t, []string{"Alan"}, names(Filter{Query: "cryptography"}.Apply(contacts, testNow)))
	assert.Equal(t, []string{"Ada"}, names(Filter{Query: "mentor"}.Apply(contacts, testNow)))
	assert.Empty(t, Filter{Query: "nobody"}.Apply(contacts, testNow))
}

func TestMinStrengthZeroIsNoFilter(t *testing.T) {
	contacts := sampleContacts()
	assert.Len(t, Filter{MinStrength: 0}.Apply(contacts, testNow), 4)
	assert.Equal(t, []string{"Ada", "Grace"}, names(Filter{MinStrength: 4}.Apply(contacts, testNow)))
}

func TestSectorIsExactMembership(t *testing.T) {
	contacts := sampleContacts()
	assert.Equal(t, []string{"Ada", "Grace"}, names(Filter{Sector: "technology"}.Apply(contacts, testNow)))
	assert.Empty(t, Filter{Sector: "tech"}.Apply(contacts, testNow))
}

func TestLastContactBuckets(t *testing.T) {
	contacts := sampleContacts()

	assert.Equal(t, []string{"Ada"}, names(Filter{LastContactBucket: Bucket30}.Apply(contacts, testNow)))
	assert.Equal(t, []string{"Ada"}, names(Filter{LastContactBucket: Bucket60}.Apply(contacts, testNow)))
	assert.Equal(t, []string{"Ada", "Grace"}, names(Filter{LastContactBucket: Bucket90}.Apply(contacts, testNow)))
	// Never-contacted counts as 999 days, so Margaret is overdue.
	assert.Equal(t, []string{"Alan", "Margaret"}, names(Filter{LastContactBucket: BucketOverdue}.Apply(contacts, testNow)))
}

func TestBucket90BoundaryIsComplementary(t *testing.T) {
	exact := models.Contact{ID: uuid.New(), FirstName: "Edge", LastContactedAt: contactedDaysAgo(90)}
	in90 := Filter{LastContactBucket: Bucket90}.Matches(exact, testNow)
	inOverdue := Filter{LastContactBucket: BucketOverdue}.Matches(exact, testNow)

	assert.True(t, in90, "exactly 90 days belongs to the \"90\" bucket")
	assert.False(t, inOverdue, "a contact must never appear in both buckets")
}

func TestPredicatesAreANDCombined(t *testing.T) {
	contacts := sampleContacts()
	f := Filter{Query: "technology", MinStrength: 5, Sector: "technology", LastContactBucket: Bucket30}

	got := f.Apply(contacts, testNow)
	assert.Equal(t, []string{"Ada"}, names(got))

	// Same subset regardless of which predicate is nominally "first": apply
	// each in isolation and intersect.
	byQuery := Filter{Query: f.Query}.Apply(contacts, testNow)
	byRest := Filter{MinStrength: f.MinStrength, Sector: f.Sector, LastContactBucket: f.LastContactBucket}.Apply(byQuery, testNow)
	assert.Equal(t, names(got), names(byRest))
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	contacts := []models.Contact{
		{FirstName: "zoe"},
		{FirstName: "Ada"},
		{FirstName: "grace"},
	}
	Sort(contacts, SortName)
	assert.Equal(t, []string{"Ada", "grace", "zoe"}, names(contacts))
}

func TestSortByRecent(t *testing.T) {
	contacts := []models.Contact{
		{FirstName: "Old", UpdatedAt: testNow.AddDate(0, 0, -30)},
		{FirstName: "New", UpdatedAt: testNow},
		{FirstName: "Mid", UpdatedAt: testNow.AddDate(0, 0, -5)},
	}
	Sort(contacts, SortRecent)
	assert.Equal(t, []string{"New", "Mid", "Old"}, names(contacts))
}

func TestSortByStrengthIsStableDescending(t *testing.T) {
	contacts := []models.Contact{
		{FirstName: "A", RelationshipStrength: 3},
		{FirstName: "B", RelationshipStrength: 5},
		{FirstName: "C", RelationshipStrength: 3},
		{FirstName: "D"},
		{FirstName: "E", RelationshipStrength: 3},
	}
	Sort(contacts, SortStrength)
	assert.Equal(t, []string{"B", "A", "C", "E", "D"}, names(contacts))
}
