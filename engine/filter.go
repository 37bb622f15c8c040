// ABOUTME: Client-side contact filtering over the in-memory contact list
// ABOUTME: Free-text search, strength/sector filters, last-contact buckets
package engine

import (
	"strings"
	"time"

	"github.com/kindredhq/kindred/models"
)

// Last-contact bucket values. "90" keeps contacts reached within 90 days;
// "90+" keeps the complement (strictly more than 90 days of silence).
const (
	BucketAny     = ""
	Bucket30      = "30"
	Bucket60      = "60"
	Bucket90      = "90"
	BucketOverdue = "90+"
	overdueCutoff = 90
)

// Filter is the filter configuration applied to a contact list. A zero
// value matches everything.
type Filter struct {
	Query             string
	MinStrength       int
	Sector            string
	LastContactBucket string
}

// WithPreset overwrites the three preset-backed parameters, leaving the
// free-text query (and any sort order held elsewhere) untouched.
func (f Filter) WithPreset(p models.FilterPreset) Filter {
	f.MinStrength = p.MinStrength
	f.Sector = p.Sector
	f.LastContactBucket = p.LastContactBucket
	return f
}

// Apply returns the subset of contacts satisfying every active predicate.
// Predicates are AND-combined, so the result is independent of evaluation
// order.
func (f Filter) Apply(contacts []models.Contact, now time.Time) []models.Contact {
	var out []models.Contact
	for _, c := range contacts {
		if f.Matches(c, now) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether a single contact passes the filter.
func (f Filter) Matches(c models.Contact, now time.Time) bool {
	if !f.matchesQuery(c) {
		return false
	}
	if f.MinStrength > 0 && c.RelationshipStrength < f.MinStrength {
		return false
	}
	if f.Sector != "" && !contains(c.Sectors, f.Sector) {
		return false
	}
	return f.matchesBucket(c, now)
}

func (f Filter) matchesQuery(c models.Contact) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	fields := []string{c.FirstName, c.LastName, c.Email, c.Company, c.Notes}
	fields = append(fields, c.Tags...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f Filter) matchesBucket(c models.Contact, now time.Time) bool {
	days := c.DaysSinceContact(now)
	switch f.LastContactBucket {
	case BucketAny:
		return true
	case Bucket30:
		return days <= 30
	case Bucket60:
		return days <= 60
	case Bucket90:
		return days <= overdueCutoff
	case BucketOverdue:
		return days > overdueCutoff
	default:
		// Unknown bucket values filter nothing.
		return true
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
