// ABOUTME: Follow-up urgency categorization driven by relationship strength
// ABOUTME: Buckets non-archived contacts into urgent, due-soon, and on-track
package followup

import (
	"sort"
	"time"

	"github.com/kindredhq/kindred/models"
)

// Threshold returns the follow-up cadence in days for a relationship
// strength: closer relationships are flagged sooner.
func Threshold(strength int) int {
	switch {
	case strength >= 5:
		return 45
	case strength >= 4:
		return 60
	case strength >= 3:
		return 75
	default:
		return 90
	}
}

// Entry pairs a contact with its computed follow-up numbers.
type Entry struct {
	Contact   models.Contact
	DaysSince int
	Threshold int
}

// Buckets holds the categorized contacts, each bucket sorted most overdue
// first.
type Buckets struct {
	Urgent  []Entry
	DueSoon []Entry
	OnTrack []Entry
}

// Categorize buckets every non-archived contact by follow-up urgency.
// Archived contacts are excluded entirely. The urgent rule keeps the
// literal OR: 90 days of silence is always urgent, and so is exceeding
// the strength threshold by 30 days, even though the second branch is
// partly redundant for low-strength contacts.
func Categorize(contacts []models.Contact, now time.Time) Buckets {
	var b Buckets
	for _, c := range contacts {
		if c.IsArchived {
			continue
		}
		e := Entry{
			Contact:   c,
			DaysSince: c.DaysSinceContact(now),
			Threshold: Threshold(c.RelationshipStrength),
		}
		switch {
		case e.DaysSince >= 90 || e.DaysSince >= e.Threshold+30:
			b.Urgent = append(b.Urgent, e)
		case e.DaysSince >= e.Threshold:
			b.DueSoon = append(b.DueSoon, e)
		default:
			b.OnTrack = append(b.OnTrack, e)
		}
	}
	for _, bucket := range [][]Entry{b.Urgent, b.DueSoon, b.OnTrack} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].DaysSince > bucket[j].DaysSince
		})
	}
	return b
}
