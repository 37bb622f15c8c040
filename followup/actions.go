// ABOUTME: Aggregation of outstanding action items across interactions
// ABOUTME: Sorts by due date with dated items ahead of undated ones
package followup

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kindredhq/kindred/models"
)

// PendingAction is an incomplete action item annotated with its owning
// contact's display name.
type PendingAction struct {
	ContactID   uuid.UUID
	ContactName string
	Text        string
	Owner       string
	DueDate     *time.Time
}

// PendingActions collects every incomplete action item across the given
// interactions. Items with a due date sort ascending by date and come
// before undated items; undated items keep their input order relative to
// each other.
func PendingActions(interactions []models.Interaction, contacts []models.Contact) []PendingAction {
	nameByID := make(map[uuid.UUID]string, len(contacts))
	for _, c := range contacts {
		nameByID[c.ID] = c.DisplayName()
	}

	var out []PendingAction
	for _, in := range interactions {
		for _, item := range in.ActionItems {
			if item.Completed {
				continue
			}
			out = append(out, PendingAction{
				ContactID:   in.ContactID,
				ContactName: nameByID[in.ContactID],
				Text:        item.Text,
				Owner:       item.Owner,
				DueDate:     item.DueDate,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DueDate, out[j].DueDate
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
	return out
}
