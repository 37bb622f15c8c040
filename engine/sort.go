// ABOUTME: Sorting policies for contact lists
// ABOUTME: By name, by recency of update, or by relationship strength
package engine

import (
	"sort"
	"strings"

	"github.com/kindredhq/kindred/models"
)

// SortMode selects a contact ordering.
type SortMode string

const (
	SortName     SortMode = "name"
	SortRecent   SortMode = "recent"
	SortStrength SortMode = "strength"
)

// Sort orders contacts in place. All three modes are stable: ties keep
// their input order.
func Sort(contacts []models.Contact, mode SortMode) {
	switch mode {
	case SortName:
		sort.SliceStable(contacts, func(i, j int) bool {
			return strings.ToLower(contacts[i].DisplayName()) < strings.ToLower(contacts[j].DisplayName())
		})
	case SortRecent:
		sort.SliceStable(contacts, func(i, j int) bool {
			return contacts[i].UpdatedAt.After(contacts[j].UpdatedAt)
		})
	case SortStrength:
		sort.SliceStable(contacts, func(i, j int) bool {
			return contacts[i].RelationshipStrength > contacts[j].RelationshipStrength
		})
	}
}
