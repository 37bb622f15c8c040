// ABOUTME: Tests for relationship-OS data models
// ABOUTME: Validates display helpers, strength clamping, and days-since math
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestContactDisplayName(t *testing.T) {
	c := Contact{FirstName: "Ada", LastName: "Lovelace"}
	if got := c.DisplayName(); got != "Ada Lovelace" {
		t.Errorf("expected 'Ada Lovelace', got %q", got)
	}

	c = Contact{FirstName: "Prince"}
	if got := c.DisplayName(); got != "Prince" {
		t.Errorf("expected 'Prince', got %q", got)
	}
}

func TestDaysSinceContact(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -45)

	c := Contact{ID: uuid.New(), LastContactedAt: &last}
	if got := c.DaysSinceContact(now); got != 45 {
		t.Errorf("expected 45 days, got %d", got)
	}
}

func TestDaysSinceContactNeverContacted(t *testing.T) {
	c := Contact{ID: uuid.New()}
	if got := c.DaysSinceContact(time.Now()); got != NeverContactedDays {
		t.Errorf("expected %d for never-contacted, got %d", NeverContactedDays, got)
	}
}

func TestClampStrength(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{3, 3},
		{5, 5},
		{9, 5},
	}
	for _, tc := range cases {
		if got := ClampStrength(tc.in); got != tc.want {
			t.Errorf("ClampStrength(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestIntroductionDisplayScore(t *testing.T) {
	i := Introduction{Status: IntroSuggested}
	if got := i.DisplayScore(); got != DefaultMatchScore {
		t.Errorf("expected default score %d, got %d", DefaultMatchScore, got)
	}

	score := 92
	i.MatchScore = &score
	if got := i.DisplayScore(); got != 92 {
		t.Errorf("expected 92, got %d", got)
	}
}
