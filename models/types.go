// ABOUTME: Data models for relationship-OS entities
// ABOUTME: Defines Contact, Interaction, Introduction, presets and auth state
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID                   uuid.UUID  `json:"id"`
	OwnerID              uuid.UUID  `json:"owner_id"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name,omitempty"`
	Email                string     `json:"email,omitempty"`
	Phone                string     `json:"phone,omitempty"`
	Company              string     `json:"company,omitempty"`
	Role                 string     `json:"role,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	Sectors              []string   `json:"sectors,omitempty"`
	Needs                []string   `json:"needs,omitempty"`
	Offers               []string   `json:"offers,omitempty"`
	RelationshipStrength int        `json:"relationship_strength"`
	LastContactedAt      *time.Time `json:"last_contacted_at,omitempty"`
	IsArchived           bool       `json:"is_archived"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// DisplayName returns "First Last", tolerating a missing last name.
func (c Contact) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// NeverContactedDays is the days-since value assigned to contacts that
// have no recorded lastContactedAt.
const NeverContactedDays = 999

// DaysSinceContact returns whole days elapsed since the last logged
// contact, or NeverContactedDays when none exists.
func (c Contact) DaysSinceContact(now time.Time) int {
	if c.LastContactedAt == nil {
		return NeverContactedDays
	}
	return int(now.Sub(*c.LastContactedAt) / (24 * time.Hour))
}

// ClampStrength bounds a relationship strength to [0,5] for rendering.
// Out-of-range values coming back from the server are tolerated, not
// rejected.
func ClampStrength(strength int) int {
	if strength < 0 {
		return 0
	}
	if strength > 5 {
		return 5
	}
	return strength
}

// InteractionType constants.
const (
	InteractionMeeting = "MEETING"
	InteractionCall    = "CALL"
	InteractionEmail   = "EMAIL"
	InteractionMessage = "MESSAGE"
	InteractionSocial  = "SOCIAL"
	InteractionEvent   = "EVENT"
	InteractionOther   = "OTHER"
)

// Sentiment constants.
const (
	SentimentPositive = "POSITIVE"
	SentimentNeutral  = "NEUTRAL"
	SentimentNegative = "NEGATIVE"
)

// ActionItem owner constants.
const (
	OwnerMe   = "me"
	OwnerThem = "them"
	OwnerBoth = "both"
)

type ActionItem struct {
	Text      string     `json:"text"`
	Owner     string     `json:"owner"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
}

type Interaction struct {
	ID          uuid.UUID    `json:"id"`
	ContactID   uuid.UUID    `json:"contact_id"`
	Type        string       `json:"type"`
	Date        time.Time    `json:"date"`
	Sentiment   string       `json:"sentiment,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	KeyTopics   []string     `json:"key_topics,omitempty"`
	ActionItems []ActionItem `json:"action_items,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Introduction status constants.
const (
	IntroSuggested = "SUGGESTED"
	IntroPending   = "PENDING"
	IntroMade      = "MADE"
	IntroCompleted = "COMPLETED"
	IntroDeclined  = "DECLINED"
)

// DefaultMatchScore is displayed when the server omits a match score.
const DefaultMatchScore = 85

type Introduction struct {
	ID              uuid.UUID `json:"id"`
	SourceContactID uuid.UUID `json:"source_contact_id"`
	TargetContactID uuid.UUID `json:"target_contact_id"`
	Status          string    `json:"status"`
	MatchScore      *int      `json:"match_score,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	Context         string    `json:"context,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DisplayScore returns the match score to render, falling back to
// DefaultMatchScore when the server did not provide one.
func (i Introduction) DisplayScore() int {
	if i.MatchScore == nil {
		return DefaultMatchScore
	}
	return *i.MatchScore
}

// FilterPreset is client-local only; it has no server-side representation.
// Names are not required to be unique and deletion is by positional index.
type FilterPreset struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	MinStrength       int       `json:"min_strength"`
	Sector            string    `json:"sector,omitempty"`
	LastContactBucket string    `json:"last_contact_bucket,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthState is what gets persisted to local storage between runs. Token
// presence is the sole authorization gate for protected views.
type AuthState struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Page wraps a paginated API result.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// DashboardMetrics is rendered verbatim; the client does no aggregation.
type DashboardMetrics struct {
	TotalContacts         int            `json:"total_contacts"`
	ActiveContacts        int            `json:"active_contacts"`
	TotalInteractions     int            `json:"total_interactions"`
	InteractionsThisMonth int            `json:"interactions_this_month"`
	AverageStrength       float64        `json:"average_strength"`
	IntroductionsMade     int            `json:"introductions_made"`
	NetworkHealthScore    float64        `json:"network_health_score"`
	StrengthDistribution  map[string]int `json:"strength_distribution,omitempty"`
}

// AtRiskContact is a server-computed row from the at-risk analytics view.
type AtRiskContact struct {
	Contact          Contact `json:"contact"`
	DaysSinceContact int     `json:"days_since_contact"`
	Threshold        int     `json:"threshold"`
}
