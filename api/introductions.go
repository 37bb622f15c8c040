// ABOUTME: Introduction endpoints: list, suggested, create, update
// ABOUTME: Read-mostly in this client; suggestions carry an optional match score
package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/kindredhq/kindred/models"
)

// IntroductionRequest is the payload for requesting or updating an
// introduction between two contacts.
type IntroductionRequest struct {
	SourceContactID uuid.UUID `json:"source_contact_id"`
	TargetContactID uuid.UUID `json:"target_contact_id"`
	Status          string    `json:"status,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	Context         string    `json:"context,omitempty"`
}

// ListIntroductions retrieves all introductions for the account.
func (c *Client) ListIntroductions(ctx context.Context) ([]models.Introduction, error) {
	return call[[]models.Introduction](ctx, c, http.MethodGet, "/api/introductions", nil, "Failed to load introductions")
}

// SuggestedIntroductions retrieves server-computed introduction suggestions.
func (c *Client) SuggestedIntroductions(ctx context.Context) ([]models.Introduction, error) {
	return call[[]models.Introduction](ctx, c, http.MethodGet, "/api/introductions/suggested", nil, "Failed to load suggestions")
}

// CreateIntroduction requests an introduction between two contacts.
func (c *Client) CreateIntroduction(ctx context.Context, req IntroductionRequest) (models.Introduction, error) {
	if err := validateID(req.SourceContactID, "source contact id"); err != nil {
		return models.Introduction{}, err
	}
	if err := validateID(req.TargetContactID, "target contact id"); err != nil {
		return models.Introduction{}, err
	}
	return call[models.Introduction](ctx, c, http.MethodPost, "/api/introductions", req, "Failed to create introduction")
}

// UpdateIntroduction updates an introduction's status or context.
func (c *Client) UpdateIntroduction(ctx context.Context, id uuid.UUID, req IntroductionRequest) (models.Introduction, error) {
	if err := validateID(id, "introduction id"); err != nil {
		return models.Introduction{}, err
	}
	return call[models.Introduction](ctx, c, http.MethodPut, "/api/introductions/"+id.String(), req, "Failed to update introduction")
}
