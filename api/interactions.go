// ABOUTME: Interaction endpoints: list, list-by-contact, create, update, delete
// ABOUTME: The server keeps the list sorted most-recent-first
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kindredhq/kindred/models"
)

// InteractionRequest is the payload for logging or updating an interaction.
type InteractionRequest struct {
	ContactID   uuid.UUID           `json:"contact_id"`
	Type        string              `json:"type"`
	Date        time.Time           `json:"date"`
	Sentiment   string              `json:"sentiment,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	KeyTopics   []string            `json:"key_topics,omitempty"`
	ActionItems []models.ActionItem `json:"action_items,omitempty"`
}

// ListInteractions retrieves every interaction for the account.
func (c *Client) ListInteractions(ctx context.Context) ([]models.Interaction, error) {
	return call[[]models.Interaction](ctx, c, http.MethodGet, "/api/interactions", nil, "Failed to load interactions")
}

// ListContactInteractions retrieves the interaction history for one contact.
func (c *Client) ListContactInteractions(ctx context.Context, contactID uuid.UUID) ([]models.Interaction, error) {
	if err := validateID(contactID, "contact id"); err != nil {
		return nil, err
	}
	return call[[]models.Interaction](ctx, c, http.MethodGet, "/api/contacts/"+contactID.String()+"/interactions", nil, "Failed to load interactions")
}

// CreateInteraction logs a new interaction.
func (c *Client) CreateInteraction(ctx context.Context, req InteractionRequest) (models.Interaction, error) {
	if err := validateID(req.ContactID, "contact id"); err != nil {
		return models.Interaction{}, err
	}
	return call[models.Interaction](ctx, c, http.MethodPost, "/api/interactions", req, "Failed to log interaction")
}

// UpdateInteraction updates an existing interaction.
func (c *Client) UpdateInteraction(ctx context.Context, id uuid.UUID, req InteractionRequest) (models.Interaction, error) {
	if err := validateID(id, "interaction id"); err != nil {
		return models.Interaction{}, err
	}
	return call[models.Interaction](ctx, c, http.MethodPut, "/api/interactions/"+id.String(), req, "Failed to update interaction")
}

// DeleteInteraction removes an interaction.
func (c *Client) DeleteInteraction(ctx context.Context, id uuid.UUID) error {
	if err := validateID(id, "interaction id"); err != nil {
		return err
	}
	_, err := call[struct{}](ctx, c, http.MethodDelete, "/api/interactions/"+id.String(), nil, "Failed to delete interaction")
	return err
}
