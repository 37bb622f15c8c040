// ABOUTME: Contact endpoints: paginated list, get-all, CRUD
// ABOUTME: All contact state is owned and mutated by the remote API
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/kindredhq/kindred/models"
)

// ContactRequest is the payload for creating or updating a contact.
type ContactRequest struct {
	FirstName            string   `json:"first_name"`
	LastName             string   `json:"last_name,omitempty"`
	Email                string   `json:"email,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	Company              string   `json:"company,omitempty"`
	Role                 string   `json:"role,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
	Sectors              []string `json:"sectors,omitempty"`
	Needs                []string `json:"needs,omitempty"`
	Offers               []string `json:"offers,omitempty"`
	RelationshipStrength int      `json:"relationship_strength"`
	IsArchived           *bool    `json:"is_archived,omitempty"`
}

// ListContacts retrieves one page of contacts. Page numbers are 1-based.
func (c *Client) ListContacts(ctx context.Context, page, pageSize int) (models.Page[models.Contact], error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("pageSize", fmt.Sprint(pageSize))
	return call[models.Page[models.Contact]](ctx, c, http.MethodGet, "/api/contacts?"+q.Encode(), nil, "Failed to load contacts")
}

// AllContacts retrieves the full unpaginated contact list, which the
// filter engine and categorizer operate on locally.
func (c *Client) AllContacts(ctx context.Context) ([]models.Contact, error) {
	return call[[]models.Contact](ctx, c, http.MethodGet, "/api/contacts/all", nil, "Failed to load contacts")
}

// GetContact retrieves a single contact by id.
func (c *Client) GetContact(ctx context.Context, id uuid.UUID) (models.Contact, error) {
	if err := validateID(id, "contact id"); err != nil {
		return models.Contact{}, err
	}
	return call[models.Contact](ctx, c, http.MethodGet, "/api/contacts/"+id.String(), nil, "Failed to load contact")
}

// CreateContact creates a new contact.
func (c *Client) CreateContact(ctx context.Context, req ContactRequest) (models.Contact, error) {
	return call[models.Contact](ctx, c, http.MethodPost, "/api/contacts", req, "Failed to create contact")
}

// UpdateContact updates an existing contact.
func (c *Client) UpdateContact(ctx context.Context, id uuid.UUID, req ContactRequest) (models.Contact, error) {
	if err := validateID(id, "contact id"); err != nil {
		return models.Contact{}, err
	}
	return call[models.Contact](ctx, c, http.MethodPut, "/api/contacts/"+id.String(), req, "Failed to update contact")
}

// DeleteContact removes a contact.
func (c *Client) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if err := validateID(id, "contact id"); err != nil {
		return err
	}
	_, err := call[struct{}](ctx, c, http.MethodDelete, "/api/contacts/"+id.String(), nil, "Failed to delete contact")
	return err
}

// validateID rejects zero-value ids before any network call is made.
func validateID(id uuid.UUID, field string) error {
	if id == uuid.Nil {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
