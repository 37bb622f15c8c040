// ABOUTME: Analytics endpoints for dashboard metrics and at-risk contacts
// ABOUTME: Payloads are pre-aggregated server-side and rendered verbatim
package api

import (
	"context"
	"net/http"

	"github.com/kindredhq/kindred/models"
)

// Dashboard retrieves the pre-aggregated network health metrics.
func (c *Client) Dashboard(ctx context.Context) (models.DashboardMetrics, error) {
	return call[models.DashboardMetrics](ctx, c, http.MethodGet, "/api/analytics/dashboard", nil, "Failed to load dashboard")
}

// AtRisk retrieves the server's list of relationships at risk of lapsing.
func (c *Client) AtRisk(ctx context.Context) ([]models.AtRiskContact, error) {
	return call[[]models.AtRiskContact](ctx, c, http.MethodGet, "/api/analytics/at-risk", nil, "Failed to load at-risk contacts")
}
