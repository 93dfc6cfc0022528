package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sead-eventos/backend/pkg/schema"
)

// SubmitForm submits the events of a unit.
func (c *Client) SubmitForm(ctx context.Context, submission schema.FormSubmission) Result[schema.SubmissionResponse] {
	return Request[schema.SubmissionResponse](ctx, c, http.MethodPost, "/eventos", submission)
}

// Events returns all events.
func (c *Client) Events(ctx context.Context) Result[[]schema.Event] {
	return Request[[]schema.Event](ctx, c, http.MethodGet, "/eventos", nil)
}

// EventByID returns a single event.
func (c *Client) EventByID(ctx context.Context, id string) Result[schema.Event] {
	return Request[schema.Event](ctx, c, http.MethodGet, "/eventos/"+url.PathEscape(id), nil)
}

// EventsByMonth returns the events planned for a month label.
func (c *Client) EventsByMonth(ctx context.Context, month string) Result[[]schema.Event] {
	return Request[[]schema.Event](ctx, c, http.MethodGet, "/eventos/mes/"+url.PathEscape(month), nil)
}

// Stats returns the summary statistics.
func (c *Client) Stats(ctx context.Context) Result[schema.Statistics] {
	return Request[schema.Statistics](ctx, c, http.MethodGet, "/eventos/stats/resumo", nil)
}

// Units returns all units.
func (c *Client) Units(ctx context.Context) Result[[]schema.Unit] {
	return Request[[]schema.Unit](ctx, c, http.MethodGet, "/unidades", nil)
}

// Health checks if the API is reachable.
func (c *Client) Health(ctx context.Context) Result[schema.Health] {
	return Request[schema.Health](ctx, c, http.MethodGet, "/health", nil)
}

// Vehicles returns the fleet.
func (c *Client) Vehicles(ctx context.Context) Result[[]schema.Vehicle] {
	return Request[[]schema.Vehicle](ctx, c, http.MethodGet, "/frotas", nil)
}

// CreateVehicle adds a vehicle to the fleet.
func (c *Client) CreateVehicle(ctx context.Context, vehicle schema.VehicleEditable) Result[schema.Vehicle] {
	return Request[schema.Vehicle](ctx, c, http.MethodPost, "/frotas", vehicle)
}
