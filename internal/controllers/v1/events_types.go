package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sead-eventos/backend/internal/consolidation"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/pkg/schema"
)

type EventLinks struct {
	Self string `json:"self" example:"https://example.com/api/eventos/0f0ad1c6-8a4d-43f8-8d2b-6d0b53d5d0c1"` // The event itself
	Unit string `json:"unidade" example:"https://example.com/api/unidades/6e1a3c0f-1b8e-4c55-a0c8-7a5f0f1e2d3b"` // The unit that requested the event
}

type Event struct {
	schema.Event
	Links EventLinks `json:"links"`
}

func newEvent(c *gin.Context, model models.Event) Event {
	url := c.GetString(string(models.DBContextURL))

	return Event{
		Event: model.Schema(),
		Links: EventLinks{
			Self: fmt.Sprintf("%s/eventos/%s", url, model.ID),
			Unit: fmt.Sprintf("%s/unidades/%s", url, model.UnitID),
		},
	}
}

func newEvents(c *gin.Context, events []models.Event) []Event {
	data := make([]Event, 0, len(events))
	for _, model := range events {
		data = append(data, newEvent(c, model))
	}
	return data
}

// wire returns the wire representation of events for the consolidation engine.
func wire(events []models.Event) []schema.Event {
	data := make([]schema.Event, 0, len(events))
	for _, model := range events {
		data = append(data, model.Schema())
	}
	return data
}

type EventQueryFilter struct {
	Month    string `form:"mes" filterField:"false"`     // By month label, "todos" for all months
	Unit     string `form:"unidade" filterField:"false"` // By responsible unit, supports glob patterns
	Approved bool   `form:"aprovado"`                    // Is the event approved?
}

func (f EventQueryFilter) model() (models.Event, error) {
	return models.Event{
		Approved: f.Approved,
	}, nil
}

// month returns the month to filter for. ok is false if all months are requested.
func (f EventQueryFilter) month() (month types.Month, ok bool, err error) {
	if consolidation.IsAllMonths(f.Month) {
		return "", false, nil
	}

	month, err = types.ParseMonth(f.Month)
	if err != nil {
		return "", false, err
	}
	return month, true, nil
}
