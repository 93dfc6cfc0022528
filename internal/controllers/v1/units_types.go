package v1

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/pkg/schema"
)

type UnitLinks struct {
	Self   string `json:"self" example:"https://example.com/api/unidades/6e1a3c0f-1b8e-4c55-a0c8-7a5f0f1e2d3b"` // The unit itself
	Events string `json:"eventos" example:"https://example.com/api/eventos?unidade=SEAD"`                       // Events requested by the unit
}

type Unit struct {
	schema.Unit
	Links UnitLinks `json:"links"`
}

func newUnit(c *gin.Context, model models.Unit) Unit {
	base := c.GetString(string(models.DBContextURL))

	return Unit{
		Unit: model.Schema(),
		Links: UnitLinks{
			Self:   fmt.Sprintf("%s/unidades/%s", base, model.ID),
			Events: fmt.Sprintf("%s/eventos?unidade=%s", base, url.QueryEscape(model.Name)),
		},
	}
}
