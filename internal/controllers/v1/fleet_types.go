package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/pkg/schema"
)

type VehicleLinks struct {
	List string `json:"frotas" example:"https://example.com/api/frotas"` // The fleet
}

type Vehicle struct {
	schema.Vehicle
	Links VehicleLinks `json:"links"`
}

func newVehicle(c *gin.Context, model models.Vehicle, now time.Time) Vehicle {
	return Vehicle{
		Vehicle: model.Schema(now),
		Links: VehicleLinks{
			List: fmt.Sprintf("%s/frotas", c.GetString(string(models.DBContextURL))),
		},
	}
}
