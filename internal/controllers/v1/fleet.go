package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sead-eventos/backend/internal/httperror"
	"github.com/sead-eventos/backend/internal/httputil"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/pkg/schema"
)

// RegisterFleetRoutes registers the routes for the vehicle fleet with
// the RouterGroup that is passed.
func RegisterFleetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsFleet)
	r.GET("", GetVehicles)
	r.POST("", CreateVehicle)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fleet
// @Success		204
// @Router			/frotas [options]
func OptionsFleet(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get vehicles
// @Description	Returns the vehicles of the fleet with their maintenance and cleaning state
// @Tags			Fleet
// @Produce		json
// @Success		200	{object}	[]Vehicle
// @Failure		500	{object}	httperror.Error
// @Router			/frotas [get]
func GetVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	err := models.DB.Order("plate ASC").Find(&vehicles).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	now := time.Now()
	data := make([]Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		data = append(data, newVehicle(c, vehicle, now))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Create vehicle
// @Description	Adds a vehicle to the fleet
// @Tags			Fleet
// @Accept			json
// @Produce		json
// @Success		201		{object}	Vehicle
// @Failure		400		{object}	httperror.Error
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			vehicle	body		schema.VehicleEditable	true	"Vehicle"
// @Router			/frotas [post]
func CreateVehicle(c *gin.Context) {
	var editable schema.VehicleEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	vehicle := models.NewVehicle(editable)
	err = models.DB.Create(&vehicle).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newVehicle(c, vehicle, time.Now()))
}
