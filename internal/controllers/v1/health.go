package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sead-eventos/backend/internal/httputil"
	"github.com/sead-eventos/backend/pkg/schema"
)

func RegisterHealthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHealth)
	r.GET("", GetHealth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/health [options]
func OptionsHealth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API health
// @Description	Reports that the API is running. Use /healthz to check the database.
// @Tags			General
// @Produce		json
// @Success		200	{object}	schema.Health
// @Router			/health [get]
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, schema.Health{
		Status:  "healthy",
		Message: "API is running properly!",
	})
}
