package v1

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sead-eventos/backend/internal/consolidation"
	"github.com/sead-eventos/backend/internal/httperror"
	"github.com/sead-eventos/backend/internal/httputil"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterConsolidationRoutes registers the routes for the consolidation
// dashboard with the RouterGroup that is passed.
func RegisterConsolidationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsConsolidation)
	r.GET("", GetConsolidation)
}

type ConsolidationQuery struct {
	Month         string `form:"mes"`       // Month label, empty or "todos" for all months
	ContractTotal string `form:"orcamento"` // Initial contract value
}

// contractTotal returns the contract value to consolidate against.
//
// The query parameter takes precedence over the CONTRACT_TOTAL environment
// variable, which takes precedence over the default contract value.
func (q ConsolidationQuery) contractTotal() (decimal.Decimal, error) {
	value := q.ContractTotal
	if value == "" {
		value = os.Getenv("CONTRACT_TOTAL")
	}

	if value == "" {
		return consolidation.DefaultContractTotal, nil
	}

	total, err := decimal.NewFromString(value)
	if err != nil || !total.IsPositive() {
		return decimal.Zero, errContractTotalInvalid
	}

	return total, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Consolidation
// @Success		204
// @Router			/consolidacao [options]
func OptionsConsolidation(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get consolidation
// @Description	Returns the consolidated figures of all events. The month filter applies to all figures except the contract execution.
// @Tags			Consolidation
// @Produce		json
// @Success		200			{object}	consolidation.Dashboard
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			mes			query		string	false	"Month label"
// @Param			orcamento	query		string	false	"Initial contract value, defaults to 306741.50"
// @Router			/consolidacao [get]
func GetConsolidation(c *gin.Context) {
	var query ConsolidationQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if !consolidation.IsAllMonths(query.Month) {
		_, err = types.ParseMonth(query.Month)
		if err != nil {
			c.JSON(status(err), httperror.New(err))
			return
		}
	}

	total, err := query.contractTotal()
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var events []models.Event
	err = models.DB.Order("created_at ASC").Find(&events).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, consolidation.Consolidate(total, wire(events), query.Month))
}
