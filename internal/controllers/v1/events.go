package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/sead-eventos/backend/internal/consolidation"
	"github.com/sead-eventos/backend/internal/httperror"
	"github.com/sead-eventos/backend/internal/httputil"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/internal/notify"
	"github.com/sead-eventos/backend/pkg/schema"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterEventRoutes registers the routes for events with
// the RouterGroup that is passed.
func RegisterEventRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEventList)
		r.GET("", GetEvents)
		r.POST("", CreateEvents)
	}

	// Calculated endpoints
	{
		r.OPTIONS("/mes/:mes", OptionsEventsByMonth)
		r.GET("/mes/:mes", GetEventsByMonth)
		r.OPTIONS("/stats/resumo", OptionsStatistics)
		r.GET("/stats/resumo", GetStatistics)
	}

	// Event with ID
	{
		r.OPTIONS("/:id", OptionsEventDetail)
		r.GET("/:id", GetEvent)
		r.PUT("/:id", UpdateEvent)
		r.PATCH("/:id", ApproveEvent)
		r.DELETE("/:id", DeleteEvent)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/eventos [options]
func OptionsEventList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/eventos/{id} [options]
func OptionsEventDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Event{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Param			mes	path	string	true	"Month label"
// @Router			/eventos/mes/{mes} [options]
func OptionsEventsByMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/eventos/stats/resumo [options]
func OptionsStatistics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Submit form
// @Description	Creates the events of a form submission. The unit is created if it does not exist yet.
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		201			{object}	schema.SubmissionResponse
// @Failure		400			{object}	httperror.Error
// @Failure		422			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			submission	body		schema.FormSubmission	true	"Form submission"
// @Router			/eventos [post]
func CreateEvents(c *gin.Context) {
	var submission schema.FormSubmission
	err := httputil.BindData(c, &submission)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var unit models.Unit
	created := make([]models.Event, 0, len(submission.Events))

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		unit, _, err = models.FindOrCreateUnit(tx, submission.UnitName)
		if err != nil {
			return err
		}

		for _, editable := range submission.Events {
			if editable.RequesterName == "" {
				editable.RequesterName = submission.RequesterName
			}

			event, err := models.NewEvent(unit.ID, editable)
			if err != nil {
				return err
			}

			err = tx.Create(&event).Error
			if err != nil {
				return err
			}
			created = append(created, event)
		}

		return nil
	})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	notify.Publish(c.Request.Context(), notify.Message{
		UnitID:        unit.ID.String(),
		UnitName:      unit.Name,
		RequesterName: submission.RequesterName,
		Events:        len(created),
		Timestamp:     time.Now().In(time.UTC),
	})

	c.JSON(http.StatusCreated, schema.SubmissionResponse{
		Success: true,
		Message: fmt.Sprintf("Formulário submetido com sucesso. %d eventos criados.", len(created)),
		Data: schema.SubmissionData{
			UnitID:     unit.ID.String(),
			EventCount: len(created),
		},
	})
}

// @Summary		Get events
// @Description	Returns a list of events
// @Tags			Events
// @Produce		json
// @Success		200	{object}	[]Event
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/eventos [get]
// @Param			mes			query	string	false	"Filter by month label"
// @Param			unidade		query	string	false	"Filter by responsible unit, supports * as wildcard"
// @Param			aprovado	query	bool	false	"Is the event approved?"
func GetEvents(c *gin.Context) {
	var filter EventQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	month, filterMonth, err := filter.month()
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	q := models.DB.
		Order("created_at ASC").
		Where(&filterModel, queryFields...)

	if filterMonth {
		q = q.Where("expected_month = ?", month)
	}

	var events []models.Event
	err = q.Find(&events).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]Event, 0, len(events))
	for _, event := range events {
		if slices.Contains(setFields, "Unit") && !glob.Glob(filter.Unit, event.ResponsibleUnit) {
			continue
		}
		data = append(data, newEvent(c, event))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get event
// @Description	Returns a specific event
// @Tags			Events
// @Produce		json
// @Success		200	{object}	Event
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/eventos/{id} [get]
func GetEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var event models.Event
	err = models.DB.First(&event, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newEvent(c, event))
}

// @Summary		Update event
// @Description	Updates the fields of an event that are set in the body. The approval is set with PATCH.
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		200		{object}	Event
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			event	body		schema.EventUpdate	true	"Event"
// @Router			/eventos/{id} [put]
func UpdateEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var event models.Event
	err = models.DB.First(&event, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var data schema.EventUpdate
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = event.Apply(data)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Save(&event).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newEvent(c, event))
}

// @Summary		Set approval
// @Description	Approves an event or withdraws its approval
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		200			{object}	Event
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		422			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			approval	body		schema.Approval	true	"Approval"
// @Router			/eventos/{id} [patch]
func ApproveEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var event models.Event
	err = models.DB.First(&event, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var approval schema.Approval
	err = httputil.BindData(c, &approval)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Model(&event).Update("approved", *approval.Approved).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}
	event.Approved = *approval.Approved

	c.JSON(http.StatusOK, newEvent(c, event))
}

// @Summary		Delete event
// @Description	Deletes an event
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/eventos/{id} [delete]
func DeleteEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var event models.Event
	err = models.DB.First(&event, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&event).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get events of a month
// @Description	Returns the events planned for a month
// @Tags			Events
// @Produce		json
// @Success		200	{object}	[]Event
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			mes	path		string	true	"Month label"
// @Router			/eventos/mes/{mes} [get]
func GetEventsByMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var events []models.Event
	err = models.DB.Order("created_at ASC").Where("expected_month = ?", uri.Month).Find(&events).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newEvents(c, events))
}

// @Summary		Get statistics
// @Description	Returns the number of events and people per month and the number of requests per service
// @Tags			Events
// @Produce		json
// @Success		200	{object}	schema.Statistics
// @Failure		500	{object}	httperror.Error
// @Router			/eventos/stats/resumo [get]
func GetStatistics(c *gin.Context) {
	var events []models.Event
	err := models.DB.Find(&events).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var units int64
	err = models.DB.Model(&models.Unit{}).Count(&units).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, consolidation.Statistics(wire(events), int(units)))
}
