package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sead-eventos/backend/internal/httperror"
	"github.com/sead-eventos/backend/internal/httputil"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/pkg/schema"
	"gorm.io/gorm"
)

// RegisterUnitRoutes registers the routes for units with
// the RouterGroup that is passed.
func RegisterUnitRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUnitList)
		r.GET("", GetUnits)
		r.POST("", CreateUnit)
	}

	// Lookups
	{
		r.OPTIONS("/nome/:nome", OptionsUnitLookup)
		r.GET("/nome/:nome", GetUnitByName)
		r.OPTIONS("/search/:termo", OptionsUnitLookup)
		r.GET("/search/:termo", SearchUnits)
	}

	// Unit with ID
	{
		r.OPTIONS("/:id", OptionsUnitDetail)
		r.GET("/:id", GetUnit)
		r.PUT("/:id", UpdateUnit)
		r.DELETE("/:id", DeleteUnit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Units
// @Success		204
// @Router			/unidades [options]
func OptionsUnitList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Units
// @Success		204
// @Router			/unidades/nome/{nome} [options]
// @Router			/unidades/search/{termo} [options]
func OptionsUnitLookup(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Units
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/unidades/{id} [options]
func OptionsUnitDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Unit{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create unit
// @Description	Creates a unit. Unit names are unique.
// @Tags			Units
// @Accept			json
// @Produce		json
// @Success		201		{object}	Unit
// @Failure		400		{object}	httperror.Error
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			unit	body		schema.UnitEditable	true	"Unit"
// @Router			/unidades [post]
func CreateUnit(c *gin.Context) {
	var editable schema.UnitEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	unit := models.Unit{Name: editable.Name}
	err = models.DB.Create(&unit).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, newUnit(c, unit))
}

// @Summary		Get units
// @Description	Returns all units that submitted a form, ordered by name
// @Tags			Units
// @Produce		json
// @Success		200	{object}	[]Unit
// @Failure		500	{object}	httperror.Error
// @Router			/unidades [get]
func GetUnits(c *gin.Context) {
	var units []models.Unit
	err := models.DB.Order("name ASC").Find(&units).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]Unit, 0, len(units))
	for _, unit := range units {
		data = append(data, newUnit(c, unit))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get unit
// @Description	Returns a specific unit with its events
// @Tags			Units
// @Produce		json
// @Success		200	{object}	Unit
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/unidades/{id} [get]
func GetUnit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var unit models.Unit
	err = withEvents(models.DB).First(&unit, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newUnit(c, unit))
}

// @Summary		Get unit by name
// @Description	Returns the unit with the exact name, with its events
// @Tags			Units
// @Produce		json
// @Success		200		{object}	Unit
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			nome	path		string	true	"Name of the unit"
// @Router			/unidades/nome/{nome} [get]
func GetUnitByName(c *gin.Context) {
	var uri URIUnitName
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var unit models.Unit
	err = withEvents(models.DB).First(&unit, "name = ?", strings.TrimSpace(uri.Name)).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newUnit(c, unit))
}

// @Summary		Search units
// @Description	Returns the units whose name contains the term, ordered by name. Case is ignored for ASCII letters.
// @Tags			Units
// @Produce		json
// @Success		200		{object}	[]Unit
// @Failure		500		{object}	httperror.Error
// @Param			termo	path		string	true	"Part of the name"
// @Router			/unidades/search/{termo} [get]
func SearchUnits(c *gin.Context) {
	var uri URISearchTerm
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var units []models.Unit
	err = models.DB.
		Order("name ASC").
		Where(`name LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(uri.Term)+"%").
		Find(&units).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]Unit, 0, len(units))
	for _, unit := range units {
		data = append(data, newUnit(c, unit))
	}

	c.JSON(http.StatusOK, data)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// @Summary		Rename unit
// @Description	Changes the name of a unit. Events keep the responsible unit they were submitted with.
// @Tags			Units
// @Accept			json
// @Produce		json
// @Success		200		{object}	Unit
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		422		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			unit	body		schema.UnitEditable	true	"Unit"
// @Router			/unidades/{id} [put]
func UpdateUnit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var unit models.Unit
	err = models.DB.First(&unit, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var editable schema.UnitEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	unit.Name = editable.Name
	err = models.DB.Save(&unit).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newUnit(c, unit))
}

// @Summary		Delete unit
// @Description	Deletes a unit. Units with events cannot be deleted.
// @Tags			Units
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/unidades/{id} [delete]
func DeleteUnit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var unit models.Unit
	err = models.DB.First(&unit, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&unit).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// withEvents preloads the events of units in order of submission.
func withEvents(db *gorm.DB) *gorm.DB {
	return db.Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}
