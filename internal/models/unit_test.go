package models_test

import (
	"github.com/sead-eventos/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUnitTrimWhitespace() {
	unit := suite.createTestUnit(models.Unit{Name: "  SEAD - Secretaria de Administração \t"})
	assert.Equal(suite.T(), "SEAD - Secretaria de Administração", unit.Name)
}

func (suite *TestSuiteStandard) TestUnitNameEmpty() {
	err := models.DB.Create(&models.Unit{Name: "   "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUnitNameEmpty)
}

func (suite *TestSuiteStandard) TestUnitNameNotUnique() {
	_ = suite.createTestUnit(models.Unit{Name: "SEAD"})

	err := models.DB.Create(&models.Unit{Name: "SEAD"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUnitNameNotUnique)
}

func (suite *TestSuiteStandard) TestFindOrCreateUnit() {
	unit, created, err := models.FindOrCreateUnit(models.DB, " SEGOV ")
	require.Nil(suite.T(), err)
	assert.True(suite.T(), created)
	assert.Equal(suite.T(), "SEGOV", unit.Name)

	again, created, err := models.FindOrCreateUnit(models.DB, "SEGOV")
	require.Nil(suite.T(), err)
	assert.False(suite.T(), created)
	assert.Equal(suite.T(), unit.ID, again.ID)

	_, _, err = models.FindOrCreateUnit(models.DB, "")
	assert.ErrorIs(suite.T(), err, models.ErrUnitNameEmpty)
}

func (suite *TestSuiteStandard) TestUnitNotFound() {
	err := models.DB.First(&models.Unit{}, "name = ?", "does not exist").Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "unidade")
}

func (suite *TestSuiteStandard) TestUnitDBClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.Unit{Name: "SEAD"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestUnitDelete() {
	unit := suite.createTestUnit(models.Unit{Name: "SEAD"})

	require.Nil(suite.T(), models.DB.Delete(&unit).Error)

	err := models.DB.First(&models.Unit{}, "id = ?", unit.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUnitDeleteWithEvents() {
	unit := suite.createTestUnit(models.Unit{Name: "SEAD"})
	_ = suite.createTestEvent(models.Event{UnitID: unit.ID})
	_ = suite.createTestEvent(models.Event{UnitID: unit.ID})

	err := models.DB.Delete(&unit).Error
	assert.ErrorIs(suite.T(), err, models.ErrUnitHasEvents)
	assert.Contains(suite.T(), err.Error(), "2 evento(s)")

	require.Nil(suite.T(), models.DB.First(&models.Unit{}, "id = ?", unit.ID).Error, "The unit must still exist")
}
