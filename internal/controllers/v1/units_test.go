package v1_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/sead-eventos/backend/internal/controllers/v1"
	"github.com/sead-eventos/backend/internal/httperror"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/sead-eventos/backend/test"
	"github.com/stretchr/testify/assert"
)

// createUnit creates a unit through the API and returns it.
func (suite *TestSuiteStandard) createUnit(name string) v1.Unit {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/unidades", schema.UnitEditable{Name: name})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var unit v1.Unit
	test.DecodeResponse(suite.T(), &recorder, &unit)
	return unit
}

func (suite *TestSuiteStandard) units(path string) []v1.Unit {
	recorder := test.Request(suite.T(), http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var units []v1.Unit
	test.DecodeResponse(suite.T(), &recorder, &units)
	return units
}

func (suite *TestSuiteStandard) TestGetUnits() {
	suite.submit("SEGOV", event("Seminário", "Agosto", 80))
	suite.submit("SEAD", event("Reunião", "Janeiro", 40))

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/unidades", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var units []v1.Unit
	test.DecodeResponse(suite.T(), &recorder, &units)
	suite.Require().Len(units, 2)
	suite.Assert().Equal("SEAD", units[0].Name, "Units must be sorted by name")
	suite.Assert().Equal("SEGOV", units[1].Name)
	suite.Assert().Empty(units[0].Events, "Events are only included for a single unit")
	suite.Assert().Equal("http://example.com/api/eventos?unidade=SEAD", units[0].Links.Events)
}

func (suite *TestSuiteStandard) TestGetUnit() {
	response := suite.submit("SEAD", event("Reunião", "Janeiro", 40), event("Posse", "Agosto", 300))

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/unidades/"+response.Data.UnitID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var unit v1.Unit
	test.DecodeResponse(suite.T(), &recorder, &unit)
	suite.Assert().Equal("SEAD", unit.Name)
	suite.Assert().Len(unit.Events, 2)
	suite.Assert().Equal("http://example.com/api/unidades/"+response.Data.UnitID, unit.Links.Self)
}

func (suite *TestSuiteStandard) TestGetUnitErrors() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/unidades/"+uuid.New().String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/api/unidades/"+uuid.New().String(), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/unidades/SEAD", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateUnit() {
	unit := suite.createUnit("  SEFAZ - Secretaria da Fazenda ")
	suite.Assert().Equal("SEFAZ - Secretaria da Fazenda", unit.Name)
	suite.Assert().Equal("http://example.com/api/unidades/"+unit.ID, unit.Links.Self)

	// A form submission for the same name uses the existing unit
	response := suite.submit("SEFAZ - Secretaria da Fazenda", event("Reunião", "Janeiro", 40))
	suite.Assert().Equal(unit.ID, response.Data.UnitID)
	suite.Assert().Len(suite.units("http://example.com/api/unidades"), 1)
}

func (suite *TestSuiteStandard) TestCreateUnitErrors() {
	_ = suite.createUnit("SEAD")

	tests := []struct {
		name   string
		body   any
		status int
		detail string
	}{
		{"Duplicate", schema.UnitEditable{Name: "SEAD"}, http.StatusBadRequest, models.ErrUnitNameNotUnique.Error()},
		{"Duplicate after trimming", schema.UnitEditable{Name: " SEAD "}, http.StatusBadRequest, models.ErrUnitNameNotUnique.Error()},
		{"Blank name", schema.UnitEditable{Name: "   "}, http.StatusBadRequest, models.ErrUnitNameEmpty.Error()},
		{"Missing name", map[string]any{}, http.StatusUnprocessableEntity, httperror.MessageValidation},
		{"No body", nil, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/api/unidades", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.detail != "" {
				var body httperror.Error
				test.DecodeResponse(t, &recorder, &body)
				assert.Equal(t, tt.detail, body.Detail)
			}
		})
	}

	suite.Assert().Len(suite.units("http://example.com/api/unidades"), 1)
}

func (suite *TestSuiteStandard) TestUpdateUnit() {
	unit := suite.createUnit("SEAD")
	_ = suite.createUnit("SEGOV")

	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/api/unidades/"+unit.ID, schema.UnitEditable{Name: "SEAD - Secretaria de Administração"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.Unit
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal(unit.ID, updated.ID)
	suite.Assert().Equal("SEAD - Secretaria de Administração", updated.Name)

	recorder = test.Request(suite.T(), http.MethodPut, "http://example.com/api/unidades/"+unit.ID, schema.UnitEditable{Name: "SEGOV"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPut, "http://example.com/api/unidades/"+unit.ID, map[string]any{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnprocessableEntity)

	recorder = test.Request(suite.T(), http.MethodPut, "http://example.com/api/unidades/"+uuid.New().String(), schema.UnitEditable{Name: "SEPLAN"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	units := suite.units("http://example.com/api/unidades")
	suite.Require().Len(units, 2)
	suite.Assert().Equal("SEAD - Secretaria de Administração", units[0].Name, "Failed renames must not change the unit")
}

func (suite *TestSuiteStandard) TestDeleteUnit() {
	unit := suite.createUnit("SEAD")

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/unidades/"+unit.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/unidades/"+unit.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/unidades/"+unit.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteUnitWithEvents() {
	response := suite.submit("SEAD", event("Reunião", "Janeiro", 40), event("Posse", "Agosto", 300))

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/unidades/"+response.Data.UnitID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var body httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &body)
	suite.Assert().Contains(body.Detail, models.ErrUnitHasEvents.Error())
	suite.Assert().Contains(body.Detail, "2 evento(s)")

	suite.Assert().Len(suite.events("http://example.com/api/eventos"), 2, "Events must be kept")

	// Once the events are gone, the unit can be deleted
	for _, e := range suite.events("http://example.com/api/eventos") {
		recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/eventos/"+e.ID, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	}

	recorder = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/unidades/"+response.Data.UnitID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestGetUnitByName() {
	response := suite.submit("SEAD - Secretaria de Administração", event("Reunião", "Janeiro", 40))

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/unidades/nome/"+url.PathEscape("SEAD - Secretaria de Administração"), nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var unit v1.Unit
	test.DecodeResponse(suite.T(), &recorder, &unit)
	suite.Assert().Equal(response.Data.UnitID, unit.ID)
	suite.Assert().Len(unit.Events, 1)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/unidades/nome/SEAD", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSearchUnits() {
	_ = suite.createUnit("SEAD - Secretaria de Administração")
	_ = suite.createUnit("SEGOV - Secretaria de Governo")
	_ = suite.createUnit("SEFAZ - Secretaria da Fazenda")

	tests := []struct {
		term  string
		names []string
	}{
		{"Secretaria", []string{"SEAD - Secretaria de Administração", "SEFAZ - Secretaria da Fazenda", "SEGOV - Secretaria de Governo"}},
		{"gov", []string{"SEGOV - Secretaria de Governo"}},
		{"Fazenda", []string{"SEFAZ - Secretaria da Fazenda"}},
		{"SEPLAN", []string{}},
		{"%", []string{}},
		{"_", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.term, func(t *testing.T) {
			units := suite.units("http://example.com/api/unidades/search/" + url.PathEscape(tt.term))

			names := make([]string, 0, len(units))
			for _, u := range units {
				names = append(names, u.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}
