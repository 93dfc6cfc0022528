package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/sead-eventos/backend/internal/controllers/v1"
	"github.com/sead-eventos/backend/internal/httperror"
	"github.com/sead-eventos/backend/internal/models"
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/sead-eventos/backend/test"
)

func (suite *TestSuiteStandard) createVehicle(v schema.VehicleEditable) v1.Vehicle {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/frotas", v)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var vehicle v1.Vehicle
	test.DecodeResponse(suite.T(), &recorder, &vehicle)
	return vehicle
}

func (suite *TestSuiteStandard) TestCreateVehicle() {
	vehicle := suite.createVehicle(schema.VehicleEditable{
		Model:           "Fiat Strada",
		Plate:           "qwe 1a23",
		Mileage:         45210,
		NextMaintenance: 50000,
	})

	suite.Assert().NotEmpty(vehicle.ID)
	suite.Assert().Equal("QWE1A23", vehicle.Plate)
	suite.Assert().False(vehicle.MaintenanceDue)
	suite.Assert().False(vehicle.CleaningDue, "A new vehicle is clean")
	suite.Require().NotNil(vehicle.LastCleaning)
	suite.Assert().Equal("http://example.com/api/frotas", vehicle.Links.List)
}

func (suite *TestSuiteStandard) TestGetVehicles() {
	cleaned := time.Now().Add(-2 * models.CleaningInterval)

	suite.createVehicle(schema.VehicleEditable{Model: "VW Gol", Plate: "BRA2E19", Mileage: 80000, NextMaintenance: 80000, LastCleaning: &cleaned})
	suite.createVehicle(schema.VehicleEditable{Model: "Fiat Strada", Plate: "ABC1D23", Mileage: 1000, NextMaintenance: 10000})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/frotas", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var vehicles []v1.Vehicle
	test.DecodeResponse(suite.T(), &recorder, &vehicles)
	suite.Require().Len(vehicles, 2)

	suite.Assert().Equal("ABC1D23", vehicles[0].Plate, "Vehicles must be sorted by plate")
	suite.Assert().False(vehicles[0].MaintenanceDue)
	suite.Assert().False(vehicles[0].CleaningDue)

	suite.Assert().Equal("BRA2E19", vehicles[1].Plate)
	suite.Assert().True(vehicles[1].MaintenanceDue)
	suite.Assert().True(vehicles[1].CleaningDue)
}

func (suite *TestSuiteStandard) TestCreateVehicleErrors() {
	suite.createVehicle(schema.VehicleEditable{Model: "Fiat Strada", Plate: "QWE1A23", Mileage: 100, NextMaintenance: 10000})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/frotas", schema.VehicleEditable{Model: "Fiat Uno", Plate: "qwe1a23"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var e httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &e)
	suite.Assert().Equal(models.ErrVehiclePlateNotUnique.Error(), e.Detail)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/api/frotas", schema.VehicleEditable{Model: "Fiat Uno", Plate: "XYZ9A87", Mileage: -1})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnprocessableEntity)

	e = httperror.Error{}
	test.DecodeResponse(suite.T(), &recorder, &e)
	suite.Assert().Contains(e.Errors, "quilometragem")
}
