package v1_test

import (
	"net/http"
	"os"

	"github.com/sead-eventos/backend/internal/consolidation"
	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) consolidation(query string) consolidation.Dashboard {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/consolidacao"+query, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var dashboard consolidation.Dashboard
	test.DecodeResponse(suite.T(), &recorder, &dashboard)
	return dashboard
}

func (suite *TestSuiteStandard) TestGetConsolidation() {
	response := suite.submit("SEAD", event("Reunião", "Janeiro", 100), event("Posse", "Agosto", 10))

	var id string
	for _, e := range suite.events("http://example.com/api/eventos?mes=Janeiro") {
		id = e.ID
	}
	suite.Require().NotEmpty(id, "January event for unit %s", response.Data.UnitID)
	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/api/eventos/"+id, map[string]any{"aprovado": true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	dashboard := suite.consolidation("")

	suite.Assert().Equal("", dashboard.Month)
	suite.Assert().Equal([]types.Month{types.January, types.August}, dashboard.Available)
	suite.Assert().Equal(2, dashboard.Totals.Events)
	suite.Assert().Equal(110, dashboard.Totals.People)
	suite.Assert().Len(dashboard.Summaries, 2)

	execution := dashboard.Execution
	suite.Require().Len(execution.Months, 12)
	suite.Assert().True(consolidation.DefaultContractTotal.Equal(execution.Start))
	suite.Assert().True(decimal.RequireFromString("299741.50").Equal(execution.Months[0].Balance), "January balance is %s", execution.Months[0].Balance)
	suite.Assert().True(decimal.RequireFromString("299741.50").Equal(execution.Months[0].ApprovedBalance))
	suite.Assert().True(decimal.RequireFromString("299041.50").Equal(execution.Months[11].Balance))
	suite.Assert().True(decimal.RequireFromString("299741.50").Equal(execution.Months[11].ApprovedBalance))
}

func (suite *TestSuiteStandard) TestGetConsolidationFiltered() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 100), event("Posse", "Agosto", 10))

	dashboard := suite.consolidation("?mes=Agosto&orcamento=10000")

	suite.Assert().Equal("Agosto", dashboard.Month)
	suite.Assert().Equal(1, dashboard.Totals.Events)
	suite.Require().Len(dashboard.Summaries, 1)
	suite.Assert().Equal(types.August, dashboard.Summaries[0].Month)

	// The contract execution always covers all events
	suite.Assert().True(decimal.NewFromInt(10000).Equal(dashboard.Execution.Start))
	suite.Assert().True(decimal.NewFromInt(7700).Equal(dashboard.Execution.Consumed))
}

func (suite *TestSuiteStandard) TestGetConsolidationContractTotalFromEnvironment() {
	os.Setenv("CONTRACT_TOTAL", "1000.25")
	defer os.Unsetenv("CONTRACT_TOTAL")

	dashboard := suite.consolidation("")
	suite.Assert().True(decimal.RequireFromString("1000.25").Equal(dashboard.Execution.Start))
	suite.Assert().Len(dashboard.Summaries, 0)
}

func (suite *TestSuiteStandard) TestGetConsolidationErrors() {
	for _, query := range []string{"?mes=Smarch", "?orcamento=muito", "?orcamento=-5", "?orcamento=0"} {
		recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/consolidacao"+query, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}
