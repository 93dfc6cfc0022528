package v1_test

import (
	"net/http"

	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/sead-eventos/backend/test"
)

func (suite *TestSuiteStandard) TestGetHealth() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/health", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var health schema.Health
	test.DecodeResponse(suite.T(), &recorder, &health)
	suite.Assert().Equal("healthy", health.Status)
	suite.Assert().Equal("API is running properly!", health.Message)
}
