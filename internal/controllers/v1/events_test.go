package v1_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/sead-eventos/backend/internal/controllers/v1"
	"github.com/sead-eventos/backend/internal/httperror"
	"github.com/sead-eventos/backend/internal/notify"
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/sead-eventos/backend/test"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	messages []notify.Message
}

func (r *recorder) Publish(_ context.Context, msg notify.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recorder) Close() error { return nil }

func (suite *TestSuiteStandard) TestCreateEvents() {
	r := &recorder{}
	previous := notify.Set(r)
	defer notify.Set(previous)

	response := suite.submit("SEAD", event("Reunião", "Janeiro", 40), event("Posse", "Agosto", 300))

	suite.Assert().True(response.Success)
	suite.Assert().Equal("Formulário submetido com sucesso. 2 eventos criados.", response.Message)
	suite.Assert().Equal(2, response.Data.EventCount)
	_, err := uuid.Parse(response.Data.UnitID)
	suite.Assert().Nil(err)

	suite.Require().Len(r.messages, 1)
	suite.Assert().Equal("SEAD", r.messages[0].UnitName)
	suite.Assert().Equal("Maria Souza", r.messages[0].RequesterName)
	suite.Assert().Equal(2, r.messages[0].Events)

	events := suite.events("http://example.com/api/eventos")
	suite.Require().Len(events, 2)
	suite.Assert().Equal("Maria Souza", events[0].RequesterName, "Requester must default to the requester of the form")
	suite.Assert().Equal(response.Data.UnitID, events[0].UnitID)
	suite.Assert().False(events[0].Approved)
}

func (suite *TestSuiteStandard) TestCreateEventsReusesUnit() {
	first := suite.submit("SEAD", event("Reunião", "Janeiro", 40))
	second := suite.submit("  SEAD ", event("Posse", "Agosto", 300))

	suite.Assert().Equal(first.Data.UnitID, second.Data.UnitID)
}

func (suite *TestSuiteStandard) TestCreateEventsInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/eventos", schema.FormSubmission{
		UnitName:      "SEAD",
		RequesterName: "Maria Souza",
		Events:        []schema.EventEditable{event("Reunião", "Janeiro", 40), event("Posse", "Smarch", 10)},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var e httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &e)
	suite.Assert().Equal("mês inválido: Smarch", e.Detail)

	// The submission is written in one transaction
	suite.Assert().Len(suite.events("http://example.com/api/eventos"), 0)
	var units []schema.Unit
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/unidades", nil)
	test.DecodeResponse(suite.T(), &recorder, &units)
	suite.Assert().Len(units, 0)
}

func (suite *TestSuiteStandard) TestCreateEventsValidation() {
	tests := []struct {
		name   string
		body   any
		status int
		field  string
	}{
		{"No events", schema.FormSubmission{UnitName: "SEAD", RequesterName: "Maria", Events: []schema.EventEditable{}}, http.StatusUnprocessableEntity, "eventos"},
		{"No unit", schema.FormSubmission{RequesterName: "Maria", Events: []schema.EventEditable{event("Posse", "Maio", 10)}}, http.StatusUnprocessableEntity, "nome_unidade"},
		{"No people", schema.FormSubmission{UnitName: "SEAD", RequesterName: "Maria", Events: []schema.EventEditable{event("Posse", "Maio", 0)}}, http.StatusUnprocessableEntity, "eventos[0].quantidade_pessoas"},
		{"No name", schema.FormSubmission{UnitName: "SEAD", RequesterName: "Maria", Events: []schema.EventEditable{event("", "Maio", 10)}}, http.StatusUnprocessableEntity, "eventos[0].nome"},
		{"Too long", schema.FormSubmission{UnitName: strings.Repeat("A", 256), RequesterName: "Maria", Events: []schema.EventEditable{event("Posse", "Maio", 10)}}, http.StatusUnprocessableEntity, "nome_unidade"},
		{"Broken JSON", `{ "nome_unidade": "SEAD", `, http.StatusBadRequest, ""},
		{"Empty body", "", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/eventos", tt.body)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var e httperror.Error
			test.DecodeResponse(suite.T(), &recorder, &e)
			suite.Assert().NotEmpty(e.Detail)

			if tt.field != "" {
				suite.Assert().Equal(httperror.MessageValidation, e.Detail)
				suite.Assert().Contains(e.Errors, tt.field, "Errors: %v", e.Errors)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetEventsFilter() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 40), event("Posse", "Agosto", 300))

	other := event("Seminário", "Agosto", 80)
	other.ResponsibleUnit = "SEGOV - Secretaria de Governo"
	suite.submit("SEGOV", other)

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"?mes=Agosto", 2},
		{"?mes=todos", 3},
		{"?mes=Dezembro", 0},
		{"?unidade=SEAD*", 2},
		{"?unidade=*Governo", 1},
		{"?unidade=SEGOV*&mes=Janeiro", 0},
		{"?aprovado=false", 3},
		{"?aprovado=true", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			suite.Assert().Len(suite.events("http://example.com/api/eventos"+tt.query), tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetEventsInvalidFilter() {
	for _, query := range []string{"?mes=Smarch", "?aprovado=talvez"} {
		recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/eventos"+query, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetEvent() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 40))
	events := suite.events("http://example.com/api/eventos")
	suite.Require().Len(events, 1)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/eventos/"+events[0].ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var e v1.Event
	test.DecodeResponse(suite.T(), &recorder, &e)
	suite.Assert().Equal("Reunião", e.Name)
	suite.Assert().Equal("Janeiro", e.ExpectedMonth)
	suite.Assert().Equal("http://example.com/api/eventos/"+events[0].ID, e.Links.Self)
	suite.Assert().Equal("http://example.com/api/unidades/"+events[0].UnitID, e.Links.Unit)
}

func (suite *TestSuiteStandard) TestGetEventErrors() {
	tests := []struct {
		id     string
		status int
	}{
		{uuid.New().String(), http.StatusNotFound},
		{"not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodOptions} {
			recorder := test.Request(suite.T(), method, "http://example.com/api/eventos/"+tt.id, nil)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
		}
	}
}

func (suite *TestSuiteStandard) TestUpdateEventApproval() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 40))
	id := suite.events("http://example.com/api/eventos")[0].ID

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/api/eventos/"+id, map[string]any{"aprovado": true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var e v1.Event
	test.DecodeResponse(suite.T(), &recorder, &e)
	suite.Assert().True(e.Approved)

	suite.Assert().Len(suite.events("http://example.com/api/eventos?aprovado=true"), 1)

	recorder = test.Request(suite.T(), http.MethodPatch, "http://example.com/api/eventos/"+id, map[string]any{"aprovado": false})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Len(suite.events("http://example.com/api/eventos?aprovado=true"), 0)
}

func (suite *TestSuiteStandard) TestUpdateEventErrors() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 40))
	id := suite.events("http://example.com/api/eventos")[0].ID

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/api/eventos/"+id, map[string]any{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnprocessableEntity)

	recorder = test.Request(suite.T(), http.MethodPatch, "http://example.com/api/eventos/"+id, `{ "aprovado": "sim" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPatch, "http://example.com/api/eventos/"+uuid.New().String(), map[string]any{"aprovado": true})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateEvent() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 40))
	id := suite.events("http://example.com/api/eventos")[0].ID

	recorder := test.Request(suite.T(), http.MethodPut, "http://example.com/api/eventos/"+id, map[string]any{
		"nome":               "  Reunião de planejamento ",
		"mes_previsto":       "Setembro",
		"quantidade_pessoas": 55,
		"almoco":             false,
		"cerimonial":         true,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var e v1.Event
	test.DecodeResponse(suite.T(), &recorder, &e)
	suite.Assert().Equal("Reunião de planejamento", e.Name)
	suite.Assert().Equal("Setembro", e.ExpectedMonth)
	suite.Assert().Equal(55, e.ExpectedPeople)
	suite.Assert().False(e.Lunch)
	suite.Assert().True(e.Ceremonial)
	suite.Assert().Equal("SEAD - Secretaria de Administração", e.ResponsibleUnit, "Fields not in the body must be kept")
	suite.Assert().Equal("Maria Souza", e.RequesterName)

	suite.Assert().Len(suite.events("http://example.com/api/eventos/mes/Setembro"), 1)
	suite.Assert().Len(suite.events("http://example.com/api/eventos/mes/Janeiro"), 0)

	// An empty object changes nothing
	recorder = test.Request(suite.T(), http.MethodPut, "http://example.com/api/eventos/"+id, map[string]any{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &e)
	suite.Assert().Equal("Reunião de planejamento", e.Name)
	suite.Assert().False(e.Approved)
}

func (suite *TestSuiteStandard) TestUpdateEventFieldErrors() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 40))
	id := suite.events("http://example.com/api/eventos")[0].ID

	tests := []struct {
		name   string
		id     string
		body   any
		status int
		detail string
	}{
		{"Invalid month", id, map[string]any{"mes_previsto": "Smarch"}, http.StatusBadRequest, "mês inválido: Smarch"},
		{"No people", id, map[string]any{"quantidade_pessoas": 0}, http.StatusBadRequest, "a quantidade de pessoas deve ser maior que zero"},
		{"Empty name", id, map[string]any{"nome": "  "}, http.StatusBadRequest, "o nome do evento é obrigatório"},
		{"Name too long", id, map[string]any{"nome": strings.Repeat("a", 256)}, http.StatusUnprocessableEntity, httperror.MessageValidation},
		{"Wrong type", id, `{ "almoco": "sim" }`, http.StatusBadRequest, ""},
		{"No body", id, nil, http.StatusBadRequest, ""},
		{"Not found", uuid.New().String(), map[string]any{"nome": "Posse"}, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPut, "http://example.com/api/eventos/"+tt.id, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.detail != "" {
				var body httperror.Error
				test.DecodeResponse(t, &recorder, &body)
				assert.Equal(t, tt.detail, body.Detail)
			}
		})
	}

	e := suite.events("http://example.com/api/eventos")[0]
	suite.Assert().Equal("Reunião", e.Name, "Failed updates must not change the event")
	suite.Assert().Equal("Janeiro", e.ExpectedMonth)
}

func (suite *TestSuiteStandard) TestDeleteEvent() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 40), event("Posse", "Agosto", 300))
	id := suite.events("http://example.com/api/eventos")[0].ID

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/eventos/"+id, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/eventos/"+id, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	suite.Assert().Len(suite.events("http://example.com/api/eventos"), 1)
}

func (suite *TestSuiteStandard) TestGetEventsByMonth() {
	suite.submit("SEAD", event("Reunião", "Janeiro", 40), event("Posse", "Agosto", 300), event("Seminário", "Agosto", 80))

	events := suite.events("http://example.com/api/eventos/mes/Agosto")
	suite.Require().Len(events, 2)
	suite.Assert().ElementsMatch([]string{"Posse", "Seminário"}, []string{events[0].Name, events[1].Name})

	suite.Assert().Len(suite.events("http://example.com/api/eventos/mes/Mar%C3%A7o"), 0)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/eventos/mes/Smarch", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetStatistics() {
	posse := event("Posse", "Agosto", 300)
	posse.Ceremonial = true
	suite.submit("SEAD", event("Reunião", "Janeiro", 40), posse)
	suite.submit("SEGOV", event("Seminário", "Agosto", 80))

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/eventos/stats/resumo", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var stats schema.Statistics
	test.DecodeResponse(suite.T(), &recorder, &stats)
	suite.Assert().Equal(3, stats.TotalEvents)
	suite.Assert().Equal(2, stats.TotalUnits)
	suite.Assert().Equal(map[string]int{"Janeiro": 1, "Agosto": 2}, stats.EventsByMonth)
	suite.Assert().Equal(map[string]int{"Janeiro": 40, "Agosto": 380}, stats.PeopleByMonth)
	suite.Assert().Equal(3, stats.ServiceRequests["Almoço"])
	suite.Assert().Equal(1, stats.ServiceRequests["Cerimonial"])
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	for _, path := range []string{
		"http://example.com/api/eventos",
		"http://example.com/api/eventos/stats/resumo",
		"http://example.com/api/unidades",
		"http://example.com/api/frotas",
		"http://example.com/api/consolidacao",
	} {
		recorder := test.Request(suite.T(), http.MethodGet, path, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	}
}
