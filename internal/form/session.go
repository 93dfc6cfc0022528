// Package form implements the event planning form.
//
// A Session holds what a user entered before it is submitted: the unit, the requester
// and the events planned for each month. Sessions are never persisted.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/pkg/client"
	"github.com/sead-eventos/backend/pkg/schema"
)

// Units lists the units that can be selected in the form.
var Units = []string{
	"SEAD - Secretaria de Administração",
	"SEGOV - Secretaria de Governo",
	"SEFAZ - Secretaria da Fazenda",
	"SEPLAN - Secretaria de Planejamento",
	"SECULT - Secretaria de Cultura",
	"SEDUC - Secretaria de Educação",
	"SESAU - Secretaria de Saúde",
	"SEINFRA - Secretaria de Infraestrutura",
	"SEAGRI - Secretaria de Agricultura",
	"SEMAS - Secretaria de Meio Ambiente",
	"SEJUS - Secretaria de Justiça",
	"SETASS - Secretaria de Trabalho e Assistência Social",
	"SETUR - Secretaria de Turismo",
	"SESP - Secretaria de Segurança Pública",
}

var ErrEventNotFound = errors.New("evento não encontrado")

// ValidationError is returned when the session cannot be submitted.
// Its message is meant to be shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, a ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, a...)}
}

// MonthBucket holds the events planned for one month.
type MonthBucket struct {
	Month     types.Month
	HasEvents bool
	Events    []schema.EventEditable
}

// Session is the state of the form.
type Session struct {
	Unit      string
	Requester string
	Months    [12]MonthBucket
}

// NewSession returns an empty session.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset empties the session.
func (s *Session) Reset() {
	s.Unit = ""
	s.Requester = ""
	for i, m := range types.Months {
		s.Months[i] = MonthBucket{Month: m}
	}
}

func (s *Session) bucket(month types.Month) (*MonthBucket, error) {
	i := month.Index()
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidMonth, month)
	}
	return &s.Months[i], nil
}

// SetUnit sets the unit and makes it the responsible unit of every event.
func (s *Session) SetUnit(name string) {
	s.Unit = name
	s.each(func(e *schema.EventEditable) {
		e.ResponsibleUnit = name
	})
}

// SetRequester sets the requester of the session and of every event.
func (s *Session) SetRequester(name string) {
	s.Requester = name
	s.each(func(e *schema.EventEditable) {
		e.RequesterName = name
	})
}

func (s *Session) each(f func(*schema.EventEditable)) {
	for i := range s.Months {
		for j := range s.Months[i].Events {
			f(&s.Months[i].Events[j])
		}
	}
}

// SetHasEvents marks a month as having events or not.
// Clearing the mark drops the events of the month.
func (s *Session) SetHasEvents(month types.Month, has bool) error {
	b, err := s.bucket(month)
	if err != nil {
		return err
	}

	b.HasEvents = has
	if !has {
		b.Events = nil
	}
	return nil
}

// AddEvent adds an event to a month and marks the month as having events.
// It returns the index of the event in the month.
//
// The month and requester of the event are taken from the session. The responsible
// unit defaults to the unit of the session.
func (s *Session) AddEvent(month types.Month, event schema.EventEditable) (int, error) {
	b, err := s.bucket(month)
	if err != nil {
		return 0, err
	}

	event.ExpectedMonth = month.String()
	event.RequesterName = s.Requester
	if event.ResponsibleUnit == "" {
		event.ResponsibleUnit = s.Unit
	}

	b.HasEvents = true
	b.Events = append(b.Events, event)
	return len(b.Events) - 1, nil
}

// UpdateEvent replaces an event of a month.
func (s *Session) UpdateEvent(month types.Month, index int, event schema.EventEditable) error {
	b, err := s.bucket(month)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(b.Events) {
		return fmt.Errorf("%w: %s #%d", ErrEventNotFound, month, index+1)
	}

	event.ExpectedMonth = month.String()
	event.RequesterName = s.Requester
	b.Events[index] = event
	return nil
}

// RemoveEvent removes an event from a month. A month without events left
// is no longer marked as having events.
func (s *Session) RemoveEvent(month types.Month, index int) error {
	b, err := s.bucket(month)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(b.Events) {
		return fmt.Errorf("%w: %s #%d", ErrEventNotFound, month, index+1)
	}

	b.Events = append(b.Events[:index], b.Events[index+1:]...)
	b.HasEvents = len(b.Events) > 0
	return nil
}

// Counts returns the number of months marked as having events and the number of events.
func (s *Session) Counts() (months, events int) {
	for _, b := range s.Months {
		if b.HasEvents {
			months++
		}
		events += len(b.Events)
	}
	return months, events
}

// Validate checks if the session can be submitted.
// The first problem found is returned as a *ValidationError.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Unit) == "" {
		return invalid("Por favor, informe o nome da unidade.")
	}

	if strings.TrimSpace(s.Requester) == "" {
		return invalid("Por favor, informe o nome do solicitante.")
	}

	if months, _ := s.Counts(); months == 0 {
		return invalid("Por favor, selecione pelo menos um mês com eventos.")
	}

	for _, b := range s.Months {
		if !b.HasEvents {
			continue
		}

		if len(b.Events) == 0 {
			return invalid("Por favor, adicione pelo menos um evento para o mês de %s.", b.Month)
		}

		for _, e := range b.Events {
			if strings.TrimSpace(e.Name) == "" {
				return invalid("Por favor, informe o nome do evento em %s.", b.Month)
			}
			if strings.TrimSpace(e.ResponsibleUnit) == "" {
				return invalid("Por favor, informe a unidade responsável pelo evento em %s.", b.Month)
			}
			if e.ExpectedPeople <= 0 {
				return invalid("Por favor, informe uma quantidade válida de pessoas para o evento em %s.", b.Month)
			}
		}
	}

	return nil
}

// Submission returns the request body for the session, with the events
// of all marked months in month order.
func (s *Session) Submission() schema.FormSubmission {
	submission := schema.FormSubmission{
		UnitName:      s.Unit,
		RequesterName: s.Requester,
		Events:        make([]schema.EventEditable, 0),
	}

	for _, b := range s.Months {
		if !b.HasEvents {
			continue
		}
		submission.Events = append(submission.Events, b.Events...)
	}

	return submission
}

// Submit validates the session and sends it to the API.
//
// A validation failure is returned as error and no request is made.
// Otherwise the result of the request is returned. The session is reset
// when the submission succeeded.
func (s *Session) Submit(ctx context.Context, c *client.Client) (client.Result[schema.SubmissionResponse], error) {
	if err := s.Validate(); err != nil {
		return client.Result[schema.SubmissionResponse]{}, err
	}

	result := c.SubmitForm(ctx, s.Submission())
	if result.Success {
		s.Reset()
	}

	return result, nil
}
