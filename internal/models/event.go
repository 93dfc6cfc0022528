package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/pkg/schema"
	"gorm.io/gorm"
)

// Event is an event planned by a unit.
type Event struct {
	DefaultModel
	UnitID             uuid.UUID `gorm:"index"`
	Name               string
	ResponsibleUnit    string
	RequesterName      string
	ExpectedPeople     int
	ExpectedMonth      types.Month `gorm:"index"`
	MorningCoffeeBreak bool
	AfternoonCoffee    bool
	Lunch              bool
	Dinner             bool
	Ceremonial         bool
	Approved           bool
}

var (
	ErrEventNameEmpty         = errors.New("o nome do evento é obrigatório")
	ErrEventUnitEmpty         = errors.New("a unidade responsável é obrigatória")
	ErrEventPeopleNotPositive = errors.New("a quantidade de pessoas deve ser maior que zero")
)

// NewEvent creates an event for a unit from its wire representation.
func NewEvent(unitID uuid.UUID, e schema.EventEditable) (Event, error) {
	month, err := types.ParseMonth(e.ExpectedMonth)
	if err != nil {
		return Event{}, err
	}

	return Event{
		UnitID:             unitID,
		Name:               e.Name,
		ResponsibleUnit:    e.ResponsibleUnit,
		RequesterName:      e.RequesterName,
		ExpectedPeople:     e.ExpectedPeople,
		ExpectedMonth:      month,
		MorningCoffeeBreak: e.MorningCoffeeBreak,
		AfternoonCoffee:    e.AfternoonCoffee,
		Lunch:              e.Lunch,
		Dinner:             e.Dinner,
		Ceremonial:         e.Ceremonial,
	}, nil
}

// Apply sets the fields of the event that are present in the update.
// Values are checked when the event is saved.
func (e *Event) Apply(u schema.EventUpdate) error {
	if u.ExpectedMonth != nil {
		month, err := types.ParseMonth(*u.ExpectedMonth)
		if err != nil {
			return err
		}
		e.ExpectedMonth = month
	}

	set(&e.Name, u.Name)
	set(&e.ResponsibleUnit, u.ResponsibleUnit)
	set(&e.RequesterName, u.RequesterName)
	set(&e.ExpectedPeople, u.ExpectedPeople)
	set(&e.MorningCoffeeBreak, u.MorningCoffeeBreak)
	set(&e.AfternoonCoffee, u.AfternoonCoffee)
	set(&e.Lunch, u.Lunch)
	set(&e.Dinner, u.Dinner)
	set(&e.Ceremonial, u.Ceremonial)

	return nil
}

func set[T any](field *T, value *T) {
	if value != nil {
		*field = *value
	}
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	return tx.First(&Unit{}, "id = ?", e.UnitID).Error
}

func (e *Event) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.ResponsibleUnit = strings.TrimSpace(e.ResponsibleUnit)
	e.RequesterName = strings.TrimSpace(e.RequesterName)

	if e.Name == "" {
		return ErrEventNameEmpty
	}

	if e.ResponsibleUnit == "" {
		return ErrEventUnitEmpty
	}

	if e.ExpectedPeople <= 0 {
		return ErrEventPeopleNotPositive
	}

	if !e.ExpectedMonth.Valid() {
		return fmt.Errorf("%w: %s", types.ErrInvalidMonth, e.ExpectedMonth)
	}

	return nil
}

// Schema returns the wire representation of the event.
func (e Event) Schema() schema.Event {
	created, updated := e.CreatedAt, e.UpdatedAt

	return schema.Event{
		ID: e.ID.String(),
		EventEditable: schema.EventEditable{
			Name:               e.Name,
			ResponsibleUnit:    e.ResponsibleUnit,
			RequesterName:      e.RequesterName,
			ExpectedPeople:     e.ExpectedPeople,
			ExpectedMonth:      e.ExpectedMonth.String(),
			MorningCoffeeBreak: e.MorningCoffeeBreak,
			AfternoonCoffee:    e.AfternoonCoffee,
			Lunch:              e.Lunch,
			Dinner:             e.Dinner,
			Ceremonial:         e.Ceremonial,
		},
		Approved:  e.Approved,
		UnitID:    e.UnitID.String(),
		CreatedAt: &created,
		UpdatedAt: &updated,
	}
}
