package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sead-eventos/backend/pkg/schema"
	"gorm.io/gorm"
)

// Unit is an organizational unit that requests events.
type Unit struct {
	DefaultModel
	Name   string  `gorm:"uniqueIndex"`
	Events []Event `gorm:"constraint:OnDelete:CASCADE"`
}

var (
	ErrUnitNameEmpty     = errors.New("o nome da unidade é obrigatório")
	ErrUnitNameNotUnique = errors.New("já existe uma unidade com este nome")
	ErrUnitHasEvents     = errors.New("não é possível excluir uma unidade com eventos associados")
)

func (u *Unit) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		return ErrUnitNameEmpty
	}

	return nil
}

// BeforeDelete refuses to delete units that still have events.
func (u *Unit) BeforeDelete(tx *gorm.DB) error {
	var events int64
	err := tx.Model(&Event{}).Where("unit_id = ?", u.ID).Count(&events).Error
	if err != nil {
		return err
	}

	if events > 0 {
		return fmt.Errorf("%w: a unidade possui %d evento(s)", ErrUnitHasEvents, events)
	}

	return nil
}

// FindOrCreateUnit returns the unit with the name, creating it if it does not exist.
func FindOrCreateUnit(tx *gorm.DB, name string) (Unit, bool, error) {
	unit := Unit{Name: strings.TrimSpace(name)}
	if unit.Name == "" {
		return Unit{}, false, ErrUnitNameEmpty
	}

	result := tx.Where("name = ?", unit.Name).Limit(1).Find(&unit)
	if result.Error != nil {
		return Unit{}, false, result.Error
	}

	if result.RowsAffected > 0 {
		return unit, false, nil
	}

	if err := tx.Create(&unit).Error; err != nil {
		return Unit{}, false, err
	}

	return unit, true, nil
}

// Schema returns the wire representation of the unit. Events are
// only included if they have been loaded.
func (u Unit) Schema() schema.Unit {
	unit := schema.Unit{
		ID:        u.ID.String(),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}

	if u.Events != nil {
		unit.Events = make([]schema.Event, 0, len(u.Events))
		for _, event := range u.Events {
			unit.Events = append(unit.Events, event.Schema())
		}
	}

	return unit
}
