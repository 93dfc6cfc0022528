package models

import (
	"errors"
	"strings"
	"time"

	"github.com/sead-eventos/backend/pkg/schema"
	"gorm.io/gorm"
)

// CleaningInterval is the time after which a vehicle needs cleaning again.
const CleaningInterval = 30 * 24 * time.Hour

// Vehicle is a vehicle of the fleet.
type Vehicle struct {
	DefaultModel
	Model           string
	Plate           string `gorm:"uniqueIndex"`
	Mileage         int    // in km
	NextMaintenance int    // Mileage at which the next maintenance is due
	LastCleaning    time.Time
}

var (
	ErrVehicleModelEmpty      = errors.New("o modelo do veículo é obrigatório")
	ErrVehiclePlateEmpty      = errors.New("a placa do veículo é obrigatória")
	ErrVehiclePlateNotUnique  = errors.New("já existe um veículo com esta placa")
	ErrVehicleMileageNegative = errors.New("a quilometragem não pode ser negativa")
	ErrVehicleNextMaintenance = errors.New("a quilometragem da próxima manutenção não pode ser negativa")
)

// NewVehicle creates a vehicle from its wire representation.
func NewVehicle(v schema.VehicleEditable) Vehicle {
	vehicle := Vehicle{
		Model:           v.Model,
		Plate:           v.Plate,
		Mileage:         v.Mileage,
		NextMaintenance: v.NextMaintenance,
	}

	if v.LastCleaning != nil {
		vehicle.LastCleaning = *v.LastCleaning
	}

	return vehicle
}

func (v *Vehicle) BeforeSave(_ *gorm.DB) error {
	v.Model = strings.TrimSpace(v.Model)
	v.Plate = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(v.Plate), " ", ""))

	if v.Model == "" {
		return ErrVehicleModelEmpty
	}

	if v.Plate == "" {
		return ErrVehiclePlateEmpty
	}

	if v.Mileage < 0 {
		return ErrVehicleMileageNegative
	}

	if v.NextMaintenance < 0 {
		return ErrVehicleNextMaintenance
	}

	if v.LastCleaning.IsZero() {
		v.LastCleaning = time.Now().In(time.UTC).Truncate(24 * time.Hour)
	}

	return nil
}

// MaintenanceDue reports if the mileage reached the next maintenance.
func (v Vehicle) MaintenanceDue() bool {
	return v.Mileage >= v.NextMaintenance
}

// CleaningDue reports if the last cleaning is more than CleaningInterval before now.
func (v Vehicle) CleaningDue(now time.Time) bool {
	return now.Sub(v.LastCleaning) > CleaningInterval
}

// Schema returns the wire representation of the vehicle.
func (v Vehicle) Schema(now time.Time) schema.Vehicle {
	cleaning := v.LastCleaning.In(time.UTC)

	return schema.Vehicle{
		ID: v.ID.String(),
		VehicleEditable: schema.VehicleEditable{
			Model:           v.Model,
			Plate:           v.Plate,
			Mileage:         v.Mileage,
			NextMaintenance: v.NextMaintenance,
			LastCleaning:    &cleaning,
		},
		MaintenanceDue: v.MaintenanceDue(),
		CleaningDue:    v.CleaningDue(now),
	}
}
