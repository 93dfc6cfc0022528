// Package schema contains the JSON wire format shared by the API and its clients.
//
// Field names are the ones the event calendar has always used on the wire, so they
// are Portuguese. Binding tags are evaluated by the API only.
package schema

import "time"

// EventEditable contains the fields of an event that are sent with a form submission.
type EventEditable struct {
	Name               string `json:"nome" yaml:"nome" binding:"required,max=255" example:"Reunião de planejamento"`
	ResponsibleUnit    string `json:"unidade_responsavel" yaml:"unidade_responsavel" binding:"required,max=255" example:"SEAD - Secretaria de Administração"`
	RequesterName      string `json:"nome_solicitante" yaml:"nome_solicitante" binding:"max=255" example:"Maria Souza"`
	ExpectedPeople     int    `json:"quantidade_pessoas" yaml:"quantidade_pessoas" binding:"gt=0" example:"40"`
	ExpectedMonth      string `json:"mes_previsto" yaml:"mes_previsto" binding:"required,max=50" example:"Agosto"`
	MorningCoffeeBreak bool   `json:"coffee_break_manha" yaml:"coffee_break_manha" example:"true"`
	AfternoonCoffee    bool   `json:"coffee_break_tarde" yaml:"coffee_break_tarde" example:"false"`
	Lunch              bool   `json:"almoco" yaml:"almoco" example:"true"`
	Dinner             bool   `json:"jantar" yaml:"jantar" example:"false"`
	Ceremonial         bool   `json:"cerimonial" yaml:"cerimonial" example:"false"`
}

// Event is a persisted event as returned by the API.
type Event struct {
	ID string `json:"id,omitempty" example:"0f0ad1c6-8a4d-43f8-8d2b-6d0b53d5d0c1"`
	EventEditable
	Approved  bool       `json:"aprovado" example:"false"` // Set by the budget office, absent means not approved
	UnitID    string     `json:"unidade_id,omitempty" example:"6e1a3c0f-1b8e-4c55-a0c8-7a5f0f1e2d3b"`
	CreatedAt *time.Time `json:"created_at,omitempty" example:"2025-03-02T19:28:44.491514Z"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" example:"2025-03-04T20:14:01.048145Z"`
}

// FormSubmission is the body of POST /eventos.
type FormSubmission struct {
	UnitName      string          `json:"nome_unidade" binding:"required,max=255" example:"SEAD - Secretaria de Administração"`
	RequesterName string          `json:"nome_solicitante" binding:"required,max=255" example:"Maria Souza"`
	Events        []EventEditable `json:"eventos" binding:"required,min=1,dive"`
}

// SubmissionData describes what a successful submission created.
type SubmissionData struct {
	UnitID     string `json:"unidade_id" example:"6e1a3c0f-1b8e-4c55-a0c8-7a5f0f1e2d3b"`
	EventCount int    `json:"eventos_count" example:"3"`
}

// SubmissionResponse is the response to a successful POST /eventos.
type SubmissionResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message" example:"Formulário submetido com sucesso. 3 eventos criados."`
	Data    SubmissionData `json:"data"`
}

// Approval is the body of PATCH /eventos/{id}.
type Approval struct {
	Approved *bool `json:"aprovado" binding:"required" example:"true"`
}

// EventUpdate is the body of PUT /eventos/{id}. Fields left out are not changed.
type EventUpdate struct {
	Name               *string `json:"nome,omitempty" binding:"omitempty,max=255" example:"Reunião de planejamento"`
	ResponsibleUnit    *string `json:"unidade_responsavel,omitempty" binding:"omitempty,max=255" example:"SEAD - Secretaria de Administração"`
	RequesterName      *string `json:"nome_solicitante,omitempty" binding:"omitempty,max=255" example:"Maria Souza"`
	ExpectedPeople     *int    `json:"quantidade_pessoas,omitempty" example:"40"`
	ExpectedMonth      *string `json:"mes_previsto,omitempty" binding:"omitempty,max=50" example:"Agosto"`
	MorningCoffeeBreak *bool   `json:"coffee_break_manha,omitempty" example:"true"`
	AfternoonCoffee    *bool   `json:"coffee_break_tarde,omitempty" example:"false"`
	Lunch              *bool   `json:"almoco,omitempty" example:"true"`
	Dinner             *bool   `json:"jantar,omitempty" example:"false"`
	Ceremonial         *bool   `json:"cerimonial,omitempty" example:"false"`
}

// UnitEditable is the body of POST /unidades and PUT /unidades/{id}.
type UnitEditable struct {
	Name string `json:"nome_unidade" binding:"required,max=255" example:"SEAD - Secretaria de Administração"`
}

// Unit is an organizational unit that requested events.
type Unit struct {
	ID        string    `json:"id" example:"6e1a3c0f-1b8e-4c55-a0c8-7a5f0f1e2d3b"`
	Name      string    `json:"nome_unidade" example:"SEAD - Secretaria de Administração"`
	CreatedAt time.Time `json:"created_at" example:"2025-03-02T19:28:44.491514Z"`
	Events    []Event   `json:"eventos,omitempty"`
}

// Statistics is the response of GET /eventos/stats/resumo.
type Statistics struct {
	TotalEvents     int            `json:"total_eventos" example:"12"`
	TotalUnits      int            `json:"total_unidades" example:"3"`
	EventsByMonth   map[string]int `json:"eventos_por_mes"`
	PeopleByMonth   map[string]int `json:"pessoas_por_mes"`
	ServiceRequests map[string]int `json:"servicos_mais_solicitados"`
}

// VehicleEditable contains the fields of a fleet vehicle that can be set on creation.
type VehicleEditable struct {
	Model           string     `json:"modelo" binding:"required,max=100" example:"Fiat Strada"`
	Plate           string     `json:"placa" binding:"required,max=10" example:"QWE1A23"`
	Mileage         int        `json:"quilometragem" binding:"gte=0" example:"45210"`
	NextMaintenance int        `json:"proxima_manutencao" binding:"gte=0" example:"50000"`
	LastCleaning    *time.Time `json:"ultima_limpeza,omitempty" example:"2025-05-01T00:00:00Z"` // Defaults to the day of creation
}

// Vehicle is a fleet vehicle as returned by the API.
type Vehicle struct {
	ID string `json:"id" example:"a1d6c7f3-8f59-4f6d-8f7e-2c6d3b1f9e10"`
	VehicleEditable
	MaintenanceDue bool `json:"manutencao_pendente" example:"false"` // Mileage reached the next maintenance threshold
	CleaningDue    bool `json:"limpeza_pendente" example:"true"`     // Last cleaning is more than 30 days ago
}

// Health is the response of GET /health.
type Health struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"API is running properly!"`
}

// ErrorBody is the body the API sends with every error status.
type ErrorBody struct {
	Detail string              `json:"detail" example:"Mês inválido: Smarch"`
	Errors map[string][]string `json:"errors,omitempty"`
}
