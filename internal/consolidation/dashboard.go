package consolidation

import (
	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/shopspring/decimal"
)

// Service labels used in the statistics.
const (
	ServiceMorningCoffeeBreak = "Coffee Break Manhã"
	ServiceAfternoonCoffee    = "Coffee Break Tarde"
	ServiceLunch              = "Almoço"
	ServiceDinner             = "Jantar"
	ServiceCeremonial         = "Cerimonial"
)

// Services returns the service totals keyed by their display label.
func (t ServiceTotals) Services() map[string]int {
	return map[string]int{
		ServiceMorningCoffeeBreak: t.MorningCoffeeBreak,
		ServiceAfternoonCoffee:    t.AfternoonCoffee,
		ServiceLunch:              t.Lunch,
		ServiceDinner:             t.Dinner,
		ServiceCeremonial:         t.Ceremonial,
	}
}

// Statistics computes the summary statistics of the event calendar.
//
// Events per month and people per month only contain months that have events.
func Statistics(events []schema.Event, units int) schema.Statistics {
	stats := schema.Statistics{
		TotalEvents:     len(events),
		TotalUnits:      units,
		EventsByMonth:   make(map[string]int),
		PeopleByMonth:   make(map[string]int),
		ServiceRequests: SummarizeServices(events).Services(),
	}

	for _, summary := range SummarizeByMonth(events) {
		stats.EventsByMonth[summary.Month.String()] = summary.EventCount
		stats.PeopleByMonth[summary.Month.String()] = summary.TotalPeople
	}

	return stats
}

// Dashboard contains everything the consolidation view displays.
type Dashboard struct {
	Month     string            `json:"mes_filtro"` // Empty when all months are shown
	Available []types.Month     `json:"meses_disponiveis"`
	Totals    Totals            `json:"totais"`
	Services  ServiceTotals     `json:"servicos"`
	Summaries []MonthSummary    `json:"resumo_mensal"`
	Execution ContractExecution `json:"execucao_contrato"`
}

// Consolidate builds the dashboard for the events and an optional month filter.
//
// The filter applies to the totals, service counts and month summaries.
// The contract execution is always computed over all events.
func Consolidate(start decimal.Decimal, events []schema.Event, month string) Dashboard {
	if IsAllMonths(month) {
		month = ""
	}
	filtered := FilterByMonth(events, month)

	return Dashboard{
		Month:     month,
		Available: MonthsPresent(events),
		Totals:    CalculateTotals(filtered),
		Services:  SummarizeServices(filtered),
		Summaries: SummarizeByMonth(filtered),
		Execution: Execute(start, events),
	}
}
