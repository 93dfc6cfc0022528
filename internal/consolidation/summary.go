package consolidation

import (
	"math"
	"strings"

	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/shopspring/decimal"
)

// MonthSummary aggregates the events planned for one month.
type MonthSummary struct {
	Month       types.Month     `json:"mes"`
	EventCount  int             `json:"eventos"`
	TotalPeople int             `json:"pessoas"`
	Cost        decimal.Decimal `json:"custo_estimado"`
	Events      []schema.Event  `json:"lista_eventos"`
}

// ServiceTotals counts the events requesting each service.
// An event with several flags counts towards each of them.
type ServiceTotals struct {
	MorningCoffeeBreak int `json:"coffee_break_manha"`
	AfternoonCoffee    int `json:"coffee_break_tarde"`
	Lunch              int `json:"almoco"`
	Dinner             int `json:"jantar"`
	Ceremonial         int `json:"cerimonial"`
}

// Totals are the headline figures of the dashboard.
type Totals struct {
	Events          int `json:"total_eventos"`
	People          int `json:"total_pessoas"`
	MonthsWithEvent int `json:"meses_com_eventos"`
	AveragePeople   int `json:"media_por_evento"`
}

// groupByMonth buckets events by their canonical month index.
// Events with an unknown month label are dropped.
func groupByMonth(events []schema.Event) [12][]schema.Event {
	var groups [12][]schema.Event
	for _, e := range events {
		i := types.Month(e.ExpectedMonth).Index()
		if i < 0 {
			continue
		}
		groups[i] = append(groups[i], e)
	}
	return groups
}

// SummarizeByMonth groups events by month in canonical order.
// Months without events are omitted.
func SummarizeByMonth(events []schema.Event) []MonthSummary {
	groups := groupByMonth(events)

	summaries := make([]MonthSummary, 0)
	for i, group := range groups {
		if len(group) == 0 {
			continue
		}

		summary := MonthSummary{
			Month:      types.Months[i],
			EventCount: len(group),
			Cost:       TotalCost(group),
			Events:     group,
		}
		for _, e := range group {
			summary.TotalPeople += e.ExpectedPeople
		}
		summaries = append(summaries, summary)
	}

	return summaries
}

// SummarizeServices counts the requested services over all events.
func SummarizeServices(events []schema.Event) ServiceTotals {
	var t ServiceTotals
	for _, e := range events {
		if e.MorningCoffeeBreak {
			t.MorningCoffeeBreak++
		}
		if e.AfternoonCoffee {
			t.AfternoonCoffee++
		}
		if e.Lunch {
			t.Lunch++
		}
		if e.Dinner {
			t.Dinner++
		}
		if e.Ceremonial {
			t.Ceremonial++
		}
	}
	return t
}

// MonthsPresent returns the valid months that have at least one event, in canonical order.
func MonthsPresent(events []schema.Event) []types.Month {
	months := make([]types.Month, 0)
	for i, group := range groupByMonth(events) {
		if len(group) > 0 {
			months = append(months, types.Months[i])
		}
	}
	return months
}

// IsAllMonths reports if a month filter value selects every month.
func IsAllMonths(month string) bool {
	switch strings.ToLower(strings.TrimSpace(month)) {
	case "", "all", "todos":
		return true
	}
	return false
}

// FilterByMonth returns the events planned for month. The filter operates on the raw
// label, so it can also select events whose label is not canonical.
func FilterByMonth(events []schema.Event, month string) []schema.Event {
	if IsAllMonths(month) {
		return events
	}

	filtered := make([]schema.Event, 0)
	for _, e := range events {
		if e.ExpectedMonth == month {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// CalculateTotals computes the headline figures for a set of events.
func CalculateTotals(events []schema.Event) Totals {
	t := Totals{
		Events:          len(events),
		MonthsWithEvent: len(MonthsPresent(events)),
	}

	for _, e := range events {
		t.People += e.ExpectedPeople
	}

	if t.Events > 0 {
		t.AveragePeople = int(math.Round(float64(t.People) / float64(t.Events)))
	}

	return t
}
