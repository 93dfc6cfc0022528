// Package consolidation turns a flat list of events into the aggregates shown on the
// consolidation dashboard: month summaries, service totals and the contract balance.
//
// All functions are pure. They are recomputed from the full event list on every fetch.
package consolidation

import (
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/shopspring/decimal"
)

// Unit prices of the catering contract.
var (
	PriceCoffeeBreak = decimal.NewFromInt(50)  // per person and coffee break
	PriceMeal        = decimal.NewFromInt(70)  // per person and lunch or dinner
	PriceCeremonial  = decimal.NewFromInt(990) // flat per event
)

// DefaultContractTotal is the initial value of the catering contract.
var DefaultContractTotal = decimal.RequireFromString("306741.50")

// EstimatedCost returns the estimated cost of an event.
//
// Each service flag adds its own term; there is no discount or cap.
func EstimatedCost(e schema.Event) decimal.Decimal {
	people := decimal.NewFromInt(int64(e.ExpectedPeople))
	total := decimal.Zero

	if e.MorningCoffeeBreak {
		total = total.Add(PriceCoffeeBreak.Mul(people))
	}
	if e.AfternoonCoffee {
		total = total.Add(PriceCoffeeBreak.Mul(people))
	}
	if e.Lunch {
		total = total.Add(PriceMeal.Mul(people))
	}
	if e.Dinner {
		total = total.Add(PriceMeal.Mul(people))
	}
	if e.Ceremonial {
		total = total.Add(PriceCeremonial)
	}

	return total
}

// TotalCost sums the estimated cost of all events.
func TotalCost(events []schema.Event) decimal.Decimal {
	total := decimal.Zero
	for _, e := range events {
		total = total.Add(EstimatedCost(e))
	}
	return total
}
