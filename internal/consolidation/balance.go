package consolidation

import (
	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/shopspring/decimal"
)

// BalancePoint is the state of the contract after the events of a month.
type BalancePoint struct {
	Month            types.Month     `json:"mes"`
	Consumed         decimal.Decimal `json:"consumido"`          // Cost of all events of the month
	ApprovedConsumed decimal.Decimal `json:"consumido_aprovado"` // Cost of the approved events of the month
	Balance          decimal.Decimal `json:"saldo"`              // Running balance over all events
	ApprovedBalance  decimal.Decimal `json:"saldo_aprovado"`     // Running balance over approved events
}

// ContractBalance computes the running contract balance for every month in canonical order.
//
// The result always has twelve points. Months without events carry the previous balance.
func ContractBalance(start decimal.Decimal, events []schema.Event) []BalancePoint {
	groups := groupByMonth(events)

	points := make([]BalancePoint, 0, len(types.Months))
	balance, approvedBalance := start, start

	for i, group := range groups {
		consumed := TotalCost(group)
		approvedConsumed := TotalCost(approved(group))

		balance = balance.Sub(consumed)
		approvedBalance = approvedBalance.Sub(approvedConsumed)

		points = append(points, BalancePoint{
			Month:            types.Months[i],
			Consumed:         consumed,
			ApprovedConsumed: approvedConsumed,
			Balance:          balance,
			ApprovedBalance:  approvedBalance,
		})
	}

	return points
}

// ContractExecution is the overall state of the catering contract.
type ContractExecution struct {
	Start            decimal.Decimal `json:"valor_inicial"`
	Consumed         decimal.Decimal `json:"consumo_solicitado"`
	Balance          decimal.Decimal `json:"saldo_restante"`
	ApprovedConsumed decimal.Decimal `json:"consumo_aprovado"`
	ApprovedBalance  decimal.Decimal `json:"saldo_aprovado"`
	Months           []BalancePoint  `json:"meses"`
}

// approved returns the approved events.
func approved(events []schema.Event) []schema.Event {
	filtered := make([]schema.Event, 0, len(events))
	for _, e := range events {
		if e.Approved {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Execute computes the contract execution for a starting value.
//
// The requested consumption only counts events planned for a canonical month,
// so it always matches the last balance point. The approved consumption counts
// every approved event, whatever its month label.
func Execute(start decimal.Decimal, events []schema.Event) ContractExecution {
	months := ContractBalance(start, events)

	consumed := decimal.Zero
	for _, p := range months {
		consumed = consumed.Add(p.Consumed)
	}
	approvedConsumed := TotalCost(approved(events))

	return ContractExecution{
		Start:            start,
		Consumed:         consumed,
		Balance:          start.Sub(consumed),
		ApprovedConsumed: approvedConsumed,
		ApprovedBalance:  start.Sub(approvedConsumed),
		Months:           months,
	}
}
