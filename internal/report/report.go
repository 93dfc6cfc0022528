// Package report prints the consolidation dashboard and listings as text tables.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sead-eventos/backend/internal/consolidation"
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Printer formats numbers and money for Brazilian Portuguese.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a Printer for tag. The zero tag selects Brazilian Portuguese.
func NewPrinter(tag language.Tag) Printer {
	if tag == language.Und {
		tag = language.BrazilianPortuguese
	}
	return Printer{p: message.NewPrinter(tag)}
}

// Money formats an amount in BRL with two decimals.
//
// Only the whole part goes through the locale formatter, as an integer, so large
// amounts keep their exact cents.
func (pr Printer) Money(d decimal.Decimal) string {
	d = d.Round(2)
	whole := d.Abs().Truncate(0)
	cents := d.Abs().Sub(whole).StringFixed(2)[2:]

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	return pr.p.Sprintf("%v %s%v%s%s", currency.Symbol(currency.BRL), sign, number.Decimal(whole.IntPart()), pr.decimalSeparator(), cents)
}

// decimalSeparator returns the decimal separator of the printer's locale.
func (pr Printer) decimalSeparator() string {
	s := pr.p.Sprint(number.Decimal(1.5, number.Scale(1)))
	return strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
}

// Int formats an integer with grouping separators.
func (pr Printer) Int(i int) string {
	return pr.p.Sprint(number.Decimal(i))
}

func yesNo(b bool) string {
	if b {
		return "sim"
	}
	return "não"
}

// Dashboard writes the consolidation dashboard.
func Dashboard(w io.Writer, d consolidation.Dashboard) error {
	pr := NewPrinter(language.BrazilianPortuguese)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	filter := d.Month
	if filter == "" {
		filter = "Todos os meses"
	}

	fmt.Fprintf(tw, "CONSOLIDAÇÃO DE EVENTOS\t%s\n", filter)
	fmt.Fprintf(tw, "Total de eventos\t%s\n", pr.Int(d.Totals.Events))
	fmt.Fprintf(tw, "Total de pessoas\t%s\n", pr.Int(d.Totals.People))
	fmt.Fprintf(tw, "Meses com eventos\t%s\n", pr.Int(d.Totals.MonthsWithEvent))
	fmt.Fprintf(tw, "Média por evento\t%s\n", pr.Int(d.Totals.AveragePeople))

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SERVIÇOS\tEVENTOS")
	fmt.Fprintf(tw, "%s\t%d\n", consolidation.ServiceMorningCoffeeBreak, d.Services.MorningCoffeeBreak)
	fmt.Fprintf(tw, "%s\t%d\n", consolidation.ServiceAfternoonCoffee, d.Services.AfternoonCoffee)
	fmt.Fprintf(tw, "%s\t%d\n", consolidation.ServiceLunch, d.Services.Lunch)
	fmt.Fprintf(tw, "%s\t%d\n", consolidation.ServiceDinner, d.Services.Dinner)
	fmt.Fprintf(tw, "%s\t%d\n", consolidation.ServiceCeremonial, d.Services.Ceremonial)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "MÊS\tEVENTOS\tPESSOAS\tCUSTO ESTIMADO")
	for _, s := range d.Summaries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.Month, s.EventCount, pr.Int(s.TotalPeople), pr.Money(s.Cost))
	}

	e := d.Execution
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "EXECUÇÃO DO CONTRATO\t%s\n", pr.Money(e.Start))
	fmt.Fprintf(tw, "Consumo solicitado\t%s\n", pr.Money(e.Consumed))
	fmt.Fprintf(tw, "Saldo restante\t%s\n", pr.Money(e.Balance))
	fmt.Fprintf(tw, "Consumo aprovado\t%s\n", pr.Money(e.ApprovedConsumed))
	fmt.Fprintf(tw, "Saldo aprovado\t%s\n", pr.Money(e.ApprovedBalance))

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "MÊS\tCONSUMIDO\tSALDO\tCONSUMIDO APROVADO\tSALDO APROVADO")
	for _, p := range e.Months {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Month, pr.Money(p.Consumed), pr.Money(p.Balance), pr.Money(p.ApprovedConsumed), pr.Money(p.ApprovedBalance))
	}

	return tw.Flush()
}

// Events writes a listing of events with their estimated cost.
func Events(w io.Writer, events []schema.Event) error {
	pr := NewPrinter(language.BrazilianPortuguese)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "MÊS\tEVENTO\tUNIDADE\tPESSOAS\tAPROVADO\tCUSTO ESTIMADO")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ExpectedMonth, e.Name, e.ResponsibleUnit, pr.Int(e.ExpectedPeople), yesNo(e.Approved), pr.Money(consolidation.EstimatedCost(e)))
	}

	return tw.Flush()
}

// Vehicles writes the fleet.
func Vehicles(w io.Writer, vehicles []schema.Vehicle) error {
	pr := NewPrinter(language.BrazilianPortuguese)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "PLACA\tMODELO\tKM\tPRÓXIMA MANUTENÇÃO\tMANUTENÇÃO PENDENTE\tLIMPEZA PENDENTE")
	for _, v := range vehicles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", v.Plate, v.Model, pr.Int(v.Mileage), pr.Int(v.NextMaintenance), yesNo(v.MaintenanceDue), yesNo(v.CleaningDue))
	}

	return tw.Flush()
}
