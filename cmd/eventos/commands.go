package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/sead-eventos/backend/internal/consolidation"
	"github.com/sead-eventos/backend/internal/form"
	"github.com/sead-eventos/backend/internal/gate"
	"github.com/sead-eventos/backend/internal/report"
	"github.com/sead-eventos/backend/internal/types"
	"github.com/sead-eventos/backend/pkg/client"
	"github.com/sead-eventos/backend/pkg/schema"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var errUsage = errors.New("usage")

type command struct {
	name string
	help string
	run  func(a *app, ctx context.Context, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"saude", "Verifica se a API está disponível", (*app).health},
		{"enviar", "Envia um formulário a partir de um arquivo YAML", (*app).submit},
		{"eventos", "Lista os eventos, opcionalmente de um mês", (*app).events},
		{"consolidar", "Mostra o painel de consolidação", (*app).consolidate},
		{"frotas", "Lista os veículos da frota", (*app).vehicles},
		{"frotas-adicionar", "Cadastra um veículo na frota", (*app).addVehicle},
	}
}

type app struct {
	in  io.Reader
	out io.Writer

	// readPassword reads the gate password without echo
	readPassword func() (string, error)

	client *client.Client
	now    func() time.Time
}

func newApp(in io.Reader, out io.Writer) *app {
	a := &app{in: in, out: out, now: time.Now}
	a.readPassword = func() (string, error) {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			password, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Fprintln(a.out)
			return string(password), err
		}

		line, err := bufio.NewReader(a.in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
	return a
}

func (a *app) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("eventos", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	api := fs.String("api", os.Getenv("EVENTOS_API_URL"), "API origin")
	noRetry := fs.Bool("sem-repeticao", false, "Do not retry failed connections")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		return errUsage
	}

	if a.client == nil {
		a.client = client.New(*api, client.WithRetry(!*noRetry))
	}

	name := fs.Arg(0)
	for _, c := range commands {
		if c.name == name {
			return c.run(a, ctx, fs.Args()[1:])
		}
	}

	return fmt.Errorf("comando desconhecido: %s", name)
}

// failed turns a failed result into an error with the message for the user.
func failed[T any](r client.Result[T]) error {
	if r.Success {
		return nil
	}
	return errors.New(r.Text())
}

func (a *app) health(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("saude", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := a.client.Health(ctx)
	if err := failed(r); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s\n", r.Data.Status, r.Data.Message)
	return nil
}

func (a *app) submit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("enviar", flag.ContinueOnError)
	path := fs.String("arquivo", "", "YAML file with the form")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return errors.New("informe o arquivo do formulário com -arquivo")
	}

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	session, err := form.LoadYAML(f)
	if err != nil {
		return err
	}

	r, err := session.Submit(ctx, a.client)
	if err != nil {
		return err
	}

	if err := failed(r); err != nil {
		return err
	}

	fmt.Fprintln(a.out, r.Data.Message)
	return nil
}

// currentMonth is the month filter value that selects the month of today.
const currentMonth = "atual"

// resolveMonth replaces the current month keyword with the label of the month of today.
func (a *app) resolveMonth(month string) string {
	if strings.EqualFold(strings.TrimSpace(month), currentMonth) {
		return types.MonthOf(a.now()).String()
	}
	return month
}

func (a *app) fetchEvents(ctx context.Context, month string) ([]schema.Event, error) {
	if consolidation.IsAllMonths(month) {
		r := a.client.Events(ctx)
		return r.Data, failed(r)
	}

	m, err := types.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	r := a.client.EventsByMonth(ctx, m.String())
	return r.Data, failed(r)
}

func (a *app) events(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("eventos", flag.ContinueOnError)
	month := fs.String("mes", "", "Month to list, \"atual\" for the current one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	events, err := a.fetchEvents(ctx, a.resolveMonth(*month))
	if err != nil {
		return err
	}

	return report.Events(a.out, events)
}

func (a *app) consolidate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("consolidar", flag.ContinueOnError)
	month := fs.String("mes", "", "Month to consolidate, \"atual\" for the current one")
	total := fs.String("orcamento", consolidation.DefaultContractTotal.StringFixed(2), "Contract total")
	password := fs.String("senha", "", "Password of the consolidation view")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := decimal.NewFromString(*total)
	if err != nil || !start.IsPositive() {
		return fmt.Errorf("orçamento inválido: %s", *total)
	}

	*month = a.resolveMonth(*month)
	if !consolidation.IsAllMonths(*month) {
		if _, err := types.ParseMonth(*month); err != nil {
			return err
		}
	}

	g := gate.New(os.Getenv("EVENTOS_SENHA"))
	input := *password
	if input == "" {
		fmt.Fprint(a.out, "Senha: ")
		if input, err = a.readPassword(); err != nil {
			return err
		}
	}

	if err := g.Unlock(input); err != nil {
		return err
	}

	var events []schema.Event
	var units []schema.Unit
	// A failed fetch cancels the other one; the dashboard needs both.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		r := a.client.Events(egCtx)
		events = r.Data
		return failed(r)
	})
	eg.Go(func() error {
		r := a.client.Units(egCtx)
		units = r.Data
		return failed(r)
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	d := consolidation.Consolidate(start, events, *month)
	if err := report.Dashboard(a.out, d); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nUnidades cadastradas: %d\n", len(units))
	return nil
}

func (a *app) vehicles(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("frotas", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := a.client.Vehicles(ctx)
	if err := failed(r); err != nil {
		return err
	}

	return report.Vehicles(a.out, r.Data)
}

func (a *app) addVehicle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("frotas-adicionar", flag.ContinueOnError)
	model := fs.String("modelo", "", "Model of the vehicle")
	plate := fs.String("placa", "", "Plate of the vehicle")
	mileage := fs.Int("km", 0, "Current mileage")
	next := fs.Int("proxima-manutencao", 0, "Mileage of the next maintenance")
	cleaning := fs.String("ultima-limpeza", "", "Date of the last cleaning (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	vehicle := schema.VehicleEditable{
		Model:           *model,
		Plate:           *plate,
		Mileage:         *mileage,
		NextMaintenance: *next,
	}

	if *cleaning != "" {
		t, err := time.Parse(time.DateOnly, *cleaning)
		if err != nil {
			return fmt.Errorf("data de limpeza inválida: %s", *cleaning)
		}
		vehicle.LastCleaning = &t
	}

	r := a.client.CreateVehicle(ctx, vehicle)
	if err := failed(r); err != nil {
		return err
	}

	return report.Vehicles(a.out, []schema.Vehicle{r.Data})
}
