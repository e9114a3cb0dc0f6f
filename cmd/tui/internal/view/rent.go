package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jlopezga/dvdrental/internal/rental"
)

type rentState int

const (
	rentStateForm rentState = iota
	rentStateSubmitting
	rentStateResult
)

type RentModel struct {
	CommonModel
	rentalService *rental.Service

	state rentState
	form  *huh.Form

	// Form bindings
	formCustomer  string
	formStaff     string
	formFilm      string
	formInventory string

	created *rental.Created
	err     error
}

func NewRentModel(rentalSvc *rental.Service) RentModel {
	m := RentModel{rentalService: rentalSvc}
	m.form = m.newForm()

	return m
}

func (m RentModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("customer_id").
				Title("Customer ID").
				Value(&m.formCustomer).
				Validate(requiredID("customer id")),

			huh.NewInput().
				Key("staff_id").
				Title("Staff ID").
				Value(&m.formStaff).
				Validate(requiredID("staff id")),

			huh.NewInput().
				Key("film_id").
				Title("Film ID").
				Description("Leave blank when renting a specific copy").
				Value(&m.formFilm).
				Validate(optionalID("film id")),

			huh.NewInput().
				Key("inventory_id").
				Title("Inventory ID").
				Description("Overrides the film when set").
				Value(&m.formInventory).
				Validate(optionalID("inventory id")),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m RentModel) Title() string { return "Rent a Film" }

func (m RentModel) ShortHelp() string {
	if m.state == rentStateResult {
		return "Esc: back | n: new rental"
	}

	return "Navigate form | Esc: back"
}

func (m RentModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m RentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == rentStateResult && msg.String() == "n" {
			m.state = rentStateForm
			m.created = nil
			m.err = nil
			m.formFilm = ""
			m.formInventory = ""
			m.form = m.newForm()

			return m, m.form.Init()
		}

	case rentResultMsg:
		m.state = rentStateResult
		m.created = msg.created
		m.err = msg.err

		return m, nil
	}

	if m.state != rentStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = rentStateSubmitting

	return m, m.createCmd()
}

func (m RentModel) View() string {
	switch m.state {
	case rentStateForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"Rent a Film\n\n" + m.form.View(),
		)
	case rentStateSubmitting:
		return lipgloss.NewStyle().Padding(2).Render("Creating rental...")
	case rentStateResult:
		return m.viewResult()
	}

	return ""
}

func (m RentModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
				Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(n: try again, Esc: back)",
		)
	}

	c := m.created
	body := fmt.Sprintf(
		"Rental #%d created\n\n"+
			"Film:     %s (%s)\n"+
			"Copy:     inventory #%d\n"+
			"Customer: %s (#%d)\n"+
			"Staff:    %s (#%d)\n"+
			"Date:     %s",
		c.RentalID,
		c.FilmTitle, FormatAmount(c.RentalRate),
		c.InventoryID,
		c.CustomerName, c.CustomerID,
		c.StaffName, c.StaffID,
		FormatDate(c.RentalDate),
	)

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(body) +
			"\n\n(n: new rental, Esc: back)",
	)
}

// Messages

type rentResultMsg struct {
	created *rental.Created
	err     error
}

func (m RentModel) createCmd() tea.Cmd {
	params := rental.CreateParams{
		CustomerID:  parseID(m.form.GetString("customer_id")),
		StaffID:     parseID(m.form.GetString("staff_id")),
		FilmID:      parseID(m.form.GetString("film_id")),
		InventoryID: parseID(m.form.GetString("inventory_id")),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		created, err := m.rentalService.Create(ctx, params)

		return rentResultMsg{created: created, err: err}
	}
}

func parseID(s string) int64 {
	id, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return id
}

func requiredID(name string) func(string) error {
	return func(s string) error {
		if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil || id <= 0 {
			return fmt.Errorf("%s must be a positive number", name)
		}

		return nil
	}
}

func optionalID(name string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}

		if id, err := strconv.ParseInt(s, 10, 64); err != nil || id <= 0 {
			return fmt.Errorf("%s must be a positive number", name)
		}

		return nil
	}
}
