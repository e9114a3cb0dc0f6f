package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jlopezga/dvdrental/internal/rental"
)

type customerState int

const (
	customerStateForm customerState = iota
	customerStateLoading
	customerStateBrowse
)

var statusFilters = []rental.StatusFilter{
	rental.FilterAll,
	rental.FilterActive,
	rental.FilterReturned,
}

var statusLabels = []string{"All", "Active", "Returned"}

type CustomerModel struct {
	CommonModel
	rentalService *rental.Service

	state customerState
	form  *huh.Form
	table table.Model

	formCustomer string
	customerID   int64
	filterIdx    int

	customer *rental.Customer
	rentals  []rental.CustomerRental
	err      error
}

func NewCustomerModel(rentalSvc *rental.Service) CustomerModel {
	columns := []table.Column{
		{Title: "ID", Width: 7},
		{Title: "Rented", Width: 12},
		{Title: "Returned", Width: 12},
		{Title: "Title", Width: 30},
		{Title: "Category", Width: 14},
		{Title: "Rate", Width: 8},
		{Title: "Days", Width: 5},
		{Title: "Status", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := CustomerModel{rentalService: rentalSvc, table: t}
	m.form = m.newForm()

	return m
}

func (m CustomerModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("customer_id").
				Title("Customer ID").
				Value(&m.formCustomer).
				Validate(requiredID("customer id")),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m CustomerModel) Title() string { return "Customer Rentals" }

func (m CustomerModel) ShortHelp() string {
	if m.state == customerStateBrowse {
		return "Esc: back | s: status filter | r: refresh"
	}

	return "Enter: look up | Esc: back"
}

func (m CustomerModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m CustomerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case customerRentalsMsg:
		m.state = customerStateBrowse
		m.err = msg.err
		m.customer = msg.customer
		m.rentals = msg.rentals
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case customerStateForm:
		return m.updateForm(msg)
	case customerStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m CustomerModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.customerID = parseID(m.form.GetString("customer_id"))
	m.state = customerStateLoading

	return m, m.loadCmd()
}

func (m CustomerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = customerStateForm
			m.err = nil
			m.formCustomer = ""
			m.form = m.newForm()

			return m, m.form.Init()
		case "s":
			m.filterIdx = (m.filterIdx + 1) % len(statusFilters)
			m.state = customerStateLoading

			return m, m.loadCmd()
		case "r":
			m.state = customerStateLoading
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CustomerModel) View() string {
	switch m.state {
	case customerStateForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"Customer Rentals\n\n" + m.form.View(),
		)
	case customerStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading rentals...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
				Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	header := fmt.Sprintf(
		"%s %s <%s> | %d rentals | [s] Status: %s",
		m.customer.FirstName, m.customer.LastName, m.customer.Email,
		len(m.rentals),
		activeStyle(statusLabels[m.filterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *CustomerModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rentals))
	for _, r := range m.rentals {
		returned := "-"
		if r.ReturnDate != nil {
			returned = FormatDate(*r.ReturnDate)
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.RentalID),
			FormatDate(r.RentalDate),
			returned,
			r.FilmTitle,
			r.Category,
			FormatAmount(r.RentalRate),
			fmt.Sprintf("%d", r.DaysRented),
			r.Status,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type customerRentalsMsg struct {
	customer *rental.Customer
	rentals  []rental.CustomerRental
	err      error
}

func (m CustomerModel) loadCmd() tea.Cmd {
	customerID := m.customerID
	status := statusFilters[m.filterIdx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		customer, rentals, err := m.rentalService.CustomerRentals(ctx, customerID, status)

		return customerRentalsMsg{customer: customer, rentals: rentals, err: err}
	}
}
