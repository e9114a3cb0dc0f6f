package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jlopezga/dvdrental/cmd/tui/internal/view"
	"github.com/jlopezga/dvdrental/internal/config"
	"github.com/jlopezga/dvdrental/internal/database"
	"github.com/jlopezga/dvdrental/internal/rental"
	rentalStore "github.com/jlopezga/dvdrental/internal/rental/store"
	"github.com/jlopezga/dvdrental/internal/report"
	reportStore "github.com/jlopezga/dvdrental/internal/report/store"
)

type model struct {
	rentalService *rental.Service
	reportService *report.Service

	currentView View

	rentView     view.RentModel
	returnView   view.ReturnModel
	cancelView   view.CancelModel
	customerView view.CustomerModel
	reportsView  view.ReportsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewRent     View = 1
	ViewReturn   View = 2
	ViewCancel   View = 3
	ViewCustomer View = 4
	ViewReports  View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	rentalSvc := rental.NewService(rentalStore.New(db))
	reportSvc := report.NewService(reportStore.New(db))

	return model{
		rentalService: rentalSvc,
		reportService: reportSvc,
		currentView:   ViewMenu,
		rentView:      view.NewRentModel(rentalSvc),
		returnView:    view.NewReturnModel(rentalSvc),
		cancelView:    view.NewCancelModel(rentalSvc),
		customerView:  view.NewCustomerModel(rentalSvc),
		reportsView:   view.NewReportsModel(reportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewRent
				m.rentView = view.NewRentModel(m.rentalService)

				return m, m.rentView.Init()
			case "2":
				m.currentView = ViewReturn
				m.returnView = view.NewReturnModel(m.rentalService)

				return m, m.returnView.Init()
			case "3":
				m.currentView = ViewCancel
				m.cancelView = view.NewCancelModel(m.rentalService)

				return m, m.cancelView.Init()
			case "4":
				m.currentView = ViewCustomer
				m.customerView = view.NewCustomerModel(m.rentalService)

				return m, m.customerView.Init()
			case "5":
				m.currentView = ViewReports
				m.reportsView = view.NewReportsModel(m.reportService)

				return m, m.reportsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewRent:
		var newModel tea.Model
		newModel, cmd = m.rentView.Update(msg)
		m.rentView = newModel.(view.RentModel)
	case ViewReturn:
		var newModel tea.Model
		newModel, cmd = m.returnView.Update(msg)
		m.returnView = newModel.(view.ReturnModel)
	case ViewCancel:
		var newModel tea.Model
		newModel, cmd = m.cancelView.Update(msg)
		m.cancelView = newModel.(view.CancelModel)
	case ViewCustomer:
		var newModel tea.Model
		newModel, cmd = m.customerView.Update(msg)
		m.customerView = newModel.(view.CustomerModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"DVD Rental Desk\n\n" +
				"1. Rent a Film\n" +
				"2. Process Return\n" +
				"3. Cancel Rental\n" +
				"4. Customer Rentals\n" +
				"5. Reports\n\n" +
				"q. Quit",
		)
	case ViewRent:
		return m.rentView.View()
	case ViewReturn:
		return m.returnView.View()
	case ViewCancel:
		return m.cancelView.View()
	case ViewCustomer:
		return m.customerView.View()
	case ViewReports:
		return m.reportsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
