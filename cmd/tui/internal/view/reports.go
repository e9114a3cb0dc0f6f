package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jlopezga/dvdrental/internal/report"
)

type reportTab int

const (
	reportTabUnreturned reportTab = iota
	reportTabMostRented
	reportTabStaffRevenue
	reportTabCount
)

type ReportsModel struct {
	CommonModel
	reportService *report.Service

	tab     reportTab
	loading bool
	err     error

	unreturnedTable table.Model
	unreturned      []report.UnreturnedRental
	summary         report.UnreturnedSummary

	mostRentedTable table.Model
	mostRented      []report.MostRentedFilm

	staffRevenueTable table.Model
	staffRevenue      []report.StaffRevenue
	totalRevenue      decimal.Decimal
}

func NewReportsModel(reportSvc *report.Service) ReportsModel {
	unreturned := newReportTable([]table.Column{
		{Title: "ID", Width: 7},
		{Title: "Rented", Width: 12},
		{Title: "Days", Width: 5},
		{Title: "Title", Width: 28},
		{Title: "Customer", Width: 22},
		{Title: "Staff", Width: 18},
		{Title: "Late", Width: 5},
	})

	mostRented := newReportTable([]table.Column{
		{Title: "Title", Width: 28},
		{Title: "Category", Width: 14},
		{Title: "Rating", Width: 7},
		{Title: "Rentals", Width: 8},
		{Title: "Active", Width: 7},
		{Title: "Revenue", Width: 10},
		{Title: "Last Rented", Width: 12},
	})

	staffRevenue := newReportTable([]table.Column{
		{Title: "Staff", Width: 22},
		{Title: "Store", Width: 6},
		{Title: "Rentals", Width: 8},
		{Title: "Payments", Width: 9},
		{Title: "Avg", Width: 8},
		{Title: "Revenue", Width: 10},
		{Title: "Last Payment", Width: 13},
	})

	return ReportsModel{
		reportService:     reportSvc,
		unreturnedTable:   unreturned,
		mostRentedTable:   mostRented,
		staffRevenueTable: staffRevenue,
		loading:           true,
	}
}

func newReportTable(columns []table.Column) table.Model {
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

	return t
}

func (m ReportsModel) Title() string { return "Reports" }

func (m ReportsModel) ShortHelp() string {
	return "Esc: back | tab: switch report | r: refresh"
}

func (m ReportsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsMsg:
		m.loading = false
		m.err = msg.err
		m.unreturned = msg.unreturned
		m.summary = msg.summary
		m.mostRented = msg.mostRented
		m.staffRevenue = msg.staffRevenue
		m.totalRevenue = msg.totalRevenue
		m.refreshTables()

		return m, nil

	case tea.WindowSizeMsg:
		m.unreturnedTable.SetHeight(msg.Height - 10)
		m.mostRentedTable.SetHeight(msg.Height - 10)
		m.staffRevenueTable.SetHeight(msg.Height - 10)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "tab":
			m.tab = (m.tab + 1) % reportTabCount
			return m, nil
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd

	switch m.tab {
	case reportTabUnreturned:
		m.unreturnedTable, cmd = m.unreturnedTable.Update(msg)
	case reportTabMostRented:
		m.mostRentedTable, cmd = m.mostRentedTable.Update(msg)
	case reportTabStaffRevenue:
		m.staffRevenueTable, cmd = m.staffRevenueTable.Update(msg)
	}

	return m, cmd
}

func (m ReportsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading reports...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var header string
	var tableView string

	switch m.tab {
	case reportTabUnreturned:
		header = fmt.Sprintf(
			"[tab] Report: %s | %d open, %d late, %d on time",
			activeStyle("Unreturned Films"),
			m.summary.TotalUnreturned, m.summary.LateReturns, m.summary.OnTime,
		)
		tableView = m.unreturnedTable.View()
	case reportTabMostRented:
		header = fmt.Sprintf(
			"[tab] Report: %s | top %d titles",
			activeStyle("Most Rented"),
			len(m.mostRented),
		)
		tableView = m.mostRentedTable.View()
	case reportTabStaffRevenue:
		header = fmt.Sprintf(
			"[tab] Report: %s | storewide total %s",
			activeStyle("Staff Revenue"),
			FormatAmount(m.totalRevenue),
		)
		tableView = m.staffRevenueTable.View()
	}

	framed := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(tableView)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			framed,
		),
	)
}

func (m *ReportsModel) refreshTables() {
	unreturnedRows := make([]table.Row, 0, len(m.unreturned))
	for _, r := range m.unreturned {
		late := ""
		if r.Late {
			late = "yes"
		}

		unreturnedRows = append(unreturnedRows, table.Row{
			fmt.Sprintf("%d", r.RentalID),
			FormatDate(r.RentalDate),
			fmt.Sprintf("%d", r.DaysRented),
			r.Title,
			r.CustomerName,
			r.StaffName,
			late,
		})
	}
	m.unreturnedTable.SetRows(unreturnedRows)

	mostRentedRows := make([]table.Row, 0, len(m.mostRented))
	for _, f := range m.mostRented {
		mostRentedRows = append(mostRentedRows, table.Row{
			f.Title,
			f.Category,
			f.Rating,
			fmt.Sprintf("%d", f.TotalRentals),
			fmt.Sprintf("%d", f.ActiveRentals),
			FormatAmount(f.TotalRevenue),
			FormatDate(f.LastRentalDate),
		})
	}
	m.mostRentedTable.SetRows(mostRentedRows)

	revenueRows := make([]table.Row, 0, len(m.staffRevenue))
	for _, rev := range m.staffRevenue {
		lastPayment := "-"
		if rev.LastPaymentDate != nil {
			lastPayment = FormatDate(*rev.LastPaymentDate)
		}

		revenueRows = append(revenueRows, table.Row{
			rev.StaffName,
			fmt.Sprintf("%d", rev.StoreID),
			fmt.Sprintf("%d", rev.TotalRentals),
			fmt.Sprintf("%d", rev.TotalPayments),
			FormatAmount(rev.AveragePayment),
			FormatAmount(rev.TotalRevenue),
			lastPayment,
		})
	}
	m.staffRevenueTable.SetRows(revenueRows)
}

// Messages

type reportsMsg struct {
	unreturned   []report.UnreturnedRental
	summary      report.UnreturnedSummary
	mostRented   []report.MostRentedFilm
	staffRevenue []report.StaffRevenue
	totalRevenue decimal.Decimal
	err          error
}

func (m ReportsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		unreturned, summary, err := m.reportService.Unreturned(ctx)
		if err != nil {
			return reportsMsg{err: err}
		}

		mostRented, err := m.reportService.MostRented(ctx, 0)
		if err != nil {
			return reportsMsg{err: err}
		}

		staffRevenue, totalRevenue, err := m.reportService.AllStaffRevenue(ctx, report.DateRange{})
		if err != nil {
			return reportsMsg{err: err}
		}

		return reportsMsg{
			unreturned:   unreturned,
			summary:      summary,
			mostRented:   mostRented,
			staffRevenue: staffRevenue,
			totalRevenue: totalRevenue,
		}
	}
}
