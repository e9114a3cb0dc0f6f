package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jlopezga/dvdrental/internal/rental"
)

type returnState int

const (
	returnStateForm returnState = iota
	returnStateSubmitting
	returnStateResult
)

type ReturnModel struct {
	CommonModel
	rentalService *rental.Service

	state returnState
	form  *huh.Form

	formRental string

	settlement *rental.Settlement
	err        error
}

func NewReturnModel(rentalSvc *rental.Service) ReturnModel {
	m := ReturnModel{rentalService: rentalSvc}
	m.form = m.newForm()

	return m
}

func (m ReturnModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("rental_id").
				Title("Rental ID").
				Value(&m.formRental).
				Validate(requiredID("rental id")),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m ReturnModel) Title() string { return "Process Return" }

func (m ReturnModel) ShortHelp() string {
	if m.state == returnStateResult {
		return "Esc: back | n: another return"
	}

	return "Enter: submit | Esc: back"
}

func (m ReturnModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ReturnModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == returnStateResult && msg.String() == "n" {
			m.state = returnStateForm
			m.settlement = nil
			m.err = nil
			m.formRental = ""
			m.form = m.newForm()

			return m, m.form.Init()
		}

	case returnResultMsg:
		m.state = returnStateResult
		m.settlement = msg.settlement
		m.err = msg.err

		return m, nil
	}

	if m.state != returnStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = returnStateSubmitting

	return m, m.returnCmd()
}

func (m ReturnModel) View() string {
	switch m.state {
	case returnStateForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"Process Return\n\n" + m.form.View(),
		)
	case returnStateSubmitting:
		return lipgloss.NewStyle().Padding(2).Render("Settling rental...")
	case returnStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ReturnModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
				Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(n: try again, Esc: back)",
		)
	}

	s := m.settlement
	receipt := fmt.Sprintf(
		"Return settled, payment #%d\n\n"+
			"Film:       %s\n"+
			"Rented:     %s\n"+
			"Returned:   %s\n"+
			"Days:       %d\n"+
			"Daily rate: %s\n"+
			"Total:      %s",
		s.PaymentID,
		s.FilmTitle,
		FormatDate(s.RentalDate),
		FormatDate(s.ReturnDate),
		s.DaysRented,
		FormatAmount(s.RentalRate),
		FormatAmount(s.TotalAmount),
	)

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(receipt)

	return style.Render(panel + "\n\n(n: another return, Esc: back)")
}

// Messages

type returnResultMsg struct {
	settlement *rental.Settlement
	err        error
}

func (m ReturnModel) returnCmd() tea.Cmd {
	rentalID := parseID(m.form.GetString("rental_id"))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		settlement, err := m.rentalService.Return(ctx, rentalID)

		return returnResultMsg{settlement: settlement, err: err}
	}
}
