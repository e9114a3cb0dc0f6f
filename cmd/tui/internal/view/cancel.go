package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jlopezga/dvdrental/internal/rental"
)

type cancelState int

const (
	cancelStateForm cancelState = iota
	cancelStateSubmitting
	cancelStateResult
)

type CancelModel struct {
	CommonModel
	rentalService *rental.Service

	state cancelState
	form  *huh.Form

	formRental  string
	formConfirm bool

	cancelled *rental.Cancelled
	err       error
}

func NewCancelModel(rentalSvc *rental.Service) CancelModel {
	m := CancelModel{rentalService: rentalSvc}
	m.form = m.newForm()

	return m
}

func (m CancelModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("rental_id").
				Title("Rental ID").
				Value(&m.formRental).
				Validate(requiredID("rental id")),

			huh.NewConfirm().
				Key("confirm").
				Title("Cancel this rental?").
				Description("The rental record is removed, no payment is taken").
				Value(&m.formConfirm),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m CancelModel) Title() string { return "Cancel Rental" }

func (m CancelModel) ShortHelp() string {
	if m.state == cancelStateResult {
		return "Esc: back | n: another"
	}

	return "Enter: submit | Esc: back"
}

func (m CancelModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m CancelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == cancelStateResult && msg.String() == "n" {
			m.state = cancelStateForm
			m.cancelled = nil
			m.err = nil
			m.formRental = ""
			m.formConfirm = false
			m.form = m.newForm()

			return m, m.form.Init()
		}

	case cancelResultMsg:
		m.state = cancelStateResult
		m.cancelled = msg.cancelled
		m.err = msg.err

		return m, nil
	}

	if m.state != cancelStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.form.GetBool("confirm") {
		m.formRental = ""
		m.formConfirm = false
		m.form = m.newForm()

		return m, m.form.Init()
	}

	m.state = cancelStateSubmitting

	return m, m.cancelCmd()
}

func (m CancelModel) View() string {
	switch m.state {
	case cancelStateForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			"Cancel Rental\n\n" + m.form.View(),
		)
	case cancelStateSubmitting:
		return lipgloss.NewStyle().Padding(2).Render("Cancelling rental...")
	case cancelStateResult:
		return m.viewResult()
	}

	return ""
}

func (m CancelModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
				Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(n: try again, Esc: back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(
			fmt.Sprintf("Rental #%d (%s) cancelled.", m.cancelled.RentalID, m.cancelled.FilmTitle),
		) + "\n\n(n: another, Esc: back)",
	)
}

// Messages

type cancelResultMsg struct {
	cancelled *rental.Cancelled
	err       error
}

func (m CancelModel) cancelCmd() tea.Cmd {
	rentalID := parseID(m.form.GetString("rental_id"))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		cancelled, err := m.rentalService.Cancel(ctx, rentalID)

		return cancelResultMsg{cancelled: cancelled, err: err}
	}
}
