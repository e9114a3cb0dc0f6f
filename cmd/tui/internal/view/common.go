package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel carries the terminal dimensions shared by every rental-desk
// screen.
type CommonModel struct {
	Width  int
	Height int
}

// BackMsg tells the menu to take over again when a screen is dismissed.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
