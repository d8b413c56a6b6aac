package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderView lays out the board, the status line and the help bar.
func (m Model) renderView() string {
	r := m.presenter.Renderer()

	boardStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	statusStyle := r.NewStyle().
		Foreground(lipgloss.Color("241"))
	outcomeStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString(boardStyle.Render(m.presenter.Render(m.screen)))
	b.WriteString("\n")

	board := m.game.Board()
	b.WriteString(statusStyle.Render(fmt.Sprintf("moves %d  max %d  seed %d", m.game.Moves(), board.MaxTile(), m.game.Seed())))
	b.WriteString("\n\n")

	if m.game.Over() {
		b.WriteString(outcomeStyle.Render(m.game.Outcome()))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("press any key to exit"))
	} else {
		b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	}

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
