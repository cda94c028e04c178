package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/medinventory/medinv/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// renderStatus renders an equipment status badge in the color assigned by
// the shared display table.
func renderStatus(s models.EquipmentStatus) string {
	d := s.Display()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render(d.Label)
}

// renderRole renders a role badge in the color assigned by the shared
// display table.
func renderRole(r models.Role) string {
	d := r.Display()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color)).Render(d.Label)
}
