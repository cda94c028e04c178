package tui

import (
	"fmt"

	"github.com/medinventory/medinv/models"
)

type dashboardModel struct {
	items  []string
	idx    int
	notice string
}

func newDashboardModel() dashboardModel {
	return dashboardModel{items: []string{"Equipment", "Team", "Profile"}}
}

func (m dashboardModel) view(user *models.User) string {
	out := ""
	if user != nil {
		out += fmt.Sprintf("[%s] %s · %s\n\n", user.Initials(), valueOrDash(user.Name), renderRole(user.Role))
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}

	if m.notice != "" {
		out += "\n" + noticeStyle.Render(m.notice) + "\n"
	}

	return renderPage("MedInventory", out, "enter: open │ L: sign out │ q: quit")
}
