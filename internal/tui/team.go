package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/medinventory/medinv/models"
)

type teamModel struct {
	members []models.User
	idx     int
	loading bool
	spinner spinner.Model
}

func newTeamModel() teamModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return teamModel{spinner: s, loading: true}
}

func (m teamModel) current() (models.User, bool) {
	if len(m.members) == 0 || m.idx < 0 || m.idx >= len(m.members) {
		return models.User{}, false
	}
	return m.members[m.idx], true
}

func (m teamModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.members) == 0:
		b.WriteString("No accounts yet\n")
	default:
		for i, member := range m.members {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s[%s] %-24s %s\n",
				cursor, member.Initials(), fitText(valueOrDash(member.Name), 24), renderRole(member.Role)))
		}

		if member, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(fieldRow("Username", valueOrDash(member.Username)) + "\n")
			b.WriteString(fieldRow("Email", valueOrDash(member.Email)) + "\n")
			b.WriteString(fieldRow("Joined", dateOrDash(member.CreatedAt)) + "\n")
		}
	}

	return renderPage("TEAM", strings.TrimRight(b.String(), "\n"), "r: reload │ esc: back")
}
