package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/medinventory/medinv/models"
)

// profileModel shows the signed-in account and doubles as the edit form.
// Only fields with changed values end up in the submitted patch.
type profileModel struct {
	editing    bool
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

const (
	profileFieldName = iota
	profileFieldUsername
	profileFieldEmail
	profileFieldPassword
)

func newProfileModel() profileModel {
	return profileModel{}
}

func (m *profileModel) startEditing(user models.User) {
	nameInput := textinput.New()
	nameInput.Placeholder = "full name"
	nameInput.CharLimit = 128
	nameInput.Width = 40
	nameInput.SetValue(user.Name)
	nameInput.Focus()

	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.SetValue(user.Username)

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 128
	emailInput.Width = 40
	emailInput.SetValue(user.Email)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "new password (leave blank to keep)"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m.editing = true
	m.inputs = []textinput.Model{nameInput, usernameInput, emailInput, passwordInput}
	m.focus = 0
}

// toPatch builds the update payload from fields that differ from the current
// record. A patch with no changes returns ok=false.
func (m profileModel) toPatch(user models.User) (models.UserPatch, bool) {
	var patch models.UserPatch
	changed := false

	if name := strings.TrimSpace(m.inputs[profileFieldName].Value()); name != user.Name {
		patch.Name = &name
		changed = true
	}
	if username := strings.TrimSpace(m.inputs[profileFieldUsername].Value()); username != user.Username {
		patch.Username = &username
		changed = true
	}
	if email := strings.TrimSpace(m.inputs[profileFieldEmail].Value()); email != user.Email {
		patch.Email = &email
		changed = true
	}
	if password := m.inputs[profileFieldPassword].Value(); password != "" {
		patch.Password = &password
		changed = true
	}

	return patch, changed
}

func (m profileModel) view(user *models.User) string {
	var b strings.Builder

	if m.editing {
		labels := []string{"Name", "Username", "Email", "Password"}
		for i, label := range labels {
			b.WriteString(fieldRow(label, "["+m.inputs[i].View()+"]"))
			b.WriteString("\n")
		}

		action := "[Save]"
		if m.submitting {
			action = "[Saving...]"
		}
		b.WriteString("\n" + action + "\n")

		return renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"),
			"esc: cancel │ tab: next field │ enter: save")
	}

	if user != nil {
		b.WriteString(fieldRow("Name", valueOrDash(user.Name)) + "\n")
		b.WriteString(fieldRow("Username", valueOrDash(user.Username)) + "\n")
		b.WriteString(fieldRow("Email", valueOrDash(user.Email)) + "\n")
		b.WriteString(fieldRow("Role", renderRole(user.Role)) + "\n")
		b.WriteString(fieldRow("Joined", dateOrDash(user.CreatedAt)) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status) + "\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		"e: edit │ d: delete account │ L: sign out │ esc: back")
}
