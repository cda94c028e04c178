package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/medinventory/medinv/models"
)

// registerModel holds the account creation form. The role is picked with
// left/right instead of typed, so only known roles can be submitted.
type registerModel struct {
	inputs     []textinput.Model
	focus      int
	roleIdx    int
	submitting bool
}

const (
	registerFieldName = iota
	registerFieldUsername
	registerFieldEmail
	registerFieldPassword
	registerFieldRepeat
)

func newRegisterModel() registerModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "full name"
	nameInput.CharLimit = 128
	nameInput.Width = 40
	nameInput.Focus()

	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40

	emailInput := textinput.New()
	emailInput.Placeholder = "email (optional)"
	emailInput.CharLimit = 128
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat password"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return registerModel{
		inputs: []textinput.Model{nameInput, usernameInput, emailInput, passwordInput, repeatInput},
	}
}

func (m registerModel) role() models.Role {
	roles := models.Roles()
	return roles[m.roleIdx%len(roles)]
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString(fieldRow("Name", "["+m.inputs[registerFieldName].View()+"]"))
	b.WriteString("\n")
	b.WriteString(fieldRow("Username", "["+m.inputs[registerFieldUsername].View()+"]"))
	b.WriteString("\n")
	b.WriteString(fieldRow("Email", "["+m.inputs[registerFieldEmail].View()+"]"))
	b.WriteString("\n")
	b.WriteString(fieldRow("Password", "["+m.inputs[registerFieldPassword].View()+"]"))
	b.WriteString("\n")
	b.WriteString(fieldRow("Repeat", "["+m.inputs[registerFieldRepeat].View()+"]"))
	b.WriteString("\n")
	b.WriteString(fieldRow("Role", "< "+renderRole(m.role())+" >"))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ←/→: role │ enter: submit")
}
