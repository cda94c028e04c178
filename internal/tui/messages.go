package tui

import (
	"github.com/medinventory/medinv/internal/service"
	"github.com/medinventory/medinv/models"
)

// sessionChangedMsg carries every published session state change into the
// program: hydration finishing, logins, logouts, and unauthorized teardowns.
type sessionChangedMsg struct {
	state service.SessionState
}

type loginDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type accountDeletedMsg struct {
	err error
}

type equipmentPageMsg struct {
	page models.EquipmentPage
	err  error
}

type equipmentSavedMsg struct {
	err error
}

type equipmentDeletedMsg struct {
	err error
}

type statusChangedMsg struct {
	equipment models.Equipment
	err       error
}

type teamLoadedMsg struct {
	members []models.User
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
