// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/medinventory/medinv/internal/service"
	"github.com/medinventory/medinv/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenLoading screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenDashboard
	screenEquipmentList
	screenEquipmentDetail
	screenEquipmentForm
	screenTeam
	screenProfile
)

// appModel is the single Bubble Tea model of the client. It routes messages
// to the active screen and owns the transitions between screens; session
// changes re-check the active screen through applySession.
type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	currentScreen screen
	session       service.SessionState

	loading       loadingModel
	welcome       welcomeModel
	login         loginModel
	register      registerModel
	dashboard     dashboardModel
	equipmentList equipmentListModel
	detail        equipmentDetailModel
	form          equipmentFormModel
	team          teamModel
	profile       profileModel

	err          error
	showError    bool
	errorOverlay errorOverlayModel

	showConfirm     bool
	confirm         confirmModel
	pendingDelete   int64
	deletingAccount bool

	// expectTeardown marks a teardown the user initiated (sign-out, account
	// deletion), so the welcome screen shows the right notice instead of
	// "session expired".
	expectTeardown bool
	teardownNotice string
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenLoading,
		loading:       newLoadingModel(),
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		dashboard:     newDashboardModel(),
		equipmentList: newEquipmentListModel(),
		team:          newTeamModel(),
		profile:       newProfileModel(),
		session:       services.SessionService.Snapshot(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.spinner.Tick, m.cmdHydrate())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case sessionChangedMsg:
		return m.applySession(msg.state)
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
		}
		// Success arrives separately as a session change.
		return m, nil
	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
			return m, nil
		}
		// With auto-login enabled a session change follows and replaces the
		// welcome screen with the dashboard.
		m.welcome.notice = "Account created. Sign in with your new credentials."
		m.currentScreen = screenWelcome
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
		}
		return m, nil
	case profileSavedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
			return m, nil
		}
		m.profile.editing = false
		m.profile.status = "Profile updated"
		return m, cmdClearStatus()
	case accountDeletedMsg:
		if msg.err != nil {
			m.expectTeardown = false
			m.showErrorMessage(humanizeError(msg.err))
		}
		return m, nil
	case equipmentPageMsg:
		m.equipmentList.loading = false
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
			return m, nil
		}
		m.equipmentList.items = msg.page.Items
		m.equipmentList.total = msg.page.Total
		m.equipmentList.page = msg.page.Page
		if m.equipmentList.idx >= len(m.equipmentList.items) {
			m.equipmentList.idx = len(m.equipmentList.items) - 1
		}
		if m.equipmentList.idx < 0 {
			m.equipmentList.idx = 0
		}
		return m, nil
	case equipmentSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenEquipmentList
		m.equipmentList.loading = true
		return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
	case equipmentDeletedMsg:
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
			return m, nil
		}
		m.pendingDelete = 0
		m.currentScreen = screenEquipmentList
		m.equipmentList.loading = true
		return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
	case statusChangedMsg:
		m.detail.switching = false
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
			return m, nil
		}
		m.detail.item = msg.equipment
		m.detail.status = "Status updated"
		return m, cmdClearStatus()
	case teamLoadedMsg:
		m.team.loading = false
		if msg.err != nil {
			m.showErrorMessage(humanizeError(msg.err))
			return m, nil
		}
		m.team.members = msg.members
		if m.team.idx >= len(m.team.members) {
			m.team.idx = 0
		}
		return m, nil
	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.equipmentList.status = ""
		m.profile.status = ""
		return m, nil
	case spinner.TickMsg:
		return m.updateSpinners(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenEquipmentList:
		return m.updateEquipmentList(msg)
	case screenEquipmentDetail:
		return m.updateEquipmentDetail(msg)
	case screenEquipmentForm:
		return m.updateEquipmentForm(msg)
	case screenTeam:
		return m.updateTeam(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLoading:
		body = m.loading.View()
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenDashboard:
		body = m.dashboard.view(m.session.Session.User)
	case screenEquipmentList:
		body = m.equipmentList.View()
	case screenEquipmentDetail:
		body = m.detail.View()
	case screenEquipmentForm:
		body = m.form.View()
	case screenTeam:
		body = m.team.View()
	case screenProfile:
		body = m.profile.view(m.session.Session.User)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// applySession installs the new session state and re-checks the active
// screen against the guard. The same path handles hydration finishing, a
// login, a sign-out, and an unauthorized teardown arriving mid-screen.
func (m appModel) applySession(state service.SessionState) (tea.Model, tea.Cmd) {
	m.session = state

	if m.currentScreen == screenLoading && !state.Loading {
		if state.Session.Present() {
			m.currentScreen = screenDashboard
		} else {
			m.currentScreen = screenWelcome
		}
		return m, nil
	}

	switch checkGuard(m.currentScreen, state) {
	case guardWait:
		m.currentScreen = screenLoading
		return m, m.loading.spinner.Tick
	case guardRedirectWelcome:
		m.showConfirm = false
		m.showError = false
		m.currentScreen = screenWelcome
		if m.expectTeardown {
			m.welcome.notice = m.teardownNotice
			m.expectTeardown = false
			m.teardownNotice = ""
		} else {
			m.welcome.notice = "Session expired, sign in again."
		}
		return m, nil
	case guardRedirectDashboard:
		m.currentScreen = screenDashboard
		m.dashboard.notice = ""
		return m, nil
	default:
		return m, nil
	}
}

func (m *appModel) showErrorMessage(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.currentScreen == screenLoading:
		m.loading.spinner, cmd = m.loading.spinner.Update(msg)
	case m.currentScreen == screenEquipmentList && m.equipmentList.loading:
		m.equipmentList.spinner, cmd = m.equipmentList.spinner.Update(msg)
	case m.currentScreen == screenTeam && m.team.loading:
		m.team.spinner, cmd = m.team.spinner.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.deletingAccount {
			m.deletingAccount = false
			m.expectTeardown = true
			m.teardownNotice = "Account deleted."
			return m, m.cmdDeleteAccount()
		}
		if m.pendingDelete != 0 {
			return m, m.cmdDeleteEquipment(m.pendingDelete)
		}
		return m, nil
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = 0
		m.deletingAccount = false
	}
	return m, nil
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.welcome.notice = ""
		if m.welcome.idx == 0 {
			m.login = newLoginModel()
			m.currentScreen = screenLogin
		} else {
			m.register = newRegisterModel()
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = focusNext(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = focusPrev(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.showErrorMessage("Username and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = focusNext(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = focusPrev(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.left):
			roles := len(models.Roles())
			m.register.roleIdx = (m.register.roleIdx - 1 + roles) % roles
			return m, nil
		case key.Matches(keyMsg, keys.right):
			m.register.roleIdx = (m.register.roleIdx + 1) % len(models.Roles())
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.register.inputs[registerFieldUsername].Value())
			password := m.register.inputs[registerFieldPassword].Value()
			repeat := m.register.inputs[registerFieldRepeat].Value()
			if username == "" || password == "" {
				m.showErrorMessage("Username and password are required")
				return m, nil
			}
			if password != repeat {
				m.showErrorMessage("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Username: username,
				Name:     strings.TrimSpace(m.register.inputs[registerFieldName].Value()),
				Email:    strings.TrimSpace(m.register.inputs[registerFieldEmail].Value()),
				Password: password,
				Role:     m.register.role(),
			})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.dashboard.idx > 0 {
			m.dashboard.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.dashboard.idx < len(m.dashboard.items)-1 {
			m.dashboard.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.dashboard.idx {
		case 0:
			m.currentScreen = screenEquipmentList
			m.equipmentList.loading = true
			return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
		case 1:
			m.currentScreen = screenTeam
			m.team.loading = true
			return m, tea.Batch(m.team.spinner.Tick, m.cmdLoadTeam())
		case 2:
			m.profile = newProfileModel()
			m.currentScreen = screenProfile
		}
	case key.Matches(keyMsg, keys.logout):
		m.expectTeardown = true
		m.teardownNotice = "Signed out."
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateEquipmentList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.equipmentList.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.equipmentList.searching = false
			m.equipmentList.searchInput.Blur()
			m.equipmentList.search = strings.TrimSpace(m.equipmentList.searchInput.Value())
			m.equipmentList.page = 1
			m.equipmentList.loading = true
			return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
		case key.Matches(keyMsg, keys.esc):
			m.equipmentList.searching = false
			m.equipmentList.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.equipmentList.searchInput, cmd = m.equipmentList.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.equipmentList.idx > 0 {
			m.equipmentList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.equipmentList.idx < len(m.equipmentList.items)-1 {
			m.equipmentList.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.equipmentList.current()
		if !ok {
			return m, nil
		}
		m.detail = equipmentDetailModel{item: item}
		m.currentScreen = screenEquipmentDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newEquipmentFormModel(nil)
		m.currentScreen = screenEquipmentForm
	case key.Matches(keyMsg, keys.filter):
		m.equipmentList.statusIdx = (m.equipmentList.statusIdx + 1) % (len(models.EquipmentStatuses()) + 1)
		m.equipmentList.page = 1
		m.equipmentList.loading = true
		return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
	case key.Matches(keyMsg, keys.search):
		m.equipmentList.searching = true
		m.equipmentList.searchInput.SetValue(m.equipmentList.search)
		m.equipmentList.searchInput.Focus()
	case key.Matches(keyMsg, keys.left):
		if m.equipmentList.page > 1 {
			m.equipmentList.page--
			m.equipmentList.loading = true
			return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
		}
	case key.Matches(keyMsg, keys.right):
		if m.equipmentList.page < m.equipmentList.totalPages() {
			m.equipmentList.page++
			m.equipmentList.loading = true
			return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
		}
	case key.Matches(keyMsg, keys.refresh):
		m.equipmentList.loading = true
		return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.logout):
		m.expectTeardown = true
		m.teardownNotice = "Signed out."
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateEquipmentDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detail.picking {
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.detail.pickIdx > 0 {
				m.detail.pickIdx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.detail.pickIdx < len(models.EquipmentStatuses())-1 {
				m.detail.pickIdx++
			}
		case key.Matches(keyMsg, keys.enter):
			m.detail.picking = false
			m.detail.switching = true
			status := models.EquipmentStatuses()[m.detail.pickIdx]
			return m, m.cmdChangeStatus(m.detail.item.ID, status)
		case key.Matches(keyMsg, keys.esc):
			m.detail.picking = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenEquipmentList
		m.equipmentList.loading = true
		return m, tea.Batch(m.equipmentList.spinner.Tick, m.cmdLoadEquipment())
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.form = newEquipmentFormModel(&item)
		m.currentScreen = screenEquipmentForm
	case key.Matches(keyMsg, keys.status):
		m.detail.picking = true
		m.detail.pickIdx = 0
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.item.Name
		m.pendingDelete = m.detail.item.ID
	case key.Matches(keyMsg, keys.copy):
		if m.detail.item.SerialNumber == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.item.SerialNumber)
	}
	return m, nil
}

func (m appModel) updateEquipmentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenEquipmentDetail
			} else {
				m.currentScreen = screenEquipmentList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focus = focusNext(m.form.inputs, m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focus = focusPrev(m.form.inputs, m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.left):
			statuses := len(models.EquipmentStatuses())
			m.form.statusIdx = (m.form.statusIdx - 1 + statuses) % statuses
			return m, nil
		case key.Matches(keyMsg, keys.right):
			m.form.statusIdx = (m.form.statusIdx + 1) % len(models.EquipmentStatuses())
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			equipment := m.form.toEquipment()
			if equipment.Name == "" || equipment.Kind == "" {
				m.showErrorMessage("Name and kind are required")
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveEquipment(equipment, m.form.editing)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateTeam(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.team.idx > 0 {
			m.team.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.team.idx < len(m.team.members)-1 {
			m.team.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.team.loading = true
		return m, tea.Batch(m.team.spinner.Tick, m.cmdLoadTeam())
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.profile.editing {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.profile.editing = false
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.profile.focus = focusNext(m.profile.inputs, m.profile.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile.focus = focusPrev(m.profile.inputs, m.profile.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.profile.submitting {
				return m, nil
			}
			user := m.session.Session.User
			if user == nil {
				return m, nil
			}
			patch, changed := m.profile.toPatch(*user)
			if !changed {
				m.profile.editing = false
				return m, nil
			}
			m.profile.submitting = true
			return m, m.cmdSaveProfile(patch)
		}

		var cmd tea.Cmd
		m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.edit):
		if user := m.session.Session.User; user != nil {
			m.profile.startEditing(*user)
		}
	case key.Matches(keyMsg, keys.delete):
		if user := m.session.Session.User; user != nil {
			m.showConfirm = true
			m.confirm.message = "account " + user.Username
			m.deletingAccount = true
		}
	case key.Matches(keyMsg, keys.logout):
		m.expectTeardown = true
		m.teardownNotice = "Signed out."
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenDashboard
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdHydrate() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		sessions.Hydrate(ctx)
		return sessionChangedMsg{state: sessions.Snapshot()}
	}
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return loginDoneMsg{err: sessions.Login(ctx, username, password)}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return registerDoneMsg{err: sessions.Register(ctx, req)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return logoutDoneMsg{err: sessions.Logout(ctx)}
	}
}

func (m appModel) cmdLoadEquipment() tea.Cmd {
	ctx := m.ctx
	svc := m.services.EquipmentService
	filter := m.equipmentList.filter()
	page := m.equipmentList.page
	return func() tea.Msg {
		result, err := svc.List(ctx, filter, page, equipmentPageLimit)
		return equipmentPageMsg{page: result, err: err}
	}
}

func (m appModel) cmdSaveEquipment(equipment models.Equipment, editing bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EquipmentService
	return func() tea.Msg {
		var err error
		if editing {
			_, err = svc.Update(ctx, equipment.ID, equipment)
		} else {
			_, err = svc.Create(ctx, equipment)
		}
		return equipmentSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteEquipment(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EquipmentService
	return func() tea.Msg {
		return equipmentDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdChangeStatus(id int64, status models.EquipmentStatus) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EquipmentService
	return func() tea.Msg {
		updated, err := svc.ChangeStatus(ctx, id, status)
		return statusChangedMsg{equipment: updated, err: err}
	}
}

func (m appModel) cmdLoadTeam() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TeamService
	return func() tea.Msg {
		members, err := svc.List(ctx)
		return teamLoadedMsg{members: members, err: err}
	}
}

func (m appModel) cmdSaveProfile(patch models.UserPatch) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return profileSavedMsg{err: sessions.UpdateProfile(ctx, patch)}
	}
}

func (m appModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return accountDeletedMsg{err: sessions.DeleteAccount(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusChangedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
