// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/medinventory/medinv/internal/service"

// guardDecision is the outcome of checking a screen against the current
// session state.
type guardDecision int

const (
	// guardWait means hydration is still running; stay on the loading screen
	// instead of guessing whether the user is signed in.
	guardWait guardDecision = iota

	// guardRedirectWelcome means the screen needs a session and there is
	// none; replace the current screen with the welcome screen.
	guardRedirectWelcome

	// guardRedirectDashboard means the screen is for signed-out users only
	// and a session exists; replace it with the dashboard.
	guardRedirectDashboard

	// guardAllow means the screen may render as requested.
	guardAllow
)

// protectedScreens need an established session.
var protectedScreens = map[screen]bool{
	screenDashboard:       true,
	screenEquipmentList:   true,
	screenEquipmentDetail: true,
	screenEquipmentForm:   true,
	screenTeam:            true,
	screenProfile:         true,
}

// publicOnlyScreens are the entry screens that make no sense once signed in.
var publicOnlyScreens = map[screen]bool{
	screenWelcome:  true,
	screenLogin:    true,
	screenRegister: true,
}

// checkGuard decides whether target may be shown under state. The decision
// depends only on the published session state, never on how the navigation
// was triggered, so a deep navigation and a session expiry mid-screen
// resolve identically.
func checkGuard(target screen, state service.SessionState) guardDecision {
	if state.Loading {
		return guardWait
	}

	authenticated := state.Session.Present()
	switch {
	case protectedScreens[target] && !authenticated:
		return guardRedirectWelcome
	case publicOnlyScreens[target] && authenticated:
		return guardRedirectDashboard
	default:
		return guardAllow
	}
}
