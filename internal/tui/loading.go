package tui

import "github.com/charmbracelet/bubbles/spinner"

type loadingModel struct {
	spinner spinner.Model
}

func newLoadingModel() loadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return loadingModel{spinner: s}
}

func (m loadingModel) View() string {
	return renderPage("MedInventory", m.spinner.View()+" Restoring session...", "")
}
