package tui

type welcomeModel struct {
	items  []string
	idx    int
	notice string
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Create account"}}
}

func (m welcomeModel) View() string {
	out := "Choose an action:\n\n"
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

	return renderPage("MedInventory", out, "enter: select │ q: quit")
}
