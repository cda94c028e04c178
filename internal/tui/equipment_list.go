package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/medinventory/medinv/models"
)

const equipmentPageLimit = 10

// equipmentListModel shows one page of the inventory with an optional status
// filter and a free-text search.
type equipmentListModel struct {
	items   []models.Equipment
	idx     int
	page    int
	total   int
	loading bool
	spinner spinner.Model
	status  string

	// statusIdx indexes the status filter cycle; 0 means "all statuses".
	statusIdx int

	searching   bool
	searchInput textinput.Model
	search      string
}

func newEquipmentListModel() equipmentListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	searchInput := textinput.New()
	searchInput.Placeholder = "search name, manufacturer, serial"
	searchInput.CharLimit = 64
	searchInput.Width = 40

	return equipmentListModel{spinner: s, loading: true, page: 1, searchInput: searchInput}
}

func (m equipmentListModel) current() (models.Equipment, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Equipment{}, false
	}
	return m.items[m.idx], true
}

// statusFilter returns the active status filter, empty for "all".
func (m equipmentListModel) statusFilter() models.EquipmentStatus {
	if m.statusIdx == 0 {
		return ""
	}
	return models.EquipmentStatuses()[m.statusIdx-1]
}

func (m equipmentListModel) filter() models.EquipmentFilter {
	return models.EquipmentFilter{
		Status: m.statusFilter(),
		Search: m.search,
	}
}

func (m equipmentListModel) totalPages() int {
	pages := (m.total + equipmentPageLimit - 1) / equipmentPageLimit
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (m equipmentListModel) View() string {
	var b strings.Builder

	filterLabel := "all statuses"
	if s := m.statusFilter(); s != "" {
		filterLabel = s.Display().Label
	}
	b.WriteString(fmt.Sprintf("Filter: %s", filterLabel))
	if m.search != "" {
		b.WriteString(fmt.Sprintf("  ·  search: %q", m.search))
	}
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString("Search: [" + m.searchInput.View() + "]\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No equipment matches the filter\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-30s %-14s %s\n",
				cursor, fitText(item.Name, 30), fitText(item.Sector, 14), renderStatus(item.Status)))
		}
		b.WriteString(fmt.Sprintf("\nPage %d/%d · %d units", m.page, m.totalPages(), m.total))
	}

	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status))
	}

	return renderPage("EQUIPMENT", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ f: status │ /: search │ ←/→: page │ r: reload │ esc: back")
}
