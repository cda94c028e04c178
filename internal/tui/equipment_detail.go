package tui

import (
	"strings"

	"github.com/medinventory/medinv/models"
)

type equipmentDetailModel struct {
	item   models.Equipment
	status string

	// picking is true while the status submenu is open.
	picking   bool
	pickIdx   int
	switching bool
}

func (m equipmentDetailModel) View() string {
	var b strings.Builder
	item := m.item

	b.WriteString(fieldRow("Name", valueOrDash(item.Name)) + "\n")
	b.WriteString(fieldRow("Kind", valueOrDash(item.Kind)) + "\n")
	b.WriteString(fieldRow("Manufacturer", valueOrDash(item.Manufacturer)) + "\n")
	b.WriteString(fieldRow("Model", valueOrDash(item.ModelName)) + "\n")
	b.WriteString(fieldRow("Serial", valueOrDash(item.SerialNumber)) + "\n")
	b.WriteString(fieldRow("Asset tag", valueOrDash(item.AssetTag)) + "\n")
	b.WriteString(fieldRow("Sector", valueOrDash(item.Sector)) + "\n")
	b.WriteString(fieldRow("Status", renderStatus(item.Status)) + "\n")
	b.WriteString(fieldRow("Acquired", dateOrDash(item.AcquiredAt)) + "\n")

	if m.picking {
		b.WriteString("\nMove to status:\n")
		for i, s := range models.EquipmentStatuses() {
			cursor := "  "
			if i == m.pickIdx {
				cursor = "> "
			}
			b.WriteString(cursor + renderStatus(s) + "\n")
		}
	}
	if m.switching {
		b.WriteString("\nUpdating status...\n")
	}
	if m.status != "" {
		b.WriteString("\n" + noticeStyle.Render(m.status) + "\n")
	}

	return renderPage("EQUIPMENT · "+fitText(item.Name, 40), strings.TrimRight(b.String(), "\n"),
		"e: edit │ s: status │ d: delete │ c: copy serial │ esc: back")
}
