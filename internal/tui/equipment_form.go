package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/medinventory/medinv/models"
)

// equipmentFormModel backs both the creation and the edit form. When editing,
// the form carries the original record's ID and timestamps so a save replaces
// the editable fields only.
type equipmentFormModel struct {
	inputs     []textinput.Model
	focus      int
	statusIdx  int
	editing    bool
	original   models.Equipment
	submitting bool
}

const (
	equipmentFieldName = iota
	equipmentFieldKind
	equipmentFieldManufacturer
	equipmentFieldModel
	equipmentFieldSerial
	equipmentFieldAssetTag
	equipmentFieldSector
	equipmentFieldAcquired
)

func newEquipmentFormModel(item *models.Equipment) equipmentFormModel {
	placeholders := []string{
		"name", "kind", "manufacturer", "model", "serial number",
		"asset tag", "sector", "acquired (YYYY-MM-DD)",
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 128
		input.Width = 40
		inputs[i] = input
	}
	inputs[0].Focus()

	m := equipmentFormModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.original = *item
	m.inputs[equipmentFieldName].SetValue(item.Name)
	m.inputs[equipmentFieldKind].SetValue(item.Kind)
	m.inputs[equipmentFieldManufacturer].SetValue(item.Manufacturer)
	m.inputs[equipmentFieldModel].SetValue(item.ModelName)
	m.inputs[equipmentFieldSerial].SetValue(item.SerialNumber)
	m.inputs[equipmentFieldAssetTag].SetValue(item.AssetTag)
	m.inputs[equipmentFieldSector].SetValue(item.Sector)
	if !item.AcquiredAt.IsZero() {
		m.inputs[equipmentFieldAcquired].SetValue(item.AcquiredAt.Format("2006-01-02"))
	}
	for i, s := range models.EquipmentStatuses() {
		if s == item.Status {
			m.statusIdx = i
		}
	}
	return m
}

func (m equipmentFormModel) status() models.EquipmentStatus {
	statuses := models.EquipmentStatuses()
	return statuses[m.statusIdx%len(statuses)]
}

// toEquipment assembles the record to send. A malformed acquisition date is
// treated as unset rather than blocking the save.
func (m equipmentFormModel) toEquipment() models.Equipment {
	equipment := m.original
	equipment.Name = strings.TrimSpace(m.inputs[equipmentFieldName].Value())
	equipment.Kind = strings.TrimSpace(m.inputs[equipmentFieldKind].Value())
	equipment.Manufacturer = strings.TrimSpace(m.inputs[equipmentFieldManufacturer].Value())
	equipment.ModelName = strings.TrimSpace(m.inputs[equipmentFieldModel].Value())
	equipment.SerialNumber = strings.TrimSpace(m.inputs[equipmentFieldSerial].Value())
	equipment.AssetTag = strings.TrimSpace(m.inputs[equipmentFieldAssetTag].Value())
	equipment.Sector = strings.TrimSpace(m.inputs[equipmentFieldSector].Value())
	equipment.Status = m.status()

	equipment.AcquiredAt = time.Time{}
	if raw := strings.TrimSpace(m.inputs[equipmentFieldAcquired].Value()); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			equipment.AcquiredAt = parsed
		}
	}
	return equipment
}

func (m equipmentFormModel) View() string {
	labels := []string{"Name", "Kind", "Manufacturer", "Model", "Serial", "Asset tag", "Sector", "Acquired"}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(fieldRow(label, "["+m.inputs[i].View()+"]"))
		b.WriteString("\n")
	}
	b.WriteString(fieldRow("Status", "< "+renderStatus(m.status())+" >"))
	b.WriteString("\n")

	action := "[Save]"
	if m.submitting {
		action = "[Saving...]"
	}
	b.WriteString("\n" + action + "\n")

	title := "NEW EQUIPMENT"
	if m.editing {
		title = "EDIT EQUIPMENT"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ←/→: status │ enter: save")
}
