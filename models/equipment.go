package models

import "time"

// EquipmentStatus is the closed enumeration of operational states an
// equipment unit can be in.
type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentInUse       EquipmentStatus = "IN_USE"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentRetired     EquipmentStatus = "RETIRED"
)

// StatusDisplay carries the presentation metadata for an equipment status.
type StatusDisplay struct {
	Label string
	Color string
}

var statusDisplayTable = map[EquipmentStatus]StatusDisplay{
	EquipmentAvailable:   {Label: "Available", Color: "#16a34a"},
	EquipmentInUse:       {Label: "In use", Color: "#2563eb"},
	EquipmentMaintenance: {Label: "Under maintenance", Color: "#f59e0b"},
	EquipmentRetired:     {Label: "Retired", Color: "#6b7280"},
}

// Display returns the presentation metadata for the status; unknown values
// fall back to the raw string with a neutral color.
func (s EquipmentStatus) Display() StatusDisplay {
	if d, ok := statusDisplayTable[s]; ok {
		return d
	}
	label := string(s)
	if label == "" {
		label = "Unknown"
	}
	return StatusDisplay{Label: label, Color: "#6b7280"}
}

// Valid reports whether the status is a known enumeration value.
func (s EquipmentStatus) Valid() bool {
	_, ok := statusDisplayTable[s]
	return ok
}

// EquipmentStatuses lists all statuses in a stable order for form selectors.
func EquipmentStatuses() []EquipmentStatus {
	return []EquipmentStatus{EquipmentAvailable, EquipmentInUse, EquipmentMaintenance, EquipmentRetired}
}

// Equipment represents a hospital equipment unit tracked by the inventory.
type Equipment struct {
	// ID is the server-assigned identifier of the unit.
	ID int64 `json:"id"`

	// Name is the human-readable equipment name (e.g. "Infusion pump").
	Name string `json:"name"`

	// Kind is the free-form category of the unit (e.g. "Monitoring").
	Kind string `json:"kind"`

	// Manufacturer and ModelName describe the vendor designation.
	Manufacturer string `json:"manufacturer"`
	ModelName    string `json:"model"`

	// SerialNumber is the vendor serial printed on the unit.
	SerialNumber string `json:"serial_number"`

	// AssetTag is the hospital-internal inventory code.
	AssetTag string `json:"asset_tag"`

	// Sector is the department where the unit currently resides.
	Sector string `json:"sector"`

	// Status is the operational state of the unit.
	Status EquipmentStatus `json:"status"`

	// AcquiredAt is the acquisition date, zero if unknown.
	AcquiredAt time.Time `json:"acquired_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Equipment model.
func (e Equipment) TableName() string {
	return "equipment"
}
