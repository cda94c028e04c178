package models

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserPatch carries the editable profile fields for PUT /users/{id}.
// Nil fields are left untouched by the server. The client never merges the
// patch into its own state: after a successful update it re-fetches the
// canonical profile instead.
type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// EquipmentFilter narrows the equipment listing. Zero fields are ignored.
type EquipmentFilter struct {
	Kind   string
	Status EquipmentStatus
	Sector string
	// Search matches name, manufacturer, and serial number.
	Search string
}

// StatusPatch is the payload of PATCH /equipment/{id}/status.
type StatusPatch struct {
	Status EquipmentStatus `json:"status"`
}
