package models

import (
	"encoding/json"
	"strings"
)

// LoginResponse is the body of a successful POST /auth/login. The client
// persists both fields together; neither is useful without the other.
type LoginResponse struct {
	// AccessToken is the opaque bearer credential for subsequent requests.
	AccessToken string `json:"access_token"`

	// User is the authoritative record of the account that logged in.
	User User `json:"user"`
}

// EquipmentPage is a single page of the equipment listing.
type EquipmentPage struct {
	// Items holds the equipment units of the requested page.
	Items []Equipment `json:"items"`

	// Total is the number of units matching the filter across all pages.
	Total int `json:"total"`

	// Page and Limit echo the requested pagination window.
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// APIError is the error body produced by the server. Message is either a
// single string or a list of field validation messages; the client joins
// lists into one normalized string before surfacing them.
type APIError struct {
	StatusCode int         `json:"status_code"`
	Error      string      `json:"error,omitempty"`
	Message    MessageList `json:"message"`
}

// MessageList accepts both a bare string and a list of strings, which is how
// validation backends commonly shape the "message" field.
type MessageList []string

// UnmarshalJSON implements json.Unmarshaler.
func (m *MessageList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*m = MessageList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*m = MessageList(many)
	return nil
}

// Join flattens the list into one user-facing string.
func (m MessageList) Join() string {
	return strings.Join(m, "; ")
}
