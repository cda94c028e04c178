package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes shown throughout the UI.
// The client treats a User as authoritative only when it came from the server;
// it must never synthesize one locally.
type User struct {
	// ID is the unique identifier of the user assigned by the server.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	// Used during authentication and shown on the profile screen.
	Username string `json:"username"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// Role is the account type of the user (see [Role]).
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and the profile statistics block.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Initials returns up to two uppercase letters derived from the display name,
// used for the avatar badge in the dashboard and team screens.
func (u User) Initials() string {
	name := []rune(u.Name)
	if len(name) == 0 {
		return "U"
	}

	first := name[0]
	var second rune
	for i := 1; i < len(name); i++ {
		if name[i-1] == ' ' && name[i] != ' ' {
			second = name[i]
		}
	}

	if second == 0 {
		if len(name) > 1 {
			second = name[1]
		} else {
			return string(upperRune(first))
		}
	}
	return string(upperRune(first)) + string(upperRune(second))
}

func upperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
