// SPDX-License-Identifier: Apache-2.0

package models

// Session pairs the bearer credential issued by the server with the user
// record it authorizes. A session is either fully present or absent: a token
// without a user record (or the reverse) must never be treated as
// authenticated, so partial pairs are normalized to the zero value on load.
type Session struct {
	// Token is the opaque bearer string issued on login. The client assumes
	// no internal structure.
	Token string

	// User is the server-issued user record the token authorizes.
	User *User
}

// Present reports whether the session holds both a credential and a user
// record. Everything else counts as absent.
func (s Session) Present() bool {
	return s.Token != "" && s.User != nil && s.User.ID != 0
}
