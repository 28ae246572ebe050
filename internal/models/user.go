package models

import "strings"

// User is the person viewing the dashboard, authenticated via OIDC or a
// client certificate. Users are kept in the session only.
type User struct {
	Sub      string `json:"sub"`      // OIDC subject identifier
	Username string `json:"username"` // Extracted from PKI CN e.g. "heatht" from "Heath Taylor (heatht)"
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
}

// DisplayName returns the best available label for the user.
func (u *User) DisplayName() string {
	for _, v := range []string{u.Name, u.Username, u.Email, u.Sub} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return "anonymous"
}

// Initial returns the upper-cased first letter of the display name, for the
// avatar placeholder.
func (u *User) Initial() string {
	name := u.DisplayName()
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}
