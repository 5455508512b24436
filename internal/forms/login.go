package forms

import "strings"

// LoginForm carries raw credentials from the login page.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Validate reports whether both fields are present. Callers must show only a
// generic failure message; per-field detail would allow account enumeration.
func (f LoginForm) Validate() bool {
	return strings.TrimSpace(f.Username) != "" && strings.TrimSpace(f.Password) != ""
}
