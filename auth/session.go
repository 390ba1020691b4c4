package auth

import "ripple-cli/shared"

// Manager adapts the package-level session to the controller's
// SessionManager interface.
type Manager struct{}

func (Manager) Token() string { return Token() }

func (Manager) SetUser(user shared.User) error { return SetUser(user) }
