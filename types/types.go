package types

import "ripple-cli/shared"

// ClientAuth is the session persisted to auth.json and mirrored in memory.
type ClientAuth struct {
	Token string      `json:"token"`
	User  shared.User `json:"user"`
}

// Notifier surfaces one-shot user notifications at the controller boundary
// (the toast analogue). term implements it; tests record.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}
