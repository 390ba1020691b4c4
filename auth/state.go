package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"ripple-cli/fs"
	"ripple-cli/shared"
	"ripple-cli/types"
)

// Current is the in-memory session. It is nil when signed out. All
// mutations go through ApplySession/SetUser/ClearSession, which keep the
// in-memory copy and auth.json consistent — the store and durable storage
// are never updated separately.
var Current *types.ClientAuth

// Token is the accessor the api transport reads the bearer token through.
// Returns "" when signed out.
func Token() string {
	if Current == nil {
		return ""
	}
	return Current.Token
}

// ApplySession sets the session token and persists it. The user profile is
// left untouched; it arrives separately via SetUser after the profile
// fetch.
func ApplySession(token string) error {
	auth := &types.ClientAuth{Token: token}
	if Current != nil {
		auth.User = Current.User
	}
	Current = auth

	return writeCurrentAuth()
}

// SetUser merges the fetched profile into the session, leaving the token
// untouched.
func SetUser(user shared.User) error {
	if Current == nil {
		return fmt.Errorf("error setting user: not signed in")
	}
	Current.User = user

	return writeCurrentAuth()
}

// ClearSession zeroes the in-memory session and removes auth.json.
func ClearSession() error {
	Current = nil

	err := os.Remove(fs.HomeAuthPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing auth.json: %v", err)
	}

	return nil
}

// Resolve loads auth.json into the in-memory session if it exists. A
// missing file just means signed out.
func Resolve() error {
	bytes, err := os.ReadFile(fs.HomeAuthPath)

	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading auth.json: %v", err)
	}

	var auth types.ClientAuth
	err = json.Unmarshal(bytes, &auth)
	if err != nil {
		return fmt.Errorf("error unmarshalling auth.json: %v", err)
	}

	Current = &auth
	return nil
}

func writeCurrentAuth() error {
	if Current == nil {
		return fmt.Errorf("error writing auth: auth not loaded")
	}

	bytes, err := json.Marshal(Current)
	if err != nil {
		return fmt.Errorf("error marshalling auth: %v", err)
	}

	err = os.WriteFile(fs.HomeAuthPath, bytes, 0600)
	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}
