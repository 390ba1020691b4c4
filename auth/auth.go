package auth

import (
	"fmt"

	"ripple-cli/term"
)

// MustResolveAuth loads the stored session, prompting for sign in or
// registration when there is none. It exits on unrecoverable errors.
func MustResolveAuth() {
	if apiClient == nil {
		term.OutputErrorAndExit("error resolving auth: api client not set")
	}

	err := Resolve()
	if err != nil {
		term.OutputErrorAndExit("error resolving auth: %v", err)
	}

	if Current != nil {
		return
	}

	err = promptInitialAuth()
	if err != nil {
		term.OutputErrorAndExit("error resolving auth: %v", err)
	}
}

func promptInitialAuth() error {
	hasAccount, err := term.ConfirmYesNo("👋 Hey there!\nIt looks like you're signed out.\nAlready have an account?")
	if err != nil {
		return fmt.Errorf("error prompting for auth option: %v", err)
	}

	if hasAccount {
		return SignInPrompt()
	}

	return RegisterPrompt()
}
