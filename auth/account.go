package auth

import (
	"context"
	"fmt"

	"ripple-cli/shared"
	"ripple-cli/term"
)

// SignInPrompt collects credentials, signs in, and applies the session.
func SignInPrompt() error {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		return fmt.Errorf("error prompting for username: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting for password: %v", err)
	}

	term.StartSpinner("")
	res, apiErr := apiClient.SignIn(context.Background(), shared.SignInRequest{
		Username: username,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error signing in: %v", apiErr.Msg)
	}

	err = ApplySession(res.Token)
	if err != nil {
		return fmt.Errorf("error applying session: %v", err)
	}

	term.Success(fmt.Sprintf("Signed in as %s", term.Bold(username)))
	return nil
}

// RegisterPrompt collects account details, creates the account, and applies
// the session from the returned token.
func RegisterPrompt() error {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		return fmt.Errorf("error prompting for username: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting for password: %v", err)
	}

	firstName, err := term.GetRequiredUserStringInput("First name:")
	if err != nil {
		return fmt.Errorf("error prompting for first name: %v", err)
	}

	lastName, err := term.GetRequiredUserStringInput("Last name:")
	if err != nil {
		return fmt.Errorf("error prompting for last name: %v", err)
	}

	term.StartSpinner("")
	res, apiErr := apiClient.CreateAccount(context.Background(), shared.CreateAccountRequest{
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error creating account: %v", apiErr.Msg)
	}

	err = ApplySession(res.Token)
	if err != nil {
		return fmt.Errorf("error applying session: %v", err)
	}

	term.Success(fmt.Sprintf("Account %s created", term.Bold(username)))
	return nil
}

// SignOut calls the server, then clears the session. A failed server call
// leaves the session intact, matching the logout contract.
func SignOut() error {
	apiErr := apiClient.SignOut()
	if apiErr != nil {
		return fmt.Errorf("error signing out: %v", apiErr.Msg)
	}

	err := ClearSession()
	if err != nil {
		return fmt.Errorf("error clearing session: %v", err)
	}

	return nil
}
