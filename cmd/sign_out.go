package cmd

import (
	"ripple-cli/auth"
	"ripple-cli/term"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out of the current Ripple account",
	Args:  cobra.NoArgs,
	Run:   signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	err := auth.SignOut()
	term.StopSpinner()

	// a failed server call leaves the session intact
	if err != nil {
		term.Error("An error occurred.")
		return
	}

	term.Success("Signed out")
}
