package cmd

import (
	"ripple-cli/auth"
	"ripple-cli/term"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Ripple account",
	Args:  cobra.NoArgs,
	Run:   register,
}

func init() {
	RootCmd.AddCommand(registerCmd)
}

func register(cmd *cobra.Command, args []string) {
	err := auth.RegisterPrompt()

	if err != nil {
		term.OutputErrorAndExit("Error creating account: %v", err)
	}
}
