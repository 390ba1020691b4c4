package cmd

import (
	"fmt"

	"ripple-cli/auth"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	Run:   whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	user := auth.Current.User
	if user.FirstName != "" && user.LastName != "" {
		fmt.Printf("%s %s (@%s)\n", user.FirstName, user.LastName, user.Username)
	} else if user.Username != "" {
		fmt.Printf("@%s\n", user.Username)
	} else {
		fmt.Println("Signed in (profile not fetched yet — run 'ripple' to load it)")
	}

	if user.ProfilePic != "" {
		fmt.Println(user.ProfilePic)
	}
}
