package cmd

import (
	"context"
	"os"

	"ripple-cli/api"
	"ripple-cli/auth"
	"ripple-cli/term"

	"github.com/spf13/cobra"
)

var photoCmd = &cobra.Command{
	Use:   "photo <file>",
	Short: "Update your profile photo",
	Args:  cobra.ExactArgs(1),
	Run:   photo,
}

func init() {
	RootCmd.AddCommand(photoCmd)
}

func photo(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	file, err := os.Open(args[0])
	if err != nil {
		term.OutputErrorAndExit("Error opening file: %v", err)
	}
	defer file.Close()

	term.StartSpinner("Uploading image...")
	apiErr := api.Client.UpdateUserPhoto(args[0], file)
	term.StopSpinner()

	if apiErr != nil {
		term.Error("Error uploading image.")
		return
	}

	// refetch the profile so the session picks up the new picture URL
	user, apiErr := api.Client.GetCurrentUser(context.Background())
	if apiErr == nil {
		if err := auth.SetUser(*user); err != nil {
			term.OutputErrorAndExit("Error saving profile: %v", err)
		}
	}

	term.Success("Uploaded successfully.")
}
