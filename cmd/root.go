package cmd

import (
	"context"

	"ripple-cli/term"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `ripple [command] [flags]`,
	Short: "Ripple: a small social feed in your terminal",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

// Bare `ripple` is the mount path: resolve auth, load profile and feed,
// show the list.
func run(cmd *cobra.Command, args []string) {
	controller := mustController()

	term.StartSpinner("")
	controller.LoadInitial(context.Background())
	term.StopSpinner()

	state := controller.Store.State()
	if state.HasError {
		return
	}

	term.RenderFeed(state.Posts, -1)
}
