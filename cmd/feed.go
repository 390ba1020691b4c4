package cmd

import (
	"context"

	"ripple-cli/term"

	"github.com/spf13/cobra"
)

var feedUsername string
var feedLimit int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the feed",
	Long:  "Show the feed. With --username or --limit the filters are stored and applied: the limit goes to the server, the username filter matches post authors exactly (5/10/15/20/25/50/100 are the usual limits).",
	Args:  cobra.NoArgs,
	Run:   feed,
}

func init() {
	RootCmd.AddCommand(feedCmd)

	feedCmd.Flags().StringVar(&feedUsername, "username", "", "Only show posts authored by this username")
	feedCmd.Flags().IntVar(&feedLimit, "limit", 0, "Max number of posts to fetch")
}

func feed(cmd *cobra.Command, args []string) {
	controller := mustController()
	ctx := context.Background()

	term.StartSpinner("")
	if cmd.Flags().Changed("username") || cmd.Flags().Changed("limit") {
		controller.ApplyFilters(ctx, feedUsername, feedLimit)
	} else {
		controller.Refresh(ctx)
	}
	term.StopSpinner()

	state := controller.Store.State()
	if state.HasError {
		return
	}

	term.RenderFeed(state.Posts, -1)
}
