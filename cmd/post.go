package cmd

import (
	"context"
	"strings"

	"ripple-cli/term"

	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create or edit posts",
}

var postNewCmd = &cobra.Command{
	Use:   "new [text]",
	Short: "Create a new post",
	Run:   postNew,
}

var postEditCmd = &cobra.Command{
	Use:   "edit <post-id> [text]",
	Short: "Edit one of your posts",
	Args:  cobra.MinimumNArgs(1),
	Run:   postEdit,
}

func init() {
	RootCmd.AddCommand(postCmd)
	postCmd.AddCommand(postNewCmd)
	postCmd.AddCommand(postEditCmd)
}

func postNew(cmd *cobra.Command, args []string) {
	controller := mustController()

	text := strings.Join(args, " ")
	if text == "" {
		var err error
		text, err = term.GetRequiredUserStringInput("What's on your mind?")
		if err != nil {
			term.OutputErrorAndExit("Error getting post text: %v", err)
		}
	}

	ctx := context.Background()

	term.StartSpinner("Creating post...")
	ok := controller.CreatePost(ctx, text)
	term.StopSpinner()

	if !ok {
		return
	}

	state := controller.Store.State()
	if !state.HasError {
		term.RenderFeed(state.Posts, -1)
	}
}

func postEdit(cmd *cobra.Command, args []string) {
	controller := mustController()

	postId := args[0]
	text := strings.Join(args[1:], " ")
	if text == "" {
		var err error
		text, err = term.GetRequiredUserStringInput("What's on your mind?")
		if err != nil {
			term.OutputErrorAndExit("Error getting post text: %v", err)
		}
	}

	term.StartSpinner("Updating post...")
	controller.UpdatePost(context.Background(), postId, text)
	term.StopSpinner()
}
