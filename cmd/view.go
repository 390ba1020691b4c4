package cmd

import (
	"context"
	"fmt"

	"ripple-cli/term"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <post-id>",
	Short: "View a single post with its comments",
	Args:  cobra.ExactArgs(1),
	Run:   view,
}

func init() {
	RootCmd.AddCommand(viewCmd)
}

// view is the detail navigation: show the post, let the user comment or
// edit, and on the way back force a full refetch so the list reflects
// server state, centered on the post that was open.
func view(cmd *cobra.Command, args []string) {
	controller := mustController()
	ctx := context.Background()

	term.StartSpinner("")
	controller.LoadInitial(ctx)
	term.StopSpinner()

	postId := args[0]
	post, ok := controller.Store.GetPost(postId)
	if !ok {
		term.OutputErrorAndExit("Post %s not found in the feed", postId)
	}

	for {
		term.RenderPost(post)
		fmt.Println()

		choice, err := term.GetUserKeyInput()
		if err != nil {
			term.OutputErrorAndExit("Error reading key: %v", err)
		}

		switch choice {
		case 'c', 'C':
			text, err := term.GetRequiredUserStringInput("Write a comment:")
			if err != nil {
				term.OutputErrorAndExit("Error getting comment text: %v", err)
			}

			if updated, ok := controller.CreateComment(ctx, postId, text); ok {
				post = updated
			}

		case 'e', 'E':
			text, err := term.GetRequiredUserStringInput("What's on your mind?")
			if err != nil {
				term.OutputErrorAndExit("Error getting post text: %v", err)
			}

			term.StartSpinner("Updating post...")
			ok := controller.UpdatePost(ctx, postId, text)
			term.StopSpinner()

			if ok {
				if p, found := controller.Store.GetPost(postId); found {
					post = p
				}
			}

		case 'q', 'Q':
			term.StartSpinner("")
			focusIx := controller.ReturnFromDetail(ctx, postId)
			term.StopSpinner()

			state := controller.Store.State()
			if !state.HasError {
				term.RenderFeed(state.Posts, focusIx)
			}
			return

		default:
			fmt.Println("(c)omment | (e)dit | (q)uit")
		}
	}
}
