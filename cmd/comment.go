package cmd

import (
	"context"
	"strconv"
	"strings"

	"ripple-cli/term"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Create or edit comments",
}

var commentNewCmd = &cobra.Command{
	Use:   "new <post-id> [text]",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(1),
	Run:   commentNew,
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <post-id> <comment-id> [text]",
	Short: "Edit one of your comments",
	Args:  cobra.MinimumNArgs(2),
	Run:   commentEdit,
}

func init() {
	RootCmd.AddCommand(commentCmd)
	commentCmd.AddCommand(commentNewCmd)
	commentCmd.AddCommand(commentEditCmd)
}

func commentNew(cmd *cobra.Command, args []string) {
	controller := mustController()

	postId := args[0]
	text := strings.Join(args[1:], " ")
	if text == "" {
		var err error
		text, err = term.GetRequiredUserStringInput("Write a comment:")
		if err != nil {
			term.OutputErrorAndExit("Error getting comment text: %v", err)
		}
	}

	ctx := context.Background()

	// the post must be in the local list before its comments can be patched
	term.StartSpinner("")
	controller.Refresh(ctx)
	term.StopSpinner()

	post, ok := controller.CreateComment(ctx, postId, text)
	if !ok {
		return
	}

	term.RenderPost(post)
}

func commentEdit(cmd *cobra.Command, args []string) {
	controller := mustController()

	postId := args[0]
	commentId, err := strconv.Atoi(args[1])
	if err != nil {
		term.OutputErrorAndExit("Invalid comment id: %s", args[1])
	}

	text := strings.Join(args[2:], " ")
	if text == "" {
		text, err = term.GetRequiredUserStringInput("Write a comment:")
		if err != nil {
			term.OutputErrorAndExit("Error getting comment text: %v", err)
		}
	}

	ctx := context.Background()

	term.StartSpinner("")
	controller.Refresh(ctx)
	term.StopSpinner()

	if controller.UpdateComment(ctx, postId, commentId, text) {
		term.Success("Comment updated.")
	}
}
