package types

import (
	"context"
	"io"

	"ripple-cli/shared"
)

// ApiClient is the gateway contract to the remote feed service. Every
// method returns either a payload or a *shared.ApiError whose type
// distinguishes canceled requests from auth and server failures.
//
// Calls bound to a view's lifetime take a context; canceling it yields a
// canceled error, never a server error.
type ApiClient interface {
	SignIn(ctx context.Context, req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError)
	CreateAccount(ctx context.Context, req shared.CreateAccountRequest) (*shared.SessionResponse, *shared.ApiError)
	SignOut() *shared.ApiError

	GetCurrentUser(ctx context.Context) (*shared.User, *shared.ApiError)
	UpdateUserPhoto(filename string, file io.Reader) *shared.ApiError

	GetFeed(ctx context.Context, params shared.FeedParams) ([]shared.Post, *shared.ApiError)
	CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError)
	UpdatePost(ctx context.Context, req shared.UpdatePostRequest) (*shared.Post, *shared.ApiError)

	CreateComment(ctx context.Context, postId string, req shared.CreateCommentRequest) (*shared.CommentResponse, *shared.ApiError)
	UpdateComment(ctx context.Context, postId string, req shared.UpdateCommentRequest) *shared.ApiError
}
