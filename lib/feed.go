package lib

import (
	"context"
	"strconv"

	"ripple-cli/shared"
	"ripple-cli/types"
)

// SessionManager is the slice of the session the controller needs: the
// token gate for the initial load and the profile sink after the user
// fetch. auth implements it over the persisted session.
type SessionManager interface {
	Token() string
	SetUser(user shared.User) error
}

// Controller orchestrates fetches and optimistic updates between the API
// gateway and the feed store.
//
// Every lifecycle-bound fetch takes a context; when it is canceled the
// request dies silently — no store mutation, no notification. Gateway
// failures surface as exactly one notification and, on the fetch paths,
// push the user back to the login boundary.
type Controller struct {
	client     types.ApiClient
	notifier   types.Notifier
	session    SessionManager
	onAuthLost func()

	Store   *FeedStore
	Filters *FilterStore
}

func NewController(client types.ApiClient, notifier types.Notifier, session SessionManager, onAuthLost func()) *Controller {
	return &Controller{
		client:     client,
		notifier:   notifier,
		session:    session,
		onAuthLost: onAuthLost,
		Store:      NewFeedStore(),
		Filters:    NewFilterStore(),
	}
}

// LoadInitial is the mount path: with no session token it redirects to the
// login boundary without fetching. Otherwise it fetches the profile, then
// the unfiltered feed, strictly in that order and under one cancellation
// scope.
func (c *Controller) LoadInitial(ctx context.Context) {
	if c.session.Token() == "" {
		c.onAuthLost()
		return
	}

	seq := c.Store.Begin()

	user, apiErr := c.client.GetCurrentUser(ctx)
	if apiErr != nil {
		c.failFetch(seq, apiErr)
		return
	}

	if err := c.session.SetUser(*user); err != nil {
		c.Store.Fail(seq)
		c.notifier.Error(err.Error())
		return
	}

	posts, apiErr := c.client.GetFeed(ctx, shared.FeedParams{})
	if apiErr != nil {
		c.failFetch(seq, apiErr)
		return
	}

	c.Store.Commit(seq, posts)
}

// ApplyFilters is the explicit filter-submission path: the limit goes to
// the server, the username filter is applied client-side over the result.
func (c *Controller) ApplyFilters(ctx context.Context, username string, limit int) {
	filters := c.Filters.Set(username, limit)

	seq := c.Store.Begin()

	posts, apiErr := c.fetchFiltered(ctx, filters)
	if apiErr != nil {
		c.failFetch(seq, apiErr)
		return
	}

	c.Store.Commit(seq, posts)
}

// Refresh refetches the feed with the currently stored filters.
func (c *Controller) Refresh(ctx context.Context) bool {
	seq := c.Store.Begin()

	posts, apiErr := c.fetchFiltered(ctx, c.Filters.Get())
	if apiErr != nil {
		c.failFetch(seq, apiErr)
		return false
	}

	return c.Store.Commit(seq, posts)
}

// ReturnFromDetail forces a full refetch when navigating back from a
// single-post view, so the list reflects server state after any edits made
// there. It returns the refreshed index of the previously viewed post so
// the renderer can center it, or -1 if it is gone.
func (c *Controller) ReturnFromDetail(ctx context.Context, postId string) int {
	if !c.Refresh(ctx) {
		return -1
	}

	for i, p := range c.Store.State().Posts {
		if p.Id == postId {
			return i
		}
	}
	return -1
}

// CreatePost creates the post and refreshes the feed only after the server
// confirms. There is no optimistic insert; on failure the list is left
// unchanged.
func (c *Controller) CreatePost(ctx context.Context, text string) bool {
	_, apiErr := c.client.CreatePost(ctx, shared.CreatePostRequest{Text: text})
	if apiErr != nil {
		if apiErr.IsCanceled() {
			return false
		}
		c.notifier.Error("Error creating post.")
		return false
	}

	c.notifier.Success("Post created successfully.")
	c.Refresh(ctx)
	return true
}

// UpdatePost edits a post's text in place after the server confirms. No
// refetch: only the text field of the matching post changes.
func (c *Controller) UpdatePost(ctx context.Context, id, text string) bool {
	_, apiErr := c.client.UpdatePost(ctx, shared.UpdatePostRequest{Id: id, Text: text})
	if apiErr != nil {
		if apiErr.IsCanceled() {
			return false
		}
		c.notifier.Error(errMsgOr(apiErr, "Error updating post."))
		return false
	}

	c.Store.SetPostText(id, text)
	c.notifier.Success("Post updated successfully.")
	return true
}

// CreateComment prepends the confirmed comment, tagged with its parent post
// id, to that post's comment list via an immutable post replace.
func (c *Controller) CreateComment(ctx context.Context, postId, text string) (shared.Post, bool) {
	res, apiErr := c.client.CreateComment(ctx, postId, shared.CreateCommentRequest{Text: text})
	if apiErr != nil {
		if !apiErr.IsCanceled() {
			c.notifier.Error("Error posting comment.")
		}
		return shared.Post{}, false
	}

	post, ok := c.Store.PrependComment(postId, res.ToComment(postId))
	return post, ok
}

// UpdateComment edits one comment's text in place after the server
// confirms.
func (c *Controller) UpdateComment(ctx context.Context, postId string, commentId int, text string) bool {
	apiErr := c.client.UpdateComment(ctx, postId, shared.UpdateCommentRequest{Id: commentId, Text: text})
	if apiErr != nil {
		if !apiErr.IsCanceled() {
			c.notifier.Error(errMsgOr(apiErr, "Error updating comment."))
		}
		return false
	}

	return c.Store.SetCommentText(postId, commentId, text)
}

func (c *Controller) fetchFiltered(ctx context.Context, filters Filters) ([]shared.Post, *shared.ApiError) {
	posts, apiErr := c.client.GetFeed(ctx, shared.FeedParams{
		Limit: strconv.Itoa(filters.Limit),
	})
	if apiErr != nil {
		return nil, apiErr
	}

	if filters.Username == "" {
		return posts, nil
	}

	filtered := make([]shared.Post, 0, len(posts))
	for _, p := range posts {
		if p.User.Username == filters.Username {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// failFetch ends a fetch cycle. Canceled requests are suppressed entirely;
// real failures flip the error flag, notify once, and bounce to the login
// boundary.
func (c *Controller) failFetch(seq uint64, apiErr *shared.ApiError) {
	if apiErr.IsCanceled() {
		return
	}

	c.Store.Fail(seq)
	c.notifier.Error(apiErr.Msg)
	c.onAuthLost()
}

func errMsgOr(apiErr *shared.ApiError, fallback string) string {
	if apiErr.Msg != "" {
		return apiErr.Msg
	}
	return fallback
}
