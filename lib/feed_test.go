package lib

import (
	"context"
	"io"
	"testing"

	"ripple-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeApi struct {
	user    *shared.User
	userErr *shared.ApiError

	feed       []shared.Post
	feedErr    *shared.ApiError
	feedParams []shared.FeedParams

	createPostErr *shared.ApiError
	updatePostErr *shared.ApiError

	commentRes       *shared.CommentResponse
	createCommentErr *shared.ApiError
	updateCommentErr *shared.ApiError

	calls []string
}

func (f *fakeApi) SignIn(ctx context.Context, req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	f.calls = append(f.calls, "SignIn")
	return &shared.SessionResponse{Token: "tok"}, nil
}

func (f *fakeApi) CreateAccount(ctx context.Context, req shared.CreateAccountRequest) (*shared.SessionResponse, *shared.ApiError) {
	f.calls = append(f.calls, "CreateAccount")
	return &shared.SessionResponse{Token: "tok"}, nil
}

func (f *fakeApi) SignOut() *shared.ApiError {
	f.calls = append(f.calls, "SignOut")
	return nil
}

func (f *fakeApi) GetCurrentUser(ctx context.Context) (*shared.User, *shared.ApiError) {
	f.calls = append(f.calls, "GetCurrentUser")
	if f.userErr != nil {
		return nil, f.userErr
	}
	if f.user == nil {
		return &shared.User{Username: "me"}, nil
	}
	return f.user, nil
}

func (f *fakeApi) UpdateUserPhoto(filename string, file io.Reader) *shared.ApiError {
	f.calls = append(f.calls, "UpdateUserPhoto")
	return nil
}

func (f *fakeApi) GetFeed(ctx context.Context, params shared.FeedParams) ([]shared.Post, *shared.ApiError) {
	f.calls = append(f.calls, "GetFeed")
	f.feedParams = append(f.feedParams, params)
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.feed, nil
}

func (f *fakeApi) CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	f.calls = append(f.calls, "CreatePost")
	if f.createPostErr != nil {
		return nil, f.createPostErr
	}
	p := post("new", req.Text, "me")
	return &p, nil
}

func (f *fakeApi) UpdatePost(ctx context.Context, req shared.UpdatePostRequest) (*shared.Post, *shared.ApiError) {
	f.calls = append(f.calls, "UpdatePost")
	if f.updatePostErr != nil {
		return nil, f.updatePostErr
	}
	p := post(req.Id, req.Text, "me")
	return &p, nil
}

func (f *fakeApi) CreateComment(ctx context.Context, postId string, req shared.CreateCommentRequest) (*shared.CommentResponse, *shared.ApiError) {
	f.calls = append(f.calls, "CreateComment")
	if f.createCommentErr != nil {
		return nil, f.createCommentErr
	}
	if f.commentRes != nil {
		return f.commentRes, nil
	}
	return &shared.CommentResponse{Id: 100, Text: req.Text, Username: "me"}, nil
}

func (f *fakeApi) UpdateComment(ctx context.Context, postId string, req shared.UpdateCommentRequest) *shared.ApiError {
	f.calls = append(f.calls, "UpdateComment")
	return f.updateCommentErr
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

type fakeSession struct {
	token string
	user  *shared.User
}

func (s *fakeSession) Token() string { return s.token }
func (s *fakeSession) SetUser(user shared.User) error {
	s.user = &user
	return nil
}

type harness struct {
	api      *fakeApi
	notifier *recordingNotifier
	session  *fakeSession
	authLost int
	ctrl     *Controller
}

func newHarness(api *fakeApi) *harness {
	h := &harness{
		api:      api,
		notifier: &recordingNotifier{},
		session:  &fakeSession{token: "tok"},
	}
	h.ctrl = NewController(api, h.notifier, h.session, func() { h.authLost++ })
	return h
}

var canceledErr = &shared.ApiError{Type: shared.ApiErrorTypeCanceled, Msg: "Request Cancelled"}

// ---- tests ----

func TestLoadInitialWithoutToken(t *testing.T) {
	h := newHarness(&fakeApi{})
	h.session.token = ""

	h.ctrl.LoadInitial(context.Background())

	assert.Equal(t, 1, h.authLost, "missing token must bounce to the login boundary")
	assert.Empty(t, h.api.calls, "no fetch may be issued without a token")
	assert.False(t, h.ctrl.Store.State().IsLoading)
}

func TestLoadInitialOrdersProfileBeforeFeed(t *testing.T) {
	api := &fakeApi{
		user: &shared.User{Username: "me", FirstName: "My", LastName: "Self"},
		feed: []shared.Post{post("p1", "hello", "alice")},
	}
	h := newHarness(api)

	h.ctrl.LoadInitial(context.Background())

	require.Equal(t, []string{"GetCurrentUser", "GetFeed"}, api.calls)
	require.NotNil(t, h.session.user)
	assert.Equal(t, "me", h.session.user.Username)

	state := h.ctrl.Store.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.HasError)
	require.Len(t, state.Posts, 1)
	assert.Equal(t, "p1", state.Posts[0].Id)
	assert.Empty(t, h.notifier.errors)
	assert.Zero(t, h.authLost)
}

func TestLoadInitialProfileFailureSkipsFeed(t *testing.T) {
	api := &fakeApi{
		userErr: &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: "Internal server error."},
	}
	h := newHarness(api)

	h.ctrl.LoadInitial(context.Background())

	assert.Equal(t, []string{"GetCurrentUser"}, api.calls, "feed fetch must not be issued after a profile failure")
	assert.True(t, h.ctrl.Store.State().HasError)
	assert.Equal(t, []string{"Internal server error."}, h.notifier.errors)
	assert.Equal(t, 1, h.authLost)
}

func TestCanceledFetchIsSuppressed(t *testing.T) {
	api := &fakeApi{userErr: canceledErr}
	h := newHarness(api)

	before := h.ctrl.Store.State()
	h.ctrl.LoadInitial(context.Background())

	state := h.ctrl.Store.State()
	assert.Equal(t, before.Posts, state.Posts, "a canceled request must not mutate the store")
	assert.False(t, state.HasError)
	assert.Empty(t, h.notifier.errors, "a canceled request must not notify")
	assert.Zero(t, h.authLost, "a canceled request is not a failure")
}

func TestApplyFiltersLimitAndClientSideUsername(t *testing.T) {
	api := &fakeApi{
		feed: []shared.Post{
			post("p1", "one", "alice"),
			post("p2", "two", "bob"),
			post("p3", "three", "alice"),
		},
	}
	h := newHarness(api)

	h.ctrl.ApplyFilters(context.Background(), "alice", 10)

	// the server is only asked to limit; username filtering is client-side
	require.Len(t, api.feedParams, 1)
	assert.Equal(t, "10", api.feedParams[0].Limit)
	assert.Empty(t, api.feedParams[0].Start)

	state := h.ctrl.Store.State()
	require.Len(t, state.Posts, 2)
	for _, p := range state.Posts {
		assert.Equal(t, "alice", p.User.Username)
	}

	assert.Equal(t, Filters{Username: "alice", Limit: 10}, h.ctrl.Filters.Get())
}

func TestCreatePostRefreshesOnlyAfterConfirm(t *testing.T) {
	api := &fakeApi{feed: []shared.Post{post("new", "fresh", "me")}}
	h := newHarness(api)

	ok := h.ctrl.CreatePost(context.Background(), "fresh")

	require.True(t, ok)
	assert.Equal(t, []string{"CreatePost", "GetFeed"}, api.calls, "the feed refresh must come after server confirmation")
	assert.Equal(t, []string{"Post created successfully."}, h.notifier.successes)
}

func TestCreatePostFailureLeavesListUnchanged(t *testing.T) {
	api := &fakeApi{
		feed:          []shared.Post{post("p1", "old", "alice")},
		createPostErr: &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: "Internal server error."},
	}
	h := newHarness(api)

	seq := h.ctrl.Store.Begin()
	h.ctrl.Store.Commit(seq, []shared.Post{post("p1", "old", "alice")})

	ok := h.ctrl.CreatePost(context.Background(), "won't happen")

	assert.False(t, ok)
	assert.Equal(t, []string{"CreatePost"}, api.calls, "no refresh on failure")
	assert.Equal(t, []string{"Error creating post."}, h.notifier.errors)

	state := h.ctrl.Store.State()
	require.Len(t, state.Posts, 1)
	assert.Equal(t, "old", state.Posts[0].Text)
}

func TestUpdatePostEditsTextInPlace(t *testing.T) {
	api := &fakeApi{}
	h := newHarness(api)

	original := post("p1", "old", "alice", comment(1, "p1", "c1"))
	seq := h.ctrl.Store.Begin()
	h.ctrl.Store.Commit(seq, []shared.Post{original})

	ok := h.ctrl.UpdatePost(context.Background(), "p1", "new")

	require.True(t, ok)
	assert.Equal(t, []string{"UpdatePost"}, api.calls, "no refetch after a post edit")

	got := h.ctrl.Store.State().Posts[0]
	assert.Equal(t, "new", got.Text)
	assert.Equal(t, original.Id, got.Id)
	assert.Equal(t, original.CreatedAt, got.CreatedAt)
	assert.Equal(t, original.User, got.User)
	assert.Equal(t, original.Comments, got.Comments)
}

func TestUpdatePostErrorMessages(t *testing.T) {
	tt := []struct {
		name string
		err  *shared.ApiError
		want string
	}{
		{
			"403 maps to the fixed unauthorized message",
			&shared.ApiError{Type: shared.ApiErrorTypeUnauthorized, Status: 403, Msg: "Unauthorized."},
			"Unauthorized.",
		},
		{
			"other statuses fall back to the generic message",
			&shared.ApiError{Type: shared.ApiErrorTypeServerError, Status: 500, Msg: "Internal server error."},
			"Internal server error.",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeApi{updatePostErr: tc.err}
			h := newHarness(api)

			seq := h.ctrl.Store.Begin()
			h.ctrl.Store.Commit(seq, []shared.Post{post("p1", "old", "alice")})

			ok := h.ctrl.UpdatePost(context.Background(), "p1", "new")

			assert.False(t, ok)
			assert.Equal(t, []string{tc.want}, h.notifier.errors)
			assert.Equal(t, "old", h.ctrl.Store.State().Posts[0].Text, "state must be left unchanged on failure")
		})
	}
}

func TestCreateCommentPrependsTagged(t *testing.T) {
	api := &fakeApi{
		commentRes: &shared.CommentResponse{Id: 3, Text: "hello", Username: "me"},
	}
	h := newHarness(api)

	seq := h.ctrl.Store.Begin()
	h.ctrl.Store.Commit(seq, []shared.Post{
		post("p1", "parent", "alice", comment(2, "p1", "c2"), comment(1, "p1", "c1")),
	})

	updated, ok := h.ctrl.CreateComment(context.Background(), "p1", "hello")

	require.True(t, ok)
	require.Len(t, updated.Comments, 3)
	assert.Equal(t, 3, updated.Comments[0].Id)
	assert.Equal(t, "hello", updated.Comments[0].Text)
	assert.Equal(t, "p1", updated.Comments[0].PostId)
	assert.Equal(t, 2, updated.Comments[1].Id)
	assert.Equal(t, 1, updated.Comments[2].Id)
}

func TestCreateCommentFailureNotifiesGenerically(t *testing.T) {
	api := &fakeApi{
		createCommentErr: &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: "something specific"},
	}
	h := newHarness(api)

	seq := h.ctrl.Store.Begin()
	h.ctrl.Store.Commit(seq, []shared.Post{post("p1", "parent", "alice")})

	_, ok := h.ctrl.CreateComment(context.Background(), "p1", "hello")

	assert.False(t, ok)
	assert.Equal(t, []string{"Error posting comment."}, h.notifier.errors)
	assert.Empty(t, h.ctrl.Store.State().Posts[0].Comments)
}

func TestUpdateCommentEditsTextInPlace(t *testing.T) {
	api := &fakeApi{}
	h := newHarness(api)

	seq := h.ctrl.Store.Begin()
	h.ctrl.Store.Commit(seq, []shared.Post{
		post("p1", "parent", "alice", comment(2, "p1", "before"), comment(1, "p1", "c1")),
	})

	ok := h.ctrl.UpdateComment(context.Background(), "p1", 2, "after")

	require.True(t, ok)
	got := h.ctrl.Store.State().Posts[0]
	assert.Equal(t, "after", got.Comments[0].Text)
	assert.Equal(t, "c1", got.Comments[1].Text)
}

func TestReturnFromDetailForcesRefetchAndCenters(t *testing.T) {
	api := &fakeApi{
		feed: []shared.Post{
			post("p1", "one", "alice"),
			post("p2", "two", "bob"),
			post("p3", "three", "carol"),
		},
	}
	h := newHarness(api)

	ix := h.ctrl.ReturnFromDetail(context.Background(), "p2")

	assert.Equal(t, []string{"GetFeed"}, api.calls, "leaving the detail view must trigger a fresh fetch")
	assert.Equal(t, 1, ix)

	ix = h.ctrl.ReturnFromDetail(context.Background(), "gone")
	assert.Equal(t, -1, ix)
}

func TestRefreshCanceledLeavesStateAlone(t *testing.T) {
	api := &fakeApi{feedErr: canceledErr}
	h := newHarness(api)

	seq := h.ctrl.Store.Begin()
	h.ctrl.Store.Commit(seq, []shared.Post{post("p1", "kept", "alice")})

	ok := h.ctrl.Refresh(context.Background())

	assert.False(t, ok)
	state := h.ctrl.Store.State()
	require.Len(t, state.Posts, 1)
	assert.Equal(t, "kept", state.Posts[0].Text)
	assert.False(t, state.HasError)
	assert.Empty(t, h.notifier.errors)
	assert.Zero(t, h.authLost)
}
