package lib

import (
	"testing"

	"ripple-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(id, text, username string, comments ...shared.Comment) shared.Post {
	return shared.Post{
		Id:        id,
		Text:      text,
		CreatedAt: "2024-05-01T10:00:00Z",
		User:      shared.User{Username: username},
		Comments:  comments,
	}
}

func comment(id int, postId, text string) shared.Comment {
	return shared.Comment{Id: id, PostId: postId, Text: text}
}

func TestFeedStoreLoadingFlag(t *testing.T) {
	store := NewFeedStore()
	assert.False(t, store.State().IsLoading, "loading must be false at rest")

	seq := store.Begin()
	assert.True(t, store.State().IsLoading, "loading must be true right after begin")

	store.Commit(seq, []shared.Post{post("p1", "hi", "alice")})
	assert.False(t, store.State().IsLoading, "loading must be false after commit")

	seq = store.Begin()
	assert.True(t, store.State().IsLoading)
	store.Fail(seq)
	assert.False(t, store.State().IsLoading, "loading must be false after failure")
	assert.True(t, store.State().HasError)

	// any successful commit clears the error flag
	seq = store.Begin()
	store.Commit(seq, nil)
	assert.False(t, store.State().HasError)
}

func TestFeedStoreStaleSequenceDiscarded(t *testing.T) {
	store := NewFeedStore()

	first := store.Begin()
	second := store.Begin()

	committed := store.Commit(second, []shared.Post{post("p2", "newer fetch", "bob")})
	require.True(t, committed)

	// the slower, older response resolves last and must be dropped
	committed = store.Commit(first, []shared.Post{post("p1", "stale fetch", "alice")})
	assert.False(t, committed)

	state := store.State()
	require.Len(t, state.Posts, 1)
	assert.Equal(t, "p2", state.Posts[0].Id)

	// same for a stale failure
	assert.False(t, store.Fail(first))
	assert.False(t, store.State().HasError)
}

func TestFeedStoreSnapshotsAreIsolated(t *testing.T) {
	store := NewFeedStore()
	seq := store.Begin()
	store.Commit(seq, []shared.Post{post("p1", "original", "alice")})

	before := store.State()
	store.SetPostText("p1", "changed")

	assert.Equal(t, "original", before.Posts[0].Text, "an earlier snapshot must not observe later mutations")
	assert.Equal(t, "changed", store.State().Posts[0].Text)
}

func TestSetPostTextTouchesOnlyText(t *testing.T) {
	store := NewFeedStore()
	p := post("p1", "old", "alice", comment(1, "p1", "c1"))
	seq := store.Begin()
	store.Commit(seq, []shared.Post{p})

	require.True(t, store.SetPostText("p1", "new"))

	got := store.State().Posts[0]
	assert.Equal(t, "new", got.Text)
	assert.Equal(t, p.Id, got.Id)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
	assert.Equal(t, p.User, got.User)
	assert.Equal(t, p.Comments, got.Comments)

	assert.False(t, store.SetPostText("missing", "x"))
}

func TestPrependComment(t *testing.T) {
	store := NewFeedStore()
	seq := store.Begin()
	store.Commit(seq, []shared.Post{
		post("p1", "hello", "alice", comment(2, "p1", "c2"), comment(1, "p1", "c1")),
	})

	newComment := comment(3, "p1", "hello")
	updated, ok := store.PrependComment("p1", newComment)
	require.True(t, ok)

	// [new, c2, c1] — prepend, not append
	require.Len(t, updated.Comments, 3)
	assert.Equal(t, 3, updated.Comments[0].Id)
	assert.Equal(t, 2, updated.Comments[1].Id)
	assert.Equal(t, 1, updated.Comments[2].Id)
	assert.Equal(t, "p1", updated.Comments[0].PostId)

	// the store's post object was replaced, not mutated in place
	stored := store.State().Posts[0]
	assert.Equal(t, updated.Comments, stored.Comments)
}

func TestSetCommentText(t *testing.T) {
	store := NewFeedStore()
	seq := store.Begin()
	store.Commit(seq, []shared.Post{
		post("p1", "hello", "alice", comment(2, "p1", "before"), comment(1, "p1", "c1")),
	})

	require.True(t, store.SetCommentText("p1", 2, "after"))

	got := store.State().Posts[0]
	assert.Equal(t, "after", got.Comments[0].Text)
	assert.Equal(t, "c1", got.Comments[1].Text)

	assert.False(t, store.SetCommentText("p1", 99, "x"))
	assert.False(t, store.SetCommentText("missing", 1, "x"))
}

func TestFilterStoreDefaults(t *testing.T) {
	tt := []struct {
		name     string
		username string
		limit    int
		want     Filters
	}{
		{"explicit values", "alice", 10, Filters{Username: "alice", Limit: 10}},
		{"zero limit falls back", "alice", 0, Filters{Username: "alice", Limit: 25}},
		{"negative limit falls back", "", -1, Filters{Username: "", Limit: 25}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			store := NewFilterStore()
			assert.Equal(t, Filters{Limit: DefaultLimit}, store.Get())

			got := store.Set(tc.username, tc.limit)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, store.Get())
		})
	}
}
