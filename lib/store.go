package lib

import (
	"sync"

	"ripple-cli/shared"
)

// FeedState is an immutable snapshot of the feed slice. IsLoading is true
// strictly between a Begin and the matching Commit/Fail; HasError is
// cleared by any successful Commit.
type FeedState struct {
	Posts     []shared.Post
	IsLoading bool
	HasError  bool
}

type feedAction int

const (
	actionFetchBegin feedAction = iota
	actionSetPosts
	actionFetchFailed
)

// reduce is the pure transition function over feed snapshots. It never
// mutates its input.
func reduce(state FeedState, action feedAction, posts []shared.Post) FeedState {
	switch action {
	case actionFetchBegin:
		return FeedState{
			Posts:     state.Posts,
			IsLoading: true,
			HasError:  false,
		}
	case actionSetPosts:
		return FeedState{
			Posts:     posts,
			IsLoading: false,
			HasError:  false,
		}
	case actionFetchFailed:
		return FeedState{
			Posts:     state.Posts,
			IsLoading: false,
			HasError:  true,
		}
	}
	return state
}

// FeedStore is the single owner of the posts list. Components read
// snapshots via State and request mutations through the controller; nothing
// mutates the slice in place.
//
// Fetches are sequenced: Begin issues a monotonically increasing sequence
// number and only the latest issued sequence may commit or fail. A slow
// response arriving after a newer fetch began is discarded no matter when
// it resolves (last request wins by sequence, not completion order).
type FeedStore struct {
	mu    sync.Mutex
	state FeedState
	seq   uint64
}

func NewFeedStore() *FeedStore {
	return &FeedStore{
		state: FeedState{Posts: []shared.Post{}},
	}
}

// State returns a snapshot with its own copy of the posts slice.
func (s *FeedStore) State() FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]shared.Post, len(s.state.Posts))
	copy(posts, s.state.Posts)

	return FeedState{
		Posts:     posts,
		IsLoading: s.state.IsLoading,
		HasError:  s.state.HasError,
	}
}

// Begin signals the start of a fetch cycle and returns its sequence number.
func (s *FeedStore) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.state = reduce(s.state, actionFetchBegin, nil)
	return s.seq
}

// Commit replaces the posts list if seq is still the latest fetch. Returns
// false for stale sequences, which are dropped without touching state.
func (s *FeedStore) Commit(seq uint64, posts []shared.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	s.state = reduce(s.state, actionSetPosts, posts)
	return true
}

// Fail marks the fetch cycle as failed if seq is still the latest.
func (s *FeedStore) Fail(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	s.state = reduce(s.state, actionFetchFailed, nil)
	return true
}

// ReplacePost swaps the post with the same id for the given one, building a
// fresh posts slice. Returns false if the post is not in the list.
func (s *FeedStore) ReplacePost(post shared.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	posts := make([]shared.Post, len(s.state.Posts))
	for i, p := range s.state.Posts {
		if p.Id == post.Id {
			posts[i] = post
			found = true
		} else {
			posts[i] = p
		}
	}

	if !found {
		return false
	}

	s.state = FeedState{
		Posts:     posts,
		IsLoading: s.state.IsLoading,
		HasError:  s.state.HasError,
	}
	return true
}

// SetPostText replaces only the text of the post with the given id. Every
// other field, comments included, is untouched.
func (s *FeedStore) SetPostText(id, text string) bool {
	s.mu.Lock()
	post, ok := s.findPost(id)
	s.mu.Unlock()

	if !ok {
		return false
	}

	post.Text = text
	return s.ReplacePost(post)
}

// PrependComment inserts the comment at the head of its post's comment
// list, replacing the post object in the list. Returns the new post.
func (s *FeedStore) PrependComment(postId string, comment shared.Comment) (shared.Post, bool) {
	s.mu.Lock()
	post, ok := s.findPost(postId)
	s.mu.Unlock()

	if !ok {
		return shared.Post{}, false
	}

	comments := make([]shared.Comment, 0, len(post.Comments)+1)
	comments = append(comments, comment)
	comments = append(comments, post.Comments...)
	post.Comments = comments

	s.ReplacePost(post)
	return post, true
}

// SetCommentText replaces the text of one comment, matched by id, within
// its post.
func (s *FeedStore) SetCommentText(postId string, commentId int, text string) bool {
	s.mu.Lock()
	post, ok := s.findPost(postId)
	s.mu.Unlock()

	if !ok {
		return false
	}

	found := false
	comments := make([]shared.Comment, len(post.Comments))
	for i, c := range post.Comments {
		if c.Id == commentId {
			c.Text = text
			found = true
		}
		comments[i] = c
	}

	if !found {
		return false
	}

	post.Comments = comments
	return s.ReplacePost(post)
}

// GetPost returns a copy of the post with the given id.
func (s *FeedStore) GetPost(id string) (shared.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findPost(id)
}

// findPost returns a deep-enough copy for safe mutation by the caller.
// Callers hold s.mu.
func (s *FeedStore) findPost(id string) (shared.Post, bool) {
	for _, p := range s.state.Posts {
		if p.Id == id {
			post := p
			comments := make([]shared.Comment, len(p.Comments))
			copy(comments, p.Comments)
			post.Comments = comments
			return post, true
		}
	}
	return shared.Post{}, false
}
