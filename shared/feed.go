package shared

import (
	"encoding/json"
	"sort"
)

type User struct {
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ProfilePic string `json:"profilePic"`
}

// Comment is the canonical client-side comment. PostId relates it to its
// parent post by value; Timestamp is optional on the wire (0 = absent).
type Comment struct {
	Id        int    `json:"id"`
	PostId    string `json:"post_id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Post always carries Comments as a materialized ordered slice, regardless
// of the wire shape. Order is server-defined; the client never re-sorts
// posts. A locally created comment is prepended, not appended.
type Post struct {
	Id        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
	User      User      `json:"user"`
	Comments  []Comment `json:"comments"`
}

// rawComment is a comment as the feed endpoint serializes it. The array
// form tags each element with the parent post id under "POST_ID"; the keyed
// form omits it. Either way the normalizer overwrites the back-reference
// with the parent's id.
type rawComment struct {
	Id        int    `json:"id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// RawComments is the tagged union of the feed endpoint's "comments" field:
// absent, an ordered array, or a keyed object whose keys are opaque. It is
// decoded at the API boundary and never leaks past NormalizeComments.
type RawComments struct {
	List  []rawComment
	Keyed map[string]rawComment
}

func (rc *RawComments) UnmarshalJSON(data []byte) error {
	rc.List = nil
	rc.Keyed = nil

	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return json.Unmarshal(data, &rc.List)
		case '{':
			return json.Unmarshal(data, &rc.Keyed)
		}
		break
	}

	// null or anything else → absent
	return nil
}

// FeedPost is a post as returned by the feed endpoints, before comment
// normalization.
type FeedPost struct {
	Id        string      `json:"id"`
	Text      string      `json:"text"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
	User      User        `json:"user"`
	Comments  RawComments `json:"comments"`
}

// ToPost normalizes the raw comments union into the canonical ordered list.
// This runs exactly once per post per fetch.
func (fp *FeedPost) ToPost() Post {
	return Post{
		Id:        fp.Id,
		Text:      fp.Text,
		CreatedAt: fp.CreatedAt,
		UpdatedAt: fp.UpdatedAt,
		User:      fp.User,
		Comments:  NormalizeComments(fp.Id, fp.Comments),
	}
}

// NormalizeComments converts the array-or-map wire shape into a single
// ordered list, tagging every comment with the parent post id.
//
// The array form passes through in server order. The keyed form has no
// guaranteed key order; when every entry carries a timestamp it is sorted
// newest-first (the feed's ordering for comments), otherwise enumeration
// order is kept as-is.
func NormalizeComments(postId string, rc RawComments) []Comment {
	if rc.List != nil {
		out := make([]Comment, 0, len(rc.List))
		for _, c := range rc.List {
			out = append(out, tagComment(postId, c))
		}
		return out
	}

	if rc.Keyed != nil {
		keys := make([]string, 0, len(rc.Keyed))
		for k := range rc.Keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make([]Comment, 0, len(keys))
		allTimestamped := true
		for _, k := range keys {
			c := rc.Keyed[k]
			if c.Timestamp == 0 {
				allTimestamped = false
			}
			out = append(out, tagComment(postId, c))
		}

		if allTimestamped {
			sort.SliceStable(out, func(i, j int) bool {
				return out[i].Timestamp > out[j].Timestamp
			})
		}
		return out
	}

	return []Comment{}
}

func tagComment(postId string, c rawComment) Comment {
	return Comment{
		Id:        c.Id,
		PostId:    postId,
		Text:      c.Text,
		Username:  c.Username,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Timestamp: c.Timestamp,
	}
}
