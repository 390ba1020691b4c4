package shared

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateAccountRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type SessionResponse struct {
	Token string `json:"token"`
}

// FeedParams are query parameters for GET /feed. Empty values are omitted.
type FeedParams struct {
	Start string
	Limit string
}

type CreatePostRequest struct {
	Text string `json:"text"`
}

type UpdatePostRequest struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type UpdateCommentRequest struct {
	Id   int    `json:"id"`
	Text string `json:"text"`
}

// CommentResponse is a freshly created or updated comment as returned by
// the comment endpoints. It carries no post id; the caller tags it.
type CommentResponse struct {
	Id        int    `json:"id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// ToComment tags the response with its parent post id, producing the
// canonical comment.
func (cr *CommentResponse) ToComment(postId string) Comment {
	return Comment{
		Id:        cr.Id,
		PostId:    postId,
		Text:      cr.Text,
		Username:  cr.Username,
		CreatedAt: cr.CreatedAt,
		UpdatedAt: cr.UpdatedAt,
		Timestamp: cr.Timestamp,
	}
}
