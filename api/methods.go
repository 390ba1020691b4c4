package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"ripple-cli/shared"
)

func (a *Api) SignIn(ctx context.Context, req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	serverUrl := GetApiHost() + "/account/login"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := unauthenticatedClient.Do(request)
	if err != nil {
		return nil, handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleAccountApiError(resp, errorBody)
	}

	var session shared.SessionResponse
	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &session, nil
}

func (a *Api) CreateAccount(ctx context.Context, req shared.CreateAccountRequest) (*shared.SessionResponse, *shared.ApiError) {
	serverUrl := GetApiHost() + "/account/create"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := unauthenticatedClient.Do(request)
	if err != nil {
		return nil, handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleAccountApiError(resp, errorBody)
	}

	var session shared.SessionResponse
	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &session, nil
}

// SignOut tells the server to invalidate the session. The endpoint answers
// 202 Accepted; anything else is a failure and the local session must be
// left intact by the caller.
func (a *Api) SignOut() *shared.ApiError {
	serverUrl := GetApiHost() + "/account/logout"

	request, err := http.NewRequest(http.MethodPut, serverUrl, bytes.NewBuffer([]byte("{}")))
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody)
	}

	return nil
}

func (a *Api) GetCurrentUser(ctx context.Context) (*shared.User, *shared.ApiError) {
	serverUrl := GetApiHost() + "/user"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, serverUrl, nil)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var user shared.User
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &user, nil
}

// UpdateUserPhoto uploads a new profile picture as multipart form data
// under the "profileImage" field.
func (a *Api) UpdateUserPhoto(filename string, file io.Reader) *shared.ApiError {
	serverUrl := GetApiHost() + "/user/picture"

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("profileImage", filepath.Base(filename))
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating form file: %v", err)}
	}

	_, err = io.Copy(part, file)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error reading file: %v", err)}
	}

	err = writer.Close()
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error finalizing form: %v", err)}
	}

	request, err := http.NewRequest(http.MethodPost, serverUrl, &body)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := authenticatedSlowClient.Do(request)
	if err != nil {
		return handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody)
	}

	return nil
}

// GetFeed fetches the feed and normalizes each post's comments before they
// reach any store.
func (a *Api) GetFeed(ctx context.Context, params shared.FeedParams) ([]shared.Post, *shared.ApiError) {
	serverUrl := GetApiHost() + "/feed"

	query := url.Values{}
	if params.Start != "" {
		query.Set("start", params.Start)
	}
	if params.Limit != "" {
		query.Set("limit", params.Limit)
	}
	if len(query) > 0 {
		serverUrl += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, serverUrl, nil)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var feedPosts []shared.FeedPost
	err = json.NewDecoder(resp.Body).Decode(&feedPosts)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	posts := make([]shared.Post, 0, len(feedPosts))
	for i := range feedPosts {
		posts = append(posts, feedPosts[i].ToPost())
	}

	return posts, nil
}

func (a *Api) CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	serverUrl := GetApiHost() + "/feed/post"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var feedPost shared.FeedPost
	err = json.NewDecoder(resp.Body).Decode(&feedPost)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	post := feedPost.ToPost()
	return &post, nil
}

func (a *Api) UpdatePost(ctx context.Context, req shared.UpdatePostRequest) (*shared.Post, *shared.ApiError) {
	serverUrl := GetApiHost() + "/feed/post"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var feedPost shared.FeedPost
	err = json.NewDecoder(resp.Body).Decode(&feedPost)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	post := feedPost.ToPost()
	return &post, nil
}

func (a *Api) CreateComment(ctx context.Context, postId string, req shared.CreateCommentRequest) (*shared.CommentResponse, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/feed/%s/comment", GetApiHost(), postId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return nil, handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, handleApiError(resp, errorBody)
	}

	var comment shared.CommentResponse
	err = json.NewDecoder(resp.Body).Decode(&comment)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &comment, nil
}

func (a *Api) UpdateComment(ctx context.Context, postId string, req shared.UpdateCommentRequest) *shared.ApiError {
	serverUrl := fmt.Sprintf("%s/feed/%s/comment", GetApiHost(), postId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeServerError, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := authenticatedFastClient.Do(request)
	if err != nil {
		return handleRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return handleApiError(resp, errorBody)
	}

	return nil
}
