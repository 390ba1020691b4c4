package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ripple-cli/shared"
)

type serverErrorBody struct {
	Message string `json:"message"`
}

// handleRequestError maps transport-level failures. A canceled context is
// its own error kind and must never be reported as a server failure.
func handleRequestError(err error) *shared.ApiError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &shared.ApiError{
			Type: shared.ApiErrorTypeCanceled,
			Msg:  "Request Cancelled",
		}
	}

	log.Printf("request error: %v", err)

	return &shared.ApiError{
		Type: shared.ApiErrorTypeServerError,
		Msg:  shared.ServerErrorMsg,
	}
}

// handleApiError implements the rejection-mapping contract: 403 is always
// "Unauthorized.", anything else surfaces the server-provided message if
// the body carries one, with "Internal server error." as the fallback.
func handleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	if r.StatusCode == http.StatusForbidden {
		return &shared.ApiError{
			Type:   shared.ApiErrorTypeUnauthorized,
			Status: r.StatusCode,
			Msg:    shared.UnauthorizedMsg,
		}
	}

	apiErr := &shared.ApiError{
		Type:   shared.ApiErrorTypeServerError,
		Status: r.StatusCode,
		Msg:    shared.ServerErrorMsg,
	}

	var body serverErrorBody
	if err := json.Unmarshal(errBody, &body); err == nil && body.Message != "" {
		apiErr.Msg = body.Message
	}

	return apiErr
}

// handleAccountApiError is the mapping for sign-in and registration, where
// an unrecognized failure means the user wasn't found.
func handleAccountApiError(r *http.Response, errBody []byte) *shared.ApiError {
	apiErr := &shared.ApiError{
		Type:   shared.ApiErrorTypeNotFound,
		Status: r.StatusCode,
		Msg:    shared.UserNotFoundMsg,
	}

	var body serverErrorBody
	if err := json.Unmarshal(errBody, &body); err == nil && body.Message != "" {
		apiErr.Msg = body.Message
	}

	return apiErr
}
