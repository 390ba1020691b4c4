package shared

type ApiErrorType string

const (
	ApiErrorTypeCanceled     ApiErrorType = "canceled"
	ApiErrorTypeUnauthorized ApiErrorType = "unauthorized"
	ApiErrorTypeNotFound     ApiErrorType = "not_found"
	ApiErrorTypeServerError  ApiErrorType = "server_error"
	ApiErrorTypeValidation   ApiErrorType = "validation"
)

// Fallback messages of the rejection-mapping contract. The server may
// override them with its own `message` field, but never for 403.
const (
	UnauthorizedMsg = "Unauthorized."
	ServerErrorMsg  = "Internal server error."
	UserNotFoundMsg = "User not found."
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

// IsCanceled reports whether the error came from a canceled request.
// Canceled requests are suppressed entirely: no store mutation, no
// user-facing notification.
func (e *ApiError) IsCanceled() bool {
	return e != nil && e.Type == ApiErrorTypeCanceled
}
