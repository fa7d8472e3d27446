package apperror

import "net/http"

// AppError carries an HTTP status code and the exact message the client
// should see. The wrapped error is for server-side logging only.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest is a validation failure; the caller can fix the input.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Unavailable signals a missing-configuration deployment. The intake
// contract reports these as 500 with a fixed descriptive message.
func Unavailable(message string) *AppError {
	return New(http.StatusInternalServerError, message, nil)
}

// Internal hides the underlying failure behind a fixed generic message.
func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}
