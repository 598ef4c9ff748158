package web

import (
	"errors"

	"github.com/kindfood/erp-system/notification"
)

// ErrorResponse is the form used for API responses from failures in the API.
type ErrorResponse struct {
	Error        string                 `json:"error"`
	Notification *notification.Rendered `json:"notification,omitempty"`
	Redirect     string                 `json:"redirect,omitempty"`
}

// Error is used to pass an error during the request through the
// application with web specific context.
type Error struct {
	Err      error
	Status   int
	Toast    *notification.Toast
	Redirect string
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// NewNotifiedError wraps a provided error with an HTTP status code and the toast
// the front end shows for it.
func NewNotifiedError(err error, status int, toast *notification.Toast) *Error {
	return &Error{Err: err, Status: status, Toast: toast}
}

// WithRedirect sets the route the front end navigates to after showing the error.
func (err *Error) WithRedirect(route string) *Error {
	err.Redirect = route
	return err
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (err *Error) Error() string {
	return err.Err.Error()
}

// Unwrap exposes the wrapped error to errors.Is/As.
func (err *Error) Unwrap() error {
	return err.Err
}

// shutdown is a type used to help with the graceful termination of the service.
type shutdown struct {
	Message string
}

// NewShutdownError returns an error that causes the framework to signal
// a graceful shutdown.
func NewShutdownError(message string) error {
	return &shutdown{message}
}

// Error is the implementation of the error interface.
func (s *shutdown) Error() string {
	return s.Message
}

// IsShutdown checks to see if the shutdown error is contained
// in the specified error value.
func IsShutdown(err error) bool {
	var s *shutdown
	return errors.As(err, &s)
}
