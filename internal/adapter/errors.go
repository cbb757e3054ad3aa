package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	StatusCode int
	// UserMessage is the "UserMessage" of the body, or the raw body when it
	// is not a JSON error response.
	UserMessage string

	kind error
}

func (e *ResponseError) Error() string {
	if e.UserMessage == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.UserMessage)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
