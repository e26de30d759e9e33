package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrRedirect           = errors.New("upstream redirect")
	ErrUpstream           = errors.New("upstream error")
	ErrRequestTimeout     = errors.New("request timeout")
	ErrBadUpstreamPayload = errors.New("bad upstream payload")
	ErrHistoryDisabled    = errors.New("relay history is disabled")
)

// UpstreamError carries the status the upstream answered with. It unwraps to
// ErrNotFound, ErrRedirect or ErrUpstream.
type UpstreamError struct {
	StatusCode int
	Location   string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%v: upstream responded with status %d", e.Err, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
