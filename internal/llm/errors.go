package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies provider failures for retry decisions.
type ErrorKind int

const (
	KindUnavailable ErrorKind = iota
	KindRateLimited
	KindInvalidResponse
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindInvalidResponse:
		return "invalid response"
	case KindTruncated:
		return "truncated"
	default:
		return "unavailable"
	}
}

// Error is returned by providers for every failed request.
type Error struct {
	Kind       ErrorKind
	RetryAfter time.Duration   // set by some rate limit responses
	Content    json.RawMessage // the rejected body for invalid responses
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of an *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func invalidResponse(content json.RawMessage, format string, args ...any) error {
	return &Error{Kind: KindInvalidResponse, Content: content, Err: fmt.Errorf(format, args...)}
}

// fromStatus wraps an SDK error using its HTTP status code.
func fromStatus(code int, err error) error {
	if code == http.StatusTooManyRequests {
		return &Error{Kind: KindRateLimited, Err: err}
	}
	return &Error{Kind: KindUnavailable, Err: err}
}
