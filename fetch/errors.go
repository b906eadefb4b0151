package fetch

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/geoknoesis/eli-go/rdf"
)

// ErrorCode classifies fetch failures.
type ErrorCode string

const (
	ErrCodeInvalidURL       ErrorCode = "INVALID_URL"
	ErrCodeRequestFailed    ErrorCode = "REQUEST_FAILED"
	ErrCodeHTTPStatus       ErrorCode = "HTTP_STATUS"
	ErrCodeBodyTooLarge     ErrorCode = "BODY_TOO_LARGE"
	ErrCodeTooManyRedirects ErrorCode = "TOO_MANY_REDIRECTS"
	ErrCodeContextCanceled  ErrorCode = "CONTEXT_CANCELED"
	ErrCodeParseFailed      ErrorCode = "PARSE_FAILED"
)

var (
	// ErrTooManyRedirects is returned when the redirect limit is reached.
	ErrTooManyRedirects = errors.New("fetch: too many redirects")
	// ErrBodyTooLarge is returned when a response exceeds MaxBodyBytes.
	ErrBodyTooLarge = errors.New("fetch: response body too large")
	// ErrStatus is wrapped by errors for non-2xx responses.
	ErrStatus = errors.New("fetch: unexpected HTTP status")
)

// Error is the structured failure value of a fetch. Callers inspect Code
// rather than matching on messages.
type Error struct {
	URL        string
	StatusCode int
	Code       ErrorCode
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: %s (HTTP %d): %v", e.URL, e.Code, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// CodeOf returns the ErrorCode carried by err, or "" when err is nil or not
// a fetch error.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

func newError(url string, status int, err error) *Error {
	return &Error{URL: url, StatusCode: status, Code: classify(err), Err: err}
}

func classify(err error) ErrorCode {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	case errors.Is(err, ErrTooManyRedirects):
		return ErrCodeTooManyRedirects
	case errors.Is(err, ErrBodyTooLarge):
		return ErrCodeBodyTooLarge
	case errors.Is(err, ErrStatus):
		return ErrCodeHTTPStatus
	case errors.Is(err, rdf.ErrLineTooLong):
		return ErrCodeParseFailed
	default:
		return ErrCodeRequestFailed
	}
}
