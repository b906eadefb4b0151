package rdf

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeLineTooLong indicates a line exceeded the configured limit.
	ErrCodeLineTooLong ErrorCode = "LINE_TOO_LONG"
	// ErrCodeIOError indicates the underlying reader or writer failed.
	ErrCodeIOError ErrorCode = "IO_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled or timed out.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeEmptyStatement indicates an encoder was given an incomplete triple.
	ErrCodeEmptyStatement ErrorCode = "EMPTY_STATEMENT"
)

var (
	// ErrLineTooLong indicates a line exceeded the configured limit.
	ErrLineTooLong = errors.New("rdf: line exceeds configured limit")
	// ErrEmptyStatement indicates a triple with a missing token was written.
	ErrEmptyStatement = errors.New("rdf: statement has empty fields")
)

// Code returns the error code for an error.
// Returns empty string for nil errors or io.EOF (which is not an error condition).
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}
	switch {
	case errors.Is(err, ErrLineTooLong):
		return ErrCodeLineTooLong
	case errors.Is(err, ErrEmptyStatement):
		return ErrCodeEmptyStatement
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	}
	return ErrCodeIOError
}

// LineError reports the 1-based line of the input that could not be read.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("ntriples:%d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
