package rdf

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestErrorCode_Nil(t *testing.T) {
	if code := Code(nil); code != "" {
		t.Errorf("expected empty code for nil, got %v", code)
	}
	if code := Code(io.EOF); code != "" {
		t.Errorf("expected empty code for io.EOF, got %v", code)
	}
}

func TestErrorCode_Wrapped(t *testing.T) {
	err := errors.Wrap(&LineError{Line: 3, Err: ErrLineTooLong}, "fetch body")
	if code := Code(err); code != ErrCodeLineTooLong {
		t.Errorf("expected ErrCodeLineTooLong, got %v", code)
	}
	if !strings.Contains(err.Error(), "ntriples:3") {
		t.Errorf("expected line number in message, got %q", err.Error())
	}
}

func TestErrorCode_Deadline(t *testing.T) {
	if code := Code(context.DeadlineExceeded); code != ErrCodeContextCanceled {
		t.Errorf("expected ErrCodeContextCanceled, got %v", code)
	}
}

func TestErrorCode_IO(t *testing.T) {
	dec := NewDecoder(failingReader{})
	_, err := dec.Next()
	if code := Code(err); code != ErrCodeIOError {
		t.Errorf("expected ErrCodeIOError, got %v", code)
	}
	if dec.Err() == nil {
		t.Error("expected Err to report the read failure")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }
