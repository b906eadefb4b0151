package rdf

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// MediaTypeNTriples is the media type requested from linked-data endpoints.
const MediaTypeNTriples = "application/n-triples"

// ParseLine parses a single `subject predicate object .` statement.
// Subject and predicate are the first two space-delimited tokens and the
// object is everything up to the mandatory trailing " .". A line that does
// not have this shape reports false.
func ParseLine(line string) (Triple, bool) {
	cursor := &ntCursor{input: line}
	subject, ok := cursor.token()
	if !ok {
		return Triple{}, false
	}
	predicate, ok := cursor.token()
	if !ok {
		return Triple{}, false
	}
	object, ok := cursor.object()
	if !ok {
		return Triple{}, false
	}
	return Triple{S: subject, P: predicate, O: object}, true
}

// ParseDocument splits text on newlines and returns every valid statement in
// document order. Lines that are not statements (blank lines, comments,
// malformed input) are dropped. The result is never nil.
func ParseDocument(text string) []Triple {
	triples := make([]Triple, 0, strings.Count(text, "\n")+1)
	for _, line := range strings.Split(text, "\n") {
		if triple, ok := ParseLine(strings.TrimSuffix(line, "\r")); ok {
			triples = append(triples, triple)
		}
	}
	return triples
}

type ntCursor struct {
	input string
	pos   int
}

// token reads a non-empty run of non-space bytes followed by exactly one space.
func (c *ntCursor) token() (string, bool) {
	rest := c.input[c.pos:]
	end := strings.IndexByte(rest, ' ')
	if end <= 0 {
		return "", false
	}
	c.pos += end + 1
	return rest[:end], true
}

// object reads the remainder of the line, which must end in " .".
func (c *ntCursor) object() (string, bool) {
	rest := c.input[c.pos:]
	if !strings.HasSuffix(rest, " .") {
		return "", false
	}
	value := rest[:len(rest)-2]
	if value == "" || strings.IndexByte(value, '\n') >= 0 {
		return "", false
	}
	c.pos = len(c.input)
	return value, true
}

// DecodeUnicodeEscapes replaces every \uXXXX escape (exactly four hex digits)
// with the character it denotes. A high/low surrogate escape pair is combined
// into one character; other escapes are left untouched.
func DecodeUnicodeEscapes(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}
	var builder strings.Builder
	builder.Grow(len(s))
	for i := 0; i < len(s); {
		r, ok := hexEscape(s, i)
		if !ok {
			builder.WriteByte(s[i])
			i++
			continue
		}
		i += 6
		if utf16.IsSurrogate(r) {
			if low, ok := hexEscape(s, i); ok {
				if pair := utf16.DecodeRune(r, low); pair != utf8.RuneError {
					builder.WriteRune(pair)
					i += 6
					continue
				}
			}
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// hexEscape decodes a \uXXXX escape starting at s[i].
func hexEscape(s string, i int) (rune, bool) {
	if i+6 > len(s) || s[i] != '\\' || s[i+1] != 'u' {
		return 0, false
	}
	var r rune
	for _, ch := range []byte(s[i+2 : i+6]) {
		var digit byte
		switch {
		case ch >= '0' && ch <= '9':
			digit = ch - '0'
		case ch >= 'a' && ch <= 'f':
			digit = ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			digit = ch - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(digit)
	}
	return r, true
}

// Decoder reads triples from a stream one line at a time, applying the same
// rules as ParseDocument.
type Decoder struct {
	reader  *bufio.Reader
	options Options
	line    int
	err     error
}

// NewDecoder creates a decoder over r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{reader: bufio.NewReader(r), options: buildOptions(opts)}
}

// Next returns the next valid triple, or io.EOF once the input is exhausted.
// Lines that are not statements are skipped.
func (d *Decoder) Next() (Triple, error) {
	if d.err != nil {
		return Triple{}, d.err
	}
	for {
		if err := d.options.Context.Err(); err != nil {
			d.err = err
			return Triple{}, err
		}
		line, err := d.readLine()
		if err != nil {
			d.err = err
			return Triple{}, err
		}
		if triple, ok := ParseLine(line); ok {
			return triple, nil
		}
	}
}

// Err returns the first non-EOF error encountered by the decoder.
func (d *Decoder) Err() error {
	if d.err == io.EOF {
		return nil
	}
	return d.err
}

// Line returns the number of lines read so far.
func (d *Decoder) Line() int { return d.line }

func (d *Decoder) readLine() (string, error) {
	var buf []byte
	for {
		chunk, err := d.reader.ReadSlice('\n')
		buf = append(buf, chunk...)
		if d.options.MaxLineBytes > 0 && len(bytes.TrimRight(buf, "\r\n")) > d.options.MaxLineBytes {
			return "", &LineError{Line: d.line + 1, Err: ErrLineTooLong}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil && err != io.EOF {
			return "", &LineError{Line: d.line + 1, Err: errors.Wrap(err, "read")}
		}
		if err == io.EOF && len(buf) == 0 {
			return "", io.EOF
		}
		d.line++
		line := strings.TrimSuffix(string(buf), "\n")
		return strings.TrimSuffix(line, "\r"), nil
	}
}

// Parse streams every triple of r to handler. It stops at the first handler
// error, read error or context cancellation.
func Parse(ctx context.Context, r io.Reader, handler func(Triple) error, opts ...Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	dec := NewDecoder(r, append(opts, OptContext(ctx))...)
	for {
		triple, err := dec.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := handler(triple); err != nil {
			return err
		}
	}
}

// ReadAll collects every triple of r in document order.
func ReadAll(ctx context.Context, r io.Reader, opts ...Option) ([]Triple, error) {
	triples := make([]Triple, 0)
	err := Parse(ctx, r, func(t Triple) error {
		triples = append(triples, t)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return triples, nil
}

// Encoder writes triples as N-Triples lines.
type Encoder struct {
	writer *bufio.Writer
	err    error
}

// NewEncoder creates an encoder writing to w. Call Flush or Close when done.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: bufio.NewWriter(w)}
}

// Write renders t followed by a newline.
func (e *Encoder) Write(t Triple) error {
	if e.err != nil {
		return e.err
	}
	if !t.Valid() {
		return errors.WithDetailf(ErrEmptyStatement, "triple %q", t.Fields())
	}
	if _, err := e.writer.WriteString(t.String() + "\n"); err != nil {
		e.err = errors.Wrap(err, "ntriples: write")
		return e.err
	}
	return nil
}

// Flush writes any buffered data.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if err := e.writer.Flush(); err != nil {
		e.err = errors.Wrap(err, "ntriples: flush")
		return e.err
	}
	return nil
}

// Close flushes the encoder.
func (e *Encoder) Close() error {
	return e.Flush()
}
