package rdf

import "context"

const (
	// DefaultMaxLineBytes bounds a single N-Triples line read by a Decoder.
	DefaultMaxLineBytes = 1 << 20
)

// Option configures decoder behavior.
type Option func(*Options)

// Options configures decoder behavior and limits.
// Zero values use defaults. Use a negative MaxLineBytes to disable the limit.
type Options struct {
	// Context provides cancellation between lines.
	Context context.Context
	// MaxLineBytes is the largest accepted line, newline excluded.
	MaxLineBytes int
}

// DefaultOptions returns safe defaults for decoder limits.
func DefaultOptions() Options {
	return Options{
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// OptContext sets the context checked between lines.
func OptContext(ctx context.Context) Option {
	return func(opts *Options) {
		opts.Context = ctx
	}
}

// OptMaxLineBytes sets the maximum line size limit.
func OptMaxLineBytes(maxBytes int) Option {
	return func(opts *Options) {
		opts.MaxLineBytes = maxBytes
	}
}

func buildOptions(opts []Option) Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxLineBytes == 0 {
		options.MaxLineBytes = DefaultMaxLineBytes
	}
	if options.Context == nil {
		options.Context = context.Background()
	}
	return options
}
