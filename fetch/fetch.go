package fetch

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/geoknoesis/eli-go/config"
	"github.com/geoknoesis/eli-go/rdf"
)

// Config configures a Fetcher.
type Config struct {
	// Timeout bounds a whole request, body included. Zero means no timeout.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// MaxBodyBytes caps the response body size.
	MaxBodyBytes int64
	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int
	// RequestsPerSecond paces outgoing requests; 0 disables pacing.
	RequestsPerSecond float64
	// MaxLineBytes bounds a single N-Triples line of the body.
	MaxLineBytes int
}

// DefaultConfig returns the fetcher defaults of config.DefaultConfig.
func DefaultConfig() Config {
	return FromConfig(config.DefaultConfig())
}

// FromConfig extracts the fetcher settings from the application config.
func FromConfig(c *config.Config) Config {
	return Config{
		Timeout:           c.Fetch.TimeoutDuration(),
		UserAgent:         c.Fetch.UserAgent,
		MaxBodyBytes:      c.Fetch.MaxBodyBytes,
		MaxRedirects:      c.Fetch.MaxRedirects,
		RequestsPerSecond: c.Fetch.RequestsPerSecond,
		MaxLineBytes:      c.Parse.MaxLineBytes,
	}
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithHTTPClient replaces the HTTP client. Its redirect policy is replaced
// by the fetcher's.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithRegisterer registers the fetcher metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(f *Fetcher) {
		f.registerer = reg
	}
}

// Response is a successfully fetched document.
type Response struct {
	// URL is the final URL after redirects.
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Fetcher retrieves N-Triples documents over HTTP. It is safe for concurrent
// use. Failed requests are not retried and responses are not cached.
type Fetcher struct {
	client     *http.Client
	cfg        Config
	limiter    *rate.Limiter
	logger     *zap.Logger
	registerer prometheus.Registerer
	metrics    *metrics
}

// New creates a fetcher.
func New(cfg Config, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{},
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	client := *f.client
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) > cfg.MaxRedirects {
			return errors.WithDetailf(ErrTooManyRedirects, "limit %d", cfg.MaxRedirects)
		}
		f.logger.Debug("Following redirect", zap.String("to", req.URL.String()), zap.Int("hop", len(via)))
		return nil
	}
	f.client = &client

	if cfg.RequestsPerSecond > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	f.metrics = newMetrics(f.registerer)
	return f
}

// Fetch performs a GET for url asking for application/n-triples. Any non-2xx
// status is an *Error with code HTTP_STATUS.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Response, error) {
	start := time.Now()
	resp, err := f.fetch(ctx, url)
	outcome := "ok"
	if err != nil {
		outcome = string(CodeOf(err))
	}
	elapsed := time.Since(start)
	f.metrics.observe(outcome, elapsed.Seconds())

	if err != nil {
		f.logger.Warn("Fetch failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	f.logger.Debug("Fetched document",
		zap.String("url", url),
		zap.String("final_url", resp.URL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(resp.Body)),
		zap.Duration("elapsed", elapsed))
	return resp, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) (*Response, error) {
	if f.limiter != nil {
		// Wait fails only when ctx ends or its deadline is too close.
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, &Error{URL: url, Code: ErrCodeContextCanceled, Err: errors.Wrap(err, "rate limit wait")}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Code: ErrCodeInvalidURL, Err: errors.Wrap(err, "create request")}
	}
	req.Header.Set("Accept", rdf.MediaTypeNTriples)
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, newError(url, 0, errors.Wrap(err, "request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, newError(url, resp.StatusCode,
			errors.Wrapf(ErrStatus, "%s", http.StatusText(resp.StatusCode)))
	}

	body, err := f.readBody(resp.Body)
	if err != nil {
		return nil, newError(url, resp.StatusCode, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if media, _, err := mime.ParseMediaType(contentType); err != nil || media != rdf.MediaTypeNTriples {
		f.logger.Debug("Unexpected content type, parsing anyway",
			zap.String("url", url), zap.String("content_type", contentType))
	}

	return &Response{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

func (f *Fetcher) readBody(r io.Reader) ([]byte, error) {
	if f.cfg.MaxBodyBytes <= 0 {
		body, err := io.ReadAll(r)
		return body, errors.Wrap(err, "read body")
	}
	body, err := io.ReadAll(io.LimitReader(r, f.cfg.MaxBodyBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if int64(len(body)) > f.cfg.MaxBodyBytes {
		return nil, errors.WithDetailf(ErrBodyTooLarge, "limit %d bytes", f.cfg.MaxBodyBytes)
	}
	return body, nil
}

// Triples fetches url and parses the body in the background.
func (f *Fetcher) Triples(ctx context.Context, url string) *Future[[]rdf.Triple] {
	return Go(func() ([]rdf.Triple, error) {
		resp, err := f.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		triples, err := rdf.ReadAll(ctx, bytes.NewReader(resp.Body), rdf.OptMaxLineBytes(f.cfg.MaxLineBytes))
		if err != nil {
			return nil, newError(url, resp.StatusCode, err)
		}
		f.metrics.triples.Add(float64(len(triples)))
		f.logger.Debug("Parsed document", zap.String("url", url), zap.Int("triples", len(triples)))
		return triples, nil
	})
}

// TitlesAsync fetches url and projects the ELI titles in the background.
func (f *Fetcher) TitlesAsync(ctx context.Context, url string) *Future[map[string]string] {
	return Then(f.Triples(ctx, url), func(triples []rdf.Triple) (map[string]string, error) {
		return rdf.ProjectTitles(triples), nil
	})
}

// Titles fetches url and returns the subject to title mapping.
func (f *Fetcher) Titles(ctx context.Context, url string) (map[string]string, error) {
	return f.TitlesAsync(ctx, url).Await(ctx)
}
