package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoknoesis/eli-go/config"
	"github.com/geoknoesis/eli-go/fetch"
	"github.com/geoknoesis/eli-go/logger"
	"github.com/geoknoesis/eli-go/rdf"
)

// skipConfigAnnotation marks commands that must run even when the config
// file is missing or invalid.
const skipConfigAnnotation = "eliref/skip-config"

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath  string
	verbosity   int
	jsonLogs    bool
	metricsFile string

	cfg        *config.Config
	configFile string
	logger     *zap.Logger
	httpClient *http.Client
	registry   *prometheus.Registry
}

func newApp() *app {
	return &app{
		cfg:      config.DefaultConfig(),
		logger:   logger.Nop(),
		registry: prometheus.NewRegistry(),
	}
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Annotations[skipConfigAnnotation] == "" {
		cfg, path, err := config.Load(a.configPath)
		if err != nil {
			return errors.WithHint(err, "fix the file or create one with 'eliref config init'")
		}
		a.cfg, a.configFile = cfg, path
	}

	level := a.cfg.Log.Level
	if a.verbosity > 0 {
		level = logger.VerbosityToLevel(a.verbosity)
	}
	log, err := logger.New(level, a.cfg.Log.JSON || a.jsonLogs)
	if err != nil {
		return err
	}
	a.logger = log
	if a.configFile != "" {
		a.logger.Debug("Loaded configuration", zap.String("path", a.configFile))
	}
	return nil
}

// teardown flushes logs and writes the metrics file when one was requested.
func (a *app) teardown() error {
	_ = a.logger.Sync()
	if a.metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.metricsFile, a.registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", a.metricsFile)
	}
	return nil
}

func (a *app) fetcher() *fetch.Fetcher {
	return fetch.New(fetch.FromConfig(a.cfg),
		fetch.WithLogger(a.logger.Named("fetch")),
		fetch.WithHTTPClient(a.httpClient),
		fetch.WithRegisterer(a.registry),
	)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// eachTriple streams the triples of source to fn. Source is a file path, an
// http(s) URL, or "-" / "" for standard input.
func (a *app) eachTriple(ctx context.Context, cmd *cobra.Command, source string, fn func(rdf.Triple) error) error {
	if isURL(source) {
		triples, err := a.fetcher().Triples(ctx, source).Await(ctx)
		if err != nil {
			return withFetchHint(err)
		}
		for _, t := range triples {
			if err := fn(t); err != nil {
				return err
			}
		}
		return nil
	}

	opts := []rdf.Option{rdf.OptMaxLineBytes(a.cfg.Parse.MaxLineBytes)}

	var r io.Reader
	if source == "" || source == "-" {
		r = cmd.InOrStdin()
		source = "stdin"
	} else {
		f, err := os.Open(source)
		if err != nil {
			return errors.Wrapf(err, "open %s", source)
		}
		defer f.Close()
		r = f
	}
	if err := rdf.Parse(ctx, r, fn, opts...); err != nil {
		if rdf.Code(err) == rdf.ErrCodeLineTooLong {
			return errors.WithHint(errors.Wrapf(err, "parse %s", source),
				"raise parse.max_line_bytes (ELIREF_PARSE_MAX_LINE_BYTES)")
		}
		return errors.Wrapf(err, "parse %s", source)
	}
	return nil
}

func (a *app) readTriples(ctx context.Context, cmd *cobra.Command, source string) ([]rdf.Triple, error) {
	triples := make([]rdf.Triple, 0)
	err := a.eachTriple(ctx, cmd, source, func(t rdf.Triple) error {
		triples = append(triples, t)
		return nil
	})
	return triples, err
}

func withFetchHint(err error) error {
	switch fetch.CodeOf(err) {
	case fetch.ErrCodeHTTPStatus:
		return errors.WithHint(err, "the server has no N-Triples document at this address")
	case fetch.ErrCodeBodyTooLarge:
		return errors.WithHint(err, "raise fetch.max_body_bytes (ELIREF_FETCH_MAX_BODY_BYTES)")
	case fetch.ErrCodeTooManyRedirects:
		return errors.WithHint(err, "raise fetch.max_redirects (ELIREF_FETCH_MAX_REDIRECTS)")
	case fetch.ErrCodeParseFailed:
		return errors.WithHint(err, "raise parse.max_line_bytes (ELIREF_PARSE_MAX_LINE_BYTES)")
	}
	return err
}
