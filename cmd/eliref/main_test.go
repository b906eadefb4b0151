package main

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/eli-go/fetch"
	"github.com/geoknoesis/eli-go/rdf"
)

const testDoc = `# ELI export
<http://example.org/eli/kb/2020/01/15/1> <http://data.europa.eu/eli/ontology#title> "Koninklijk besluit betreffende iets"@nl .
<http://example.org/eli/kb/2020/01/15/1> <http://purl.org/dc/terms/title> "KB iets" .
<http://example.org/eli/kb/2020/01/15/1> <http://data.europa.eu/eli/ontology#date_document> "2020-01-15T00:00:00"^^<http://w3.org/2001/XMLSchema#dateTime> .
this line is not a statement

<http://example.org/eli/ar/2020/01/15/1> <http://data.europa.eu/eli/ontology#title> "Arrêt royal"@fr .
`

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// isolate keeps the user's config files and environment out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func execute(t *testing.T, a *app, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDoc(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "doc.nt")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0644))
	return path
}

// rewriteTransport sends every request to target, keeping path and query.
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	r.Host = ""
	return http.DefaultTransport.RoundTrip(r)
}

func redirectedApp(t *testing.T, srv *httptest.Server) *app {
	t.Helper()
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	a := newApp()
	a.httpClient = &http.Client{Transport: rewriteTransport{target: target}}
	return a
}

func TestSuggest(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "", "suggest", "zie", "KB", "15/01/2020", "betreffende", "iets")
	require.NoError(t, err)
	assert.Equal(t, "https://id.belgium.be/_query/eli/filter-by-docdate?date=2020-01-15&type=DECISION\n", out)
}

func TestSuggestDetails(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "", "suggest", "--details", "decr 30-06-2017 betreffende onderwijs")
	require.NoError(t, err)
	assert.Contains(t, out, "date: 2017-06-30\n")
	assert.Contains(t, out, "type: DECREE\n")
}

func TestSuggestNoCitation(t *testing.T) {
	isolate(t)

	tests := [][]string{
		{"suggest", "kb 1/1/20"},
		{"suggest", "wet 01/01/1750 over iets"},
		{"suggest", "nothing to see here"},
	}
	for _, args := range tests {
		t.Run(args[1], func(t *testing.T) {
			out, err := execute(t, newApp(), "", args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errNoCitation))
			assert.NotEmpty(t, errors.FlattenHints(err))
			assert.Empty(t, out)
		})
	}
}

func TestSuggestStrict(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "", "suggest", "wet 31/04/2020")
	require.NoError(t, err)
	assert.Contains(t, out, "date=2020-05-01&type=LAW")

	_, err = execute(t, newApp(), "", "suggest", "--strict", "wet 31/04/2020")
	assert.True(t, errors.Is(err, errNoCitation))
}

func TestParseFile(t *testing.T) {
	path := writeDoc(t, isolate(t))

	out, err := execute(t, newApp(), "", "parse", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `<http://example.org/eli/kb/2020/01/15/1> <http://purl.org/dc/terms/title> "KB iets" .`, lines[1])
	assert.NotContains(t, out, "not a statement")
	assert.NotContains(t, out, "# ELI export")
}

func TestParseStdinSimplify(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), testDoc, "parse", "--simplify", "--decode")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "<http://example.org/eli/kb/2020/01/15/1>\tdcterms:title\t\"KB iets\"", lines[1])
	assert.Equal(t, "<http://example.org/eli/kb/2020/01/15/1>\t<http://data.europa.eu/eli/ontology#date_document>\t2020-01-15", lines[2])
	assert.Contains(t, lines[3], "Arrêt royal")
}

func TestParseMissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, newApp(), "", "parse", filepath.Join(dir, "absent.nt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseLineTooLong(t *testing.T) {
	isolate(t)
	t.Setenv("ELIREF_PARSE_MAX_LINE_BYTES", "32")

	_, err := execute(t, newApp(), testDoc, "parse", "-")
	require.Error(t, err)
	assert.Equal(t, rdf.ErrCodeLineTooLong, rdf.Code(err))
	assert.Contains(t, errors.FlattenHints(err), "parse.max_line_bytes")
}

func TestSimplify(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "", "simplify",
		"<http://purl.org/dc/terms/title>",
		"<mailto:info@example.org>",
		`"2020-01-15T00:00:00"^^<http://w3.org/2001/XMLSchema#dateTime>`,
		"<urn:x>",
	)
	require.NoError(t, err)
	assert.Equal(t, "dcterms:title\ninfo@example.org\n2020-01-15\n<urn:x>\n", out)
}

func TestSimplifyExpand(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "", "simplify", "--expand", "foaf:name", "nope:x")
	require.NoError(t, err)
	assert.Equal(t, "<http://xmlns.com/foaf/0.1/name>\nnope:x\n", out)
}

func TestNamespaces(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "", "namespaces")
	require.NoError(t, err)
	for _, ns := range rdf.Namespaces() {
		assert.Contains(t, out, ns.IRI)
	}
	assert.Less(t, strings.Index(out, "dcterms"), strings.Index(out, "xsd"))
}

func TestTitlesFile(t *testing.T) {
	path := writeDoc(t, isolate(t))

	out, err := execute(t, newApp(), "", "titles", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Koninklijk besluit betreffende iets")
	assert.Contains(t, out, "Arrêt royal")
	assert.NotContains(t, out, "KB iets")
	assert.Less(t, strings.Index(out, "eli/ar/"), strings.Index(out, "eli/kb/"))
}

func TestTitlesPredicate(t *testing.T) {
	path := writeDoc(t, isolate(t))

	out, err := execute(t, newApp(), "", "titles", "--predicate", "dcterms:title", path)
	require.NoError(t, err)
	assert.Contains(t, out, "KB iets")
	assert.NotContains(t, out, "Koninklijk")
}

func TestTitlesEmpty(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "garbage\n", "titles", "-")
	require.NoError(t, err)
	assert.Equal(t, "No titles found.\n", out)
}

func TestTitlesURLWithMetrics(t *testing.T) {
	dir := isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", rdf.MediaTypeNTriples)
		_, _ = w.Write([]byte(testDoc))
	}))
	defer srv.Close()

	metricsFile := filepath.Join(dir, "eliref.prom")
	out, err := execute(t, newApp(), "", "titles", "--metrics-file", metricsFile, srv.URL+"/eli/kb/2020/01/15/1")
	require.NoError(t, err)
	assert.Contains(t, out, "Koninklijk besluit betreffende iets")

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `eliref_fetch_requests_total{outcome="ok"} 1`)
	assert.Contains(t, string(metrics), "eliref_fetch_triples_total 4")
}

func TestLookup(t *testing.T) {
	isolate(t)
	queries := make(chan url.Values, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/_query/eli/filter-by-docdate" {
			http.NotFound(w, r)
			return
		}
		queries <- r.URL.Query()
		_, _ = w.Write([]byte(testDoc))
	}))
	defer srv.Close()

	out, err := execute(t, redirectedApp(t, srv), "", "lookup", "zie KB 15/01/2020 betreffende iets")
	require.NoError(t, err)
	query := <-queries
	assert.Equal(t, "2020-01-15", query.Get("date"))
	assert.Equal(t, "DECISION", query.Get("type"))
	assert.Contains(t, out, "Koninklijk besluit betreffende iets")
}

func TestLookupHTTPError(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := execute(t, redirectedApp(t, srv), "", "lookup", "wet 01/11/2020 iets")
	require.Error(t, err)
	assert.Equal(t, fetch.ErrCodeHTTPStatus, fetch.CodeOf(err))
	assert.NotEmpty(t, errors.FlattenHints(err))
}

func TestConfigInitAndShow(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "", "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Wrote eliref.yaml\n", out)

	_, err = execute(t, newApp(), "", "config", "init")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "--force")

	_, err = execute(t, newApp(), "", "config", "init", "--force")
	require.NoError(t, err)

	t.Setenv("ELIREF_FETCH_USER_AGENT", "custom-agent/2.0")
	out, err = execute(t, newApp(), "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "(from eliref.yaml)")
	assert.Contains(t, out, "user_agent: custom-agent/2.0")
}

func TestConfigShowDefaults(t *testing.T) {
	isolate(t)

	out, err := execute(t, newApp(), "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "(from defaults)")
	assert.Contains(t, out, "timeout: 30s")
}

func TestBrokenConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eliref.yaml"), []byte("log:\n  level: chatty\n"), 0644))

	_, err := execute(t, newApp(), "", "suggest", "wet 01/11/2020 iets")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "eliref config init")

	out, err := execute(t, newApp(), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "eliref version "))
}

func TestMissingExplicitConfig(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, newApp(), "", "--config", filepath.Join(dir, "absent.yaml"), "namespaces")
	assert.Error(t, err)
}
