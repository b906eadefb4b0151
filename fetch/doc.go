// Package fetch retrieves ELI documents published as N-Triples over HTTP and
// hands them to the rdf package.
//
// A Fetcher asks for application/n-triples, follows a bounded number of
// redirects, caps the body size and paces requests with a token bucket.
// Failures are returned as *Error values carrying an ErrorCode:
//
//	f := fetch.New(fetch.DefaultConfig(), fetch.WithLogger(log))
//	titles, err := f.Titles(ctx, "https://www.ejustice.just.fgov.be/eli/wet/2020/11/01/1")
//	if fetch.CodeOf(err) == fetch.ErrCodeHTTPStatus {
//		// the server answered, but not with a document
//	}
//
// Triples and TitlesAsync return a Future so callers can start several
// fetches and await them later.
package fetch
