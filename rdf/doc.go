// Package rdf provides a small, line-oriented N-Triples reader and the value
// shortening rules used to display linked-data metadata of legal documents.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The package keeps triples as raw tokens, exactly as they appear in the
// serialized form, and offers helpers to turn those tokens into short
// display values:
//   - Parse: ParseLine() and ParseDocument() turn text into []Triple.
//   - Decode: NewDecoder() returns a pull-style decoder over an io.Reader.
//   - Encode: NewEncoder() writes triples back as N-Triples lines.
//   - Simplify: Simplify() shortens IRIs with the fixed namespace table and
//     strips datatype annotations from literals.
//   - Project: ProjectTitles() maps ELI subjects to their titles.
//
// Parsing is lenient: a line that is not
// a `subject predicate object .` statement is skipped without error. An empty
// result is the only signal that a document held no statements.
//
// Example:
//
//	triples := rdf.ParseDocument(body)
//	for subject, title := range rdf.ProjectTitles(triples) {
//	    fmt.Println(subject, rdf.Simplify(title))
//	}
//
// Blank nodes, multi-line literals and escape sequences other than \uXXXX are
// not supported.
package rdf
