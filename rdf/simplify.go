package rdf

import (
	"regexp"
	"strings"
)

const (
	midnightTime  = "T00:00"
	dateTimeToken = "dateTime"
)

var (
	typedLiteral = regexp.MustCompile(`^"(.+)"\^\^(.+)$`)
	schemeIRI    = regexp.MustCompile(`^<(\w+):(.*)>$`)
	langLiteral  = regexp.MustCompile(`^"(.*)"@(\w+)$`)
	dtypeLiteral = regexp.MustCompile(`^"(.*)"\^\^(.+)$`)
	plainLiteral = regexp.MustCompile(`^"(.*)"$`)
)

// IsLiteral reports whether value is a quoted literal token.
func IsLiteral(value string) bool {
	return strings.HasPrefix(value, `"`)
}

// StripLiteralType removes the ^^<datatype> annotation from a typed literal and
// returns its lexical form. xsd:dateTime values at exactly midnight are cut
// down to their date. Values without an annotation are returned unchanged.
func StripLiteralType(value string) string {
	m := typedLiteral.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	text, datatype := m[1], m[2]
	if !strings.Contains(datatype, dateTimeToken) {
		return text
	}
	if pos := strings.Index(text, midnightTime); pos > 0 {
		return text[:pos]
	}
	return text
}

// SchemeLiteral returns the scheme-specific part of a <tel:...> or
// <mailto:...> IRI.
func SchemeLiteral(value string) (string, bool) {
	if !strings.HasPrefix(value, "<tel") && !strings.HasPrefix(value, "<mailto") {
		return "", false
	}
	m := schemeIRI.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// Simplify returns a short display form of a triple token: literals lose their
// datatype, tel and mailto IRIs lose their scheme, and other IRIs are
// prefixed with the namespace table.
func Simplify(value string) string {
	if IsLiteral(value) {
		return StripLiteralType(value)
	}
	if rest, ok := SchemeLiteral(value); ok {
		return rest
	}
	return PrefixedIRI(value)
}

// SplitLiteral splits a quoted literal into its text and its language tag or
// datatype. A plain literal has an empty tag. ok is false when value is not a
// literal.
func SplitLiteral(value string) (text, tag string, ok bool) {
	for _, grammar := range []*regexp.Regexp{langLiteral, dtypeLiteral} {
		if m := grammar.FindStringSubmatch(value); m != nil {
			return m[1], m[2], true
		}
	}
	if m := plainLiteral.FindStringSubmatch(value); m != nil {
		return m[1], "", true
	}
	return "", "", false
}
