package rdf

import "strings"

// Namespace pairs a display prefix with the namespace IRI it abbreviates.
type Namespace struct {
	Prefix string
	IRI    string
}

// namespaces is scanned in order and the first IRI that prefixes a value wins,
// so entries must not be reordered.
var namespaces = []Namespace{
	{Prefix: "dcterms", IRI: "http://purl.org/dc/terms/"},
	{Prefix: "dcat", IRI: "http://www.w3.org/ns/dcat#"},
	{Prefix: "foaf", IRI: "http://xmlns.com/foaf/0.1/"},
	{Prefix: "org", IRI: "http://www.w3.org/ns/org#"},
	{Prefix: "owl", IRI: "http://www.w3.org/2002/07/owl#"},
	{Prefix: "rdf", IRI: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	{Prefix: "rdfs", IRI: "http://www.w3.org/2000/01/rdf-schema#"},
	{Prefix: "rov", IRI: "http://www.w3.org/ns/regorg#"},
	{Prefix: "skos", IRI: "http://www.w3.org/2004/02/skos/core#"},
	{Prefix: "vcard", IRI: "http://www.w3.org/2006/vcard/ns#"},
	{Prefix: "xsd", IRI: "http://w3.org/2001/XMLSchema#"},
}

// Namespaces returns a copy of the namespace table in scan order.
func Namespaces() []Namespace {
	out := make([]Namespace, len(namespaces))
	copy(out, namespaces)
	return out
}

// LookupNamespace returns the namespace IRI registered for prefix.
func LookupNamespace(prefix string) (string, bool) {
	for _, ns := range namespaces {
		if ns.Prefix == prefix {
			return ns.IRI, true
		}
	}
	return "", false
}

// PrefixedIRI shortens a bracketed http(s) IRI to prefix:local using the first
// matching namespace. Any other value, or an IRI outside every namespace, is
// returned unchanged.
func PrefixedIRI(value string) string {
	if !strings.HasPrefix(value, "<http") {
		return value
	}
	iri := value[1 : len(value)-1]
	for _, ns := range namespaces {
		if strings.HasPrefix(iri, ns.IRI) {
			return ns.Prefix + ":" + iri[len(ns.IRI):]
		}
	}
	return value
}

// ExpandPrefixed turns prefix:local back into a bracketed IRI. Values that are
// already bracketed or use an unknown prefix are returned unchanged.
func ExpandPrefixed(value string) string {
	if strings.HasPrefix(value, "<") {
		return value
	}
	prefix, local, ok := strings.Cut(value, ":")
	if !ok {
		return value
	}
	iri, ok := LookupNamespace(prefix)
	if !ok {
		return value
	}
	return "<" + iri + local + ">"
}
