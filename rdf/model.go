package rdf

// Triple is an RDF statement as three raw N-Triples tokens.
// Subject and predicate are bracketed IRIs; the object is either a bracketed
// IRI or a quoted literal with its optional @lang or ^^<datatype> suffix.
type Triple struct {
	// S is the subject token.
	S string
	// P is the predicate token.
	P string
	// O is the object token.
	O string
}

// Fields returns the tokens in statement order.
func (t Triple) Fields() [3]string {
	return [3]string{t.S, t.P, t.O}
}

// String returns the triple as an N-Triples line without the trailing newline.
func (t Triple) String() string {
	return t.S + " " + t.P + " " + t.O + " ."
}

// IsZero reports whether the triple has no tokens.
func (t Triple) IsZero() bool {
	return t.S == "" && t.P == "" && t.O == ""
}

// Valid reports whether all three tokens are present.
func (t Triple) Valid() bool {
	return t.S != "" && t.P != "" && t.O != ""
}
