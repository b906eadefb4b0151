package rdf

// TitlePredicate is the ELI title property, in token form.
const TitlePredicate = "<http://data.europa.eu/eli/ontology#title>"

// ProjectTitles maps every subject to the object of its eli:title statement.
// When a subject has several titles the last one in triples wins.
func ProjectTitles(triples []Triple) map[string]string {
	return ProjectPredicate(triples, TitlePredicate)
}

// ProjectPredicate maps subjects to the object of their last statement with
// the given predicate token.
func ProjectPredicate(triples []Triple, predicate string) map[string]string {
	out := make(map[string]string)
	for _, t := range triples {
		if t.P == predicate {
			out[t.S] = t.O
		}
	}
	return out
}
