package rdf

import "testing"

func TestProjectTitles(t *testing.T) {
	triples := []Triple{
		{S: "<a>", P: TitlePredicate, O: `"first"`},
		{S: "<b>", P: "<http://purl.org/dc/terms/title>", O: `"ignored"`},
		{S: "<b>", P: TitlePredicate, O: `"bee"`},
		{S: "<a>", P: TitlePredicate, O: `"second"`},
	}
	titles := ProjectTitles(triples)
	if len(titles) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(titles))
	}
	if titles["<a>"] != `"second"` {
		t.Fatalf("expected later title to win, got %q", titles["<a>"])
	}
	if titles["<b>"] != `"bee"` {
		t.Fatalf("unexpected title %q", titles["<b>"])
	}
}

func TestProjectTitlesEmpty(t *testing.T) {
	titles := ProjectTitles(nil)
	if titles == nil || len(titles) != 0 {
		t.Fatalf("expected empty map, got %#v", titles)
	}
}

func TestProjectPredicate(t *testing.T) {
	triples := ParseDocument(sampleDoc)
	issued := ProjectPredicate(triples, "<http://purl.org/dc/terms/issued>")
	if got := Simplify(issued["<http://example.org/act/1>"]); got != "2020-01-15" {
		t.Fatalf("unexpected issued date %q", got)
	}
}
