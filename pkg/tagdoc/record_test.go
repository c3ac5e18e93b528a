package tagdoc_test

import (
	"net/url"
	"testing"

	"github.com/cartodocs/tagdoc/pkg/tagdoc"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("bad test URL %q: %v", raw, err)
	}
	return u
}

func sampleRecord(t *testing.T) tagdoc.Record {
	return tagdoc.Record{
		DefinitionName: "osm/roads.Highway",
		Key:            "highway",
		ValidValues:    []string{"motorway", "residential"},
		WikiLink:       mustURL(t, "https://wiki.openstreetmap.org/wiki/Key:highway"),
		InfoLink:       mustURL(t, "https://taginfo.openstreetmap.org/keys/highway"),
		ValidationKind: tagdoc.ValidationEnum,
	}
}

func TestRecordEqual_FullFieldSet(t *testing.T) {
	a := sampleRecord(t)
	b := sampleRecord(t)

	if !a.Equal(b) {
		t.Error("Expected identical records to compare equal")
	}

	// URL pointers differ but spell the same URI.
	b.WikiLink = mustURL(t, "https://wiki.openstreetmap.org/wiki/Key:highway")
	if !a.Equal(b) {
		t.Error("Expected records with equal link URIs to compare equal")
	}
}

func TestRecordEqual_FieldDifferences(t *testing.T) {
	base := sampleRecord(t)

	mutations := map[string]func(*tagdoc.Record){
		"definition name": func(r *tagdoc.Record) { r.DefinitionName = "osm/legacy.Highway" },
		"key":             func(r *tagdoc.Record) { r.Key = "railway" },
		"values":          func(r *tagdoc.Record) { r.ValidValues = []string{"motorway"} },
		"wiki link":       func(r *tagdoc.Record) { r.WikiLink = nil },
		"info link":       func(r *tagdoc.Record) { r.InfoLink = mustURL(t, "https://example.com") },
		"validation kind": func(r *tagdoc.Record) { r.ValidationKind = tagdoc.ValidationNone },
		"localized":       func(r *tagdoc.Record) { r.Localized = true },
		"synthetic":       func(r *tagdoc.Record) { r.Synthetic = true },
	}

	for name, mutate := range mutations {
		other := sampleRecord(t)
		mutate(&other)
		if base.Equal(other) {
			t.Errorf("Expected records differing in %s to compare unequal", name)
		}
	}
}

func TestRecordEqual_NilLinks(t *testing.T) {
	a := tagdoc.Record{Key: "name"}
	b := tagdoc.Record{Key: "name"}

	if !a.Equal(b) {
		t.Error("Expected records with both links absent to compare equal")
	}

	b.InfoLink = mustURL(t, "https://taginfo.openstreetmap.org/keys/name")
	if a.Equal(b) {
		t.Error("Expected absent vs present link to compare unequal")
	}
}
