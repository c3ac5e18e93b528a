package tagdoc

import (
	"net/url"
	"slices"
)

// Record is the normalized metadata extracted from one tag definition.
// Records are immutable after catalog construction: the catalog hands
// them to callbacks by value and never mutates them afterwards.
//
// Ordering and equality follow different contracts on purpose: the
// catalog sorts records by Key alone, but set membership compares the
// full field set, so two definitions emitting the same key with
// different fields both stay in the catalog while a byte-for-byte
// duplicate is rejected.
type Record struct {
	// DefinitionName is the fully-qualified name of the source
	// definition. Diagnostics only; not part of the sort position.
	DefinitionName string

	// Key is the canonical tag key. Never empty for a record that made
	// it into a catalog.
	Key string

	// ValidValues lists the acceptable values for the key,
	// lexicographically sorted and duplicate-free. May be empty.
	ValidValues []string

	// WikiLink points at wiki-style documentation for the key.
	// Nil when the source marker carried no link.
	WikiLink *url.URL

	// InfoLink points at an info-lookup service entry for the key.
	// Nil when the source marker carried no link.
	InfoLink *url.URL

	// ValidationKind names the value-validation strategy for this key.
	ValidationKind ValidationKind

	// Localized is true when Key names a localized key family rather
	// than one literal key.
	Localized bool

	// Synthetic is true for derived tags not present in raw data.
	Synthetic bool
}

// Equal reports whether two records match on the full field set.
// URLs compare by their string form.
func (r Record) Equal(other Record) bool {
	return r.DefinitionName == other.DefinitionName &&
		r.Key == other.Key &&
		slices.Equal(r.ValidValues, other.ValidValues) &&
		urlEqual(r.WikiLink, other.WikiLink) &&
		urlEqual(r.InfoLink, other.InfoLink) &&
		r.ValidationKind == other.ValidationKind &&
		r.Localized == other.Localized &&
		r.Synthetic == other.Synthetic
}

func urlEqual(a, b *url.URL) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
