package catalog

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/cartodocs/tagdoc/pkg/tagdoc"
)

// ExtractError reports a definition whose marker could not be turned
// into a record. It carries the definition name and offending field so
// the broken declaration can be found without a debugger.
type ExtractError struct {
	Definition string // Fully-qualified name of the definition
	Field      string // Marker field name, e.g. "wiki"
	Value      string // The raw field value that failed
	Message    string // Primary error message
	err        error  // Sentinel for errors.Is classification
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	return fmt.Sprintf("extracting %s [field: %s]: %s: %q", e.Definition, e.Field, e.Message, e.Value)
}

// Unwrap exposes the sentinel so callers can classify with errors.Is.
func (e *ExtractError) Unwrap() error {
	return e.err
}

// extract turns one candidate definition into a normalized record.
//
// Pure function of its input. The boolean is false when the definition
// carries no tag-key marker; that candidate is simply not a tag. A
// non-empty link field that fails URI parsing returns an ExtractError
// wrapping tagdoc.ErrMalformedLink.
func extract(def tagdoc.Definition) (tagdoc.Record, bool, error) {
	marker, ok := def.Marker()
	if !ok {
		return tagdoc.Record{}, false, nil
	}

	wiki, err := parseLink(def.Name(), "wiki", marker.WikiLink)
	if err != nil {
		return tagdoc.Record{}, false, err
	}
	info, err := parseLink(def.Name(), "taginfo", marker.InfoLink)
	if err != nil {
		return tagdoc.Record{}, false, err
	}

	return tagdoc.Record{
		DefinitionName: def.Name(),
		Key:            marker.Key,
		ValidValues:    normalizeValues(marker.Values),
		WikiLink:       wiki,
		InfoLink:       info,
		ValidationKind: marker.Validation,
		Localized:      marker.KeyType == tagdoc.KeyTypeLocalized,
		Synthetic:      marker.Synthetic,
	}, true, nil
}

// parseLink parses an optional URI text field. Empty text means the
// link is absent (nil, no error). Non-empty text must be an absolute
// URI; anything else is fatal for the whole catalog construction.
func parseLink(definition, field, text string) (*url.URL, error) {
	if text == "" {
		return nil, nil
	}
	u, err := url.ParseRequestURI(text)
	if err != nil {
		return nil, &ExtractError{
			Definition: definition,
			Field:      field,
			Value:      text,
			Message:    "not a valid URI",
			err:        tagdoc.ErrMalformedLink,
		}
	}
	return u, nil
}

// normalizeValues sorts value enumerations lexicographically and drops
// duplicates. A nil or empty input stays nil so records without value
// enumerations compare equal regardless of marker spelling.
func normalizeValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
