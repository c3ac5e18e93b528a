// Package catalog builds the tag documentation catalog: a one-shot,
// immutable snapshot of every tag definition reachable under a namespace.
//
// # Overview
//
// Construction runs the whole discovery-and-extraction pipeline eagerly:
//
//  1. Ask the definition source for every candidate under the namespace
//  2. Drop test artifacts (fully-qualified names containing "TestCase")
//  3. Extract one normalized Record per remaining candidate
//  4. Insert records into a key-sorted, duplicate-rejecting collection
//
// After construction the catalog never changes; Walk is a repeatable
// read-only traversal in ascending key order and is safe to call from
// multiple goroutines.
//
// # Extraction Rules
//
//   - A candidate without a tag-key marker is skipped silently. It never
//     produces a record, not even an empty one.
//   - A non-empty documentation link that does not parse as a URI is
//     fatal for the whole construction. A catalog with broken links is
//     worse than no catalog.
//   - Enumerated values are deduplicated and sorted lexicographically.
//
// # Usage
//
//	cat, err := catalog.New(registry.Default())
//	if err != nil {
//	    return err
//	}
//	err = cat.Walk(func(rec tagdoc.Record) error {
//	    return render(rec)
//	})
//
// # Package Structure
//
//   - catalog.go: construction, sorted insertion, Walk
//   - extract.go: pure marker-to-record extraction
//   - identity.go: deterministic UUID v5 snapshot identity
package catalog
