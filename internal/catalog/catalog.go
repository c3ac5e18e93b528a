package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cartodocs/tagdoc/pkg/tagdoc"
	"github.com/google/uuid"
)

// Catalog is an immutable snapshot of tag metadata records, ordered by
// tag key. Build one with New or NewForNamespace; there is no way to
// add or remove records afterwards.
type Catalog struct {
	namespace string
	id        uuid.UUID
	records   []tagdoc.Record
}

// New builds a catalog over the default namespace.
func New(src tagdoc.Source) (*Catalog, error) {
	return NewForNamespace(src, tagdoc.DefaultNamespace)
}

// NewForNamespace builds a catalog of every tag definition reachable
// under the given namespace.
//
// Construction is all-or-nothing: a source failure or a definition with
// a malformed documentation link aborts with an error and no catalog is
// produced. Definitions whose fully-qualified name contains the test
// artifact marker are dropped before extraction so test fixtures never
// leak into documentation output.
func NewForNamespace(src tagdoc.Source, namespace string) (*Catalog, error) {
	defs, err := src.Definitions(namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: scanning namespace %q: %w", tagdoc.ErrDiscovery, namespace, err)
	}

	c := &Catalog{
		namespace: namespace,
		id:        SnapshotID(namespace),
	}
	for _, def := range defs {
		if strings.Contains(def.Name(), tagdoc.TestArtifactMarker) {
			continue
		}
		rec, ok, err := extract(def)
		if err != nil {
			return nil, err
		}
		if !ok {
			// No tag-key marker: not a documentable tag.
			continue
		}
		c.insert(rec)
	}
	return c, nil
}

// Walk invokes fn once per record, in ascending key order, on the
// caller's goroutine. A non-nil error from fn stops the traversal and
// is returned as-is; records already delivered stay delivered.
//
// Walk never mutates the catalog, so any number of walks may run, even
// concurrently.
func (c *Catalog) Walk(fn tagdoc.Callback) error {
	for _, rec := range c.records {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Namespace returns the namespace this catalog was built from.
func (c *Catalog) Namespace() string {
	return c.namespace
}

// ID returns the deterministic snapshot identity for this catalog.
// Two catalogs built from the same namespace share an ID.
func (c *Catalog) ID() uuid.UUID {
	return c.id
}

// insert places rec at its sorted position. The sort position depends
// on the key alone; set membership compares the full field set. Records
// sharing a key keep insertion order among themselves, and an exact
// duplicate of an existing record is dropped.
func (c *Catalog) insert(rec tagdoc.Record) {
	i := sort.Search(len(c.records), func(i int) bool {
		return c.records[i].Key >= rec.Key
	})
	for ; i < len(c.records) && c.records[i].Key == rec.Key; i++ {
		if c.records[i].Equal(rec) {
			return
		}
	}
	c.records = append(c.records, tagdoc.Record{})
	copy(c.records[i+1:], c.records[i:])
	c.records[i] = rec
}
