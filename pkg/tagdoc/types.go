package tagdoc

// KeyType describes how a tag key addresses raw data.
type KeyType string

const (
	// KeyTypeLiteral marks a key that appears verbatim in raw data.
	KeyTypeLiteral KeyType = "LITERAL"

	// KeyTypeLocalized marks a key family parameterized by language,
	// e.g. "name" expanding to "name:en", "name:fr" and so on.
	KeyTypeLocalized KeyType = "LOCALIZED"
)

// ValidationKind names the strategy used to validate values for a tag key.
type ValidationKind string

const (
	ValidationNone    ValidationKind = "NONE"
	ValidationEnum    ValidationKind = "ENUM"
	ValidationMatch   ValidationKind = "MATCH"
	ValidationOrdinal ValidationKind = "ORDINAL"
	ValidationDouble  ValidationKind = "DOUBLE"
	ValidationURI     ValidationKind = "URI"
)

// Marker is the declarative descriptor a tag definition carries.
// It is the raw, un-normalized input to catalog extraction: link fields
// are plain text (possibly empty), and Values may contain duplicates in
// any order.
type Marker struct {
	// Key is the canonical tag key name, e.g. "highway".
	Key string

	// KeyType distinguishes literal keys from localized key families.
	KeyType KeyType

	// Validation names the value-validation strategy for this key.
	Validation ValidationKind

	// WikiLink is an optional URI string pointing at wiki-style
	// documentation for the key. Empty means absent.
	WikiLink string

	// InfoLink is an optional URI string pointing at an info-lookup
	// service entry for the key. Empty means absent.
	InfoLink string

	// Synthetic is true for derived tags never present verbatim in
	// raw data.
	Synthetic bool

	// Values enumerates acceptable values for the key. Optional; only
	// meaningful for enum-validated keys.
	Values []string
}

// Definition is one candidate tag definition produced by a Source.
// Implementations are opaque to the catalog: it only reads the
// fully-qualified name and the declarative marker.
type Definition interface {
	// Name returns the fully-qualified name of the definition,
	// e.g. "osm/highway.Highway". Used for diagnostics and test-artifact
	// filtering, never as record identity.
	Name() string

	// Marker returns the definition's declarative descriptor.
	// The second return is false when the definition carries no
	// tag-key marker; such definitions never enter the catalog.
	Marker() (Marker, bool)
}

// Source enumerates tag definitions reachable under a namespace.
// The catalog treats discovery as a single atomic step: a Source error
// aborts catalog construction entirely.
type Source interface {
	// Definitions returns every definition declared under the given
	// namespace, including test artifacts; the catalog filters those out.
	Definitions(namespace string) ([]Definition, error)
}

// Callback receives one Record per invocation during a catalog walk.
// Returning a non-nil error halts the walk; records already delivered
// stay delivered.
type Callback func(Record) error
