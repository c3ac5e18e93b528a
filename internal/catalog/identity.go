package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceCatalogIdentity is the fixed UUID namespace for deterministic
// catalog snapshot identities, derived from the canonical string
// "cartodocs.dev/catalog-identity/v1" with UUID v5 under the standard
// URL namespace.
//
// This constant ensures that:
//   - The same tag namespace always yields the same catalog ID
//   - The namespace is unique to tagdoc (no collisions with other systems)
//   - Consumers can independently verify a rendered catalog's identity
var NamespaceCatalogIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("cartodocs.dev/catalog-identity/v1"))

// SnapshotID derives the deterministic UUID v5 identity for a catalog
// built from the given tag namespace. Rendered output embeds it so two
// documentation runs over the same namespace are recognizably the same
// catalog.
//
// The namespace is normalized before hashing: lowercased, with any
// leading or trailing separator slashes removed.
func SnapshotID(namespace string) uuid.UUID {
	normalized := strings.Trim(strings.ToLower(namespace), "/")
	return uuid.NewSHA1(NamespaceCatalogIdentity, []byte(normalized))
}
