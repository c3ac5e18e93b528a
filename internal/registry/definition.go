package registry

import "github.com/cartodocs/tagdoc/pkg/tagdoc"

// staticDef is the concrete definition type behind Define and Opaque.
type staticDef struct {
	name   string
	marker tagdoc.Marker
	tagged bool
}

func (d staticDef) Name() string { return d.name }

func (d staticDef) Marker() (tagdoc.Marker, bool) { return d.marker, d.tagged }

// Define builds a tag definition carrying a declarative marker.
// The name is the definition's fully-qualified name, a slash-separated
// namespace path ending in a dot-separated type name, e.g.
// "osm/roads.Highway".
func Define(name string, marker tagdoc.Marker) tagdoc.Definition {
	return staticDef{name: name, marker: marker, tagged: true}
}

// Opaque builds a definition without a tag-key marker. Such
// definitions are discovered but never documented; they exist so
// namespaces can hold non-tag helpers without polluting catalogs.
func Opaque(name string) tagdoc.Definition {
	return staticDef{name: name}
}
