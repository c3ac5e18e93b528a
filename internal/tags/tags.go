// Package tags declares the built-in OSM tag universe.
//
// Each declaration registers one tag definition into the default
// registry under the "osm" namespace. Importing this package (usually
// for its side effects) is what gives the default catalog something to
// document.
package tags

import (
	"github.com/cartodocs/tagdoc/internal/registry"
	"github.com/cartodocs/tagdoc/pkg/tagdoc"
)

const (
	wikiBase = "https://wiki.openstreetmap.org/wiki/Key:"
	infoBase = "https://taginfo.openstreetmap.org/keys/"
)

// linked fills the two documentation links from the conventional wiki
// and taginfo URL schemes for the marker's key.
func linked(m tagdoc.Marker) tagdoc.Marker {
	m.WikiLink = wikiBase + m.Key
	m.InfoLink = infoBase + m.Key
	return m
}

func define(fqName string, m tagdoc.Marker) {
	registry.MustRegister(registry.Define(fqName, m))
}

func init() {
	define("osm/roads.Highway", linked(tagdoc.Marker{
		Key:        "highway",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationEnum,
		Values: []string{
			"motorway", "trunk", "primary", "secondary", "tertiary",
			"unclassified", "residential", "service", "track",
			"footway", "cycleway", "path",
		},
	}))

	define("osm/roads.Surface", linked(tagdoc.Marker{
		Key:        "surface",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationEnum,
		Values: []string{
			"paved", "unpaved", "asphalt", "concrete", "gravel",
			"ground", "dirt", "grass", "sand",
		},
	}))

	define("osm/roads.Oneway", linked(tagdoc.Marker{
		Key:        "oneway",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationEnum,
		Values:     []string{"yes", "no", "-1", "reversible"},
	}))

	define("osm/roads.MaxSpeed", linked(tagdoc.Marker{
		Key:        "maxspeed",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationDouble,
	}))

	define("osm/roads.Layer", linked(tagdoc.Marker{
		Key:        "layer",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationOrdinal,
	}))

	define("osm/roads.Ref", linked(tagdoc.Marker{
		Key:        "ref",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationMatch,
	}))

	define("osm/names.Name", linked(tagdoc.Marker{
		Key:        "name",
		KeyType:    tagdoc.KeyTypeLocalized,
		Validation: tagdoc.ValidationNone,
	}))

	define("osm/names.AltName", linked(tagdoc.Marker{
		Key:        "alt_name",
		KeyType:    tagdoc.KeyTypeLocalized,
		Validation: tagdoc.ValidationNone,
	}))

	define("osm/buildings.Building", linked(tagdoc.Marker{
		Key:        "building",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationEnum,
		Values: []string{
			"yes", "house", "apartments", "garage", "detached",
			"industrial", "shed", "commercial",
		},
	}))

	define("osm/addresses.Street", linked(tagdoc.Marker{
		Key:        "addr:street",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationNone,
	}))

	define("osm/contact.Website", linked(tagdoc.Marker{
		Key:        "website",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationURI,
	}))

	// Derived tags computed during ingestion; never present in raw OSM
	// data, but documented so consumers know where they come from.
	define("osm/derived.LastEditTime", tagdoc.Marker{
		Key:        "last_edit_time",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationOrdinal,
		Synthetic:  true,
	})

	define("osm/derived.ISOCountryCode", tagdoc.Marker{
		Key:        "iso_country_code",
		KeyType:    tagdoc.KeyTypeLiteral,
		Validation: tagdoc.ValidationMatch,
		Synthetic:  true,
	})
}
