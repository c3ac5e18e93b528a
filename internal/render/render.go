// Package render turns a tag catalog into documentation output.
//
// Renderers are plain catalog consumers: each runs one Walk, collects
// the records it is handed, and writes a document. They hold no state
// between calls and never reach into the catalog beyond the walk
// contract.
package render

import (
	"fmt"

	"github.com/cartodocs/tagdoc/pkg/tagdoc"
	"github.com/google/uuid"
)

// Catalog is the slice of the catalog API renderers need.
type Catalog interface {
	Walk(tagdoc.Callback) error
	Namespace() string
	ID() uuid.UUID
}

// Format names a supported output format.
type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from config or flags.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatHTML, FormatJSON, FormatYAML:
		return Format(name), nil
	}
	return "", fmt.Errorf("%w: unsupported output format %q (want html, json or yaml)", tagdoc.ErrInvalidConfig, name)
}

// document is the serialized shape shared by the JSON and YAML
// renderers and fed to the HTML template.
type document struct {
	Namespace string      `json:"namespace" yaml:"namespace"`
	CatalogID string      `json:"catalog_id" yaml:"catalog_id"`
	Title     string      `json:"title,omitempty" yaml:"title,omitempty"`
	Tags      []tagRecord `json:"tags" yaml:"tags"`
}

type tagRecord struct {
	Key         string   `json:"key" yaml:"key"`
	Definition  string   `json:"definition" yaml:"definition"`
	Validation  string   `json:"validation" yaml:"validation"`
	Localized   bool     `json:"localized,omitempty" yaml:"localized,omitempty"`
	Synthetic   bool     `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
	Values      []string `json:"values,omitempty" yaml:"values,omitempty"`
	WikiLink    string   `json:"wiki_link,omitempty" yaml:"wiki_link,omitempty"`
	TaginfoLink string   `json:"taginfo_link,omitempty" yaml:"taginfo_link,omitempty"`
}

// collect walks the catalog once and assembles the serializable
// document. Records arrive already sorted; collect preserves that.
func collect(c Catalog, title string) (document, error) {
	doc := document{
		Namespace: c.Namespace(),
		CatalogID: c.ID().String(),
		Title:     title,
		Tags:      []tagRecord{},
	}
	err := c.Walk(func(rec tagdoc.Record) error {
		tr := tagRecord{
			Key:        rec.Key,
			Definition: rec.DefinitionName,
			Validation: string(rec.ValidationKind),
			Localized:  rec.Localized,
			Synthetic:  rec.Synthetic,
			Values:     rec.ValidValues,
		}
		if rec.WikiLink != nil {
			tr.WikiLink = rec.WikiLink.String()
		}
		if rec.InfoLink != nil {
			tr.TaginfoLink = rec.InfoLink.String()
		}
		doc.Tags = append(doc.Tags, tr)
		return nil
	})
	if err != nil {
		return document{}, fmt.Errorf("%w: collecting records: %w", tagdoc.ErrRenderFailed, err)
	}
	return doc, nil
}
