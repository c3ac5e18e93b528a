package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// JSON renders the catalog as an indented JSON document.
func JSON(w io.Writer, c Catalog, title string) error {
	doc, err := collect(c, title)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding catalog JSON: %w", err)
	}
	return nil
}

// YAML renders the catalog as a YAML document.
func YAML(w io.Writer, c Catalog, title string) error {
	doc, err := collect(c, title)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding catalog YAML: %w", err)
	}
	return enc.Close()
}

// Render dispatches to the renderer for the given format.
func Render(w io.Writer, c Catalog, format Format, title string) error {
	switch format {
	case FormatHTML:
		return HTML(w, c, title)
	case FormatJSON:
		return JSON(w, c, title)
	case FormatYAML:
		return YAML(w, c, title)
	}
	return fmt.Errorf("unsupported output format %q", format)
}
