// Package registry provides the in-process definition source backing
// tag discovery.
//
// The original documentation pipeline found tag definitions with a
// global classpath scan. Here discovery is an explicit registry:
// definition packages register themselves at init time under a
// slash-separated namespace path, and the catalog asks for everything
// reachable under a namespace prefix. That keeps discovery
// deterministic and lets tests run against synthetic definition sets.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cartodocs/tagdoc/pkg/tagdoc"
)

// ErrInvalidNamespace is returned when a namespace query is empty or
// otherwise unscannable.
var ErrInvalidNamespace = errors.New("invalid namespace")

// Registry is a static collection of tag definitions, keyed by
// fully-qualified name. It implements tagdoc.Source.
//
// Registration happens during package initialization and must be
// complete before the first Definitions call; after that the registry
// is read-only.
type Registry struct {
	defs  []tagdoc.Definition
	names map[string]struct{}
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds a definition. The fully-qualified name must be
// non-empty and unique within the registry.
func (r *Registry) Register(def tagdoc.Definition) error {
	name := def.Name()
	if name == "" {
		return errors.New("definition has empty name")
	}
	if _, exists := r.names[name]; exists {
		return fmt.Errorf("definition %q already registered", name)
	}
	r.names[name] = struct{}{}
	r.defs = append(r.defs, def)
	return nil
}

// MustRegister is Register for init-time use; it panics on error.
func (r *Registry) MustRegister(def tagdoc.Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Definitions returns every definition reachable under the namespace,
// in registration order. A namespace nobody registered under yields an
// empty result, not an error.
func (r *Registry) Definitions(namespace string) ([]tagdoc.Definition, error) {
	namespace = strings.Trim(namespace, "/")
	if namespace == "" {
		return nil, fmt.Errorf("%w: namespace must not be empty", ErrInvalidNamespace)
	}

	var out []tagdoc.Definition
	for _, def := range r.defs {
		if underNamespace(def.Name(), namespace) {
			out = append(out, def)
		}
	}
	return out, nil
}

// underNamespace reports whether fqName sits at or below the namespace
// path. Matching is segment-aware: "osm/road" does not claim
// "osm/roads.Highway".
func underNamespace(fqName, namespace string) bool {
	if !strings.HasPrefix(fqName, namespace) {
		return false
	}
	rest := fqName[len(namespace):]
	return rest == "" || rest[0] == '/' || rest[0] == '.'
}

var defaultRegistry = New()

// Default returns the process-wide registry that built-in tag
// definition packages register into.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a definition to the default registry.
func Register(def tagdoc.Definition) error {
	return defaultRegistry.Register(def)
}

// MustRegister adds a definition to the default registry, panicking on
// error. Intended for init functions of definition packages.
func MustRegister(def tagdoc.Definition) {
	defaultRegistry.MustRegister(def)
}
