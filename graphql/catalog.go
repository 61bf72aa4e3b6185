/**
 * Copyright (c) 2019, The Hermes Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// typeKey identifies a definition in the catalog.
type typeKey struct {
	namespace Namespace
	kind      TypeKind
	name      string
}

// TypeCatalog is a namespace-scoped store of type and directive definitions, keyed by
// (namespace, kind, name). Registration happens during the load phase and is protected
// by a single coarse lock; once Freeze marks the load phase over, the tables are
// immutable and lookups may run fully in parallel.
type TypeCatalog struct {
	mu        sync.RWMutex
	defs      map[typeKey]Definition
	order     map[Namespace][]typeKey
	fallbacks map[Namespace][]Namespace
	frozen    bool
}

// NewTypeCatalog creates an empty catalog.
func NewTypeCatalog() *TypeCatalog {
	return &TypeCatalog{
		defs:      map[typeKey]Definition{},
		order:     map[Namespace][]typeKey{},
		fallbacks: map[Namespace][]Namespace{},
	}
}

// Register inserts a definition. It fails with a duplicate error when a different
// definition already occupies the same (namespace, kind, name); re-registering a
// structurally identical definition is a no-op that keeps the existing entry.
func (catalog *TypeCatalog) Register(def Definition) error {
	const op = Op("graphql.TypeCatalog.Register")

	if def == nil {
		return NewError("Must provide a definition to register.", op, ErrKindArgument)
	}

	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	if catalog.frozen {
		return NewError(
			fmt.Sprintf("Cannot register %s %q: the catalog is frozen after the load phase.",
				def.Kind(), def.Name()),
			op, ErrKindDefinition)
	}

	key := typeKey{
		namespace: def.Namespace(),
		kind:      def.Kind(),
		name:      def.Name(),
	}
	existing, occupied := catalog.defs[key]
	if occupied {
		if existing == def || identicalDefinitions(existing, def) {
			return nil
		}
		return NewError(
			fmt.Sprintf("%s %q is already defined in namespace %q by %s; cannot redefine it from %s.",
				def.Kind(), def.Name(), def.Namespace(), existing.OwnerPath(), def.OwnerPath()),
			op, ErrKindDuplicate,
			ErrorExtensions{
				"name":      def.Name(),
				"kind":      def.Kind().String(),
				"namespace": string(def.Namespace()),
				"owner":     existing.OwnerPath(),
				"claimant":  def.OwnerPath(),
			})
	}

	catalog.defs[key] = def
	catalog.order[key.namespace] = append(catalog.order[key.namespace], key)
	return nil
}

// Fetch searches the given namespaces strictly in order and returns the first
// definition matching (kind, name), or nil when there is no match. KindAny matches any
// kind, scanning kinds in their declared order within each namespace. An empty
// namespace list searches NamespaceBase.
func (catalog *TypeCatalog) Fetch(name string, kind TypeKind, namespaces ...Namespace) Definition {
	if len(namespaces) == 0 {
		namespaces = []Namespace{NamespaceBase}
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	return catalog.fetch(name, kind, namespaces)
}

// fetch must be called with the lock held.
func (catalog *TypeCatalog) fetch(name string, kind TypeKind, namespaces []Namespace) Definition {
	for _, ns := range namespaces {
		if len(ns) == 0 {
			ns = NamespaceBase
		}
		if kind != KindAny {
			if def, exists := catalog.defs[typeKey{ns, kind, name}]; exists {
				return def
			}
			continue
		}
		for _, k := range definitionKinds {
			if def, exists := catalog.defs[typeKey{ns, k, name}]; exists {
				return def
			}
		}
	}
	return nil
}

// Resolve is the erroring variant of Fetch: it performs the same search but fails with
// a name error when no match is found.
func (catalog *TypeCatalog) Resolve(name string, kind TypeKind, namespaces ...Namespace) (Definition, error) {
	const op = Op("graphql.TypeCatalog.Resolve")

	if len(namespaces) == 0 {
		namespaces = []Namespace{NamespaceBase}
	}

	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	if def := catalog.fetch(name, kind, namespaces); def != nil {
		return def, nil
	}

	// Collect names across the searched namespaces for suggestions.
	var known []string
	seen := map[string]bool{}
	for _, ns := range namespaces {
		for _, key := range catalog.order[ns] {
			if (kind == KindAny || key.kind == kind) && !seen[key.name] {
				seen[key.name] = true
				known = append(known, key.name)
			}
		}
	}

	what := "type or directive"
	if kind != KindAny {
		what = kind.String()
	}
	return nil, NewError(
		fmt.Sprintf("Unknown %s %q in namespaces %v.%s", what, name, namespaces, didYouMean(name, known)),
		op, ErrKindName,
		ErrorExtensions{
			"name":       name,
			"kind":       kind.String(),
			"namespaces": namespaceStrings(namespaces),
		})
}

// SetFallbacks installs the ordered namespace chain searched on behalf of ns,
// overriding the default of [ns, NamespaceBase]. The chain is stored as given; callers
// normally put the namespace itself first.
func (catalog *TypeCatalog) SetFallbacks(ns Namespace, chain ...Namespace) {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	stored := make([]Namespace, len(chain))
	copy(stored, chain)
	catalog.fallbacks[ns] = stored
}

// FallbacksFor returns the lookup chain for ns: the chain installed by SetFallbacks, or
// [ns, NamespaceBase] when none was.
func (catalog *TypeCatalog) FallbacksFor(ns Namespace) []Namespace {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	if chain, exists := catalog.fallbacks[ns]; exists {
		result := make([]Namespace, len(chain))
		copy(result, chain)
		return result
	}
	return fallbackChainFor(ns)
}

// NamesIn returns the distinct definition names registered under ns, in first
// registration order. Introspection relies on this order being stable.
func (catalog *TypeCatalog) NamesIn(ns Namespace) []string {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	var names []string
	seen := map[string]bool{}
	for _, key := range catalog.order[ns] {
		if !seen[key.name] {
			seen[key.name] = true
			names = append(names, key.name)
		}
	}
	return names
}

// EachDefinition visits the definitions registered under ns in registration order until
// f returns an error.
func (catalog *TypeCatalog) EachDefinition(ns Namespace, f func(def Definition) error) error {
	catalog.mu.RLock()
	keys := catalog.order[ns]
	defs := make([]Definition, len(keys))
	for i, key := range keys {
		defs[i] = catalog.defs[key]
	}
	catalog.mu.RUnlock()

	for _, def := range defs {
		if err := f(def); err != nil {
			return err
		}
	}
	return nil
}

// Freeze marks the load phase over. Subsequent Register calls fail; lookups continue to
// work and may run fully in parallel.
func (catalog *TypeCatalog) Freeze() {
	catalog.mu.Lock()
	catalog.frozen = true
	catalog.mu.Unlock()
}

func namespaceStrings(namespaces []Namespace) []string {
	result := make([]string, len(namespaces))
	for i, ns := range namespaces {
		result[i] = string(ns)
	}
	return result
}

//===----------------------------------------------------------------------------------------====//
// Structural identity
//===----------------------------------------------------------------------------------------====//

// definitionShape is an exported snapshot of the declared shape of a definition, built
// for comparison with go-cmp. Scalar coercers are function values and are deliberately
// left out: two scalars declaring the same name and description are considered the same
// declaration.
type definitionShape struct {
	Kind          TypeKind
	Name          string
	Namespace     Namespace
	Description   string
	Fields        []Field
	InputFields   []InputField
	Values        []EnumValue
	Interfaces    []string
	PossibleTypes []string
	Locations     []DirectiveLocation
	Args          []Argument
}

func shapeOf(def Definition) definitionShape {
	shape := definitionShape{
		Kind:        def.Kind(),
		Name:        def.Name(),
		Namespace:   def.Namespace(),
		Description: def.Description(),
	}
	switch def := def.(type) {
	case Object:
		shape.Fields = def.Fields().list()
		shape.Interfaces = def.Interfaces()
	case Interface:
		shape.Fields = def.Fields().list()
	case Union:
		shape.PossibleTypes = def.PossibleTypes()
	case Enum:
		shape.Values = def.Values().list()
	case InputObject:
		shape.InputFields = def.Fields().list()
	case Directive:
		shape.Locations = def.Locations()
		shape.Args = def.Args()
	}
	return shape
}

// identicalDefinitions reports whether two definitions declare the same shape.
func identicalDefinitions(a, b Definition) bool {
	return cmp.Equal(shapeOf(a), shapeOf(b), cmpopts.EquateEmpty())
}
