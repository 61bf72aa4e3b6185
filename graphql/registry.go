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
)

// pendingEntry queues a declared schema together with the source location that
// declared it, so namespace conflicts can name both claimants.
type pendingEntry struct {
	def    *SchemaDefinition
	origin string
}

// SchemaRegistry collects schema declarations and organizes them into namespaces in
// two phases. Declare only queues; Organize walks the queue in declaration order and
// commits each schema as the sole owner of its namespace. Keeping the phases apart
// lets declarations from many packages arrive in any order before the first lookup
// settles the namespace map.
type SchemaRegistry struct {
	mu sync.Mutex

	// pending holds declared-but-unorganized schemas in FIFO order.
	pending []pendingEntry

	// queued tracks membership of pending so re-declaring is a no-op.
	queued map[*SchemaDefinition]bool

	// schemas maps each namespace to its committed owner.
	schemas map[Namespace]*SchemaDefinition

	// owners remembers the declaration origin of each committed owner.
	owners map[Namespace]string

	catalog *TypeCatalog
}

// NewSchemaRegistry initializes an empty registry whose catalog is seeded with the
// standard scalars and directives under the base namespace.
func NewSchemaRegistry() *SchemaRegistry {
	r := &SchemaRegistry{
		queued:  map[*SchemaDefinition]bool{},
		schemas: map[Namespace]*SchemaDefinition{},
		owners:  map[Namespace]string{},
		catalog: NewTypeCatalog(),
	}
	r.seed()
	return r
}

func (r *SchemaRegistry) seed() {
	for _, scalar := range StandardScalars() {
		if err := r.catalog.Register(scalar); err != nil {
			panic(err)
		}
	}
	for _, directive := range StandardDirectives() {
		if err := r.catalog.Register(directive); err != nil {
			panic(err)
		}
	}
}

// Catalog returns the type catalog backing the registry.
func (r *SchemaRegistry) Catalog() *TypeCatalog {
	return r.catalog
}

// Declare queues a schema for organization. Declaring the same definition again while
// it is pending or after it was organized is a no-op, so declarations are safe to run
// from package initializers that may fire more than once.
func (r *SchemaRegistry) Declare(def *SchemaDefinition) error {
	const op = Op("graphql.SchemaRegistry.Declare")

	if def == nil {
		return NewError("Cannot declare a nil schema definition.", op, ErrKindArgument)
	}

	origin := captureOrigin(2)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.queued[def] {
		return nil
	}
	if owner, exists := r.schemas[def.Namespace()]; exists && owner == def {
		return nil
	}

	r.pending = append(r.pending, pendingEntry{def: def, origin: origin})
	r.queued[def] = true
	return nil
}

// Organize drains the pending queue in declaration order, committing each schema as
// the owner of its namespace. A schema whose namespace is already owned by a different
// definition fails the whole pass with an error naming both declaration sites; the
// failed entry stays queued so the conflict resurfaces until it is resolved or the
// registry is reset. Organizing with nothing pending is a no-op.
func (r *SchemaRegistry) Organize() error {
	const op = Op("graphql.SchemaRegistry.Organize")

	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.pending) > 0 {
		entry := r.pending[0]
		def := entry.def
		ns := def.Namespace()

		if owner, exists := r.schemas[ns]; exists {
			if owner != def {
				return NewError(
					fmt.Sprintf("Cannot organize schema declared at %s: namespace %q is already "+
						"owned by the schema declared at %s.", entry.origin, ns, r.owners[ns]),
					op, ErrKindArgument)
			}
			// Already committed; drop the stale queue entry.
			r.pop(def)
			continue
		}

		if err := def.validate(); err != nil {
			return NewError(
				fmt.Sprintf("Cannot organize schema declared at %s.", entry.origin), op, err)
		}

		def.commit(r.catalog)
		r.schemas[ns] = def
		r.owners[ns] = entry.origin
		r.pop(def)
	}
	return nil
}

// pop removes the head entry; callers hold r.mu and commit before popping so a failed
// organize leaves the entry queued.
func (r *SchemaRegistry) pop(def *SchemaDefinition) {
	r.pending = r.pending[1:]
	delete(r.queued, def)
}

// Find returns the schema owning the given namespace, or nil when none does. It
// organizes pending declarations first so a lookup never misses a schema that was
// declared but not yet committed. An organize failure is swallowed: committed owners
// are still served, and the failure resurfaces on the next Organize or Resolve.
func (r *SchemaRegistry) Find(ns Namespace) *SchemaDefinition {
	if len(ns) == 0 {
		ns = NamespaceBase
	}
	_ = r.Organize()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.schemas[ns]
}

// Resolve is the erroring variant of Find. An organize failure propagates; an unknown
// namespace produces a name error suggesting nearby known namespaces.
func (r *SchemaRegistry) Resolve(ns Namespace) (*SchemaDefinition, error) {
	const op = Op("graphql.SchemaRegistry.Resolve")

	if len(ns) == 0 {
		ns = NamespaceBase
	}
	if err := r.Organize(); err != nil {
		return nil, NewError("Cannot resolve namespace before organizing declarations.", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if def, exists := r.schemas[ns]; exists {
		return def, nil
	}

	known := make([]string, 0, len(r.schemas))
	for candidate := range r.schemas {
		known = append(known, string(candidate))
	}
	message := fmt.Sprintf("Unknown namespace %q.%s", ns, didYouMean(string(ns), known))
	return nil, NewError(message, op, ErrKindName)
}

// Reset discards all pending and committed schemas and replaces the catalog with a
// freshly seeded one. Committed definitions keep their registered flag; a reset
// registry simply no longer knows them.
func (r *SchemaRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
	r.queued = map[*SchemaDefinition]bool{}
	r.schemas = map[Namespace]*SchemaDefinition{}
	r.owners = map[Namespace]string{}
	r.catalog = NewTypeCatalog()
	r.seed()
}

// FinishLoad organizes any remaining declarations and freezes the catalog, marking the
// end of the load phase. Registration attempts after FinishLoad fail.
func (r *SchemaRegistry) FinishLoad() error {
	const op = Op("graphql.SchemaRegistry.FinishLoad")

	if err := r.Organize(); err != nil {
		return NewError("Cannot finish loading with unorganized declarations.", op, err)
	}
	r.catalog.Freeze()
	return nil
}
