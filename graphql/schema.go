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

// OperationType names one of the three root operation groups of a schema.
type OperationType string

// Enumeration of OperationType
const (
	OperationQuery        OperationType = "query"
	OperationMutation     OperationType = "mutation"
	OperationSubscription OperationType = "subscription"
)

// SchemaConfig provides specification to define a SchemaDefinition.
type SchemaConfig struct {
	// Namespace owned by the schema; NamespaceBase when empty. Exactly one schema may own
	// a namespace after the registry organizes.
	Namespace Namespace

	// Description for the schema
	Description string

	// Query, Mutation and Subscription list the fields of the root operation groups, in
	// declaration order.
	Query        []Field
	Mutation     []Field
	Subscription []Field

	// Directives applied to the schema itself
	Directives []DirectiveUsage
}

// SchemaDefinition is the root declaration of all query, mutation and subscription
// fields and directives available under one namespace.
//
// A definition starts mutable: the Add and Attach builders may extend it while it is
// declared or pending. Once the registry organizes it into its namespace the definition
// is registered and immutable; builders fail from then on. It never transitions back.
type SchemaDefinition struct {
	mu           sync.Mutex
	namespace    Namespace
	description  string
	query        *Fields
	mutation     *Fields
	subscription *Fields
	directives   []DirectiveUsage

	// registered flips once, inside SchemaRegistry.Organize.
	registered bool

	// catalog is bound at registration and serves FindType/ResolveType.
	catalog *TypeCatalog
}

// NewSchemaDefinition creates a SchemaDefinition from the given config. The definition
// is not known to any registry until it is declared.
func NewSchemaDefinition(config *SchemaConfig) (*SchemaDefinition, error) {
	ns := config.Namespace
	if len(ns) == 0 {
		ns = NamespaceBase
	}

	query, err := NewFields(config.Query)
	if err != nil {
		return nil, WrapErrorf(err, "Invalid query fields for schema in namespace %q.", ns)
	}
	mutation, err := NewFields(config.Mutation)
	if err != nil {
		return nil, WrapErrorf(err, "Invalid mutation fields for schema in namespace %q.", ns)
	}
	subscription, err := NewFields(config.Subscription)
	if err != nil {
		return nil, WrapErrorf(err, "Invalid subscription fields for schema in namespace %q.", ns)
	}

	directives := make([]DirectiveUsage, len(config.Directives))
	copy(directives, config.Directives)

	return &SchemaDefinition{
		namespace:    ns,
		description:  config.Description,
		query:        query,
		mutation:     mutation,
		subscription: subscription,
		directives:   directives,
	}, nil
}

// MustNewSchemaDefinition is a convenience function equivalent to NewSchemaDefinition
// but panics on failure instead of returning an error.
func MustNewSchemaDefinition(config *SchemaConfig) *SchemaDefinition {
	s, err := NewSchemaDefinition(config)
	if err != nil {
		panic(err)
	}
	return s
}

// Extend derives a child definition from the receiver: the child starts with copies of
// the parent's groups, directives and description, then applies the given config on
// top. It keeps the parent's namespace unless the config names another one, which is
// how a schema hierarchy ends up claiming the same namespace twice and failing at
// organize time.
func (s *SchemaDefinition) Extend(config *SchemaConfig) (*SchemaDefinition, error) {
	s.mu.Lock()
	child := &SchemaDefinition{
		namespace:    s.namespace,
		description:  s.description,
		query:        &Fields{},
		mutation:     &Fields{},
		subscription: &Fields{},
		directives:   append([]DirectiveUsage(nil), s.directives...),
	}
	for _, field := range s.query.list() {
		child.query.Add(field)
	}
	for _, field := range s.mutation.list() {
		child.mutation.Add(field)
	}
	for _, field := range s.subscription.list() {
		child.subscription.Add(field)
	}
	s.mu.Unlock()

	if config == nil {
		return child, nil
	}
	if len(config.Namespace) > 0 {
		child.namespace = config.Namespace
	}
	if len(config.Description) > 0 {
		child.description = config.Description
	}
	for _, field := range config.Query {
		if err := child.query.Add(field); err != nil {
			return nil, WrapErrorf(err, "Invalid query fields extending schema in namespace %q.", child.namespace)
		}
	}
	for _, field := range config.Mutation {
		if err := child.mutation.Add(field); err != nil {
			return nil, WrapErrorf(err, "Invalid mutation fields extending schema in namespace %q.", child.namespace)
		}
	}
	for _, field := range config.Subscription {
		if err := child.subscription.Add(field); err != nil {
			return nil, WrapErrorf(err, "Invalid subscription fields extending schema in namespace %q.", child.namespace)
		}
	}
	child.directives = append(child.directives, config.Directives...)
	return child, nil
}

// Namespace returns the namespace the schema claims.
func (s *SchemaDefinition) Namespace() Namespace {
	return s.namespace
}

// Description provides documentation for the schema.
func (s *SchemaDefinition) Description() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.description
}

// Query returns the query group fields in declaration order.
func (s *SchemaDefinition) Query() *Fields {
	return s.query
}

// Mutation returns the mutation group fields in declaration order.
func (s *SchemaDefinition) Mutation() *Fields {
	return s.mutation
}

// Subscription returns the subscription group fields in declaration order.
func (s *SchemaDefinition) Subscription() *Fields {
	return s.subscription
}

// Directives returns the directive usages applied to the schema.
func (s *SchemaDefinition) Directives() []DirectiveUsage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DirectiveUsage(nil), s.directives...)
}

// Registered returns true once the schema has been organized into its namespace.
func (s *SchemaDefinition) Registered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registered
}

//===----------------------------------------------------------------------------------------====//
// Builders
//===----------------------------------------------------------------------------------------====//

// AddQueryField appends a field to the query group. It fails once the schema is
// registered.
func (s *SchemaDefinition) AddQueryField(field Field) error {
	return s.addField(OperationQuery, s.query, field)
}

// AddMutationField appends a field to the mutation group. It fails once the schema is
// registered.
func (s *SchemaDefinition) AddMutationField(field Field) error {
	return s.addField(OperationMutation, s.mutation, field)
}

// AddSubscriptionField appends a field to the subscription group. It fails once the
// schema is registered.
func (s *SchemaDefinition) AddSubscriptionField(field Field) error {
	return s.addField(OperationSubscription, s.subscription, field)
}

func (s *SchemaDefinition) addField(operation OperationType, group *Fields, field Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.registered {
		return s.immutableError(fmt.Sprintf("add %s field %q", operation, field.Name))
	}
	return group.Add(field)
}

// AttachDirective applies a directive usage to the schema. It fails once the schema is
// registered.
func (s *SchemaDefinition) AttachDirective(usage DirectiveUsage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.registered {
		name := "a directive"
		if usage.Directive != nil {
			name = usage.Directive.String()
		}
		return s.immutableError(fmt.Sprintf("attach %s", name))
	}
	s.directives = append(s.directives, usage)
	return nil
}

// Describe sets the schema description. It fails once the schema is registered.
func (s *SchemaDefinition) Describe(description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.registered {
		return s.immutableError("set the description")
	}
	s.description = description
	return nil
}

func (s *SchemaDefinition) immutableError(action string) error {
	return NewError(
		fmt.Sprintf("Cannot %s: the schema owning namespace %q is registered and immutable.",
			action, s.namespace),
		ErrKindDefinition)
}

//===----------------------------------------------------------------------------------------====//
// Lookup
//===----------------------------------------------------------------------------------------====//

// FindType looks up a type or directive visible to the schema: its own namespace first,
// then its fallback chain. It returns nil when the schema is not registered yet or
// there is no match.
func (s *SchemaDefinition) FindType(name string, kind TypeKind) Definition {
	catalog := s.boundCatalog()
	if catalog == nil {
		return nil
	}
	return catalog.Fetch(name, kind, catalog.FallbacksFor(s.namespace)...)
}

// ResolveType is the erroring variant of FindType.
func (s *SchemaDefinition) ResolveType(name string, kind TypeKind) (Definition, error) {
	const op = Op("graphql.SchemaDefinition.ResolveType")

	catalog := s.boundCatalog()
	if catalog == nil {
		return nil, NewError(
			fmt.Sprintf("Cannot resolve %q: the schema owning namespace %q has not been organized.",
				name, s.namespace),
			op, ErrKindName)
	}
	return catalog.Resolve(name, kind, catalog.FallbacksFor(s.namespace)...)
}

func (s *SchemaDefinition) boundCatalog() *TypeCatalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

//===----------------------------------------------------------------------------------------====//
// Registration hooks (called by SchemaRegistry)
//===----------------------------------------------------------------------------------------====//

// validate performs the structural checks deferred to organize time: directive usages
// must be valid at the schema location. Field name collisions inside a group are
// rejected on insertion, so they cannot reach this point.
func (s *SchemaDefinition) validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.directives {
		if err := s.directives[i].validate(DirectiveLocationSchema); err != nil {
			return WrapErrorf(err, "Invalid directive on schema owning namespace %q.", s.namespace)
		}
	}
	return nil
}

// commit marks the schema registered and binds it to the catalog serving its lookups.
func (s *SchemaDefinition) commit(catalog *TypeCatalog) {
	s.mu.Lock()
	s.registered = true
	s.catalog = catalog
	s.mu.Unlock()
}
