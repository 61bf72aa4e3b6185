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
	"reflect"
	"runtime"
	"strings"

	"github.com/botobag/hermes/internal/util"
)

// DefaultTypeRoot is the owner-path root under which a TypeFactory places the
// definitions it synthesizes.
const DefaultTypeRoot = "hermes/types"

// CreateOptions control how a TypeFactory derives and registers a definition.
type CreateOptions struct {
	// Kind of definition to synthesize. Required.
	Kind TypeKind

	// Base is an optional existing definition the new one specializes. It must be of the
	// same Kind.
	Base Definition

	// Suffix is appended to the canonical name unless the name already ends with it.
	Suffix string

	// Once reuses a compatible existing definition instead of failing with a duplicate.
	Once bool

	// Namespace receiving the definition; NamespaceBase when empty
	Namespace Namespace

	// Description for the definition
	Description string
}

// factoryRecord remembers what a factory created at an owner path so Once reuse can
// verify base compatibility.
type factoryRecord struct {
	def    Definition
	base   string
	source string
}

// TypeFactory synthesizes type and directive definitions from a name or an existing Go
// value, enforcing suffix and duplication rules, and registers the results into a
// TypeCatalog. Everything it creates lives under its owner-path root, which keeps
// generated definitions discoverable without separate bookkeeping.
type TypeFactory struct {
	catalog *TypeCatalog
	root    string

	// created maps owner path to *factoryRecord.
	created util.SyncMap
}

// NewTypeFactory creates a factory registering into the given catalog. An empty root
// selects DefaultTypeRoot.
func NewTypeFactory(catalog *TypeCatalog, root string) *TypeFactory {
	if len(root) == 0 {
		root = DefaultTypeRoot
	}
	return &TypeFactory{
		catalog: catalog,
		root:    root,
	}
}

// Catalog returns the catalog the factory registers into.
func (factory *TypeFactory) Catalog() *TypeCatalog {
	return factory.catalog
}

// Create synthesizes a definition. source is either a string naming the definition or
// an existing Go value whose type name is taken as the canonical name. body, when
// non-nil, runs against a DefinitionBuilder to declare fields, values, locations and
// the rest of the kind-specific payload before the definition is sealed and registered.
//
// When a definition of the requested kind already occupies the derived name in the
// target namespace, Create reuses it only if opts.Once is set and the existing
// definition is base-compatible; any other collision fails with a duplicate error
// naming both the existing definition and the location attempting to redefine it.
func (factory *TypeFactory) Create(source interface{}, opts CreateOptions, body func(b *DefinitionBuilder)) (Definition, error) {
	const op = Op("graphql.TypeFactory.Create")
	origin := captureOrigin(2)

	name, sourcePath, err := canonicalName(source)
	if err != nil {
		return nil, err
	}

	// Suffix policy: append unless already present, so deriving from an already suffixed
	// name is a no-op.
	if len(opts.Suffix) > 0 && !strings.HasSuffix(name, opts.Suffix) {
		name += opts.Suffix
	}

	path := factory.pathFor(name)

	switch opts.Kind {
	case KindScalar, KindObject, KindInterface, KindUnion, KindEnum, KindInputObject, KindDirective:
	default:
		return nil, NewError(
			fmt.Sprintf("Cannot create %q: %s is not a definition kind.", name, opts.Kind),
			op, ErrKindArgument)
	}
	if opts.Base != nil && opts.Base.Kind() != opts.Kind {
		return nil, NewError(
			fmt.Sprintf("Cannot create %s %q from base %q: the base is %s, not %s.",
				opts.Kind, name, opts.Base.Name(), opts.Base.Kind(), opts.Kind),
			op, ErrKindDefinition)
	}

	ns := opts.Namespace
	if len(ns) == 0 {
		ns = NamespaceBase
	}

	if existing := factory.catalog.Fetch(name, opts.Kind, ns); existing != nil {
		if opts.Once && factory.baseCompatible(path, opts.Base) {
			return existing, nil
		}
		return nil, NewError(
			fmt.Sprintf("%s %q already exists in namespace %q at %s; redefinition attempted from %s.",
				opts.Kind, name, ns, existing.OwnerPath(), origin),
			op, ErrKindDuplicate,
			ErrorExtensions{
				"name":     name,
				"kind":     opts.Kind.String(),
				"owner":    existing.OwnerPath(),
				"claimant": origin,
			})
	}

	builder := newDefinitionBuilder(opts.Kind)
	builder.Describe(opts.Description)
	if opts.Base != nil {
		builder.inherit(opts.Base)
	}
	if body != nil {
		body(builder)
	}

	def, err := builder.build(name, ns)
	if err != nil {
		return nil, WrapErrorf(err, "Cannot create %s %q declared at %s.", opts.Kind, name, origin)
	}
	def.(pathSetter).setOwnerPath(path)

	if err := factory.catalog.Register(def); err != nil {
		return nil, err
	}

	record := &factoryRecord{def: def, source: sourcePath}
	if opts.Base != nil {
		record.base = opts.Base.Name()
	}
	factory.created.Store(path, record)

	return def, nil
}

// MustCreate is a convenience function equivalent to Create but panics on failure
// instead of returning an error.
func (factory *TypeFactory) MustCreate(source interface{}, opts CreateOptions, body func(b *DefinitionBuilder)) Definition {
	def, err := factory.Create(source, opts, body)
	if err != nil {
		panic(err)
	}
	return def
}

// pathFor roots a derived name under the factory's owner-path root unless it is
// already there.
func (factory *TypeFactory) pathFor(name string) string {
	prefix := factory.root + "/"
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}

// baseCompatible reports whether the definition recorded at path can be reused for a
// request specializing base. A nil base only requires a record-independent kind match,
// which the caller has already established.
func (factory *TypeFactory) baseCompatible(path string, base Definition) bool {
	if base == nil {
		return true
	}
	value, exists := factory.created.Load(path)
	if !exists {
		// The existing definition was registered directly, not through this factory, so
		// its base cannot be verified.
		return false
	}
	return value.(*factoryRecord).base == base.Name()
}

// canonicalName derives a definition name from a string or from the type of an
// existing Go value. For a value the base type name becomes the definition name and
// the package-path-qualified name is reported as its source path.
func canonicalName(source interface{}) (name string, sourcePath string, err error) {
	const op = Op("graphql.TypeFactory.Create")

	switch source := source.(type) {
	case nil:
		return "", "", NewError("Must provide a name or value to create a definition.", op, ErrKindArgument)

	case string:
		if len(source) == 0 {
			return "", "", NewError("Must provide a non-empty name to create a definition.", op, ErrKindArgument)
		}
		return source, source, nil

	default:
		t := reflect.TypeOf(source)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if len(t.Name()) == 0 {
			return "", "", NewError(
				fmt.Sprintf("Cannot derive a definition name from unnamed type %s.", t),
				op, ErrKindArgument)
		}
		if len(t.PkgPath()) > 0 {
			return t.Name(), t.PkgPath() + "." + t.Name(), nil
		}
		return t.Name(), t.Name(), nil
	}
}

// captureOrigin reports the file:line of the caller skip frames up the stack, used as
// the provenance trace in conflict error messages.
func captureOrigin(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown origin"
	}
	return fmt.Sprintf("%s:%d", file, line)
}

//===----------------------------------------------------------------------------------------====//
// DefinitionBuilder
//===----------------------------------------------------------------------------------------====//

// DefinitionBuilder collects the declarative body of a definition being synthesized by
// a TypeFactory. Methods accumulate declarations; validation happens when the factory
// seals the definition, so a body may declare in any order.
type DefinitionBuilder struct {
	kind          TypeKind
	description   string
	fields        []Field
	inputFields   []InputField
	values        []EnumValue
	interfaces    []string
	possibleTypes []string
	locations     []DirectiveLocation
	args          []Argument
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

func newDefinitionBuilder(kind TypeKind) *DefinitionBuilder {
	return &DefinitionBuilder{kind: kind}
}

// Describe sets the description of the definition.
func (b *DefinitionBuilder) Describe(description string) *DefinitionBuilder {
	b.description = description
	return b
}

// AddField declares an output field (Object and Interface definitions).
func (b *DefinitionBuilder) AddField(field Field) *DefinitionBuilder {
	b.fields = append(b.fields, field)
	return b
}

// AddInputField declares an input field (InputObject definitions).
func (b *DefinitionBuilder) AddInputField(field InputField) *DefinitionBuilder {
	b.inputFields = append(b.inputFields, field)
	return b
}

// AddValue declares an enum value (Enum definitions).
func (b *DefinitionBuilder) AddValue(value EnumValue) *DefinitionBuilder {
	b.values = append(b.values, value)
	return b
}

// AddInterface declares an implemented interface by name (Object definitions).
func (b *DefinitionBuilder) AddInterface(name string) *DefinitionBuilder {
	b.interfaces = append(b.interfaces, name)
	return b
}

// AddPossibleType declares a member type by name (Union definitions).
func (b *DefinitionBuilder) AddPossibleType(name string) *DefinitionBuilder {
	b.possibleTypes = append(b.possibleTypes, name)
	return b
}

// AddLocation declares a location (Directive definitions).
func (b *DefinitionBuilder) AddLocation(location DirectiveLocation) *DefinitionBuilder {
	b.locations = append(b.locations, location)
	return b
}

// AddArgument declares an argument (Directive definitions).
func (b *DefinitionBuilder) AddArgument(arg Argument) *DefinitionBuilder {
	b.args = append(b.args, arg)
	return b
}

// CoerceResultWith sets the result coercer (Scalar definitions).
func (b *DefinitionBuilder) CoerceResultWith(coercer ScalarResultCoercer) *DefinitionBuilder {
	b.resultCoercer = coercer
	return b
}

// CoerceInputWith sets the input coercer (Scalar definitions).
func (b *DefinitionBuilder) CoerceInputWith(coercer ScalarInputCoercer) *DefinitionBuilder {
	b.inputCoercer = coercer
	return b
}

// inherit seeds the builder with the payload of the base definition being specialized.
func (b *DefinitionBuilder) inherit(base Definition) {
	switch base := base.(type) {
	case Scalar:
		b.resultCoercer = CoerceScalarResultFunc(base.CoerceResult)
		b.inputCoercer = CoerceScalarInputFunc(base.CoerceInput)
	case Object:
		b.fields = base.Fields().list()
		b.interfaces = append([]string(nil), base.Interfaces()...)
	case Interface:
		b.fields = base.Fields().list()
	case Union:
		b.possibleTypes = append([]string(nil), base.PossibleTypes()...)
	case Enum:
		b.values = base.Values().list()
	case InputObject:
		b.inputFields = base.Fields().list()
	case Directive:
		b.locations = append([]DirectiveLocation(nil), base.Locations()...)
		b.args = append([]Argument(nil), base.Args()...)
	}
}

// build seals the collected declarations into a definition.
func (b *DefinitionBuilder) build(name string, ns Namespace) (Definition, error) {
	switch b.kind {
	case KindScalar:
		return NewScalar(&ScalarConfig{
			Name:          name,
			Description:   b.description,
			Namespace:     ns,
			ResultCoercer: b.resultCoercer,
			InputCoercer:  b.inputCoercer,
		})

	case KindObject:
		return NewObject(&ObjectConfig{
			Name:        name,
			Description: b.description,
			Namespace:   ns,
			Interfaces:  b.interfaces,
			Fields:      b.fields,
		})

	case KindInterface:
		return NewInterface(&InterfaceConfig{
			Name:        name,
			Description: b.description,
			Namespace:   ns,
			Fields:      b.fields,
		})

	case KindUnion:
		return NewUnion(&UnionConfig{
			Name:          name,
			Description:   b.description,
			Namespace:     ns,
			PossibleTypes: b.possibleTypes,
		})

	case KindEnum:
		return NewEnum(&EnumConfig{
			Name:        name,
			Description: b.description,
			Namespace:   ns,
			Values:      b.values,
		})

	case KindInputObject:
		return NewInputObject(&InputObjectConfig{
			Name:        name,
			Description: b.description,
			Namespace:   ns,
			Fields:      b.inputFields,
		})

	case KindDirective:
		return NewDirective(&DirectiveConfig{
			Name:        name,
			Description: b.description,
			Namespace:   ns,
			Locations:   b.locations,
			Args:        b.args,
		})
	}
	return nil, NewError(
		fmt.Sprintf("Cannot build a definition of kind %s.", b.kind),
		ErrKindArgument)
}
