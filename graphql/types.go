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
)

// TypeKind tags a Definition with one of the closed set of definition kinds. Within one
// namespace, (kind, name) identifies at most one definition; a name may be reused
// across kinds and across namespaces.
type TypeKind uint8

// Enumeration of TypeKind
const (
	// KindAny is only meaningful in catalog lookups where it matches a definition of any
	// kind. It never appears on a definition.
	KindAny TypeKind = iota
	KindScalar
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
	KindDirective
)

func (kind TypeKind) String() string {
	switch kind {
	case KindAny:
		return "Any"
	case KindScalar:
		return "Scalar"
	case KindObject:
		return "Object"
	case KindInterface:
		return "Interface"
	case KindUnion:
		return "Union"
	case KindEnum:
		return "Enum"
	case KindInputObject:
		return "InputObject"
	case KindDirective:
		return "Directive"
	}
	return "unknown kind"
}

// definitionKinds lists the concrete kinds in the order they are scanned when a lookup
// does not specify one. The order is fixed so such lookups stay deterministic.
var definitionKinds = []TypeKind{
	KindScalar,
	KindObject,
	KindInterface,
	KindUnion,
	KindEnum,
	KindInputObject,
	KindDirective,
}

// Definition interfaces provided by every named definition in the catalog.
type Definition interface {
	// String representation when printing the definition
	fmt.Stringer

	// Name of the definition, unique for its kind within its namespace
	Name() string

	// Kind of the definition
	Kind() TypeKind

	// Namespace owning the definition
	Namespace() Namespace

	// Description provides documentation for the definition.
	Description() string

	// OwnerPath locates the definition under the engine's type root. It exists for
	// provenance in conflict error messages.
	OwnerPath() string

	// graphqlDefinition is a special mark to indicate a Definition. It makes sure that
	// only a known set of objects can be assigned to Definition.
	graphqlDefinition()
}

// definitionBase carries the attributes shared by every definition kind. Concrete
// definitions embed it by pointer-receiver promotion.
type definitionBase struct {
	name        string
	description string
	namespace   Namespace
	ownerPath   string
}

func newDefinitionBase(name, description string, ns Namespace) definitionBase {
	if len(ns) == 0 {
		ns = NamespaceBase
	}
	return definitionBase{
		name:        name,
		description: description,
		namespace:   ns,
		ownerPath:   fmt.Sprintf("%s.%s", ns, name),
	}
}

// Name implements Definition.
func (d *definitionBase) Name() string {
	return d.name
}

// Description implements Definition.
func (d *definitionBase) Description() string {
	return d.description
}

// Namespace implements Definition.
func (d *definitionBase) Namespace() Namespace {
	return d.namespace
}

// OwnerPath implements Definition.
func (d *definitionBase) OwnerPath() string {
	return d.ownerPath
}

// setOwnerPath overrides the default owner path. Only the TypeFactory does this, before
// the definition is registered.
func (d *definitionBase) setOwnerPath(path string) {
	d.ownerPath = path
}

// pathSetter is implemented by every concrete definition through definitionBase.
type pathSetter interface {
	setOwnerPath(path string)
}

// Deprecation contains information about deprecation for a field or an enum value.
type Deprecation struct {
	// Reason provides a description of why the subject is deprecated.
	Reason string
}

// Defined returns true if the deprecation is active.
func (d *Deprecation) Defined() bool {
	return d != nil
}

//===----------------------------------------------------------------------------------------====//
// Kind interfaces
//===----------------------------------------------------------------------------------------====//

// Scalar Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums)
// and are defined with a name and a pair of coercers that establish their serialization
// rules.
type Scalar interface {
	Definition

	// CoerceResult coerces the given value to be returned as result of a field with the
	// scalar type.
	CoerceResult(value interface{}) (interface{}, error)

	// CoerceInput coerces an input value (variable or argument) into an eligible Go value
	// for the scalar.
	CoerceInput(value interface{}) (interface{}, error)

	// graphqlScalarDefinition puts a special mark for a Scalar definition.
	graphqlScalarDefinition()
}

// ThisIsScalarDefinition is required to be embedded in struct that intends to be a
// Scalar.
type ThisIsScalarDefinition struct{}

// graphqlDefinition implements Definition.
func (*ThisIsScalarDefinition) graphqlDefinition() {}

// graphqlScalarDefinition implements Scalar.
func (*ThisIsScalarDefinition) graphqlScalarDefinition() {}

// Object Definition
//
// Objects describe the intermediate levels of the hierarchical queries served under a
// schema. Field and interface types are referenced by name and resolved through the
// catalog at lookup time.
type Object interface {
	Definition

	// Fields in the object, in declaration order
	Fields() *Fields

	// Interfaces returns names of the interfaces implemented by the Object.
	Interfaces() []string

	// graphqlObjectDefinition puts a special mark for an Object definition.
	graphqlObjectDefinition()
}

// ThisIsObjectDefinition is required to be embedded in struct that intends to be an
// Object.
type ThisIsObjectDefinition struct{}

// graphqlDefinition implements Definition.
func (*ThisIsObjectDefinition) graphqlDefinition() {}

// graphqlObjectDefinition implements Object.
func (*ThisIsObjectDefinition) graphqlObjectDefinition() {}

// Interface Definition
//
// When a field can return one of a heterogeneous set of types, an Interface describes
// the fields common across all of them.
type Interface interface {
	Definition

	// Fields that must be provided when implementing this interface
	Fields() *Fields

	// graphqlInterfaceDefinition puts a special mark for an Interface definition.
	graphqlInterfaceDefinition()
}

// ThisIsInterfaceDefinition is required to be embedded in struct that intends to be an
// Interface.
type ThisIsInterfaceDefinition struct{}

// graphqlDefinition implements Definition.
func (*ThisIsInterfaceDefinition) graphqlDefinition() {}

// graphqlInterfaceDefinition implements Interface.
func (*ThisIsInterfaceDefinition) graphqlInterfaceDefinition() {}

// Union Definition
type Union interface {
	Definition

	// PossibleTypes returns names of the member types of the union.
	PossibleTypes() []string

	// graphqlUnionDefinition puts a special mark for a Union definition.
	graphqlUnionDefinition()
}

// ThisIsUnionDefinition is required to be embedded in struct that intends to be a
// Union.
type ThisIsUnionDefinition struct{}

// graphqlDefinition implements Definition.
func (*ThisIsUnionDefinition) graphqlDefinition() {}

// graphqlUnionDefinition implements Union.
func (*ThisIsUnionDefinition) graphqlUnionDefinition() {}

// Enum Definition
type Enum interface {
	Definition

	// Values returns all enum values defined in this Enum, in declaration order.
	Values() *EnumValues

	// graphqlEnumDefinition puts a special mark for an Enum definition.
	graphqlEnumDefinition()
}

// ThisIsEnumDefinition is required to be embedded in struct that intends to be an Enum.
type ThisIsEnumDefinition struct{}

// graphqlDefinition implements Definition.
func (*ThisIsEnumDefinition) graphqlDefinition() {}

// graphqlEnumDefinition implements Enum.
func (*ThisIsEnumDefinition) graphqlEnumDefinition() {}

// InputObject Definition
//
// An input object defines a structured collection of input fields which may be supplied
// to a field argument.
type InputObject interface {
	Definition

	// Fields in the input object, in declaration order
	Fields() *InputFields

	// graphqlInputObjectDefinition puts a special mark for an InputObject definition.
	graphqlInputObjectDefinition()
}

// ThisIsInputObjectDefinition is required to be embedded in struct that intends to be
// an InputObject.
type ThisIsInputObjectDefinition struct{}

// graphqlDefinition implements Definition.
func (*ThisIsInputObjectDefinition) graphqlDefinition() {}

// graphqlInputObjectDefinition implements InputObject.
func (*ThisIsInputObjectDefinition) graphqlInputObjectDefinition() {}

//===----------------------------------------------------------------------------------------====//
// Kind predication
//===----------------------------------------------------------------------------------------====//

// The following predications are simple wrappers of type assertions to the
// corresponding kind interface. This makes their use in "if" easy.

// IsScalarDefinition returns true if the given definition is a Scalar.
func IsScalarDefinition(def Definition) bool {
	_, ok := def.(Scalar)
	return ok
}

// IsObjectDefinition returns true if the given definition is an Object.
func IsObjectDefinition(def Definition) bool {
	_, ok := def.(Object)
	return ok
}

// IsInterfaceDefinition returns true if the given definition is an Interface.
func IsInterfaceDefinition(def Definition) bool {
	_, ok := def.(Interface)
	return ok
}

// IsUnionDefinition returns true if the given definition is a Union.
func IsUnionDefinition(def Definition) bool {
	_, ok := def.(Union)
	return ok
}

// IsEnumDefinition returns true if the given definition is an Enum.
func IsEnumDefinition(def Definition) bool {
	_, ok := def.(Enum)
	return ok
}

// IsInputObjectDefinition returns true if the given definition is an InputObject.
func IsInputObjectDefinition(def Definition) bool {
	_, ok := def.(InputObject)
	return ok
}

// IsDirectiveDefinition returns true if the given definition is a Directive.
func IsDirectiveDefinition(def Definition) bool {
	_, ok := def.(Directive)
	return ok
}
