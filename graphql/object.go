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

// ObjectConfig provides specification to define an Object.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object
	Description string

	// Namespace owning the Object; NamespaceBase when empty
	Namespace Namespace

	// Interfaces names the interfaces implemented by the defining Object.
	Interfaces []string

	// Fields in the object, in declaration order
	Fields []Field
}

// object is our built-in implementation for Object.
type object struct {
	ThisIsObjectDefinition
	definitionBase
	fields     *Fields
	interfaces []string
}

var _ Object = (*object)(nil)

// NewObject defines an Object from an ObjectConfig.
func NewObject(config *ObjectConfig) (Object, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.", ErrKindArgument)
	}

	fields, err := NewFields(config.Fields)
	if err != nil {
		return nil, WrapErrorf(err, "Invalid field declarations for Object %q.", config.Name)
	}

	interfaces := make([]string, len(config.Interfaces))
	copy(interfaces, config.Interfaces)

	return &object{
		definitionBase: newDefinitionBase(config.Name, config.Description, config.Namespace),
		fields:         fields,
		interfaces:     interfaces,
	}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure
// instead of returning an error.
func MustNewObject(config *ObjectConfig) Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// Kind implements Definition.
func (o *object) Kind() TypeKind {
	return KindObject
}

// Fields implements Object.
func (o *object) Fields() *Fields {
	return o.fields
}

// Interfaces implements Object.
func (o *object) Interfaces() []string {
	return o.interfaces
}

// String implements fmt.Stringer.
func (o *object) String() string {
	return o.name
}
