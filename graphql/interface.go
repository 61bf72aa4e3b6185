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

// InterfaceConfig provides specification to define an Interface.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface
	Description string

	// Namespace owning the Interface; NamespaceBase when empty
	Namespace Namespace

	// Fields that must be provided by implementing objects, in declaration order
	Fields []Field
}

// iface is our built-in implementation for Interface.
type iface struct {
	ThisIsInterfaceDefinition
	definitionBase
	fields *Fields
}

var _ Interface = (*iface)(nil)

// NewInterface defines an Interface from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.", ErrKindArgument)
	}

	fields, err := NewFields(config.Fields)
	if err != nil {
		return nil, WrapErrorf(err, "Invalid field declarations for Interface %q.", config.Name)
	}

	return &iface{
		definitionBase: newDefinitionBase(config.Name, config.Description, config.Namespace),
		fields:         fields,
	}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on
// failure instead of returning an error.
func MustNewInterface(config *InterfaceConfig) Interface {
	i, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return i
}

// Kind implements Definition.
func (i *iface) Kind() TypeKind {
	return KindInterface
}

// Fields implements Interface.
func (i *iface) Fields() *Fields {
	return i.fields
}

// String implements fmt.Stringer.
func (i *iface) String() string {
	return i.name
}
