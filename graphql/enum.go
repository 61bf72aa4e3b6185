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

// EnumConfig provides specification to define an Enum.
type EnumConfig struct {
	// Name of the defining Enum
	Name string

	// Description for the Enum
	Description string

	// Namespace owning the Enum; NamespaceBase when empty
	Namespace Namespace

	// Values of the Enum, in declaration order
	Values []EnumValue
}

// enum is our built-in implementation for Enum.
type enum struct {
	ThisIsEnumDefinition
	definitionBase
	values *EnumValues
}

var _ Enum = (*enum)(nil)

// NewEnum defines an Enum from an EnumConfig.
func NewEnum(config *EnumConfig) (Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.", ErrKindArgument)
	}

	values, err := NewEnumValues(config.Values)
	if err != nil {
		return nil, WrapErrorf(err, "Invalid value declarations for Enum %q.", config.Name)
	}

	return &enum{
		definitionBase: newDefinitionBase(config.Name, config.Description, config.Namespace),
		values:         values,
	}, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure
// instead of returning an error.
func MustNewEnum(config *EnumConfig) Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// Kind implements Definition.
func (e *enum) Kind() TypeKind {
	return KindEnum
}

// Values implements Enum.
func (e *enum) Values() *EnumValues {
	return e.values
}

// String implements fmt.Stringer.
func (e *enum) String() string {
	return e.name
}
