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

// InputObjectConfig provides specification to define an InputObject.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject
	Description string

	// Namespace owning the InputObject; NamespaceBase when empty
	Namespace Namespace

	// Fields in the input object, in declaration order
	Fields []InputField
}

// inputObject is our built-in implementation for InputObject.
type inputObject struct {
	ThisIsInputObjectDefinition
	definitionBase
	fields *InputFields
}

var _ InputObject = (*inputObject)(nil)

// NewInputObject defines an InputObject from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.", ErrKindArgument)
	}

	fields, err := NewInputFields(config.Fields)
	if err != nil {
		return nil, WrapErrorf(err, "Invalid field declarations for InputObject %q.", config.Name)
	}

	return &inputObject{
		definitionBase: newDefinitionBase(config.Name, config.Description, config.Namespace),
		fields:         fields,
	}, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics
// on failure instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// Kind implements Definition.
func (o *inputObject) Kind() TypeKind {
	return KindInputObject
}

// Fields implements InputObject.
func (o *inputObject) Fields() *InputFields {
	return o.fields
}

// String implements fmt.Stringer.
func (o *inputObject) String() string {
	return o.name
}
