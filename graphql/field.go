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

// Field describes one output field in an Object, an Interface or a schema operation
// group. The field type is referenced by name and resolved through the catalog at
// lookup time.
type Field struct {
	// Name of the field
	Name string

	// Description of the field
	Description string

	// Type names the type of value yielded by the field.
	Type string

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// Fields is an ordered collection of Field keyed by name. Keys are unique; insertion
// order is preserved because introspection must report fields in declaration order.
// The zero value is an empty collection ready to use.
type Fields struct {
	index  map[string]int
	fields []Field
}

// NewFields builds a Fields from the given list. It fails with a duplicate error when
// two fields share a name.
func NewFields(fields []Field) (*Fields, error) {
	result := &Fields{}
	for _, field := range fields {
		if err := result.Add(field); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Add appends a field, failing when one with the same name was already added.
func (fields *Fields) Add(field Field) error {
	if len(field.Name) == 0 {
		return NewError("Must provide name for field.", ErrKindArgument)
	}
	if _, exists := fields.index[field.Name]; exists {
		return NewError(
			fmt.Sprintf("Field %q is declared more than once.", field.Name),
			ErrKindDuplicate)
	}
	if fields.index == nil {
		fields.index = map[string]int{}
	}
	fields.index[field.Name] = len(fields.fields)
	fields.fields = append(fields.fields, field)
	return nil
}

// Lookup finds the field with given name or returns nil if there's no such one.
func (fields *Fields) Lookup(name string) *Field {
	if fields == nil {
		return nil
	}
	i, exists := fields.index[name]
	if !exists {
		return nil
	}
	return &fields.fields[i]
}

// Len returns the number of fields.
func (fields *Fields) Len() int {
	if fields == nil {
		return 0
	}
	return len(fields.fields)
}

// Names returns field names in declaration order.
func (fields *Fields) Names() []string {
	if fields == nil || len(fields.fields) == 0 {
		return nil
	}
	names := make([]string, len(fields.fields))
	for i := range fields.fields {
		names[i] = fields.fields[i].Name
	}
	return names
}

// ForEach visits fields in declaration order until f returns an error.
func (fields *Fields) ForEach(f func(field Field) error) error {
	if fields == nil {
		return nil
	}
	for _, field := range fields.fields {
		if err := f(field); err != nil {
			return err
		}
	}
	return nil
}

// list returns a copy of the fields in declaration order.
func (fields *Fields) list() []Field {
	if fields == nil || len(fields.fields) == 0 {
		return nil
	}
	result := make([]Field, len(fields.fields))
	copy(result, fields.fields)
	return result
}

//===----------------------------------------------------------------------------------------====//
// InputFields
//===----------------------------------------------------------------------------------------====//

// InputField defines a field in an InputObject. It is much simpler than Field because
// it doesn't resolve a value, but it may carry a default.
type InputField struct {
	// Name of the field
	Name string

	// Description of the field
	Description string

	// Type names the type of value accepted by the field.
	Type string

	// HasDefault is true if the input field has a default value.
	HasDefault bool

	// Default specifies the value assigned to the field when no input is provided. It is
	// meaningless unless HasDefault is set.
	Default interface{}
}

// InputFields is an ordered collection of InputField keyed by name.
type InputFields struct {
	index  map[string]int
	fields []InputField
}

// NewInputFields builds an InputFields from the given list.
func NewInputFields(fields []InputField) (*InputFields, error) {
	result := &InputFields{}
	for _, field := range fields {
		if err := result.Add(field); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Add appends an input field, failing when one with the same name was already added.
func (fields *InputFields) Add(field InputField) error {
	if len(field.Name) == 0 {
		return NewError("Must provide name for input field.", ErrKindArgument)
	}
	if _, exists := fields.index[field.Name]; exists {
		return NewError(
			fmt.Sprintf("Input field %q is declared more than once.", field.Name),
			ErrKindDuplicate)
	}
	if fields.index == nil {
		fields.index = map[string]int{}
	}
	fields.index[field.Name] = len(fields.fields)
	fields.fields = append(fields.fields, field)
	return nil
}

// Lookup finds the input field with given name or returns nil if there's no such one.
func (fields *InputFields) Lookup(name string) *InputField {
	if fields == nil {
		return nil
	}
	i, exists := fields.index[name]
	if !exists {
		return nil
	}
	return &fields.fields[i]
}

// Len returns the number of input fields.
func (fields *InputFields) Len() int {
	if fields == nil {
		return 0
	}
	return len(fields.fields)
}

// list returns a copy of the input fields in declaration order.
func (fields *InputFields) list() []InputField {
	if fields == nil || len(fields.fields) == 0 {
		return nil
	}
	result := make([]InputField, len(fields.fields))
	copy(result, fields.fields)
	return result
}

//===----------------------------------------------------------------------------------------====//
// EnumValues
//===----------------------------------------------------------------------------------------====//

// EnumValue provides definition for a value in an Enum.
//
// Note: if Value is not provided, the name of the enum value is used as its internal
// value.
type EnumValue struct {
	// Name of the enum value
	Name string

	// Description of the enum value
	Description string

	// Value is the internal value to be used when the enum value is read from input.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumValues is an ordered collection of EnumValue keyed by name.
type EnumValues struct {
	index  map[string]int
	values []EnumValue
}

// NewEnumValues builds an EnumValues from the given list.
func NewEnumValues(values []EnumValue) (*EnumValues, error) {
	result := &EnumValues{}
	for _, value := range values {
		if err := result.Add(value); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Add appends an enum value, failing when one with the same name was already added. A
// value without an internal value takes its name.
func (values *EnumValues) Add(value EnumValue) error {
	if len(value.Name) == 0 {
		return NewError("Must provide name for enum value.", ErrKindArgument)
	}
	if _, exists := values.index[value.Name]; exists {
		return NewError(
			fmt.Sprintf("Enum value %q is declared more than once.", value.Name),
			ErrKindDuplicate)
	}
	if value.Value == nil {
		value.Value = value.Name
	}
	if values.index == nil {
		values.index = map[string]int{}
	}
	values.index[value.Name] = len(values.values)
	values.values = append(values.values, value)
	return nil
}

// Lookup finds the enum value with given name or returns nil if there's no such one.
func (values *EnumValues) Lookup(name string) *EnumValue {
	if values == nil {
		return nil
	}
	i, exists := values.index[name]
	if !exists {
		return nil
	}
	return &values.values[i]
}

// Len returns the number of enum values.
func (values *EnumValues) Len() int {
	if values == nil {
		return 0
	}
	return len(values.values)
}

// Names returns enum value names in declaration order.
func (values *EnumValues) Names() []string {
	if values == nil || len(values.values) == 0 {
		return nil
	}
	names := make([]string, len(values.values))
	for i := range values.values {
		names[i] = values.values[i].Name
	}
	return names
}

// list returns a copy of the enum values in declaration order.
func (values *EnumValues) list() []EnumValue {
	if values == nil || len(values.values) == 0 {
		return nil
	}
	result := make([]EnumValue, len(values.values))
	copy(result, values.values)
	return result
}

//===----------------------------------------------------------------------------------------====//
// Argument
//===----------------------------------------------------------------------------------------====//

// Argument describes an argument accepted by a directive.
type Argument struct {
	// Name of the argument
	Name string

	// Description of the argument
	Description string

	// Type names the type of value accepted by the argument.
	Type string

	// HasDefault is true if the argument has a default value.
	HasDefault bool

	// Default specifies the value assigned to the argument when no input is provided. It
	// is meaningless unless HasDefault is set.
	Default interface{}
}

// lookupArgument finds the argument with given name in a list or returns nil.
func lookupArgument(args []Argument, name string) *Argument {
	for i := range args {
		if args[i].Name == name {
			return &args[i]
		}
	}
	return nil
}
