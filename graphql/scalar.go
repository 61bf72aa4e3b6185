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

// ScalarResultCoercer coerces a result value into a value representable in the scalar
// type.
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value for a field of the scalar type to return.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarResultFunc implements ScalarResultCoercer.
var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer coerces an input value (a variable or an argument) into a value
// representable in the scalar type.
type ScalarInputCoercer interface {
	// CoerceInputValue coerces a scalar value appearing in an input.
	CoerceInputValue(value interface{}) (interface{}, error)
}

// CoerceScalarInputFunc is an adapter to allow the use of ordinary functions as
// ScalarInputCoercer.
type CoerceScalarInputFunc func(value interface{}) (interface{}, error)

// CoerceInputValue calls f(value).
func (f CoerceScalarInputFunc) CoerceInputValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarInputFunc implements ScalarInputCoercer.
var _ ScalarInputCoercer = (CoerceScalarInputFunc)(nil)

// ScalarConfig provides specification to define a Scalar.
type ScalarConfig struct {
	// Name of the defining Scalar
	Name string

	// Description for the Scalar
	Description string

	// Namespace owning the Scalar; NamespaceBase when empty
	Namespace Namespace

	// ResultCoercer establishes the result serialization rules. Values pass through
	// unchanged when unset.
	ResultCoercer ScalarResultCoercer

	// InputCoercer establishes the input coercion rules. Values pass through unchanged
	// when unset.
	InputCoercer ScalarInputCoercer
}

// scalar is our built-in implementation for Scalar.
type scalar struct {
	ThisIsScalarDefinition
	definitionBase
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var _ Scalar = (*scalar)(nil)

// NewScalar defines a Scalar from a ScalarConfig.
func NewScalar(config *ScalarConfig) (Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.", ErrKindArgument)
	}

	return &scalar{
		definitionBase: newDefinitionBase(config.Name, config.Description, config.Namespace),
		resultCoercer:  config.ResultCoercer,
		inputCoercer:   config.InputCoercer,
	}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure
// instead of returning an error.
func MustNewScalar(config *ScalarConfig) Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind implements Definition.
func (s *scalar) Kind() TypeKind {
	return KindScalar
}

// CoerceResult implements Scalar.
func (s *scalar) CoerceResult(value interface{}) (interface{}, error) {
	if s.resultCoercer == nil {
		return value, nil
	}
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceInput implements Scalar.
func (s *scalar) CoerceInput(value interface{}) (interface{}, error) {
	if s.inputCoercer == nil {
		return value, nil
	}
	return s.inputCoercer.CoerceInputValue(value)
}

// String implements fmt.Stringer.
func (s *scalar) String() string {
	return s.name
}
