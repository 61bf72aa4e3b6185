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
	"strconv"
)

// Standard scalars pre-registered under NamespaceBase by every SchemaRegistry, so any
// namespace may reference them through the default fallback chain.

var (
	intScalar = MustNewScalar(&ScalarConfig{
		Name: "Int",
		Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
			"Int can represent values between -(2^31) and 2^31 - 1.",
		ResultCoercer: CoerceScalarResultFunc(coerceInt),
		InputCoercer:  CoerceScalarInputFunc(coerceInt),
	})

	floatScalar = MustNewScalar(&ScalarConfig{
		Name: "Float",
		Description: "The `Float` scalar type represents signed double-precision fractional values " +
			"as specified by IEEE 754.",
		ResultCoercer: CoerceScalarResultFunc(coerceFloat),
		InputCoercer:  CoerceScalarInputFunc(coerceFloat),
	})

	stringScalar = MustNewScalar(&ScalarConfig{
		Name: "String",
		Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
			"character sequences.",
		ResultCoercer: CoerceScalarResultFunc(coerceString),
		InputCoercer:  CoerceScalarInputFunc(coerceString),
	})

	booleanScalar = MustNewScalar(&ScalarConfig{
		Name:          "Boolean",
		Description:   "The `Boolean` scalar type represents `true` or `false`.",
		ResultCoercer: CoerceScalarResultFunc(coerceBoolean),
		InputCoercer:  CoerceScalarInputFunc(coerceBoolean),
	})

	idScalar = MustNewScalar(&ScalarConfig{
		Name: "ID",
		Description: "The `ID` scalar type represents a unique identifier. It is serialized in the " +
			"same way as a String but is not intended to be human-readable.",
		ResultCoercer: CoerceScalarResultFunc(coerceID),
		InputCoercer:  CoerceScalarInputFunc(coerceID),
	})
)

// Int returns the standard Int scalar.
func Int() Scalar { return intScalar }

// Float returns the standard Float scalar.
func Float() Scalar { return floatScalar }

// String returns the standard String scalar.
func String() Scalar { return stringScalar }

// Boolean returns the standard Boolean scalar.
func Boolean() Scalar { return booleanScalar }

// ID returns the standard ID scalar.
func ID() Scalar { return idScalar }

// StandardScalars returns the scalars available in every namespace.
func StandardScalars() []Scalar {
	return []Scalar{intScalar, floatScalar, stringScalar, booleanScalar, idScalar}
}

const (
	// 2^31 - 1 and -(2^31); values beyond this range cannot be represented by Int.
	maxInt = 2147483647
	minInt = -2147483648
)

func coerceInt(value interface{}) (interface{}, error) {
	var result int64
	switch value := value.(type) {
	case int:
		result = int64(value)
	case int8:
		result = int64(value)
	case int16:
		result = int64(value)
	case int32:
		result = int64(value)
	case int64:
		result = value
	case uint:
		// Guard before converting; a large uint would wrap through int64.
		if uint64(value) > maxInt {
			return nil, intRangeError(value)
		}
		result = int64(value)
	case uint8:
		result = int64(value)
	case uint16:
		result = int64(value)
	case uint32:
		result = int64(value)
	case uint64:
		if value > maxInt {
			return nil, intRangeError(value)
		}
		result = int64(value)
	case uintptr:
		if uint64(value) > maxInt {
			return nil, intRangeError(value)
		}
		result = int64(value)
	case float32:
		if float32(int64(value)) != value {
			return nil, intCoercionError(value)
		}
		result = int64(value)
	case float64:
		if float64(int64(value)) != value {
			return nil, intCoercionError(value)
		}
		result = int64(value)
	case bool:
		if value {
			result = 1
		}
	case string:
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, intCoercionError(value)
		}
		result = parsed
	default:
		return nil, intCoercionError(value)
	}

	if result > maxInt || result < minInt {
		return nil, intRangeError(value)
	}
	return int(result), nil
}

func intCoercionError(value interface{}) error {
	return NewError(
		fmt.Sprintf("Int cannot represent non-integer value: %v", value),
		ErrKindDefinition)
}

func intRangeError(value interface{}) error {
	return NewError(
		fmt.Sprintf("Int cannot represent non 32-bit signed integer value: %v", value),
		ErrKindDefinition)
}

func coerceFloat(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case float32:
		return float64(value), nil
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed, nil
		}
	case bool:
		if value {
			return 1.0, nil
		}
		return 0.0, nil
	}
	return nil, NewError(
		fmt.Sprintf("Float cannot represent non numeric value: %v", value),
		ErrKindDefinition)
}

func coerceString(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	case fmt.Stringer:
		return value.String(), nil
	}
	return nil, NewError(
		fmt.Sprintf("String cannot represent value: %v", value),
		ErrKindDefinition)
}

func coerceBoolean(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		return value, nil
	case int:
		return value != 0, nil
	case int64:
		return value != 0, nil
	case float64:
		return value != 0, nil
	}
	return nil, NewError(
		fmt.Sprintf("Boolean cannot represent a non boolean value: %v", value),
		ErrKindDefinition)
}

func coerceID(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case fmt.Stringer:
		return value.String(), nil
	}
	return nil, NewError(
		fmt.Sprintf("ID cannot represent value: %v", value),
		ErrKindDefinition)
}
