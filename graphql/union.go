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

// UnionConfig provides specification to define a Union.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union
	Description string

	// Namespace owning the Union; NamespaceBase when empty
	Namespace Namespace

	// PossibleTypes names the member types of the union.
	PossibleTypes []string
}

// union is our built-in implementation for Union.
type union struct {
	ThisIsUnionDefinition
	definitionBase
	possibleTypes []string
}

var _ Union = (*union)(nil)

// NewUnion defines a Union from a UnionConfig.
func NewUnion(config *UnionConfig) (Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.", ErrKindArgument)
	}

	seen := map[string]bool{}
	for _, name := range config.PossibleTypes {
		if seen[name] {
			return nil, NewError(
				fmt.Sprintf("Union %q includes member type %q more than once.", config.Name, name),
				ErrKindDuplicate)
		}
		seen[name] = true
	}

	possibleTypes := make([]string, len(config.PossibleTypes))
	copy(possibleTypes, config.PossibleTypes)

	return &union{
		definitionBase: newDefinitionBase(config.Name, config.Description, config.Namespace),
		possibleTypes:  possibleTypes,
	}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure
// instead of returning an error.
func MustNewUnion(config *UnionConfig) Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// Kind implements Definition.
func (u *union) Kind() TypeKind {
	return KindUnion
}

// PossibleTypes implements Union.
func (u *union) PossibleTypes() []string {
	return u.possibleTypes
}

// String implements fmt.Stringer.
func (u *union) String() string {
	return u.name
}
