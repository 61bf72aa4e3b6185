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

// DirectiveLocation specifies a valid location for a directive to be used.
type DirectiveLocation string

// Enumeration of DirectiveLocation
const (
	// Executable directive location
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation                             = "MUTATION"
	DirectiveLocationSubscription                         = "SUBSCRIPTION"
	DirectiveLocationField                                = "FIELD"
	DirectiveLocationFragmentDefinition                   = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread                       = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment                       = "INLINE_FRAGMENT"

	// Type system directive location
	DirectiveLocationSchema               = "SCHEMA"
	DirectiveLocationScalar               = "SCALAR"
	DirectiveLocationObject               = "OBJECT"
	DirectiveLocationFieldDefinition      = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            = "INTERFACE"
	DirectiveLocationUnion                = "UNION"
	DirectiveLocationEnum                 = "ENUM"
	DirectiveLocationEnumValue            = "ENUM_VALUE"
	DirectiveLocationInputObject          = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition = "INPUT_FIELD_DEFINITION"
)

// Directive Definition
//
// Directives are named, location-scoped annotations attachable to schema elements,
// altering execution or validation behavior.
type Directive interface {
	Definition

	// Locations specifies the places where the defining directive may appear.
	Locations() []DirectiveLocation

	// Args indicates the arguments taken by the directive.
	Args() []Argument

	// graphqlDirectiveDefinition puts a special mark for a Directive definition.
	graphqlDirectiveDefinition()
}

// ThisIsDirectiveDefinition is required to be embedded in struct that intends to be a
// Directive.
type ThisIsDirectiveDefinition struct{}

// graphqlDefinition implements Definition.
func (*ThisIsDirectiveDefinition) graphqlDefinition() {}

// graphqlDirectiveDefinition implements Directive.
func (*ThisIsDirectiveDefinition) graphqlDirectiveDefinition() {}

// DirectiveConfig provides specification to define a Directive.
type DirectiveConfig struct {
	// Name of the defining Directive
	Name string

	// Description for the Directive
	Description string

	// Namespace owning the Directive; NamespaceBase when empty
	Namespace Namespace

	// Locations in the schema where the defining directive may appear
	Locations []DirectiveLocation

	// Args to be provided when using the directive
	Args []Argument
}

// directive is our built-in implementation for Directive.
type directive struct {
	ThisIsDirectiveDefinition
	definitionBase
	locations []DirectiveLocation
	args      []Argument
	// notation is the cached value returned from String() and is initialized in the
	// constructor.
	notation string
}

var _ Directive = (*directive)(nil)

// NewDirective defines a Directive from a DirectiveConfig.
func NewDirective(config *DirectiveConfig) (Directive, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Directive.", ErrKindArgument)
	}
	if len(config.Locations) == 0 {
		return nil, NewError(
			fmt.Sprintf("Must provide locations for Directive %q.", config.Name),
			ErrKindArgument)
	}

	seen := map[string]bool{}
	for _, arg := range config.Args {
		if len(arg.Name) == 0 {
			return nil, NewError(
				fmt.Sprintf("Must provide name for argument of Directive %q.", config.Name),
				ErrKindArgument)
		}
		if seen[arg.Name] {
			return nil, NewError(
				fmt.Sprintf("Argument %q of Directive %q is declared more than once.",
					arg.Name, config.Name),
				ErrKindDuplicate)
		}
		seen[arg.Name] = true
	}

	locations := make([]DirectiveLocation, len(config.Locations))
	copy(locations, config.Locations)
	args := make([]Argument, len(config.Args))
	copy(args, config.Args)

	return &directive{
		definitionBase: newDefinitionBase(config.Name, config.Description, config.Namespace),
		locations:      locations,
		args:           args,
		notation:       fmt.Sprintf("@%s", config.Name),
	}, nil
}

// MustNewDirective is a convenience function equivalent to NewDirective but panics on
// failure instead of returning an error.
func MustNewDirective(config *DirectiveConfig) Directive {
	d, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return d
}

// Kind implements Definition.
func (d *directive) Kind() TypeKind {
	return KindDirective
}

// Locations implements Directive.
func (d *directive) Locations() []DirectiveLocation {
	return d.locations
}

// Args implements Directive.
func (d *directive) Args() []Argument {
	return d.args
}

// String implements fmt.Stringer.
func (d *directive) String() string {
	return d.notation
}

// HasLocation returns true if the directive may appear at the given location.
func HasLocation(d Directive, location DirectiveLocation) bool {
	for _, l := range d.Locations() {
		if l == location {
			return true
		}
	}
	return false
}

//===----------------------------------------------------------------------------------------====//
// DirectiveUsage
//===----------------------------------------------------------------------------------------====//

// DirectiveUsage records an application of a directive to a schema element together
// with its argument values. Usages are validated when the owning schema is organized.
type DirectiveUsage struct {
	// Directive being applied
	Directive Directive

	// Args supplies values for the directive's declared arguments.
	Args map[string]interface{}
}

// validate checks the usage against the directive declaration for the given location.
func (usage *DirectiveUsage) validate(location DirectiveLocation) error {
	d := usage.Directive
	if d == nil {
		return NewError("Directive usage must reference a directive.", ErrKindArgument)
	}
	if !HasLocation(d, location) {
		return NewError(
			fmt.Sprintf("Directive %s may not appear at location %q.", d, location),
			ErrKindDefinition)
	}
	for name := range usage.Args {
		if lookupArgument(d.Args(), name) == nil {
			declared := make([]string, len(d.Args()))
			for i, arg := range d.Args() {
				declared[i] = arg.Name
			}
			return NewError(
				fmt.Sprintf("Unknown argument %q on directive %s.%s",
					name, d, didYouMean(name, declared)),
				ErrKindArgument)
		}
	}
	return nil
}
