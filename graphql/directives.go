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

// Standard directives pre-registered under NamespaceBase by every SchemaRegistry.

var (
	includeDirective = MustNewDirective(&DirectiveConfig{
		Name: "include",
		Description: "Directs the executor to include this field or fragment only when the `if` " +
			"argument is true.",
		Locations: []DirectiveLocation{
			DirectiveLocationField,
			DirectiveLocationFragmentSpread,
			DirectiveLocationInlineFragment,
		},
		Args: []Argument{
			{
				Name:        "if",
				Description: "Included when true.",
				Type:        "Boolean",
			},
		},
	})

	skipDirective = MustNewDirective(&DirectiveConfig{
		Name: "skip",
		Description: "Directs the executor to skip this field or fragment when the `if` argument " +
			"is true.",
		Locations: []DirectiveLocation{
			DirectiveLocationField,
			DirectiveLocationFragmentSpread,
			DirectiveLocationInlineFragment,
		},
		Args: []Argument{
			{
				Name:        "if",
				Description: "Skipped when true.",
				Type:        "Boolean",
			},
		},
	})

	deprecatedDirective = MustNewDirective(&DirectiveConfig{
		Name:        "deprecated",
		Description: "Marks an element of the schema as no longer supported.",
		Locations: []DirectiveLocation{
			DirectiveLocationFieldDefinition,
			DirectiveLocationEnumValue,
		},
		Args: []Argument{
			{
				Name: "reason",
				Description: "Explains why this element was deprecated, usually also including a " +
					"suggestion for how to access supported similar data.",
				Type:       "String",
				HasDefault: true,
				Default:    "No longer supported",
			},
		},
	})
)

// IncludeDirective returns the standard @include directive.
func IncludeDirective() Directive { return includeDirective }

// SkipDirective returns the standard @skip directive.
func SkipDirective() Directive { return skipDirective }

// DeprecatedDirective returns the standard @deprecated directive.
func DeprecatedDirective() Directive { return deprecatedDirective }

// StandardDirectives returns the directives available in every namespace.
func StandardDirectives() []Directive {
	return []Directive{includeDirective, skipDirective, deprecatedDirective}
}
