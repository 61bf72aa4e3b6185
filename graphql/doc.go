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

// Package graphql implements the registration and resolution core of a GraphQL-style
// type system.
//
// Declarations are made against a SchemaRegistry during an initialization phase: schema
// definitions are enqueued with Declare and committed in one batch by Organize, so the
// order in which the declaring files load does not matter. Type and directive
// definitions live in a TypeCatalog keyed by (namespace, kind, name), and a TypeFactory
// synthesizes catalog entries from a name or an existing Go value plus naming options.
//
// Each definition kind is declared through a Config struct consumed by a NewX/MustNewX
// constructor pair, for example:
//
//	product := graphql.MustNewObject(&graphql.ObjectConfig{
//		Name:      "Product",
//		Namespace: "store",
//		Fields: []graphql.Field{
//			{Name: "id", Type: "ID"},
//			{Name: "title", Type: "String"},
//		},
//	})
//
// Once the load phase completes, lookups (TypeCatalog.Fetch, SchemaRegistry.Find and
// their erroring Resolve variants) are read-only and safe for concurrent use.
package graphql
