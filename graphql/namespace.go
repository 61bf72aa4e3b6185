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

// Namespace partitions the universe of schemas, types and directives. Namespaces form
// no hierarchy among themselves; a lookup may instead be given an ordered list of
// namespaces to search, most specific first.
type Namespace string

// NamespaceBase is the namespace assumed when a declaration does not specify one. It
// also serves as the shared home for the standard scalars and directives, which is why
// it appears last in default fallback chains.
const NamespaceBase Namespace = "base"

// fallbackChainFor computes the default lookup chain for a namespace: the namespace
// itself followed by NamespaceBase.
func fallbackChainFor(ns Namespace) []Namespace {
	if ns == NamespaceBase || len(ns) == 0 {
		return []Namespace{NamespaceBase}
	}
	return []Namespace{ns, NamespaceBase}
}
