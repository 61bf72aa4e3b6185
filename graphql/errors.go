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
	"github.com/botobag/hermes/internal/util"
)

// KindOf returns the ErrKind carried by err, or ErrKindOther for foreign errors.
func KindOf(err error) ErrKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ErrKindOther
}

// IsDefinitionError returns true for any error in the load-time family: malformed
// declarations, bad declaration arguments, lookup misses and collisions.
func IsDefinitionError(err error) bool {
	switch KindOf(err) {
	case ErrKindDefinition, ErrKindArgument, ErrKindName, ErrKindDuplicate:
		return true
	default:
		return false
	}
}

// IsArgumentError returns true if err was caused by bad arguments to a declaration.
func IsArgumentError(err error) bool {
	return KindOf(err) == ErrKindArgument
}

// IsNameError returns true if err was caused by a lookup miss.
func IsNameError(err error) bool {
	return KindOf(err) == ErrKindName
}

// IsDuplicateError returns true if err was caused by a name or namespace collision.
func IsDuplicateError(err error) bool {
	return KindOf(err) == ErrKindDuplicate
}

// IsExecutionError returns true for any error in the request-time family.
func IsExecutionError(err error) bool {
	switch KindOf(err) {
	case ErrKindExecution, ErrKindSyntax:
		return true
	default:
		return false
	}
}

// didYouMean renders a suggestion list into a sentence like ` Did you mean "Foo" or
// "Bar"?` for appending to a lookup-miss message. It returns an empty string when no
// option is close enough to the input.
func didYouMean(input string, options []string) string {
	suggestions := util.SuggestionList(input, options)
	if len(suggestions) == 0 {
		return ""
	}

	var b util.StringBuilder
	b.WriteString(" Did you mean ")
	util.OrList(&b, suggestions, 5, true)
	b.WriteString("?")
	return b.String()
}
