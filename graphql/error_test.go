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

package graphql_test

import (
	"encoding/json"
	"errors"

	"github.com/botobag/hermes/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newError(message string, args ...interface{}) *graphql.Error {
	e, ok := graphql.NewError(message, args...).(*graphql.Error)
	Expect(ok).Should(BeTrue())
	return e
}

func expectSerializationResult(e error, expected string) {
	s, err := json.Marshal(e)
	Expect(err).ShouldNot(HaveOccurred())
	Expect(s).Should(MatchJSON(expected))
}

type errWithExtensions struct {
	extensions graphql.ErrorExtensions
}

// Extensions implements graphql.ErrorWithExtensions.
func (e *errWithExtensions) Extensions() graphql.ErrorExtensions {
	return e.extensions
}

// Error implements Go's error interface
func (e *errWithExtensions) Error() string {
	return "error provided extensions"
}

var _ = Describe("Error", func() {
	It("builds an error with a message", func() {
		e := newError("unexpected state")
		Expect(e.Message).Should(Equal("unexpected state"))
		Expect(e.Kind).Should(Equal(graphql.ErrKindOther))
		Expect(e.Error()).Should(Equal("unexpected state"))
	})

	It("records op and kind", func() {
		e := newError("unexpected state", graphql.Op("test.Op"), graphql.ErrKindDefinition)
		Expect(e.Op).Should(Equal(graphql.Op("test.Op")))
		Expect(e.Kind).Should(Equal(graphql.ErrKindDefinition))
		Expect(e.Error()).Should(HavePrefix("test.Op: unexpected state"))
	})

	It("chains an underlying error", func() {
		cause := errors.New("the cause")
		e := newError("the effect", cause)
		Expect(e.Err).Should(Equal(cause))
		Expect(e.Error()).Should(ContainSubstring("the cause"))
	})

	Describe("propagation from a wrapped error", func() {
		It("inherits the kind when none is given", func() {
			inner := graphql.NewError("inner", graphql.ErrKindDuplicate)
			outer := newError("outer", inner)
			Expect(outer.Kind).Should(Equal(graphql.ErrKindDuplicate))
			Expect(graphql.IsDuplicateError(outer)).Should(BeTrue())
		})

		It("keeps an explicitly given kind", func() {
			inner := graphql.NewError("inner", graphql.ErrKindDuplicate)
			outer := newError("outer", inner, graphql.ErrKindArgument)
			Expect(outer.Kind).Should(Equal(graphql.ErrKindArgument))
		})

		It("inherits extensions when none are given", func() {
			inner := &errWithExtensions{
				extensions: graphql.ErrorExtensions{"code": "TAKEN"},
			}
			outer := newError("outer", inner)
			Expect(outer.Extensions).Should(Equal(graphql.ErrorExtensions{"code": "TAKEN"}))
		})
	})

	Describe("kind classification", func() {
		It("groups the load-time kinds under definition errors", func() {
			for _, kind := range []graphql.ErrKind{
				graphql.ErrKindDefinition,
				graphql.ErrKindArgument,
				graphql.ErrKindName,
				graphql.ErrKindDuplicate,
			} {
				Expect(graphql.IsDefinitionError(graphql.NewError("e", kind))).Should(BeTrue())
			}
			Expect(graphql.IsDefinitionError(graphql.NewError("e", graphql.ErrKindExecution))).
				Should(BeFalse())
			Expect(graphql.IsDefinitionError(errors.New("foreign"))).Should(BeFalse())
		})

		It("groups the request-time kinds under execution errors", func() {
			Expect(graphql.IsExecutionError(graphql.NewError("e", graphql.ErrKindExecution))).
				Should(BeTrue())
			Expect(graphql.IsExecutionError(graphql.NewError("e", graphql.ErrKindSyntax))).
				Should(BeTrue())
			Expect(graphql.IsExecutionError(graphql.NewError("e", graphql.ErrKindName))).
				Should(BeFalse())
		})

		It("classifies foreign errors as other", func() {
			Expect(graphql.KindOf(errors.New("foreign"))).Should(Equal(graphql.ErrKindOther))
		})
	})

	Describe("serialization", func() {
		It("serializes message and extensions", func() {
			e := newError("name taken", graphql.ErrorExtensions{"code": "TAKEN"})
			expectSerializationResult(e, `{"message": "name taken", "extensions": {"code": "TAKEN"}}`)
		})

		It("omits empty extensions", func() {
			expectSerializationResult(newError("plain"), `{"message": "plain"}`)
		})
	})
})
