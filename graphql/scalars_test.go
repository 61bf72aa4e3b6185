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
	"github.com/botobag/hermes/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Standard scalars", func() {
	Describe("Int", func() {
		It("coerces integral values", func() {
			Expect(graphql.Int().CoerceResult(42)).Should(Equal(42))
			Expect(graphql.Int().CoerceResult(int64(42))).Should(Equal(42))
			Expect(graphql.Int().CoerceResult(42.0)).Should(Equal(42))
			Expect(graphql.Int().CoerceResult("42")).Should(Equal(42))
			Expect(graphql.Int().CoerceResult(true)).Should(Equal(1))
		})

		It("rejects fractional values", func() {
			_, err := graphql.Int().CoerceResult(1.5)
			Expect(err).Should(HaveOccurred())
		})

		It("rejects values beyond 32-bit range", func() {
			_, err := graphql.Int().CoerceResult(int64(1) << 40)
			Expect(err).Should(HaveOccurred())
			_, err = graphql.Int().CoerceResult(int64(-1) << 40)
			Expect(err).Should(HaveOccurred())
		})

		It("rejects unsigned values beyond 32-bit range", func() {
			// A huge uint must fail rather than wrap through int64 into a
			// negative value that happens to fit.
			_, err := graphql.Int().CoerceResult(^uint(0) - 2147483647)
			Expect(err).Should(HaveOccurred())
			_, err = graphql.Int().CoerceResult(uint64(1) << 40)
			Expect(err).Should(HaveOccurred())
			_, err = graphql.Int().CoerceResult(uintptr(^uint(0) - 2147483647))
			Expect(err).Should(HaveOccurred())
			Expect(graphql.Int().CoerceResult(uint(42))).Should(Equal(42))
			Expect(graphql.Int().CoerceResult(uint64(42))).Should(Equal(42))
		})
	})

	Describe("Float", func() {
		It("coerces numeric values", func() {
			Expect(graphql.Float().CoerceResult(1.5)).Should(Equal(1.5))
			Expect(graphql.Float().CoerceResult(42)).Should(Equal(42.0))
			Expect(graphql.Float().CoerceResult("1.5")).Should(Equal(1.5))
			Expect(graphql.Float().CoerceResult(false)).Should(Equal(0.0))
		})

		It("rejects non numeric values", func() {
			_, err := graphql.Float().CoerceResult("not a number")
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("String", func() {
		It("coerces printable values", func() {
			Expect(graphql.String().CoerceResult("hello")).Should(Equal("hello"))
			Expect(graphql.String().CoerceResult(42)).Should(Equal("42"))
			Expect(graphql.String().CoerceResult(true)).Should(Equal("true"))
		})
	})

	Describe("Boolean", func() {
		It("coerces truthy numerics", func() {
			Expect(graphql.Boolean().CoerceResult(true)).Should(Equal(true))
			Expect(graphql.Boolean().CoerceResult(0)).Should(Equal(false))
			Expect(graphql.Boolean().CoerceResult(1.0)).Should(Equal(true))
		})

		It("rejects strings", func() {
			_, err := graphql.Boolean().CoerceResult("true")
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("ID", func() {
		It("serializes like a string", func() {
			Expect(graphql.ID().CoerceResult("user:1")).Should(Equal("user:1"))
			Expect(graphql.ID().CoerceResult(42)).Should(Equal("42"))
		})
	})

	It("lives in the base namespace", func() {
		for _, scalar := range graphql.StandardScalars() {
			Expect(scalar.Namespace()).Should(Equal(graphql.NamespaceBase))
		}
	})
})
