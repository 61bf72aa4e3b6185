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
	"strings"

	"github.com/botobag/hermes/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SchemaRegistry", func() {
	var registry *graphql.SchemaRegistry

	newSchema := func(ns graphql.Namespace) *graphql.SchemaDefinition {
		return graphql.MustNewSchemaDefinition(&graphql.SchemaConfig{
			Namespace: ns,
			Query: []graphql.Field{
				{Name: "node", Type: "ID"},
			},
		})
	}

	BeforeEach(func() {
		registry = graphql.NewSchemaRegistry()
	})

	It("seeds its catalog with the standard scalars and directives", func() {
		catalog := registry.Catalog()
		Expect(catalog.Fetch("Int", graphql.KindScalar)).Should(Equal(graphql.Int()))
		Expect(catalog.Fetch("String", graphql.KindScalar)).Should(Equal(graphql.String()))
		Expect(catalog.Fetch("deprecated", graphql.KindDirective)).
			Should(Equal(graphql.DeprecatedDirective()))
	})

	It("declares and organizes a schema into its namespace", func() {
		schema := newSchema("store")
		Expect(registry.Declare(schema)).Should(Succeed())
		Expect(schema.Registered()).Should(BeFalse())

		Expect(registry.Organize()).Should(Succeed())
		Expect(schema.Registered()).Should(BeTrue())
		Expect(registry.Find("store")).Should(BeIdenticalTo(schema))
	})

	It("rejects declaring a nil schema", func() {
		err := registry.Declare(nil)
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsArgumentError(err)).Should(BeTrue())
	})

	It("treats repeated declarations of the same schema as a no-op", func() {
		schema := newSchema("store")
		Expect(registry.Declare(schema)).Should(Succeed())
		Expect(registry.Declare(schema)).Should(Succeed())
		Expect(registry.Organize()).Should(Succeed())

		// Declaring after organization is also a no-op.
		Expect(registry.Declare(schema)).Should(Succeed())
		Expect(registry.Organize()).Should(Succeed())
		Expect(registry.Find("store")).Should(BeIdenticalTo(schema))
	})

	It("is idempotent with nothing pending", func() {
		Expect(registry.Organize()).Should(Succeed())
		Expect(registry.Organize()).Should(Succeed())
	})

	It("organizes schemas in declaration order regardless of namespace", func() {
		store := newSchema("store")
		inventory := newSchema("inventory")
		billing := newSchema("billing")
		Expect(registry.Declare(inventory)).Should(Succeed())
		Expect(registry.Declare(store)).Should(Succeed())
		Expect(registry.Declare(billing)).Should(Succeed())

		Expect(registry.Organize()).Should(Succeed())
		Expect(registry.Find("store")).Should(BeIdenticalTo(store))
		Expect(registry.Find("inventory")).Should(BeIdenticalTo(inventory))
		Expect(registry.Find("billing")).Should(BeIdenticalTo(billing))
	})

	Describe("namespace exclusivity", func() {
		It("fails when a second schema claims an owned namespace", func() {
			first := newSchema("store")
			second := newSchema("store")
			Expect(registry.Declare(first)).Should(Succeed())
			Expect(registry.Declare(second)).Should(Succeed())

			err := registry.Organize()
			Expect(err).Should(HaveOccurred())
			Expect(graphql.IsArgumentError(err)).Should(BeTrue())
			Expect(err.Error()).Should(ContainSubstring(`namespace "store"`))
			Expect(err.Error()).Should(ContainSubstring("registry_test.go"))

			// The winner keeps the namespace; the loser stays unregistered.
			Expect(registry.Find("store")).Should(BeIdenticalTo(first))
			Expect(second.Registered()).Should(BeFalse())
		})

		It("commits earlier namespaces even when a later declaration conflicts", func() {
			store := newSchema("store")
			billing := newSchema("billing")
			rival := newSchema("store")
			Expect(registry.Declare(store)).Should(Succeed())
			Expect(registry.Declare(billing)).Should(Succeed())
			Expect(registry.Declare(rival)).Should(Succeed())

			err := registry.Organize()
			Expect(err).Should(HaveOccurred())
			Expect(strings.Count(err.Error(), `namespace "store"`)).Should(Equal(1))

			// Everything ahead of the conflict committed; only the rival is held back.
			Expect(registry.Find("store")).Should(BeIdenticalTo(store))
			Expect(registry.Find("billing")).Should(BeIdenticalTo(billing))
			Expect(rival.Registered()).Should(BeFalse())

			// The error resurfaces unchanged on the next pass.
			err = registry.Organize()
			Expect(err).Should(HaveOccurred())
			Expect(strings.Count(err.Error(), `namespace "store"`)).Should(Equal(1))
		})

		It("holds back declarations queued behind a conflict until it is cleared", func() {
			rival := newSchema("store")
			store := newSchema("store")
			billing := newSchema("billing")
			Expect(registry.Declare(rival)).Should(Succeed())
			Expect(registry.Declare(store)).Should(Succeed())
			Expect(registry.Declare(billing)).Should(Succeed())

			err := registry.Organize()
			Expect(err).Should(HaveOccurred())
			Expect(strings.Count(err.Error(), `namespace "store"`)).Should(Equal(1))

			// The conflict at the head of the queue blocks everything behind it.
			Expect(registry.Find("store")).Should(BeIdenticalTo(rival))
			Expect(registry.Find("billing")).Should(BeNil())

			// Clearing the conflict with a reset lets the held-back schema through.
			registry.Reset()
			Expect(registry.Declare(billing)).Should(Succeed())
			Expect(registry.Organize()).Should(Succeed())
			Expect(registry.Find("billing")).Should(BeIdenticalTo(billing))
		})

		It("keeps the conflicting entry queued so the error resurfaces", func() {
			first := newSchema("store")
			second := newSchema("store")
			Expect(registry.Declare(first)).Should(Succeed())
			Expect(registry.Declare(second)).Should(Succeed())

			Expect(registry.Organize()).Should(HaveOccurred())
			Expect(registry.Organize()).Should(HaveOccurred())
		})
	})

	Describe("Find", func() {
		It("organizes pending declarations before looking up", func() {
			schema := newSchema("store")
			Expect(registry.Declare(schema)).Should(Succeed())
			Expect(registry.Find("store")).Should(BeIdenticalTo(schema))
			Expect(schema.Registered()).Should(BeTrue())
		})

		It("returns nil for an unknown namespace", func() {
			Expect(registry.Find("store")).Should(BeNil())
		})

		It("defaults to the base namespace", func() {
			schema := newSchema(graphql.NamespaceBase)
			Expect(registry.Declare(schema)).Should(Succeed())
			Expect(registry.Find("")).Should(BeIdenticalTo(schema))
		})
	})

	Describe("Resolve", func() {
		It("fails with a name error suggesting known namespaces", func() {
			Expect(registry.Declare(newSchema("store"))).Should(Succeed())

			_, err := registry.Resolve("stor")
			Expect(err).Should(HaveOccurred())
			Expect(graphql.IsNameError(err)).Should(BeTrue())
			Expect(err.Error()).Should(ContainSubstring(`Did you mean "store"?`))
		})

		It("returns the owning schema", func() {
			schema := newSchema("store")
			Expect(registry.Declare(schema)).Should(Succeed())

			resolved, err := registry.Resolve("store")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved).Should(BeIdenticalTo(schema))
		})
	})

	Describe("Reset", func() {
		It("forgets schemas and reseeds the catalog", func() {
			schema := newSchema("store")
			Expect(registry.Declare(schema)).Should(Succeed())
			Expect(registry.Organize()).Should(Succeed())

			registry.Reset()
			Expect(registry.Find("store")).Should(BeNil())
			Expect(registry.Catalog().Fetch("Int", graphql.KindScalar)).Should(Equal(graphql.Int()))

			// The same namespace is claimable again after a reset.
			Expect(registry.Declare(newSchema("store"))).Should(Succeed())
			Expect(registry.Organize()).Should(Succeed())
		})
	})

	Describe("FinishLoad", func() {
		It("organizes remaining declarations and freezes the catalog", func() {
			schema := newSchema("store")
			Expect(registry.Declare(schema)).Should(Succeed())

			Expect(registry.FinishLoad()).Should(Succeed())
			Expect(schema.Registered()).Should(BeTrue())

			product := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:      "Product",
				Namespace: "store",
			})
			err := registry.Catalog().Register(product)
			Expect(err).Should(HaveOccurred())
			Expect(graphql.IsDefinitionError(err)).Should(BeTrue())
		})
	})

	It("serves type lookups through an organized schema", func() {
		schema := newSchema("store")
		Expect(registry.Declare(schema)).Should(Succeed())
		Expect(registry.Organize()).Should(Succeed())

		product := graphql.MustNewObject(&graphql.ObjectConfig{
			Name:      "Product",
			Namespace: "store",
			Fields: []graphql.Field{
				{Name: "sku", Type: "String"},
			},
		})
		Expect(registry.Catalog().Register(product)).Should(Succeed())

		// Own namespace first, then the base namespace through the fallback chain.
		Expect(schema.FindType("Product", graphql.KindObject)).Should(Equal(product))
		Expect(schema.FindType("Int", graphql.KindScalar)).Should(Equal(graphql.Int()))

		_, err := schema.ResolveType("Produkt", graphql.KindObject)
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsNameError(err)).Should(BeTrue())
	})
})
