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

package lazy_test

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/botobag/hermes/graphql"
	"github.com/botobag/hermes/lazy"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// Catalog stands in for an expensive dependency in the tests below.
type Catalog struct {
	Title   string
	Entries map[string]string
}

func (c *Catalog) Lookup(name string) (string, error) {
	entry, ok := c.Entries[name]
	if !ok {
		return "", errors.New("no such entry")
	}
	return entry, nil
}

func (c *Catalog) Size() int {
	return len(c.Entries)
}

func (c *Catalog) Pair() (string, int) {
	return c.Title, len(c.Entries)
}

var _ = Describe("Proxy", func() {
	It("defers the factory until first use", func() {
		var calls int32
		proxy := lazy.New(func() (interface{}, error) {
			atomic.AddInt32(&calls, 1)
			return "value", nil
		})
		Expect(atomic.LoadInt32(&calls)).Should(BeZero())

		value, err := proxy.Resolve()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("value"))
		Expect(atomic.LoadInt32(&calls)).Should(Equal(int32(1)))
	})

	It("accepts a bare function source", func() {
		proxy := lazy.New(func() interface{} { return 42 })
		Expect(proxy.Resolve()).Should(Equal(42))
	})

	It("accepts a plain value source", func() {
		proxy := lazy.New("already here")
		Expect(proxy.Resolve()).Should(Equal("already here"))
	})

	It("invokes the factory once across repeated resolutions", func() {
		var calls int32
		proxy := lazy.New(func() (interface{}, error) {
			atomic.AddInt32(&calls, 1)
			return "value", nil
		})

		for i := 0; i < 5; i++ {
			value, err := proxy.Resolve()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal("value"))
		}
		Expect(atomic.LoadInt32(&calls)).Should(Equal(int32(1)))
	})

	It("invokes the factory every time with NoCache", func() {
		var calls int32
		proxy := lazy.New(func() (interface{}, error) {
			return atomic.AddInt32(&calls, 1), nil
		}, lazy.NoCache())

		for i := int32(1); i <= 5; i++ {
			value, err := proxy.Resolve()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(i))
		}
	})

	It("does not cache a factory error and retries on the next resolution", func() {
		var calls int32
		proxy := lazy.New(func() (interface{}, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, errors.New("first attempt fails")
			}
			return "value", nil
		})

		_, err := proxy.Resolve()
		Expect(err).Should(MatchError("first attempt fails"))

		value, err := proxy.Resolve()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("value"))
		Expect(atomic.LoadInt32(&calls)).Should(Equal(int32(2)))
	})

	It("runs the factory once under concurrent first access", func() {
		var calls int32
		proxy := lazy.New(func() (interface{}, error) {
			atomic.AddInt32(&calls, 1)
			return "value", nil
		})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				value, err := proxy.Resolve()
				Expect(err).ShouldNot(HaveOccurred())
				Expect(value).Should(Equal("value"))
			}()
		}
		wg.Wait()
		Expect(atomic.LoadInt32(&calls)).Should(Equal(int32(1)))
	})

	Describe("Unwrap", func() {
		It("returns the materialized value", func() {
			proxy := lazy.New(func() (interface{}, error) {
				return 42, nil
			})
			Expect(proxy.Unwrap()).Should(Equal(42))
		})

		It("panics on a factory error", func() {
			proxy := lazy.New(func() (interface{}, error) {
				return nil, errors.New("boom")
			})
			Expect(func() { proxy.Unwrap() }).Should(Panic())
		})
	})

	Describe("attribute projection", func() {
		newCatalog := func() (interface{}, error) {
			return &Catalog{
				Title: "main",
				Entries: map[string]string{
					"sku-1": "Widget",
				},
			}, nil
		}

		It("projects a struct field", func() {
			proxy := lazy.New(newCatalog, lazy.WithAttribute("Title"))
			Expect(proxy.Resolve()).Should(Equal("main"))
		})

		It("projects a niladic method", func() {
			proxy := lazy.New(newCatalog, lazy.WithAttribute("Size"))
			Expect(proxy.Resolve()).Should(Equal(1))
		})

		It("projects a dotted path through maps", func() {
			proxy := lazy.New(newCatalog, lazy.WithAttribute("Entries.sku-1"))
			Expect(proxy.Resolve()).Should(Equal("Widget"))
		})

		It("fails with a name error on an unknown attribute", func() {
			proxy := lazy.New(newCatalog, lazy.WithAttribute("Titel"))
			_, err := proxy.Resolve()
			Expect(err).Should(HaveOccurred())
			Expect(graphql.IsNameError(err)).Should(BeTrue())
		})
	})

	Describe("Forward", func() {
		newProxy := func() *lazy.Proxy {
			return lazy.New(func() (interface{}, error) {
				return &Catalog{
					Title: "main",
					Entries: map[string]string{
						"sku-1": "Widget",
					},
				}, nil
			})
		}

		It("invokes a method on the materialized value", func() {
			result, err := newProxy().Forward("Size")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal(1))
		})

		It("passes arguments through", func() {
			result, err := newProxy().Forward("Lookup", "sku-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal("Widget"))
		})

		It("splits off a trailing error return", func() {
			_, err := newProxy().Forward("Lookup", "sku-2")
			Expect(err).Should(MatchError("no such entry"))
		})

		It("returns multiple results as a slice", func() {
			result, err := newProxy().Forward("Pair")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(result).Should(Equal([]interface{}{"main", 1}))
		})

		It("fails with a name error for a missing method", func() {
			_, err := newProxy().Forward("Lookdown", "sku-1")
			Expect(err).Should(HaveOccurred())
			Expect(graphql.IsNameError(err)).Should(BeTrue())
		})

		It("fails with an argument error on wrong arity", func() {
			_, err := newProxy().Forward("Lookup")
			Expect(err).Should(HaveOccurred())
			Expect(graphql.IsArgumentError(err)).Should(BeTrue())
		})

		It("fails with an argument error on an unassignable argument", func() {
			_, err := newProxy().Forward("Lookup", struct{}{})
			Expect(err).Should(HaveOccurred())
			Expect(graphql.IsArgumentError(err)).Should(BeTrue())
		})
	})
})
