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

package util

// OrList transforms a string array like ["A", "B", "C"] into `A, B, or C` and writes to
// out. If quoted is true, each item is wrapped in double quotes. If a positive integer
// is provided in limit, only up to that number of items is written.
func OrList(out StringWriter, items []string, limit int, quoted bool) {
	numItems := len(items)
	if numItems == 0 {
		return
	}
	if limit > 0 && numItems > limit {
		items = items[:limit]
		numItems = limit
	}

	writeItem := func(item string) {
		if quoted {
			out.WriteString(`"`)
			out.WriteString(item)
			out.WriteString(`"`)
		} else {
			out.WriteString(item)
		}
	}

	writeItem(items[0])
	for i := 1; i < numItems; i++ {
		if numItems > 2 {
			out.WriteString(", ")
		} else {
			out.WriteString(" ")
		}
		if i == numItems-1 {
			out.WriteString("or ")
		}
		writeItem(items[i])
	}
}
