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

import (
	"math"
	"sort"
	"strings"
)

type suggestionListSorter struct {
	suggestions []string
	distances   []int
}

var _ sort.Interface = (*suggestionListSorter)(nil)

// Len implements sort.Interface.
func (s *suggestionListSorter) Len() int {
	return len(s.suggestions)
}

// Swap implements sort.Interface. Both slices move together so a suggestion stays
// paired with its distance throughout the sort.
func (s *suggestionListSorter) Swap(i, j int) {
	s.suggestions[i], s.suggestions[j] = s.suggestions[j], s.suggestions[i]
	s.distances[i], s.distances[j] = s.distances[j], s.distances[i]
}

// Less implements sort.Interface.
func (s *suggestionListSorter) Less(i, j int) bool {
	return s.distances[i] < s.distances[j]
}

// SuggestionList given an invalid input string and a list of valid options, returns a
// filtered list of valid options sorted based on their similarity with the input.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	var (
		suggestions []string
		distances   []int
	)
	inputThreshold := float64(len(input)) / 2.0
	for _, option := range options {
		distance := lexicalDistance(input, option)
		threshold := math.Max(math.Max(inputThreshold, float64(len(option))/2.0), 1)
		if float64(distance) <= threshold {
			suggestions = append(suggestions, option)
			distances = append(distances, distance)
		}
	}

	// Sort options by their distance; keep declaration order among equally distant ones.
	sort.Stable(&suggestionListSorter{suggestions, distances})
	return suggestions
}

// lexicalDistance computes the Damerau-Levenshtein distance between two strings: the
// minimum number of single-character insertions, deletions, substitutions or adjacent
// swaps needed to transform one into the other. Any pure case change counts as a single
// edit, which helps identify mis-cased values.
func lexicalDistance(aStr string, bStr string) int {
	if aStr == bStr {
		return 0
	}

	a := strings.ToLower(aStr)
	b := strings.ToLower(bStr)
	if a == b {
		// Case change only
		return 1
	}

	aLength := len(a)
	bLength := len(b)
	d := make([][]int, aLength+1)
	for i := 0; i <= aLength; i++ {
		d[i] = make([]int, bLength+1)
		d[i][0] = i
	}
	for j := 1; j <= bLength; j++ {
		d[0][j] = j
	}

	for i := 1; i <= aLength; i++ {
		for j := 1; j <= bLength; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			min := d[i-1][j] + 1
			if y := d[i][j-1] + 1; y < min {
				min = y
			}
			if z := d[i-1][j-1] + cost; z < min {
				min = z
			}

			// Account adjacent swap.
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if swap := d[i-2][j-2] + cost; swap < min {
					min = swap
				}
			}

			d[i][j] = min
		}
	}

	return d[aLength][bLength]
}
