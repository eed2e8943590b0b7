// set.go — sorted-slice set primitives shared by the Relation combinators.
//
// Every set in this package is an ascending, duplicate-free slice. The
// helpers below implement union, subset test, difference, and membership
// as linear merges over two such slices, producing fresh output and never
// aliasing their inputs.

package relation

import (
	"cmp"
	"slices"
)

// mergeSorted returns the ascending, duplicate-free union of two ascending,
// duplicate-free slices. The result is freshly allocated.
// Complexity: O(len(a) + len(b))
func mergeSorted[E any](a, b []E, compare func(E, E) int) []E {
	out := make([]E, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := compare(a[i], b[j]); {
		case c < 0:
			out = append(out, a[i])
			i++
		case c > 0:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// isSubset reports whether every element of sub occurs in super.
// Both slices must be ascending and duplicate-free.
// Complexity: O(len(sub) + len(super))
func isSubset[E any](sub, super []E, compare func(E, E) int) bool {
	j := 0
	for i := 0; i < len(sub); i++ {
		for j < len(super) && compare(super[j], sub[i]) < 0 {
			j++
		}
		if j == len(super) || compare(super[j], sub[i]) != 0 {
			return false
		}
		j++
	}
	return true
}

// diffSorted returns the elements of a not present in b, ascending.
// Both slices must be ascending and duplicate-free.
// Complexity: O(len(a) + len(b))
func diffSorted[E any](a, b []E, compare func(E, E) int) []E {
	out := make([]E, 0, len(a))
	j := 0
	for i := 0; i < len(a); i++ {
		for j < len(b) && compare(b[j], a[i]) < 0 {
			j++
		}
		if j < len(b) && compare(b[j], a[i]) == 0 {
			continue
		}
		out = append(out, a[i])
	}
	return out
}

// containsSorted reports whether x occurs in the ascending slice s.
// Complexity: O(log len(s))
func containsSorted[E any](s []E, x E, compare func(E, E) int) bool {
	_, found := slices.BinarySearchFunc(s, x, compare)
	return found
}

// compareVertex adapts cmp.Compare to the two-argument shape the generic
// set helpers expect.
func compareVertex[V cmp.Ordered](a, b V) int { return cmp.Compare(a, b) }

// comparePair is the pair counterpart of compareVertex.
func comparePair[V cmp.Ordered](a, b Pair[V]) int { return a.Compare(b) }
