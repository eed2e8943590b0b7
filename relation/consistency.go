// consistency.go — the diagnostic consistency predicate.
//
// The four constructors keep every reachable Relation consistent, so
// IsConsistent returning false indicates a construction bug (for instance
// a caller hand-assembling a Relation through unsafe means), not a normal
// runtime condition. It exists for randomized test harnesses and debug
// assertions.

package relation

import (
	"cmp"
	"slices"
)

// ReferredVertices returns the set of all vertices appearing in either
// position of any pair in pairs, in ascending order. The input need not be
// sorted.
// Complexity: O(m log m) where m = len(pairs).
func ReferredVertices[V cmp.Ordered](pairs []Pair[V]) []V {
	out := make([]V, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p.From, p.To)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// IsConsistent reports whether every vertex referred to by the edge set of
// r is present in its vertex set. True for every value built through the
// four constructors.
// Complexity: O(n + m log m)
func IsConsistent[V cmp.Ordered](r Relation[V]) bool {
	return isSubset(ReferredVertices(r.rel), r.domain, compareVertex[V])
}
