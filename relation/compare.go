// compare.go — the size-lexicographic total order over Relation values.
//
// Compare is the single source of truth for ordering; Equal is derived
// from it so the two can never diverge.

package relation

import (
	"cmp"
	"slices"
)

// Compare implements a total order over relations by lexicographic
// composition of four comparisons, in this exact sequence:
//
//  1. vertex-set cardinality,
//  2. vertex set, elementwise in ascending order,
//  3. edge-set cardinality,
//  4. edge set, pairwise in ascending order.
//
// The first non-equal comparison decides the result: negative if r < o,
// zero if r == o, positive if r > o.
//
// The order is compatible with the subgraph relation: whenever
// r.IsSubgraphOf(o), Compare(r, o) ≤ 0. In particular Empty precedes every
// graph, x precedes Overlay(x, y), and Overlay(x, y) precedes
// Connect(x, y).
// Complexity: O(n + m)
func (r Relation[V]) Compare(o Relation[V]) int {
	if c := cmp.Compare(len(r.domain), len(o.domain)); c != 0 {
		return c
	}
	if c := slices.Compare(r.domain, o.domain); c != 0 {
		return c
	}
	if c := cmp.Compare(len(r.rel), len(o.rel)); c != 0 {
		return c
	}
	return slices.CompareFunc(r.rel, o.rel, comparePair[V])
}

// Equal reports structural equality: equal vertex sets and equal edge sets.
// Equality is extensional, not graph isomorphism. Defined as Compare == 0.
// Complexity: O(n + m)
func (r Relation[V]) Equal(o Relation[V]) bool {
	return r.Compare(o) == 0
}

// IsSubgraphOf reports whether every vertex and every edge of r occurs
// in o.
// Complexity: O(n + m)
func (r Relation[V]) IsSubgraphOf(o Relation[V]) bool {
	return isSubset(r.domain, o.domain, compareVertex[V]) &&
		isSubset(r.rel, o.rel, comparePair[V])
}
