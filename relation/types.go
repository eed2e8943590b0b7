// Package relation defines the Pair and Relation types that underpin the
// algebraic graph representation, together with the internal sorted-set
// storage contract they rely on.
//
// A Relation is a pure immutable value: once constructed it is never
// mutated, so values may be shared freely across goroutines without
// synchronization.
package relation

import "cmp"

// Pair is an ordered pair of vertices: the directed edge From→To.
// Self-loops (From == To) are valid pairs.
type Pair[V cmp.Ordered] struct {
	// From is the source vertex.
	From V

	// To is the target vertex.
	To V
}

// Compare orders pairs lexicographically: first by From, then by To.
// Returns a negative value if p < q, zero if equal, positive if p > q.
// Complexity: O(1)
func (p Pair[V]) Compare(q Pair[V]) int {
	if c := cmp.Compare(p.From, q.From); c != 0 {
		return c
	}
	return cmp.Compare(p.To, q.To)
}

// Relation is a directed graph represented as a pair of finite sets:
// a vertex domain and a binary edge relation over it.
//
// Both sets are stored as ascending, duplicate-free slices and are never
// mutated after construction; every combinator allocates fresh storage.
// The zero value is the empty graph and is ready to use.
//
// Consistency invariant: every vertex appearing in either position of any
// pair in rel is also present in domain. The four constructors (Empty,
// Vertex, Overlay, Connect) preserve this invariant for any composition,
// so IsConsistent holds for every value reachable through the public API.
type Relation[V cmp.Ordered] struct {
	domain []V       // vertex set: ascending, duplicate-free
	rel    []Pair[V] // edge set: ascending, duplicate-free, endpoints ⊆ domain
}
