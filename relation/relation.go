// relation.go — the four algebraic constructors and the read-only queries.
//
// Empty, Vertex, Overlay and Connect form a closed algebra: any composition
// of them yields a Relation satisfying the consistency invariant, so
// construction is total and has no error path.

package relation

import "cmp"

// Empty returns the graph with no vertices and no edges.
// It is the identity of both Overlay and Connect.
// Complexity: O(1)
func Empty[V cmp.Ordered]() Relation[V] {
	return Relation[V]{}
}

// Vertex returns the graph containing the single vertex x and no edges.
// Complexity: O(1)
func Vertex[V cmp.Ordered](x V) Relation[V] {
	return Relation[V]{domain: []V{x}}
}

// Overlay returns the union of two graphs: the union of their vertex sets
// and the union of their edge sets. No new edges are introduced.
//
// Overlay is commutative, associative and idempotent, with Empty as its
// identity.
// Complexity: O(n + m) where n and m are the combined vertex and edge counts.
func Overlay[V cmp.Ordered](x, y Relation[V]) Relation[V] {
	return Relation[V]{
		domain: mergeSorted(x.domain, y.domain, compareVertex[V]),
		rel:    mergeSorted(x.rel, y.rel, comparePair[V]),
	}
}

// Connect returns the union of two graphs plus an edge from every vertex of
// x to every vertex of y (the cartesian product of the two domains).
//
// Connect is associative, has Empty as a two-sided identity, and distributes
// over Overlay from both sides. The cartesian product term makes the edge
// count of the result quadratic in the combined vertex counts; that is a
// property of the algebra, not an implementation artifact.
// Complexity: O(n(x)·n(y) + m) where m is the combined edge count.
func Connect[V cmp.Ordered](x, y Relation[V]) Relation[V] {
	// The product is emitted in ascending order already: the outer loop
	// walks x.domain ascending and the inner loop y.domain ascending.
	product := make([]Pair[V], 0, len(x.domain)*len(y.domain))
	for _, u := range x.domain {
		for _, v := range y.domain {
			product = append(product, Pair[V]{From: u, To: v})
		}
	}
	return Relation[V]{
		domain: mergeSorted(x.domain, y.domain, compareVertex[V]),
		rel: mergeSorted(
			mergeSorted(x.rel, y.rel, comparePair[V]),
			product,
			comparePair[V],
		),
	}
}

// Domain returns the vertex set in ascending order.
// The returned slice is a fresh copy; mutating it does not affect r.
// Complexity: O(n)
func (r Relation[V]) Domain() []V {
	out := make([]V, len(r.domain))
	copy(out, r.domain)
	return out
}

// Pairs returns the edge set in ascending pair order.
// The returned slice is a fresh copy; mutating it does not affect r.
// Complexity: O(m)
func (r Relation[V]) Pairs() []Pair[V] {
	out := make([]Pair[V], len(r.rel))
	copy(out, r.rel)
	return out
}

// NumVertices returns |domain|.
// Complexity: O(1)
func (r Relation[V]) NumVertices() int { return len(r.domain) }

// NumEdges returns |relation|.
// Complexity: O(1)
func (r Relation[V]) NumEdges() int { return len(r.rel) }

// IsEmpty reports whether r is the empty graph.
// Complexity: O(1)
func (r Relation[V]) IsEmpty() bool { return len(r.domain) == 0 }

// HasVertex reports whether x is in the vertex set.
// Complexity: O(log n)
func (r Relation[V]) HasVertex(x V) bool {
	return containsSorted(r.domain, x, compareVertex[V])
}

// HasEdge reports whether the edge u→v is in the edge set.
// Complexity: O(log m)
func (r Relation[V]) HasEdge(u, v V) bool {
	return containsSorted(r.rel, Pair[V]{From: u, To: v}, comparePair[V])
}
