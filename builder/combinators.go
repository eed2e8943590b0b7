// combinators.go — flat list-based constructors over the relation algebra.
//
// Every function here is total: degenerate inputs (no elements) yield the
// empty graph, never an error. All results are built exclusively through
// the four relation constructors, so the consistency invariant holds by
// construction.

package builder

import (
	"cmp"

	"github.com/katalvlaran/algraph/relation"
)

// Edge returns the graph with the single edge u→v (and both endpoints).
// Complexity: O(1)
func Edge[V cmp.Ordered](u, v V) relation.Relation[V] {
	return relation.Connect(relation.Vertex(u), relation.Vertex(v))
}

// Vertices returns the edgeless graph over the given vertices.
// Duplicates collapse; no vertices yields the empty graph.
// Complexity: O(k·n) for k inputs over a result of n vertices.
func Vertices[V cmp.Ordered](xs ...V) relation.Relation[V] {
	g := relation.Empty[V]()
	for _, x := range xs {
		g = relation.Overlay(g, relation.Vertex(x))
	}
	return g
}

// Edges returns the graph containing exactly the given edges and their
// endpoints. Duplicates collapse.
// Complexity: O(k·m) for k inputs over a result of m edges.
func Edges[V cmp.Ordered](pairs ...relation.Pair[V]) relation.Relation[V] {
	g := relation.Empty[V]()
	for _, p := range pairs {
		g = relation.Overlay(g, Edge(p.From, p.To))
	}
	return g
}

// Overlays folds Overlay over the given graphs, left to right.
// No arguments yield the empty graph.
// Complexity: O(k·(n+m)) for k inputs.
func Overlays[V cmp.Ordered](rs ...relation.Relation[V]) relation.Relation[V] {
	g := relation.Empty[V]()
	for _, r := range rs {
		g = relation.Overlay(g, r)
	}
	return g
}

// Connects folds Connect over the given graphs, left to right.
// No arguments yield the empty graph. Edge counts grow quadratically in the
// combined vertex counts.
// Complexity: O(n²) edges in the worst case.
func Connects[V cmp.Ordered](rs ...relation.Relation[V]) relation.Relation[V] {
	g := relation.Empty[V]()
	for _, r := range rs {
		g = relation.Connect(g, r)
	}
	return g
}
