// shapes.go — standard graph topologies expressed over the algebra.
//
// Contract (shared by every constructor in this file):
//   - Total: degenerate inputs produce Empty or a single Vertex, never an
//     error and never a panic.
//   - Deterministic: vertex and edge emission order follows the input order.
//   - Built only through the four relation constructors, so consistency
//     holds by construction.

package builder

import (
	"cmp"

	"github.com/katalvlaran/algraph/relation"
)

// Path returns the directed path x₀→x₁→…→xₖ.
// One vertex yields Vertex(x), none yields Empty.
// Complexity: O(k²) from repeated overlay of k edges.
func Path[V cmp.Ordered](xs ...V) relation.Relation[V] {
	if len(xs) == 0 {
		return relation.Empty[V]()
	}
	if len(xs) == 1 {
		return relation.Vertex(xs[0])
	}
	g := relation.Empty[V]()
	for i := 1; i < len(xs); i++ {
		g = relation.Overlay(g, Edge(xs[i-1], xs[i]))
	}
	return g
}

// Circuit returns the directed cycle x₀→x₁→…→xₖ→x₀.
// One vertex yields a self-loop, none yields Empty.
// Complexity: O(k²) from repeated overlay of k+1 edges.
func Circuit[V cmp.Ordered](xs ...V) relation.Relation[V] {
	if len(xs) == 0 {
		return relation.Empty[V]()
	}
	return relation.Overlay(Path(xs...), Edge(xs[len(xs)-1], xs[0]))
}

// Clique returns the graph with an edge from every earlier input vertex to
// every later one: Connects over single vertices. Edge count is quadratic
// in the number of distinct vertices — inherent to the algebra.
// Complexity: O(k²)
func Clique[V cmp.Ordered](xs ...V) relation.Relation[V] {
	g := relation.Empty[V]()
	for _, x := range xs {
		g = relation.Connect(g, relation.Vertex(x))
	}
	return g
}

// Star returns the graph with an edge from center to every leaf.
// No leaves yields Vertex(center).
// Complexity: O(k log k) over k leaves.
func Star[V cmp.Ordered](center V, leaves ...V) relation.Relation[V] {
	return relation.Connect(relation.Vertex(center), Vertices(leaves...))
}

// Biclique returns the complete bipartite graph with an edge from every
// vertex of xs to every vertex of ys (self-loops arise when the two sides
// intersect, as with any Connect).
// Complexity: O(|xs|·|ys|) edges.
func Biclique[V cmp.Ordered](xs, ys []V) relation.Relation[V] {
	return relation.Connect(Vertices(xs...), Vertices(ys...))
}
