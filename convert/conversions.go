// conversions.go — two-way adapters between the relation representation
// and flat adjacency-map / edge-list forms.
//
// Imports never hand-assemble a Relation: every value is produced through
// the public constructors, so the consistency invariant holds for any
// input, including adjacency maps mentioning vertices absent from the key
// set.

package convert

import (
	"cmp"

	"github.com/katalvlaran/algraph/builder"
	"github.com/katalvlaran/algraph/relation"
)

// ToAdjacencyMap exports r as a map from every domain vertex to its
// ascending successor list. Isolated vertices map to empty (non-nil)
// slices, so the key set always equals the domain.
// Complexity: O(n + m)
func ToAdjacencyMap[V cmp.Ordered](r relation.Relation[V]) map[V][]V {
	adj := make(map[V][]V, r.NumVertices())
	for _, v := range r.Domain() {
		adj[v] = []V{}
	}
	// Pairs are ascending by (From, To), so successor lists come out sorted.
	for _, p := range r.Pairs() {
		adj[p.From] = append(adj[p.From], p.To)
	}
	return adj
}

// FromAdjacencyMap imports an adjacency map as the overlay of one star per
// key: the key vertex connected to its successors. Vertices that occur
// only in successor lists are added to the domain by Connect, so the
// result is consistent even for ragged input.
// Complexity: O(n + m) stars, each O(k log k) in its own size.
func FromAdjacencyMap[V cmp.Ordered](adj map[V][]V) relation.Relation[V] {
	g := relation.Empty[V]()
	for u, succs := range adj {
		g = relation.Overlay(g, builder.Star(u, succs...))
	}
	return g
}

// ToEdgeList exports the edge set of r in ascending pair order. Isolated
// vertices are not represented; pair ToEdgeList with r.Domain() when the
// full structure matters.
// Complexity: O(m)
func ToEdgeList[V cmp.Ordered](r relation.Relation[V]) []relation.Pair[V] {
	return r.Pairs()
}

// FromEdgeList imports a vertex list and an edge list as one graph: the
// overlay of the edgeless graph over vs and the graph of pairs. Endpoints
// missing from vs are added by construction.
// Complexity: O(k·(n+m)) for k inputs.
func FromEdgeList[V cmp.Ordered](vs []V, pairs []relation.Pair[V]) relation.Relation[V] {
	return relation.Overlay(builder.Vertices(vs...), builder.Edges(pairs...))
}
