// Package expr provides a deep embedding of graph expressions: a tree with
// one node kind per algebraic constructor, folded into the relation
// representation (or any other interpretation) on demand.
package expr

import (
	"cmp"

	"github.com/katalvlaran/algraph/relation"
)

// kind discriminates the four expression node shapes.
type kind uint8

const (
	kindEmpty kind = iota
	kindVertex
	kindOverlay
	kindConnect
)

// Graph is an unevaluated graph expression over vertices of type V.
//
// A *Graph is immutable after construction and shares subtrees freely:
// Overlay(g, g) references g twice rather than copying it, so an expression
// can denote a graph exponentially larger than the tree itself. A nil
// *Graph denotes the empty graph.
type Graph[V cmp.Ordered] struct {
	kind        kind
	label       V         // set when kind == kindVertex
	left, right *Graph[V] // set when kind is kindOverlay or kindConnect
}

// Empty returns the empty-graph expression.
// Complexity: O(1)
func Empty[V cmp.Ordered]() *Graph[V] {
	return &Graph[V]{kind: kindEmpty}
}

// Vertex returns the single-vertex expression for x.
// Complexity: O(1)
func Vertex[V cmp.Ordered](x V) *Graph[V] {
	return &Graph[V]{kind: kindVertex, label: x}
}

// Overlay returns the expression overlaying l and r. Subtrees are shared,
// not copied.
// Complexity: O(1)
func Overlay[V cmp.Ordered](l, r *Graph[V]) *Graph[V] {
	return &Graph[V]{kind: kindOverlay, left: l, right: r}
}

// Connect returns the expression connecting l to r. Subtrees are shared,
// not copied.
// Complexity: O(1)
func Connect[V cmp.Ordered](l, r *Graph[V]) *Graph[V] {
	return &Graph[V]{kind: kindConnect, left: l, right: r}
}

// Fold is the structural catamorphism over an expression tree: empty
// replaces empty nodes, vertex maps leaves, overlay and connect combine the
// folded children. A nil tree folds to empty.
// Complexity: O(t) applications, where t is the tree size.
func Fold[V cmp.Ordered, R any](
	g *Graph[V],
	empty R,
	vertex func(V) R,
	overlay func(R, R) R,
	connect func(R, R) R,
) R {
	if g == nil {
		return empty
	}
	switch g.kind {
	case kindVertex:
		return vertex(g.label)
	case kindOverlay:
		return overlay(
			Fold(g.left, empty, vertex, overlay, connect),
			Fold(g.right, empty, vertex, overlay, connect),
		)
	case kindConnect:
		return connect(
			Fold(g.left, empty, vertex, overlay, connect),
			Fold(g.right, empty, vertex, overlay, connect),
		)
	default:
		return empty
	}
}

// ToRelation interprets the expression into the relation representation by
// folding each node kind into the matching relation constructor.
// Complexity: dominated by the relation combinators; Connect nodes over
// large vertex sets are inherently quadratic.
func ToRelation[V cmp.Ordered](g *Graph[V]) relation.Relation[V] {
	return Fold(g,
		relation.Empty[V](),
		relation.Vertex[V],
		relation.Overlay[V],
		relation.Connect[V],
	)
}

// Size returns the number of leaves (empty and vertex nodes) in the
// expression tree. Shared subtrees are counted once per reference.
// Complexity: O(t)
func (g *Graph[V]) Size() int {
	return Fold(g, 1,
		func(V) int { return 1 },
		func(a, b int) int { return a + b },
		func(a, b int) int { return a + b },
	)
}

// IsEmpty reports whether the expression denotes the empty graph, without
// materializing the relation.
// Complexity: O(t)
func (g *Graph[V]) IsEmpty() bool {
	return Fold(g, true,
		func(V) bool { return false },
		func(a, b bool) bool { return a && b },
		func(a, b bool) bool { return a && b },
	)
}

// String renders the denoted graph in the canonical relation form, so equal
// graphs print identically whether held as expressions or relations.
func (g *Graph[V]) String() string {
	return ToRelation(g).String()
}
