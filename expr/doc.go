// Package expr provides a deep embedding of algebraic graph expressions.
//
// What
//
//   - Graph[V]: an immutable expression tree with four node kinds mirroring
//     the four relation constructors (Empty, Vertex, Overlay, Connect).
//   - Fold: the structural catamorphism — supply one handler per node kind
//     and collapse the tree into any result type.
//   - ToRelation: interpret an expression into relation.Relation, the
//     canonical evaluated form.
//   - Size, IsEmpty, String: cheap structural queries and rendering.
//
// Why
//
//	Building a relation eagerly evaluates every Connect, which can be
//	quadratic. An expression tree is O(1) per node to build and shares
//	subtrees, so large graphs can be described compactly and evaluated
//	once, at the end, or interpreted into something else entirely (counts,
//	renderings, other graph representations) without materializing edges.
//
// Semantics
//
//	The denotation of an expression is exactly the relation its fold
//	produces, so all relation laws carry over: Overlay(a, b) and
//	Overlay(b, a) are different trees but denote equal graphs. Use
//	ToRelation(...).Equal to compare denotations; tree identity is not
//	graph equality. A nil *Graph denotes the empty graph.
//
// Usage
//
//	g := expr.Connect(
//	    expr.Connect(expr.Vertex(1), expr.Vertex(2)),
//	    expr.Vertex(3),
//	)
//	r := expr.ToRelation(g)
//	fmt.Println(r) // edges [(1,2),(1,3),(2,3)]
//
//	// count vertices without building the relation
//	leaves := g.Size()
//	_ = leaves
//
// Complexity
//
//   - Constructors: O(1) per node.
//   - Fold/Size/IsEmpty: O(t) in tree size.
//   - ToRelation: cost of the underlying relation combinators.
package expr
