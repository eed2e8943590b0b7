// Package builder provides convenience constructors for common graph
// shapes over the relation algebra.
//
// What
//
//   - Flat combinators: Edge, Vertices, Edges, Overlays, Connects.
//   - Standard topologies: Path, Circuit, Clique, Star, Biclique.
//
// Why
//
//	Composing Vertex/Overlay/Connect by hand is verbose for routine shapes.
//	These constructors assemble them in one call while staying inside the
//	algebra: every result is produced exclusively through the four relation
//	constructors, so the consistency invariant can never be violated here.
//
// Totality
//
//	Unlike builders over mutable graphs, nothing in this package returns an
//	error: the algebra is closed, so degenerate inputs simply denote
//	smaller graphs. Path() with no vertices is Empty, Path(x) is Vertex(x),
//	Star with no leaves is the bare center, and so on.
//
// Determinism
//
//	Vertex and edge emission follows the input order; the resulting
//	relation is canonical regardless (its sets are sorted), so two calls
//	with permuted duplicate-free inputs yield Equal graphs for Vertices,
//	Edges and Biclique, while Path/Circuit/Clique depend on input order by
//	nature.
//
// Complexity
//
//	Stated per constructor. Clique and Biclique are inherently quadratic in
//	edge count; the fold-based constructors pay the usual cost of repeated
//	union on top.
//
// Usage
//
//	p := builder.Path(1, 2, 3)          // edges [(1,2),(2,3)]
//	k := builder.Clique(1, 2, 3)        // edges [(1,2),(1,3),(2,3)]
//	s := builder.Star(0, 1, 2, 3)       // edges [(0,1),(0,2),(0,3)]
//	b := builder.Biclique([]int{1, 2}, []int{3, 4})
//	_ = builder.Overlays(p, k, s, b)
package builder
