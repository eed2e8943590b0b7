// Package algraph is an algebraic take on directed graphs: build any graph
// from four total constructors, compare, render, and convert it — all on
// pure immutable values.
//
// 🚀 What is algraph?
//
//	A small, law-abiding library where a graph is a value, not a data
//	structure you mutate:
//		• relation/ — the core: vertex domain + edge relation as sorted sets,
//		  the Empty/Vertex/Overlay/Connect algebra, a subgraph-compatible
//		  total order, canonical rendering, and a consistency predicate
//		• expr/     — deep-embedded graph expressions with a generic Fold,
//		  evaluated into relations on demand
//		• builder/  — total constructors for common shapes: paths, circuits,
//		  cliques, stars, bicliques
//		• convert/  — adjacency-map and edge-list adapters in both directions
//
// ✨ Why choose algraph?
//
//   - No invalid states — every reachable value satisfies the consistency
//     invariant; construction cannot fail, so there is no error handling
//     at graph-building sites
//   - Equational reasoning — overlay and connect obey precise laws
//     (associativity, distributivity, decomposition), tested property-style
//   - Pure Go — immutable values, safe to share across goroutines without
//     locks
//
// Quick example:
//
//	g := relation.Connect(
//	    relation.Connect(relation.Vertex(1), relation.Vertex(2)),
//	    relation.Vertex(3),
//	)
//	fmt.Println(g) // edges [(1,2),(1,3),(2,3)]
//
// Start with the relation package; the others are thin collaborators that
// consume it through the four constructors.
package algraph
