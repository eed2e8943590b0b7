// Package relation implements directed graphs algebraically, as a pair of
// finite sets: a vertex domain and a binary edge relation over it.
//
// What
//
//   - Relation[V]: an immutable graph value holding a sorted vertex set
//     and a sorted set of ordered vertex pairs (edges, self-loops included).
//   - Four total constructors closing the algebra:
//   - Empty()       — no vertices, no edges
//   - Vertex(x)     — one vertex, no edges
//   - Overlay(x,y)  — union of vertices and edges
//   - Connect(x,y)  — Overlay plus every edge from a vertex of x to a
//     vertex of y
//   - Compare/Equal/IsSubgraphOf: a size-lexicographic total order that is
//     compatible with the subgraph relation.
//   - String: canonical textual rendering over four literal shapes.
//   - ReferredVertices/IsConsistent: the diagnostic consistency predicate
//     used by randomized test harnesses.
//
// Why
//
//	The algebraic representation makes graph construction compositional:
//	any expression over the four constructors denotes a valid graph, with
//	no partial operations and no error handling at construction sites.
//	Overlay and Connect obey precise laws (see Laws below), so rewriting
//	and simplifying graph expressions is sound.
//
// Laws
//
//   - Overlay is commutative, associative, idempotent; Empty is its identity.
//   - Connect is associative; Empty is its two-sided identity; Connect
//     distributes over Overlay from both sides and satisfies the
//     decomposition law
//     Connect(Connect(x,y),z) == Overlay(Overlay(Connect(x,y), Connect(x,z)), Connect(y,z)).
//   - Consistency: every value reachable through the constructors satisfies
//     IsConsistent (edge endpoints always belong to the vertex set).
//   - Despite the arithmetic feel of the combinators, this is not a ring:
//     Overlay has no inverse, Connect does not commute, and Overlay is
//     idempotent. Do not transplant ring identities.
//
// Ordering
//
//	Compare orders by vertex count, then vertex set, then edge count, then
//	edge set; Equal is Compare == 0. The order refines the subgraph
//	relation: Empty ≤ x, x ≤ Overlay(x,y), Overlay(x,y) ≤ Connect(x,y).
//
// Complexity (n = |vertices|, m = |edges| of the inputs combined)
//
//   - Empty, Vertex:           O(1)
//   - Overlay:                 O(n + m)
//   - Connect:                 O(n(x)·n(y) + m) — the cartesian product term
//     makes repeated Connect on large vertex sets inherently quadratic.
//   - Compare, IsSubgraphOf:   O(n + m)
//   - String, IsConsistent:    O(n + m log m)
//
// Usage
//
//	// the triangle on 1,2,3
//	g := relation.Connect(
//	    relation.Connect(relation.Vertex(1), relation.Vertex(2)),
//	    relation.Vertex(3),
//	)
//	fmt.Println(g)            // edges [(1,2),(1,3),(2,3)]
//	fmt.Println(g.NumEdges()) // 3
//
// Concurrency
//
//	Values are immutable after construction; share them freely across
//	goroutines. Combining two values allocates fresh sets and never aliases
//	or mutates the inputs.
package relation
