// Package convert provides two-way adapters between the relation
// representation and the flat forms most external graph code speaks:
// adjacency maps and edge lists.
//
// What
//
//   - ToAdjacencyMap / FromAdjacencyMap: map[V][]V with ascending successor
//     lists; every domain vertex is a key, isolated vertices included.
//   - ToEdgeList / FromEdgeList: ascending pair slices, plus an explicit
//     vertex list on import so isolated vertices survive the round trip.
//
// Why
//
//	The algebraic representation is ideal for construction and reasoning,
//	but most consumers (renderers, serializers, external graph libraries)
//	expect adjacency structures. These adapters convert losslessly in both
//	directions without ever bypassing the four constructors, so imported
//	values satisfy the consistency invariant no matter how ragged the
//	input (successor vertices missing from the key set, duplicate edges,
//	and so on).
//
// Round trips
//
//	FromAdjacencyMap(ToAdjacencyMap(r)) is Equal to r for every r.
//	FromEdgeList(r.Domain(), ToEdgeList(r)) is Equal to r for every r.
//	The reverse direction canonicalizes: duplicates collapse and successor
//	lists come back sorted.
//
// Complexity
//
//   - ToAdjacencyMap / ToEdgeList: O(n + m).
//   - FromAdjacencyMap / FromEdgeList: one union per key/edge on top of the
//     output size.
package convert
