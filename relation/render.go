// render.go — canonical textual rendering of a Relation.
//
// The output is the shortest expression over the vertex/edge literals that
// reconstructs the value, chosen by a four-way structural case split:
//
//	empty                                     — no vertices
//	vertex 1 / vertices [1,2]                 — vertices but no edges
//	edge (1,2) / edges [(1,2),(1,3)]          — every vertex covered by an edge
//	overlay (vertices [...]) (edges [...])    — isolated vertices remain
//
// Downstream consumers rely on this exact case split for human-readable
// diffs, so it must not be re-canonicalized. Elements and pairs are always
// listed in ascending order. No parser for this form exists; rendering is
// one-way.

package relation

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// String renders r in its canonical textual form.
// Complexity: O(n + m log m)
func (r Relation[V]) String() string {
	if len(r.domain) == 0 {
		return "empty"
	}
	if len(r.rel) == 0 {
		return vertexLiteral(r.domain)
	}
	used := ReferredVertices(r.rel)
	if slices.Equal(r.domain, used) {
		return edgeLiteral(r.rel)
	}
	isolated := diffSorted(r.domain, used, compareVertex[V])
	return "overlay (" + vertexLiteral(isolated) + ") (" + edgeLiteral(r.rel) + ")"
}

// vertexLiteral renders an ascending vertex list, singular for one element:
// "vertex 1" or "vertices [1,2]".
func vertexLiteral[V cmp.Ordered](xs []V) string {
	if len(xs) == 1 {
		return fmt.Sprintf("vertex %v", xs[0])
	}
	var b strings.Builder
	b.WriteString("vertices [")
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')
	return b.String()
}

// edgeLiteral renders an ascending pair list, singular for one pair:
// "edge (1,2)" or "edges [(1,2),(1,3)]".
func edgeLiteral[V cmp.Ordered](ps []Pair[V]) string {
	if len(ps) == 1 {
		return fmt.Sprintf("edge (%v,%v)", ps[0].From, ps[0].To)
	}
	var b strings.Builder
	b.WriteString("edges [")
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "(%v,%v)", p.From, p.To)
	}
	b.WriteByte(']')
	return b.String()
}
