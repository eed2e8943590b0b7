package relation_test

import (
	"math/rand"

	"github.com/katalvlaran/algraph/relation"
)

// randRelation builds a random graph over a small integer vertex universe
// by composing the four constructors to the given expression depth.
// Deterministic for a fixed *rand.Rand seed.
func randRelation(rnd *rand.Rand, depth int) relation.Relation[int] {
	if depth == 0 || rnd.Intn(4) == 0 {
		if rnd.Intn(3) == 0 {
			return relation.Empty[int]()
		}
		return relation.Vertex(rnd.Intn(8))
	}
	x := randRelation(rnd, depth-1)
	y := randRelation(rnd, depth-1)
	if rnd.Intn(2) == 0 {
		return relation.Overlay(x, y)
	}
	return relation.Connect(x, y)
}

// triangle is Connect(Connect(Vertex(1), Vertex(2)), Vertex(3)): the clique
// on {1,2,3}, used by several tests.
func triangle() relation.Relation[int] {
	return relation.Connect(
		relation.Connect(relation.Vertex(1), relation.Vertex(2)),
		relation.Vertex(3),
	)
}
