package relation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algraph/relation"
)

// TestCompareScenarios pins the concrete ordering cases: vertex 1 precedes
// vertex 2, and a one-vertex graph precedes any two-vertex graph regardless
// of labels (cardinality decides first).
func TestCompareScenarios(t *testing.T) {
	assert.Negative(t, relation.Vertex(1).Compare(relation.Vertex(2)))
	assert.Positive(t, relation.Vertex(2).Compare(relation.Vertex(1)))

	small := relation.Vertex(3)
	big := relation.Connect(relation.Vertex(1), relation.Vertex(2))
	assert.Negative(t, small.Compare(big),
		"one vertex must precede two vertices, labels notwithstanding")
}

// TestCompareTieBreaks exercises each of the four comparison stages.
func TestCompareTieBreaks(t *testing.T) {
	// Same cardinality, different vertex sets: {1,3} < {2,3}.
	a := relation.Overlay(relation.Vertex(1), relation.Vertex(3))
	b := relation.Overlay(relation.Vertex(2), relation.Vertex(3))
	assert.Negative(t, a.Compare(b))

	// Same vertex set, different edge counts: no edges < one edge.
	verts := relation.Overlay(relation.Vertex(1), relation.Vertex(2))
	edge := relation.Connect(relation.Vertex(1), relation.Vertex(2))
	assert.Negative(t, verts.Compare(edge))

	// Same vertex set and edge count, different edge sets: (1,2) < (2,1).
	fwd := relation.Connect(relation.Vertex(1), relation.Vertex(2))
	rev := relation.Connect(relation.Vertex(2), relation.Vertex(1))
	assert.Negative(t, fwd.Compare(rev))
}

// TestCompareIsTotalOrder checks reflexivity, antisymmetry and transitivity
// over random graphs, and that Equal agrees with Compare == 0.
func TestCompareIsTotalOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))
	for i := 0; i < 300; i++ {
		x := randRelation(rnd, 4)
		y := randRelation(rnd, 4)
		z := randRelation(rnd, 4)

		require.Zero(t, x.Compare(x), "compare must be reflexive")
		require.Equal(t, x.Compare(y) == 0, x.Equal(y),
			"equal must agree with compare")
		require.Equal(t, x.Compare(y), -y.Compare(x),
			"compare must be antisymmetric up to sign")
		if x.Compare(y) <= 0 && y.Compare(z) <= 0 {
			require.LessOrEqual(t, x.Compare(z), 0,
				"compare must be transitive")
		}
	}
}

// TestOrderRespectsSubgraph checks the compatibility requirement:
// isSubgraphOf(x, y) implies compare(x, y) ≤ 0, plus the three canonical
// chains empty ≤ x ≤ overlay(x,y) ≤ connect(x,y).
func TestOrderRespectsSubgraph(t *testing.T) {
	rnd := rand.New(rand.NewSource(29))
	empty := relation.Empty[int]()
	for i := 0; i < 300; i++ {
		x := randRelation(rnd, 4)
		y := randRelation(rnd, 4)

		if x.IsSubgraphOf(y) {
			require.LessOrEqual(t, x.Compare(y), 0,
				"subgraph %v of %v must not compare greater", x, y)
		}

		o := relation.Overlay(x, y)
		c := relation.Connect(x, y)
		require.LessOrEqual(t, empty.Compare(x), 0)
		require.LessOrEqual(t, x.Compare(o), 0)
		require.LessOrEqual(t, o.Compare(c), 0)
	}
}

// TestIsSubgraphOf covers the predicate directly.
func TestIsSubgraphOf(t *testing.T) {
	tri := triangle()
	edge := relation.Connect(relation.Vertex(1), relation.Vertex(2))

	assert.True(t, relation.Empty[int]().IsSubgraphOf(tri))
	assert.True(t, edge.IsSubgraphOf(tri))
	assert.True(t, tri.IsSubgraphOf(tri))
	assert.False(t, tri.IsSubgraphOf(edge))
	assert.False(t, relation.Vertex(9).IsSubgraphOf(tri))
}
