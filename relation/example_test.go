package relation_test

import (
	"fmt"

	"github.com/katalvlaran/algraph/relation"
)

// ExampleConnect builds the triangle on {1,2,3} and prints its canonical
// form and edge count.
func ExampleConnect() {
	g := relation.Connect(
		relation.Connect(relation.Vertex(1), relation.Vertex(2)),
		relation.Vertex(3),
	)
	fmt.Println(g)
	fmt.Println(g.NumVertices(), g.NumEdges())

	// Output:
	// edges [(1,2),(1,3),(2,3)]
	// 3 3
}

// ExampleOverlay shows that overlay unions vertex sets without adding edges.
func ExampleOverlay() {
	g := relation.Overlay(relation.Vertex(1), relation.Vertex(2))
	fmt.Println(g)
	fmt.Println(g.NumEdges())

	// Output:
	// vertices [1,2]
	// 0
}

// ExampleRelation_String walks the four canonical rendering shapes.
func ExampleRelation_String() {
	edge := relation.Connect(relation.Vertex(1), relation.Vertex(2))

	fmt.Println(relation.Empty[int]())
	fmt.Println(relation.Vertex(1))
	fmt.Println(edge)
	fmt.Println(relation.Overlay(edge, relation.Vertex(3)))

	// Output:
	// empty
	// vertex 1
	// edge (1,2)
	// overlay (vertex 3) (edge (1,2))
}

// ExampleRelation_Compare demonstrates the size-lexicographic order.
func ExampleRelation_Compare() {
	fmt.Println(relation.Vertex(1).Compare(relation.Vertex(2)))
	// Fewer vertices compares less, whatever the labels.
	fmt.Println(relation.Vertex(3).Compare(
		relation.Connect(relation.Vertex(1), relation.Vertex(2))))

	// Output:
	// -1
	// -1
}
