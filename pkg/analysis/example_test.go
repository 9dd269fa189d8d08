package analysis_test

import (
	"fmt"

	"github.com/matzehuels/grafo/pkg/analysis"
	"github.com/matzehuels/grafo/pkg/graph"
)

func ExampleBFS() {
	g := graph.Load([]graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}})

	t, _ := analysis.BFS(g, 1)
	fmt.Println("order:", t.Order)
	fmt.Println("diameter:", t.Diameter)
	// Output:
	// order: [1 2 3 4 5]
	// diameter: 4
}

func ExampleComponents() {
	g := graph.Load([]graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1}, {U: 4, V: 4}})

	p, _ := analysis.Components(g)
	fmt.Println("components:", p.Components)
	fmt.Println("sizes:", p.MinSize(), p.MaxSize())
	// Output:
	// components: [[1 2 3] [4]]
	// sizes: 1 3
}

func ExampleSparseAdjacency() {
	g := graph.Load([]graph.Edge{{U: 10, V: 30}, {U: 20, V: 30}})

	rep, _ := analysis.SparseAdjacency(g)
	for _, v := range g.Vertices() {
		fmt.Printf("%d: %v\n", v, rep.Rows[v])
	}
	// Output:
	// 10: [3]
	// 20: [3]
	// 30: [1 2]
}
