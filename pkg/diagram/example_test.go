package diagram_test

import (
	"fmt"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

func ExampleNewGenericBuilder() {
	b := diagram.NewGenericBuilder()

	src, _ := diagram.NewNode().Label("Source")
	source, _ := b.Node(src)
	dst, _ := diagram.NewNode().Label("Destination")
	destination, _ := b.Node(dst)

	_, _ = b.Edge(diagram.NewEdge[*diagram.GenericNode]().
		Source(source).
		Destination(destination))

	d := b.Build()
	fmt.Println("Nodes:", len(d.Nodes()))
	fmt.Println("Edges:", len(d.Edges()))
	fmt.Println("First id:", d.Nodes()[0].ID())
	// Output:
	// Nodes: 2
	// Edges: 1
	// First id: 0
}

func ExampleStyleClassBuilder() {
	sc := diagram.NewStyleClass()
	sc, _ = sc.Name("alert")
	sc, _ = sc.Property(diagram.Fill(diagram.RGB(255, 0, 0)))
	sc, _ = sc.Property(diagram.FontWeight(diagram.WeightBold))

	class, _ := sc.Build()
	fmt.Print(class)
	// Output:
	// classDef alert fill: #ff0000,font-weight: bold
}

func ExampleNavigate() {
	nav := diagram.Navigate("https://example.com").Anchor(true).NewTab(true)
	fmt.Println(nav)
	// Output:
	// href "https://example.com" _blank
}

func ExampleGenericConfiguration() {
	cb := diagram.NewConfiguration().Renderer(diagram.EclipseLayoutKernel)
	cb, _ = cb.Title("Pipeline Overview")

	config, _ := cb.Build()
	fmt.Print(config)
	// Output:
	// ---
	// config:
	//   layout: elk
	//   theme: default
	//   look: classic
	// title: Pipeline Overview
	// ---
}

func ExampleBuilder_StyleClass() {
	b := diagram.NewGenericBuilder()

	sc := diagram.NewStyleClass()
	sc, _ = sc.Name("warn")
	sc, _ = sc.Property(diagram.Stroke(diagram.RGB(255, 165, 0)))
	class, _ := b.StyleClass(sc)

	nb, _ := diagram.NewNode().Label("Watchdog")
	nb, _ = nb.StyleClass(class)
	node, _ := b.Node(nb)

	fmt.Println("Classes on node:", len(node.Classes()))
	// Output:
	// Classes on node: 1
}
