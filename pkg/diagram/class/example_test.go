package class_test

import (
	"fmt"

	"github.com/matzehuels/mermaid/pkg/diagram"
	"github.com/matzehuels/mermaid/pkg/diagram/class"
)

func ExampleNewBuilder() {
	b := class.NewBuilder()

	nb, _ := class.NewNode().Annotation("interface").Label("Shape")
	shape, _ := b.Node(nb)
	nb, _ = class.NewNode().
		Attribute(class.NewAttribute("float64", "radius")).
		Method(class.NewMethod("float64", "Area")).
		Label("Circle")
	circle, _ := b.Node(nb)

	eb := class.NewEdge().Source(circle).Destination(shape).Line(diagram.LineDashed)
	eb, _ = eb.RightArrow(diagram.ArrowTriangle)
	b.Edge(eb)

	fmt.Print(b.Build())
	// Output:
	// classDiagram
	//   direction LR
	//   class v0["Shape"] {
	//       <<interface>>
	//   }
	//   class v1["Circle"] {
	//       + radius: float64
	//       +Area(): float64
	//   }
	//   v1 ..|> v0
}

func ExampleNewBuilder_multiplicity() {
	b := class.NewBuilder()

	nb, _ := class.NewNode().Label("Order")
	order, _ := b.Node(nb)
	nb, _ = class.NewNode().Label("Item")
	item, _ := b.Node(nb)

	eb, _ := class.NewEdge().
		Source(order).
		Destination(item).
		RightMultiplicity(class.MultiplicityOneOrMore).
		Label("contains")
	eb, _ = eb.RightArrow(diagram.ArrowStar)
	b.Edge(eb)

	fmt.Print(b.Build())
	// Output:
	// classDiagram
	//   direction LR
	//   class v0["Order"] {
	//   }
	//   class v1["Item"] {
	//   }
	//   v0 --* 1..* v1 : "`contains`"
}
