// Package class builds Mermaid class diagrams.
//
// # Overview
//
// A class diagram is assembled through [Builder]: register style
// classes, then nodes, then edges between registered nodes. Class
// nodes extend the generic node with a stereotype [NodeBuilder.Annotation]
// and ordered [Attribute] and [Method] members, rendered inside the
// class block. Edges model relations and may carry a [Multiplicity]
// on either endpoint; the arrows Triangle, Star, Circle and Normal
// cover inheritance, composition, aggregation and association.
//
// # Basic Usage
//
//	builder := class.NewBuilder()
//	nb, _ := class.NewNode().Annotation("interface").Label("Shape")
//	shape, _ := builder.Node(nb)
//	nb, _ = class.NewNode().Method(class.NewMethod("float64", "Area")).Label("Circle")
//	circle, _ := builder.Node(nb)
//	eb := class.NewEdge().Source(circle).Destination(shape).Line(diagram.LineDashed)
//	eb, _ = eb.RightArrow(diagram.ArrowTriangle)
//	builder.Edge(eb)
//	fmt.Print(builder.Build())
//
// # Concurrency
//
// Builders are not safe for concurrent use. A built [Diagram] and every
// entity reachable from it are immutable and safe to share between
// goroutines.
package class
