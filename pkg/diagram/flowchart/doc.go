// Package flowchart builds Mermaid flowchart diagrams.
//
// # Overview
//
// A flowchart is assembled through [Builder]: register style classes,
// then nodes, then edges between registered nodes. Flowchart nodes
// extend the generic node with one of 46 [Shape] outlines, an optional
// click event, and optional subnodes that turn the node into a subgraph
// block. Flowchart edges carry their own identifier plus curve, length
// and styling options, rendered as decoration lines after the
// connection.
//
// # Basic Usage
//
//	builder := flowchart.NewBuilder()
//	nb, _ := flowchart.NewNode().Shape(flowchart.ShapeStadium).Label("Start")
//	start, _ := builder.Node(nb)
//	nb, _ = flowchart.NewNode().Shape(flowchart.ShapeStadium).Label("Done")
//	done, _ := builder.Node(nb)
//	builder.Edge(flowchart.NewEdge().Source(start).Destination(done))
//	fmt.Print(builder.Build())
//
// Arrow shapes on flowchart edges are restricted to
// [diagram.ArrowNormal], [diagram.ArrowCircle] and [diagram.ArrowX];
// the edge builder rejects the rest.
//
// # Concurrency
//
// Builders are not safe for concurrent use. A built [Diagram] and every
// entity reachable from it are immutable and safe to share between
// goroutines.
package flowchart
