// Package er builds Mermaid entity relationship diagrams.
//
// # Overview
//
// An entity relationship diagram is assembled through [Builder]:
// register style classes, then entities, then relationships between
// registered entities. Entities extend the generic node with typed
// [Attribute] rows rendered inside a brace block. Relationships use
// the four cardinality arrow shapes; the [ZeroOrOne], [OneToOne],
// [ZeroOrMore] and [OneOrMore] constructors preset both ends at once.
//
// # Basic Usage
//
//	builder := er.NewBuilder()
//	nb, _ := er.NewNode().Attribute("string", "name").Label("Customer")
//	customer, _ := builder.Node(nb)
//	nb, _ = er.NewNode().Attribute("int", "total").Label("Order")
//	order, _ := builder.Node(nb)
//	eb, _ := er.OneOrMore(customer, order).Label("places")
//	builder.Edge(eb)
//	fmt.Print(builder.Build())
//
// # Concurrency
//
// Builders are not safe for concurrent use. A built [Diagram] and every
// entity reachable from it are immutable and safe to share between
// goroutines.
package er
