// Package diagram provides the typed core for building Mermaid diagram
// text: validating builders for nodes, edges, style classes and
// configurations, and a generic container that ties them together.
//
// # Overview
//
// Mermaid source is ordinary text, and hand-assembling it from strings
// invites silent breakage: dangling edge endpoints, style classes that
// are referenced but never defined, arrowheads a diagram kind cannot
// draw. This package moves those mistakes to construction time. Every
// entity is produced by a builder that validates each call, and the
// diagram builder validates cross references on registration, so a
// finalized diagram always renders to parseable Mermaid text.
//
// The concrete diagram kinds live in the subpackages
// [github.com/matzehuels/mermaid/pkg/diagram/flowchart],
// [github.com/matzehuels/mermaid/pkg/diagram/class] and
// [github.com/matzehuels/mermaid/pkg/diagram/er]. This package holds
// what they share: the capability interfaces ([Node], [Edge],
// [Configuration]), the generic implementations of each, the styling
// vocabulary and the [Builder] container.
//
// # Basic Usage
//
// Register style classes first, then nodes, then edges between them;
// the registration order is the render order:
//
//	b := diagram.NewGenericBuilder()
//	alert, _ := diagram.NewStyleClass().Name("alert")
//	alert, _ = alert.Property(diagram.Fill(diagram.RGB(255, 0, 0)))
//	if _, err := b.StyleClass(alert); err != nil {
//		return err
//	}
//	src, _ := diagram.NewNode().Label("Source")
//	source, err := b.Node(src)
//	if err != nil {
//		return err
//	}
//
// Builders whose setters can fail return the builder together with the
// error, so a chain short-circuits at the first invalid call while the
// builder itself stays usable with its previous state.
//
// # Identity and Sharing
//
// Nodes and style classes are shared by pointer. The pointer returned
// from a registration is the identity of the entity: edges name their
// endpoints by it, and membership checks compare it. Entities are
// immutable once built, so sharing needs no synchronization.
//
// # Rendering
//
// Renderable entities implement [TabbedText], appending complete lines
// at a given nesting depth. Rendering never fails and is deterministic:
// the same finalized diagram always produces byte-identical text.
// Identifier prefixes are fixed ([NodePrefix], [EdgePrefix]), so node 3
// renders as "v3" wherever it is referenced.
//
// # Concurrency
//
// Builders are not safe for concurrent use; a single goroutine owns a
// builder during population. Finalized diagrams and everything they
// reference are immutable and safe to share across goroutines.
package diagram
