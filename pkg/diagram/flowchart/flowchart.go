package flowchart

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Diagram is an immutable flowchart snapshot produced by
// [Builder.Build]. Its String method renders the complete Mermaid
// flowchart text.
type Diagram struct {
	diagram.Diagram[*Node, *Edge, *Configuration]
}

// AppendTabbed writes the full diagram: front-matter, the flowchart
// header, the style-class definitions actually referenced by a node or
// an edge, the nodes, and the edges. Nodes claimed as subnodes of an
// earlier node are skipped at top level; they render once, inside their
// owning subgraph. Unreferenced style classes are dropped.
func (d *Diagram) AppendTabbed(sb *strings.Builder, depth int) {
	configuration := d.Configuration()
	configuration.AppendTabbed(sb, depth)
	fmt.Fprintf(sb, "%sflowchart %s\n", diagram.Indent(depth), configuration.Direction())

	nodes := d.Nodes()
	edges := d.Edges()
	for _, class := range d.StyleClasses() {
		if !classReferenced(class, nodes, edges) {
			continue
		}
		class.AppendTabbed(sb, depth+1)
	}

	var claimed []*Node
	for _, node := range nodes {
		if slices.Contains(claimed, node) {
			continue
		}
		claimed = append(claimed, node.subnodes...)
	}
	for _, node := range nodes {
		if slices.Contains(claimed, node) {
			continue
		}
		node.AppendTabbed(sb, depth+1)
	}

	for _, edge := range edges {
		edge.AppendTabbed(sb, depth+1)
	}
}

// String renders the diagram at depth zero.
func (d *Diagram) String() string {
	var sb strings.Builder
	d.AppendTabbed(&sb, 0)
	return sb.String()
}

func classReferenced(class *diagram.StyleClass, nodes []*Node, edges []*Edge) bool {
	for _, node := range nodes {
		if slices.Contains(node.Classes(), class) {
			return true
		}
	}
	for _, edge := range edges {
		if slices.Contains(edge.classes, class) {
			return true
		}
	}
	return false
}

// Builder assembles a flowchart. It wraps the generic diagram builder,
// so style classes, nodes and the configuration register through the
// promoted methods; Edge is shadowed to hand out sequential edge
// identifiers.
type Builder struct {
	*diagram.Builder[*Node, *Edge, *Configuration]
}

// NewBuilder returns an empty flowchart builder with the default
// configuration.
func NewBuilder() *Builder {
	return &Builder{diagram.NewBuilder[*Node, *Edge](&Configuration{})}
}

// Edge builds and registers an edge. The edge identifier is assigned
// from the current edge count, replacing any identifier set on the
// builder, so identifiers are always sequential in registration order.
// Both endpoints must already be registered.
func (b *Builder) Edge(builder *EdgeBuilder) (*Edge, error) {
	return b.Builder.Edge(sequencedEdge{builder, uint64(b.NumberOfEdges())})
}

// sequencedEdge builds an edge under a forced identifier.
type sequencedEdge struct {
	builder *EdgeBuilder
	id      uint64
}

func (s sequencedEdge) BuildEdge() (*Edge, error) {
	return s.builder.buildWith(s.id)
}

// Build returns an immutable snapshot of the flowchart. The builder
// remains usable afterwards.
func (b *Builder) Build() *Diagram {
	return &Diagram{*b.Builder.Build()}
}
