package class

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Diagram is an immutable class diagram snapshot produced by
// [Builder.Build]. Its String method renders the complete Mermaid
// class diagram text.
type Diagram struct {
	diagram.Diagram[*Node, *Edge, *Configuration]
}

// AppendTabbed writes the full diagram: front-matter, the classDiagram
// header with its direction, every registered style-class definition,
// the class blocks, and the relations.
func (d *Diagram) AppendTabbed(sb *strings.Builder, depth int) {
	configuration := d.Configuration()
	configuration.AppendTabbed(sb, depth)
	indent := diagram.Indent(depth)
	fmt.Fprintf(sb, "%sclassDiagram\n", indent)
	fmt.Fprintf(sb, "%s  direction %s\n", indent, configuration.Direction())
	for _, class := range d.StyleClasses() {
		class.AppendTabbed(sb, depth+1)
	}
	for _, node := range d.Nodes() {
		node.AppendTabbed(sb, depth+1)
	}
	for _, edge := range d.Edges() {
		edge.AppendTabbed(sb, depth+1)
	}
}

// String renders the diagram at depth zero.
func (d *Diagram) String() string {
	var sb strings.Builder
	d.AppendTabbed(&sb, 0)
	return sb.String()
}

// Builder assembles a class diagram. It wraps the generic diagram
// builder directly: style classes, nodes, edges and the configuration
// all register through the promoted methods.
type Builder struct {
	*diagram.Builder[*Node, *Edge, *Configuration]
}

// NewBuilder returns an empty class diagram builder with the default
// configuration.
func NewBuilder() *Builder {
	return &Builder{diagram.NewBuilder[*Node, *Edge](&Configuration{})}
}

// Build returns an immutable snapshot of the class diagram. The
// builder remains usable afterwards.
func (b *Builder) Build() *Diagram {
	return &Diagram{*b.Builder.Build()}
}
