package er

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Configuration is the generic configuration; entity relationship
// diagrams add no settings of their own.
type Configuration = diagram.GenericConfiguration

// ConfigurationBuilder assembles a [Configuration].
type ConfigurationBuilder = diagram.GenericConfigurationBuilder

// NewConfiguration returns an empty configuration builder.
func NewConfiguration() *ConfigurationBuilder {
	return diagram.NewConfiguration()
}

// Diagram is an immutable entity relationship diagram snapshot
// produced by [Builder.Build]. Its String method renders the complete
// Mermaid erDiagram text.
type Diagram struct {
	diagram.Diagram[*Node, *Edge, *Configuration]
}

// AppendTabbed writes the full diagram: front-matter, the erDiagram
// header with its direction, every registered style-class definition,
// the entities, and the relationships.
func (d *Diagram) AppendTabbed(sb *strings.Builder, depth int) {
	configuration := d.Configuration()
	configuration.AppendTabbed(sb, depth)
	indent := diagram.Indent(depth)
	fmt.Fprintf(sb, "%serDiagram\n", indent)
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

// Builder assembles an entity relationship diagram. It wraps the
// generic diagram builder directly: style classes, entities,
// relationships and the configuration all register through the
// promoted methods.
type Builder struct {
	*diagram.Builder[*Node, *Edge, *Configuration]
}

// NewBuilder returns an empty entity relationship diagram builder with
// the default configuration.
func NewBuilder() *Builder {
	return &Builder{diagram.NewBuilder[*Node, *Edge](&Configuration{})}
}

// Build returns an immutable snapshot of the diagram. The builder
// remains usable afterwards.
func (b *Builder) Build() *Diagram {
	return &Diagram{*b.Builder.Build()}
}
