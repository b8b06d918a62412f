package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
	"github.com/matzehuels/mermaid/pkg/diagram/class"
	"github.com/matzehuels/mermaid/pkg/diagram/er"
	"github.com/matzehuels/mermaid/pkg/diagram/flowchart"
	"github.com/matzehuels/mermaid/pkg/errors"
	"github.com/matzehuels/mermaid/pkg/manifest"
)

// Node is one vertex of the flattened graph. ID carries the same
// prefixed identifier the Mermaid text uses, so exported output can be
// read side by side with the rendered diagram.
type Node struct {
	// ID is the rendered identifier, "v0" for the first node.
	ID string
	// Label is the display label.
	Label string
	// Subgraph marks flowchart nodes that contain subnodes. They are
	// drawn with dashed outlines and grey fill to set them apart.
	Subgraph bool
}

// Edge is one directed connection of the flattened graph.
type Edge struct {
	From   string
	To     string
	Label  string
	Dashed bool
}

// Graph is a flavor-independent view of a built diagram.
type Graph struct {
	Name  string
	Nodes []Node
	Edges []Edge
}

// FromDocument flattens a built document into a [Graph]. Every diagram
// flavor reduces the same way: nodes keep their identifier and label,
// edges keep their endpoints, label and line style. Kind-specific
// detail (shapes, members, cardinalities) does not survive the
// flattening.
func FromDocument(doc *manifest.Document) (*Graph, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is nil")
	}

	g := &Graph{Name: doc.Name}
	switch doc.Kind {
	case manifest.KindFlowchart:
		for _, n := range doc.Flowchart.Nodes() {
			g.Nodes = append(g.Nodes, Node{ID: nodeID(n.ID()), Label: n.Label(), Subgraph: n.IsSubgraph()})
		}
		for _, e := range doc.Flowchart.Edges() {
			g.Edges = append(g.Edges, flatEdge[*flowchart.Node](e))
		}
	case manifest.KindClass:
		for _, n := range doc.Class.Nodes() {
			g.Nodes = append(g.Nodes, Node{ID: nodeID(n.ID()), Label: n.Label()})
		}
		for _, e := range doc.Class.Edges() {
			g.Edges = append(g.Edges, flatEdge[*class.Node](e))
		}
	case manifest.KindER:
		for _, n := range doc.ER.Nodes() {
			g.Nodes = append(g.Nodes, Node{ID: nodeID(n.ID()), Label: n.Label()})
		}
		for _, e := range doc.ER.Edges() {
			g.Edges = append(g.Edges, flatEdge[*er.Node](e))
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown diagram kind %q", doc.Kind)
	}
	return g, nil
}

// flatFlavorEdge is the edge surface shared by all diagram flavors.
type flatFlavorEdge[N interface{ ID() uint64 }] interface {
	Label() (string, bool)
	Source() N
	Destination() N
	Line() diagram.LineStyle
}

func flatEdge[N interface{ ID() uint64 }](e flatFlavorEdge[N]) Edge {
	label, _ := e.Label()
	return Edge{
		From:   nodeID(e.Source().ID()),
		To:     nodeID(e.Destination().ID()),
		Label:  label,
		Dashed: e.Line() == diagram.LineDashed,
	}
}

func nodeID(id uint64) string {
	return fmt.Sprintf("%s%d", diagram.NodePrefix, id)
}

// DOT converts the graph to Graphviz DOT text. The resulting string can
// be rendered with [Graph.SVG] or [Graph.PNG], or saved for external
// Graphviz tools.
func (g *Graph) DOT() string {
	name := g.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		attrs := edgeAttrs(e)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n Node) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.Label)}
	if n.Subgraph {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

func edgeAttrs(e Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if e.Dashed {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}
