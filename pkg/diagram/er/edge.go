package er

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Edge is a relationship between two entities. The label is part of
// the statement grammar and renders as an empty string when unset.
type Edge struct {
	edge *diagram.GenericEdge[*Node]
}

// Label returns the relationship label, if one is set.
func (e *Edge) Label() (string, bool) { return e.edge.Label() }

// Source returns the source entity.
func (e *Edge) Source() *Node { return e.edge.Source() }

// Destination returns the destination entity.
func (e *Edge) Destination() *Node { return e.edge.Destination() }

// Line returns the line style of the edge.
func (e *Edge) Line() diagram.LineStyle { return e.edge.Line() }

// Classes returns no classes; entity relationship edges carry none.
func (e *Edge) Classes() []*diagram.StyleClass { return nil }

// LeftArrow returns the cardinality shape at the source end, if any.
func (e *Edge) LeftArrow() (diagram.ArrowShape, bool) { return e.edge.LeftArrow() }

// RightArrow returns the cardinality shape at the destination end, if
// any.
func (e *Edge) RightArrow() (diagram.ArrowShape, bool) { return e.edge.RightArrow() }

// AppendTabbed writes the relationship statement. The segment is "--"
// for solid, "==" for thick and ".." for dashed lines; the label
// always trails after a colon, quoted but not backticked.
func (e *Edge) AppendTabbed(sb *strings.Builder, depth int) {
	var segment string
	switch e.Line() {
	case diagram.LineSolid:
		segment = "--"
	case diagram.LineThick:
		segment = "=="
	case diagram.LineDashed:
		segment = ".."
	}
	var left, right string
	if shape, ok := e.LeftArrow(); ok {
		left = shape.Left()
	}
	if shape, ok := e.RightArrow(); ok {
		right = shape.Right()
	}
	label, _ := e.Label()
	fmt.Fprintf(sb, "%s%s%d %s%s%s %s%d : \"%s\"\n",
		diagram.Indent(depth), diagram.NodePrefix, e.Source().ID(),
		left, segment, right,
		diagram.NodePrefix, e.Destination().ID(), label)
}

// String renders the edge at depth zero.
func (e *Edge) String() string {
	var sb strings.Builder
	e.AppendTabbed(&sb, 0)
	return sb.String()
}

// EdgeBuilder assembles an [Edge]. Use [NewEdge] for a blank builder,
// or one of [ZeroOrOne], [OneToOne], [ZeroOrMore] and [OneOrMore] for
// a relationship with both endpoints and cardinalities preset.
type EdgeBuilder struct {
	inner *diagram.GenericEdgeBuilder[*Node]
}

// NewEdge returns an empty relationship builder.
func NewEdge() *EdgeBuilder {
	return &EdgeBuilder{inner: diagram.NewEdge[*Node]()}
}

// ZeroOrOne returns a solid relationship with a zero-or-one
// cardinality on both ends.
func ZeroOrOne(source, destination *Node) *EdgeBuilder {
	return cardinality(source, destination, diagram.ArrowZeroOrOne)
}

// OneToOne returns a solid relationship with an exactly-one
// cardinality on both ends.
func OneToOne(source, destination *Node) *EdgeBuilder {
	return cardinality(source, destination, diagram.ArrowExactlyOne)
}

// ZeroOrMore returns a solid relationship with a zero-or-more
// cardinality on both ends.
func ZeroOrMore(source, destination *Node) *EdgeBuilder {
	return cardinality(source, destination, diagram.ArrowZeroOrMore)
}

// OneOrMore returns a solid relationship with a one-or-more
// cardinality on both ends.
func OneOrMore(source, destination *Node) *EdgeBuilder {
	return cardinality(source, destination, diagram.ArrowOneOrMore)
}

func cardinality(source, destination *Node, shape diagram.ArrowShape) *EdgeBuilder {
	b := NewEdge().Source(source).Destination(destination).Line(diagram.LineSolid)
	// The four cardinality shapes are exactly the compatible set, so
	// the arrow setters cannot fail here.
	b, _ = b.LeftArrow(shape)
	b, _ = b.RightArrow(shape)
	return b
}

// Label sets the relationship label. It returns
// [diagram.ErrEmptyEdgeLabel] wrapped in a [diagram.EdgeError] when
// the label is empty.
func (b *EdgeBuilder) Label(label string) (*EdgeBuilder, error) {
	if _, err := b.inner.Label(label); err != nil {
		return b, err
	}
	return b, nil
}

// Source sets the source entity of the relationship.
func (b *EdgeBuilder) Source(node *Node) *EdgeBuilder {
	b.inner.Source(node)
	return b
}

// Destination sets the destination entity of the relationship.
func (b *EdgeBuilder) Destination(node *Node) *EdgeBuilder {
	b.inner.Destination(node)
	return b
}

// Line sets the line style of the relationship.
func (b *EdgeBuilder) Line(style diagram.LineStyle) *EdgeBuilder {
	b.inner.Line(style)
	return b
}

// LeftArrow sets the cardinality shape at the source end. Shapes
// outside the entity relationship vocabulary are rejected with
// [diagram.ErrIncompatibleLeftArrow].
func (b *EdgeBuilder) LeftArrow(shape diagram.ArrowShape) (*EdgeBuilder, error) {
	if _, err := b.inner.LeftArrow(shape); err != nil {
		return b, err
	}
	return b, nil
}

// RightArrow sets the cardinality shape at the destination end. Shapes
// outside the entity relationship vocabulary are rejected with
// [diagram.ErrIncompatibleRightArrow].
func (b *EdgeBuilder) RightArrow(shape diagram.ArrowShape) (*EdgeBuilder, error) {
	if _, err := b.inner.RightArrow(shape); err != nil {
		return b, err
	}
	return b, nil
}

// Build assembles the edge. It fails when an endpoint is missing. The
// builder remains usable afterwards.
func (b *EdgeBuilder) Build() (*Edge, error) {
	inner, err := b.inner.Build()
	if err != nil {
		return nil, err
	}
	return &Edge{edge: inner}, nil
}

// BuildEdge implements [diagram.EdgeSource].
func (b *EdgeBuilder) BuildEdge() (*Edge, error) {
	return b.Build()
}
