package class

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Edge is a relation between two classes. Each endpoint may carry a
// [Multiplicity] next to its arrow shape. Class diagram edges have no
// identifier and no styling of their own.
type Edge struct {
	edge     *diagram.GenericEdge[*Node]
	left     Multiplicity
	leftSet  bool
	right    Multiplicity
	rightSet bool
}

// Label returns the edge label, if one is set.
func (e *Edge) Label() (string, bool) { return e.edge.Label() }

// Source returns the source node.
func (e *Edge) Source() *Node { return e.edge.Source() }

// Destination returns the destination node.
func (e *Edge) Destination() *Node { return e.edge.Destination() }

// Line returns the line style of the edge.
func (e *Edge) Line() diagram.LineStyle { return e.edge.Line() }

// Classes returns no classes; class diagram edges carry none.
func (e *Edge) Classes() []*diagram.StyleClass { return nil }

// LeftArrow returns the arrow shape at the source end, if any.
func (e *Edge) LeftArrow() (diagram.ArrowShape, bool) { return e.edge.LeftArrow() }

// RightArrow returns the arrow shape at the destination end, if any.
func (e *Edge) RightArrow() (diagram.ArrowShape, bool) { return e.edge.RightArrow() }

// LeftMultiplicity returns the cardinality at the source end, if any.
func (e *Edge) LeftMultiplicity() (Multiplicity, bool) { return e.left, e.leftSet }

// RightMultiplicity returns the cardinality at the destination end, if
// any.
func (e *Edge) RightMultiplicity() (Multiplicity, bool) { return e.right, e.rightSet }

// AppendTabbed writes the relation statement. The segment is "--" for
// solid, "==" for thick and ".." for dashed lines; multiplicities sit
// between the endpoint and its arrow glyph, and the label trails after
// a colon.
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
	var leftMult, rightMult string
	if m, ok := e.LeftMultiplicity(); ok {
		leftMult = m.String() + " "
	}
	if m, ok := e.RightMultiplicity(); ok {
		rightMult = " " + m.String()
	}
	var label string
	if text, ok := e.Label(); ok {
		label = " : \"`" + text + "`\""
	}
	fmt.Fprintf(sb, "%s%s%d %s%s%s%s%s %s%d%s\n",
		diagram.Indent(depth), diagram.NodePrefix, e.Source().ID(),
		leftMult, left, segment, right, rightMult,
		diagram.NodePrefix, e.Destination().ID(), label)
}

// String renders the edge at depth zero.
func (e *Edge) String() string {
	var sb strings.Builder
	e.AppendTabbed(&sb, 0)
	return sb.String()
}

// EdgeBuilder assembles an [Edge]. Use [NewEdge] to obtain one. The
// builder stays usable after Build.
type EdgeBuilder struct {
	inner    *diagram.GenericEdgeBuilder[*Node]
	left     Multiplicity
	leftSet  bool
	right    Multiplicity
	rightSet bool
}

// NewEdge returns an empty class edge builder.
func NewEdge() *EdgeBuilder {
	return &EdgeBuilder{inner: diagram.NewEdge[*Node]()}
}

// Label sets the edge label. It returns [diagram.ErrEmptyEdgeLabel]
// wrapped in a [diagram.EdgeError] when the label is empty.
func (b *EdgeBuilder) Label(label string) (*EdgeBuilder, error) {
	if _, err := b.inner.Label(label); err != nil {
		return b, err
	}
	return b, nil
}

// Source sets the source node of the edge.
func (b *EdgeBuilder) Source(node *Node) *EdgeBuilder {
	b.inner.Source(node)
	return b
}

// Destination sets the destination node of the edge.
func (b *EdgeBuilder) Destination(node *Node) *EdgeBuilder {
	b.inner.Destination(node)
	return b
}

// Line sets the line style of the edge.
func (b *EdgeBuilder) Line(style diagram.LineStyle) *EdgeBuilder {
	b.inner.Line(style)
	return b
}

// LeftArrow sets the arrow shape at the source end. Shapes outside the
// class diagram vocabulary are rejected with
// [diagram.ErrIncompatibleLeftArrow].
func (b *EdgeBuilder) LeftArrow(shape diagram.ArrowShape) (*EdgeBuilder, error) {
	if _, err := b.inner.LeftArrow(shape); err != nil {
		return b, err
	}
	return b, nil
}

// RightArrow sets the arrow shape at the destination end. Shapes
// outside the class diagram vocabulary are rejected with
// [diagram.ErrIncompatibleRightArrow].
func (b *EdgeBuilder) RightArrow(shape diagram.ArrowShape) (*EdgeBuilder, error) {
	if _, err := b.inner.RightArrow(shape); err != nil {
		return b, err
	}
	return b, nil
}

// LeftMultiplicity sets the cardinality at the source end.
func (b *EdgeBuilder) LeftMultiplicity(multiplicity Multiplicity) *EdgeBuilder {
	b.left = multiplicity
	b.leftSet = true
	return b
}

// RightMultiplicity sets the cardinality at the destination end.
func (b *EdgeBuilder) RightMultiplicity(multiplicity Multiplicity) *EdgeBuilder {
	b.right = multiplicity
	b.rightSet = true
	return b
}

// Build assembles the edge. It fails when an endpoint is missing. The
// builder remains usable afterwards.
func (b *EdgeBuilder) Build() (*Edge, error) {
	inner, err := b.inner.Build()
	if err != nil {
		return nil, err
	}
	return &Edge{
		edge:     inner,
		left:     b.left,
		leftSet:  b.leftSet,
		right:    b.right,
		rightSet: b.rightSet,
	}, nil
}

// BuildEdge implements [diagram.EdgeSource].
func (b *EdgeBuilder) BuildEdge() (*Edge, error) {
	return b.Build()
}
