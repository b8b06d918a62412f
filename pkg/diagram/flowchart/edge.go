package flowchart

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Edge is a flowchart edge. Unlike the generic edge it carries a
// numeric identifier of its own, rendered as "e<id>", which anchors the
// curve, class and linkStyle decoration lines to the connection.
type Edge struct {
	id      uint64
	edge    *diagram.GenericEdge[*Node]
	classes []*diagram.StyleClass
	styles  []diagram.StyleProperty
	curve   CurveStyle
	length  uint8
}

// ID returns the numeric edge identifier.
func (e *Edge) ID() uint64 { return e.id }

// Label returns the edge label, if one is set.
func (e *Edge) Label() (string, bool) { return e.edge.Label() }

// Source returns the source node.
func (e *Edge) Source() *Node { return e.edge.Source() }

// Destination returns the destination node.
func (e *Edge) Destination() *Node { return e.edge.Destination() }

// Line returns the line style of the edge.
func (e *Edge) Line() diagram.LineStyle { return e.edge.Line() }

// Classes returns the style classes attached to the edge itself.
func (e *Edge) Classes() []*diagram.StyleClass { return slices.Clone(e.classes) }

// Styles returns the style properties attached to the edge itself.
func (e *Edge) Styles() []diagram.StyleProperty { return slices.Clone(e.styles) }

// LeftArrow returns the arrow shape at the source end, if any.
func (e *Edge) LeftArrow() (diagram.ArrowShape, bool) { return e.edge.LeftArrow() }

// RightArrow returns the arrow shape at the destination end, if any.
func (e *Edge) RightArrow() (diagram.ArrowShape, bool) { return e.edge.RightArrow() }

// CurveStyle returns the curve style of the edge.
func (e *Edge) CurveStyle() CurveStyle { return e.curve }

// Length returns the segment length. Each extra unit stretches the
// drawn line by one rank in the layout.
func (e *Edge) Length() uint8 { return e.length }

// AppendTabbed writes the connection statement and its decoration
// lines. The "e<id>@" prefix appears on the connection only when a
// decoration refers back to it, i.e. when the curve is non-default or
// classes or properties are attached.
func (e *Edge) AppendTabbed(sb *strings.Builder, depth int) {
	indent := diagram.Indent(depth)
	var segment string
	switch e.Line() {
	case diagram.LineSolid:
		segment = strings.Repeat("-", 2+int(e.length))
	case diagram.LineThick:
		segment = strings.Repeat("=", 2+int(e.length))
	case diagram.LineDashed:
		segment = "-" + strings.Repeat(".", int(e.length)) + "-"
	}
	var prefix string
	if e.curve != CurveBasis || len(e.classes) > 0 || len(e.styles) > 0 {
		prefix = fmt.Sprintf("%s%d@", diagram.EdgePrefix, e.id)
	}
	var left, right string
	if shape, ok := e.LeftArrow(); ok {
		left = shape.Left()
	}
	if shape, ok := e.RightArrow(); ok {
		right = shape.Right()
	}
	var label string
	if text, ok := e.Label(); ok {
		label = "|\"`" + text + "`\"|"
	}
	fmt.Fprintf(sb, "%s%s%d %s%s%s%s%s %s%d\n",
		indent, diagram.NodePrefix, e.Source().ID(),
		prefix, left, segment, right, label,
		diagram.NodePrefix, e.Destination().ID())
	if e.curve != CurveBasis {
		fmt.Fprintf(sb, "%s%s%d@{curve: %s}\n", indent, diagram.EdgePrefix, e.id, e.curve)
	}
	for _, class := range e.classes {
		fmt.Fprintf(sb, "%sclass %s%d %s\n", indent, diagram.EdgePrefix, e.id, class.Name())
	}
	if len(e.styles) > 0 {
		fmt.Fprintf(sb, "%slinkStyle %s%d ", indent, diagram.EdgePrefix, e.id)
		for i, property := range e.styles {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(property.String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
}

// String renders the edge at depth zero.
func (e *Edge) String() string {
	var sb strings.Builder
	e.AppendTabbed(&sb, 0)
	return sb.String()
}

// EdgeBuilder assembles an [Edge]. Use [NewEdge] to obtain one. When
// edges are registered through [Builder.Edge] the identifier is
// assigned automatically; an explicit ID is only needed for edges built
// standalone.
type EdgeBuilder struct {
	id      uint64
	idSet   bool
	inner   *diagram.GenericEdgeBuilder[*Node]
	classes []*diagram.StyleClass
	styles  []diagram.StyleProperty
	curve   CurveStyle
	length  uint8
}

// NewEdge returns an empty flowchart edge builder with segment length
// one.
func NewEdge() *EdgeBuilder {
	return &EdgeBuilder{inner: diagram.NewEdge[*Node](), length: 1}
}

// ID sets an explicit numeric identifier.
func (b *EdgeBuilder) ID(id uint64) *EdgeBuilder {
	b.id = id
	b.idSet = true
	return b
}

// Label sets the edge label. It returns [diagram.ErrEmptyEdgeLabel]
// wrapped in a [diagram.EdgeError] when the label is empty.
func (b *EdgeBuilder) Label(label string) (*EdgeBuilder, error) {
	if _, err := b.inner.Label(label); err != nil {
		return b, err
	}
	return b, nil
}

// Source sets the source node.
func (b *EdgeBuilder) Source(node *Node) *EdgeBuilder {
	b.inner.Source(node)
	return b
}

// Destination sets the destination node.
func (b *EdgeBuilder) Destination(node *Node) *EdgeBuilder {
	b.inner.Destination(node)
	return b
}

// Line sets the line style.
func (b *EdgeBuilder) Line(style diagram.LineStyle) *EdgeBuilder {
	b.inner.Line(style)
	return b
}

// LeftArrow sets the arrow shape at the source end. Shapes outside the
// flowchart set yield [diagram.ErrIncompatibleLeftArrow] wrapped in a
// [diagram.EdgeError].
func (b *EdgeBuilder) LeftArrow(shape diagram.ArrowShape) (*EdgeBuilder, error) {
	if _, err := b.inner.LeftArrow(shape); err != nil {
		return b, err
	}
	return b, nil
}

// RightArrow sets the arrow shape at the destination end. Shapes
// outside the flowchart set yield [diagram.ErrIncompatibleRightArrow]
// wrapped in a [diagram.EdgeError].
func (b *EdgeBuilder) RightArrow(shape diagram.ArrowShape) (*EdgeBuilder, error) {
	if _, err := b.inner.RightArrow(shape); err != nil {
		return b, err
	}
	return b, nil
}

// StyleClass attaches a style class to the edge. It returns
// [diagram.ErrDuplicateClass] wrapped in a [diagram.StyleClassError]
// when a class of the same name is already attached.
func (b *EdgeBuilder) StyleClass(class *diagram.StyleClass) (*EdgeBuilder, error) {
	for _, existing := range b.classes {
		if existing.Name() == class.Name() {
			return b, &diagram.StyleClassError{Err: fmt.Errorf("%w: %q", diagram.ErrDuplicateClass, class.Name())}
		}
	}
	b.classes = append(b.classes, class)
	return b, nil
}

// StyleProperty attaches a style property to the edge. It returns
// [diagram.ErrDuplicateProperty] wrapped in a [diagram.StyleClassError]
// when a property of the same kind is already attached.
func (b *EdgeBuilder) StyleProperty(property diagram.StyleProperty) (*EdgeBuilder, error) {
	if slices.ContainsFunc(b.styles, property.SameKind) {
		return b, &diagram.StyleClassError{Err: fmt.Errorf("%w: %q", diagram.ErrDuplicateProperty, property)}
	}
	b.styles = append(b.styles, property)
	return b, nil
}

// CurveStyle sets the curve style.
func (b *EdgeBuilder) CurveStyle(style CurveStyle) *EdgeBuilder {
	b.curve = style
	return b
}

// Length sets the segment length. Zero is rejected at build time.
func (b *EdgeBuilder) Length(length uint8) *EdgeBuilder {
	b.length = length
	return b
}

// Build assembles the edge. A zero length yields
// [diagram.ErrInvalidEdgeLength] and a missing identifier
// [diagram.ErrMissingEdgeID], both wrapped in a [diagram.EdgeError],
// before the generic source and destination checks run. The builder
// remains usable afterwards.
func (b *EdgeBuilder) Build() (*Edge, error) {
	if b.length == 0 {
		return nil, &diagram.EdgeError{Err: diagram.ErrInvalidEdgeLength}
	}
	if !b.idSet {
		return nil, &diagram.EdgeError{Err: diagram.ErrMissingEdgeID}
	}
	return b.buildWith(b.id)
}

// BuildEdge implements [diagram.EdgeSource].
func (b *EdgeBuilder) BuildEdge() (*Edge, error) {
	return b.Build()
}

// buildWith assembles the edge under the given identifier, ignoring any
// identifier set on the builder.
func (b *EdgeBuilder) buildWith(id uint64) (*Edge, error) {
	if b.length == 0 {
		return nil, &diagram.EdgeError{Err: diagram.ErrInvalidEdgeLength}
	}
	inner, err := b.inner.Build()
	if err != nil {
		return nil, err
	}
	return &Edge{
		id:      id,
		edge:    inner,
		classes: slices.Clone(b.classes),
		styles:  slices.Clone(b.styles),
		curve:   b.curve,
		length:  b.length,
	}, nil
}
