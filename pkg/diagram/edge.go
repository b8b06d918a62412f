package diagram

import "fmt"

// Edge is the capability set an edge type must provide to participate in
// a diagram. The node type parameter keeps endpoints typed: a flowchart
// edge hands back flowchart nodes, not a bare interface.
type Edge[N any] interface {
	// Label returns the edge label, if one is set.
	Label() (string, bool)
	// Source returns the source node.
	Source() N
	// Destination returns the destination node.
	Destination() N
	// Line returns the line style of the edge.
	Line() LineStyle
	// Classes returns the attached style classes in insertion order.
	Classes() []*StyleClass
	// LeftArrow returns the arrow shape at the source end, if any.
	LeftArrow() (ArrowShape, bool)
	// RightArrow returns the arrow shape at the destination end, if any.
	RightArrow() (ArrowShape, bool)
}

// GenericEdge is the minimal edge: two endpoints, an optional label, a
// line style and optional arrowheads. Diagram flavors embed it and add
// their own fields.
type GenericEdge[N Node] struct {
	label       string
	source      N
	destination N
	line        LineStyle
	leftArrow   ArrowShape
	leftSet     bool
	rightArrow  ArrowShape
	rightSet    bool
}

// Label returns the edge label, if one is set.
func (e *GenericEdge[N]) Label() (string, bool) {
	return e.label, e.label != ""
}

// Source returns the source node.
func (e *GenericEdge[N]) Source() N {
	return e.source
}

// Destination returns the destination node.
func (e *GenericEdge[N]) Destination() N {
	return e.destination
}

// Line returns the line style of the edge.
func (e *GenericEdge[N]) Line() LineStyle {
	return e.line
}

// Classes returns no classes. The generic edge carries none; flavors
// that support edge classes shadow this method.
func (e *GenericEdge[N]) Classes() []*StyleClass {
	return nil
}

// LeftArrow returns the arrow shape at the source end, if any.
func (e *GenericEdge[N]) LeftArrow() (ArrowShape, bool) {
	return e.leftArrow, e.leftSet
}

// RightArrow returns the arrow shape at the destination end, if any.
func (e *GenericEdge[N]) RightArrow() (ArrowShape, bool) {
	return e.rightArrow, e.rightSet
}

// GenericEdgeBuilder assembles a [GenericEdge]. A failed call leaves the
// builder unchanged.
type GenericEdgeBuilder[N Node] struct {
	label       string
	source      N
	sourceSet   bool
	destination N
	destSet     bool
	line        LineStyle
	leftArrow   ArrowShape
	leftSet     bool
	rightArrow  ArrowShape
	rightSet    bool
}

// NewEdge returns an empty builder for a generic edge between nodes of
// type N.
func NewEdge[N Node]() *GenericEdgeBuilder[N] {
	return &GenericEdgeBuilder[N]{}
}

// Label sets the edge label. The label must not be empty.
func (b *GenericEdgeBuilder[N]) Label(label string) (*GenericEdgeBuilder[N], error) {
	if label == "" {
		return b, &EdgeError{Err: ErrEmptyEdgeLabel}
	}
	b.label = label
	return b, nil
}

// Source sets the source node of the edge.
func (b *GenericEdgeBuilder[N]) Source(node N) *GenericEdgeBuilder[N] {
	b.source = node
	b.sourceSet = true
	return b
}

// Destination sets the destination node of the edge.
func (b *GenericEdgeBuilder[N]) Destination(node N) *GenericEdgeBuilder[N] {
	b.destination = node
	b.destSet = true
	return b
}

// Line sets the line style of the edge.
func (b *GenericEdgeBuilder[N]) Line(style LineStyle) *GenericEdgeBuilder[N] {
	b.line = style
	return b
}

// LeftArrow sets the arrow shape at the source end. Shapes the node type
// does not support are rejected.
func (b *GenericEdgeBuilder[N]) LeftArrow(shape ArrowShape) (*GenericEdgeBuilder[N], error) {
	var probe N
	if !probe.CompatibleArrowShape(shape) {
		return b, &EdgeError{Err: fmt.Errorf("%w: %q", ErrIncompatibleLeftArrow, shape.Left())}
	}
	b.leftArrow = shape
	b.leftSet = true
	return b, nil
}

// RightArrow sets the arrow shape at the destination end. Shapes the
// node type does not support are rejected.
func (b *GenericEdgeBuilder[N]) RightArrow(shape ArrowShape) (*GenericEdgeBuilder[N], error) {
	var probe N
	if !probe.CompatibleArrowShape(shape) {
		return b, &EdgeError{Err: fmt.Errorf("%w: %q", ErrIncompatibleRightArrow, shape.Right())}
	}
	b.rightArrow = shape
	b.rightSet = true
	return b, nil
}

// Build assembles the edge. It fails when an endpoint is missing. The
// builder remains usable afterwards.
func (b *GenericEdgeBuilder[N]) Build() (*GenericEdge[N], error) {
	if !b.sourceSet {
		return nil, &EdgeError{Err: ErrMissingSource}
	}
	if !b.destSet {
		return nil, &EdgeError{Err: ErrMissingDestination}
	}
	return &GenericEdge[N]{
		label:       b.label,
		source:      b.source,
		destination: b.destination,
		line:        b.line,
		leftArrow:   b.leftArrow,
		leftSet:     b.leftSet,
		rightArrow:  b.rightArrow,
		rightSet:    b.rightSet,
	}, nil
}

// BuildEdge implements [EdgeSource].
func (b *GenericEdgeBuilder[N]) BuildEdge() (*GenericEdge[N], error) {
	return b.Build()
}
