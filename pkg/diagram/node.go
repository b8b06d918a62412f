package diagram

import (
	"fmt"
	"slices"
)

// Node is the capability set a type must provide to participate in a
// diagram: an identifier, a label, attached style classes and properties,
// and a report of which arrow shapes edges pointing at it may use.
//
// CompatibleArrowShape is a property of the node type, not of the node
// value: implementations must answer correctly on the zero value,
// including a nil pointer, because edge builders probe compatibility
// before any endpoint is attached.
type Node interface {
	// ID returns the numeric identifier, rendered as "v<id>".
	ID() uint64
	// Label returns the display label.
	Label() string
	// Classes returns the attached style classes in insertion order.
	Classes() []*StyleClass
	// Styles returns the attached style properties in insertion order.
	Styles() []StyleProperty
	// CompatibleArrowShape reports whether edges touching this node
	// type may use the given arrow shape.
	CompatibleArrowShape(shape ArrowShape) bool
}

// GenericNode is the minimal node: an identifier, a label and optional
// styling. It accepts every arrow shape. Diagram flavors embed it and
// add their own fields.
type GenericNode struct {
	id      uint64
	label   string
	classes []*StyleClass
	style   []StyleProperty
}

// ID returns the numeric identifier of the node.
func (n *GenericNode) ID() uint64 {
	return n.id
}

// Label returns the display label of the node.
func (n *GenericNode) Label() string {
	return n.label
}

// Classes returns the style classes attached to the node in insertion
// order.
func (n *GenericNode) Classes() []*StyleClass {
	return slices.Clone(n.classes)
}

// Styles returns the style properties attached to the node in insertion
// order.
func (n *GenericNode) Styles() []StyleProperty {
	return slices.Clone(n.style)
}

// CompatibleArrowShape reports true for every shape. Works on a nil
// receiver.
func (n *GenericNode) CompatibleArrowShape(ArrowShape) bool {
	return true
}

// GenericNodeBuilder assembles a [GenericNode]. A failed call leaves the
// builder unchanged. The identifier may be left unset when the node is
// registered through [Builder.Node], which assigns the next free one.
type GenericNodeBuilder struct {
	id      uint64
	idSet   bool
	label   string
	classes []*StyleClass
	style   []StyleProperty
}

// NewNode returns an empty builder for a generic node.
func NewNode() *GenericNodeBuilder {
	return &GenericNodeBuilder{}
}

// ID sets the numeric identifier of the node.
func (b *GenericNodeBuilder) ID(id uint64) *GenericNodeBuilder {
	b.id = id
	b.idSet = true
	return b
}

// GetID returns the configured identifier, if one has been set.
func (b *GenericNodeBuilder) GetID() (uint64, bool) {
	return b.id, b.idSet
}

// Label sets the display label. The label must not be empty.
func (b *GenericNodeBuilder) Label(label string) (*GenericNodeBuilder, error) {
	if label == "" {
		return b, &NodeError{Err: ErrEmptyNodeLabel}
	}
	b.label = label
	return b, nil
}

// GetLabel returns the configured label, if one has been set.
func (b *GenericNodeBuilder) GetLabel() (string, bool) {
	return b.label, b.label != ""
}

// StyleClass attaches a style class. Attaching two classes with the same
// name is rejected. The class must be registered on the diagram builder
// before the node itself is registered.
func (b *GenericNodeBuilder) StyleClass(class *StyleClass) (*GenericNodeBuilder, error) {
	for _, existing := range b.classes {
		if existing.Name() == class.Name() {
			return b, &StyleClassError{Err: fmt.Errorf("%w: %q", ErrDuplicateClass, class.Name())}
		}
	}
	b.classes = append(b.classes, class)
	return b, nil
}

// StyleProperty attaches a style property. At most one property per kind
// is allowed.
func (b *GenericNodeBuilder) StyleProperty(property StyleProperty) (*GenericNodeBuilder, error) {
	if slices.ContainsFunc(b.style, property.SameKind) {
		return b, &StyleClassError{Err: fmt.Errorf("%w: %q", ErrDuplicateProperty, property)}
	}
	b.style = append(b.style, property)
	return b, nil
}

// StyleProperties returns the properties attached so far in insertion
// order.
func (b *GenericNodeBuilder) StyleProperties() []StyleProperty {
	return slices.Clone(b.style)
}

// Build assembles the node. It fails when the identifier or the label is
// missing. The builder remains usable afterwards.
func (b *GenericNodeBuilder) Build() (*GenericNode, error) {
	if !b.idSet {
		return nil, &NodeError{Err: ErrMissingNodeID}
	}
	return b.buildWith(b.id)
}

// BuildNode implements [NodeSource]. When no identifier has been set it
// uses the provided automatic one, without mutating the builder.
func (b *GenericNodeBuilder) BuildNode(autoID uint64) (*GenericNode, error) {
	if !b.idSet {
		return b.buildWith(autoID)
	}
	return b.buildWith(b.id)
}

func (b *GenericNodeBuilder) buildWith(id uint64) (*GenericNode, error) {
	if b.label == "" {
		return nil, &NodeError{Err: ErrMissingNodeLabel}
	}
	return &GenericNode{
		id:      id,
		label:   b.label,
		classes: slices.Clone(b.classes),
		style:   slices.Clone(b.style),
	}, nil
}
