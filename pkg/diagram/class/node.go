package class

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Node is a class in a class diagram: a name, an optional stereotype
// annotation such as "interface", and ordered attribute and method
// members. Nodes are immutable once built and are shared by reference.
//
// Style properties attach to class nodes but have no rendered form;
// only style classes appear, as cssClass lines.
type Node struct {
	node       *diagram.GenericNode
	click      diagram.ClickEvent
	annotation string
	annotated  bool
	attributes []Attribute
	methods    []Method
}

// ID returns the numeric identifier, rendered as "v<id>".
func (n *Node) ID() uint64 { return n.node.ID() }

// Label returns the class name shown in the diagram.
func (n *Node) Label() string { return n.node.Label() }

// Classes returns the attached style classes in insertion order.
func (n *Node) Classes() []*diagram.StyleClass { return n.node.Classes() }

// Styles returns the attached style properties in insertion order.
func (n *Node) Styles() []diagram.StyleProperty { return n.node.Styles() }

// CompatibleArrowShape reports whether the shape is legal on class
// diagram edges. Class diagrams accept [diagram.ArrowTriangle],
// [diagram.ArrowStar], [diagram.ArrowCircle] and [diagram.ArrowNormal].
// The receiver may be nil.
func (*Node) CompatibleArrowShape(shape diagram.ArrowShape) bool {
	switch shape {
	case diagram.ArrowTriangle, diagram.ArrowStar, diagram.ArrowCircle, diagram.ArrowNormal:
		return true
	}
	return false
}

// Annotation returns the stereotype annotation, if one is set.
func (n *Node) Annotation() (string, bool) { return n.annotation, n.annotated }

// ClickEvent returns the click event, if one is set.
func (n *Node) ClickEvent() (diagram.ClickEvent, bool) { return n.click, n.click != nil }

// Attributes returns the attributes in insertion order.
func (n *Node) Attributes() []Attribute { return slices.Clone(n.attributes) }

// Methods returns the methods in insertion order.
func (n *Node) Methods() []Method { return slices.Clone(n.methods) }

// AppendTabbed writes the class block at the given depth: the header,
// then the annotation, attribute and method lines indented inside the
// braces, then the click binding and one cssClass line per attached
// style class.
func (n *Node) AppendTabbed(sb *strings.Builder, depth int) {
	indent := diagram.Indent(depth)
	fmt.Fprintf(sb, "%sclass %s%d[\"%s\"] {\n", indent, diagram.NodePrefix, n.ID(), n.Label())
	if n.annotated {
		fmt.Fprintf(sb, "%s    <<%s>>\n", indent, n.annotation)
	}
	for _, attribute := range n.attributes {
		fmt.Fprintf(sb, "%s    %s\n", indent, attribute)
	}
	for _, method := range n.methods {
		fmt.Fprintf(sb, "%s    %s\n", indent, method)
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
	if n.click != nil {
		fmt.Fprintf(sb, "%sclick %s%d %s\n", indent, diagram.NodePrefix, n.ID(), n.click)
	}
	for _, class := range n.node.Classes() {
		fmt.Fprintf(sb, "%scssClass %s%d %s\n", indent, diagram.NodePrefix, n.ID(), class.Name())
	}
}

// String renders the node at depth zero.
func (n *Node) String() string {
	var sb strings.Builder
	n.AppendTabbed(&sb, 0)
	return sb.String()
}

// NodeBuilder assembles a [Node]. Use [NewNode] to obtain one. The
// builder stays usable after Build, so one builder can stamp out
// several nodes.
type NodeBuilder struct {
	inner      *diagram.GenericNodeBuilder
	click      diagram.ClickEvent
	annotation string
	annotated  bool
	attributes []Attribute
	methods    []Method
}

// NewNode returns an empty class node builder.
func NewNode() *NodeBuilder {
	return &NodeBuilder{inner: diagram.NewNode()}
}

// ID sets an explicit numeric identifier.
func (b *NodeBuilder) ID(id uint64) *NodeBuilder {
	b.inner.ID(id)
	return b
}

// GetID returns the identifier set so far, if any.
func (b *NodeBuilder) GetID() (uint64, bool) { return b.inner.GetID() }

// Label sets the class name. It returns [diagram.ErrEmptyNodeLabel]
// wrapped in a [diagram.NodeError] when the label is empty.
func (b *NodeBuilder) Label(label string) (*NodeBuilder, error) {
	if _, err := b.inner.Label(label); err != nil {
		return b, err
	}
	return b, nil
}

// GetLabel returns the label set so far, if any.
func (b *NodeBuilder) GetLabel() (string, bool) { return b.inner.GetLabel() }

// StyleClass attaches a style class. It returns
// [diagram.ErrDuplicateClass] wrapped in a [diagram.StyleClassError]
// when a class of the same name is already attached.
func (b *NodeBuilder) StyleClass(class *diagram.StyleClass) (*NodeBuilder, error) {
	if _, err := b.inner.StyleClass(class); err != nil {
		return b, err
	}
	return b, nil
}

// StyleProperty attaches a direct style property. It returns
// [diagram.ErrDuplicateProperty] wrapped in a [diagram.StyleClassError]
// when a property of the same kind is already attached.
func (b *NodeBuilder) StyleProperty(property diagram.StyleProperty) (*NodeBuilder, error) {
	if _, err := b.inner.StyleProperty(property); err != nil {
		return b, err
	}
	return b, nil
}

// StyleProperties returns the direct style properties added so far.
func (b *NodeBuilder) StyleProperties() []diagram.StyleProperty { return b.inner.StyleProperties() }

// ClickEvent attaches a click event to the node.
func (b *NodeBuilder) ClickEvent(event diagram.ClickEvent) *NodeBuilder {
	b.click = event
	return b
}

// Annotation sets the stereotype annotation rendered as <<annotation>>
// at the top of the class block.
func (b *NodeBuilder) Annotation(annotation string) *NodeBuilder {
	b.annotation = annotation
	b.annotated = true
	return b
}

// Attribute appends an attribute member.
func (b *NodeBuilder) Attribute(attribute Attribute) *NodeBuilder {
	b.attributes = append(b.attributes, attribute)
	return b
}

// Method appends a method member.
func (b *NodeBuilder) Method(method Method) *NodeBuilder {
	b.methods = append(b.methods, method)
	return b
}

// Build assembles the node. A missing id or label yields the
// corresponding [diagram.NodeError].
func (b *NodeBuilder) Build() (*Node, error) {
	inner, err := b.inner.Build()
	if err != nil {
		return nil, err
	}
	return b.finish(inner), nil
}

// BuildNode implements [diagram.NodeSource]. The identifier falls back
// to autoID when none was set explicitly; the builder is not mutated.
func (b *NodeBuilder) BuildNode(autoID uint64) (*Node, error) {
	inner, err := b.inner.BuildNode(autoID)
	if err != nil {
		return nil, err
	}
	return b.finish(inner), nil
}

func (b *NodeBuilder) finish(inner *diagram.GenericNode) *Node {
	return &Node{
		node:       inner,
		click:      b.click,
		annotation: b.annotation,
		annotated:  b.annotated,
		attributes: slices.Clone(b.attributes),
		methods:    slices.Clone(b.methods),
	}
}
