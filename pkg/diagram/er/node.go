package er

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Node is an entity in an entity relationship diagram: a label plus an
// ordered list of typed attribute rows. Nodes are immutable once built
// and are shared by reference.
type Node struct {
	node       *diagram.GenericNode
	attributes []Attribute
}

// ID returns the numeric identifier, rendered as "v<id>".
func (n *Node) ID() uint64 { return n.node.ID() }

// Label returns the entity name shown in the diagram.
func (n *Node) Label() string { return n.node.Label() }

// Classes returns the attached style classes in insertion order.
func (n *Node) Classes() []*diagram.StyleClass { return n.node.Classes() }

// Styles returns the attached style properties in insertion order.
func (n *Node) Styles() []diagram.StyleProperty { return n.node.Styles() }

// CompatibleArrowShape reports whether the shape is legal on entity
// relationship edges. These diagrams accept only the four cardinality
// shapes [diagram.ArrowOneOrMore], [diagram.ArrowExactlyOne],
// [diagram.ArrowZeroOrOne] and [diagram.ArrowZeroOrMore]. The receiver
// may be nil.
func (*Node) CompatibleArrowShape(shape diagram.ArrowShape) bool {
	switch shape {
	case diagram.ArrowOneOrMore, diagram.ArrowExactlyOne, diagram.ArrowZeroOrOne, diagram.ArrowZeroOrMore:
		return true
	}
	return false
}

// Attributes returns the attribute rows in insertion order.
func (n *Node) Attributes() []Attribute { return slices.Clone(n.attributes) }

// AppendTabbed writes the entity statement at the given depth. An
// entity without attributes is a single line; attributes open a brace
// block with one row per attribute. One class line follows per
// attached style class.
func (n *Node) AppendTabbed(sb *strings.Builder, depth int) {
	indent := diagram.Indent(depth)
	fmt.Fprintf(sb, "%s%s%d[\"%s\"]", indent, diagram.NodePrefix, n.ID(), n.Label())
	if len(n.attributes) == 0 {
		sb.WriteString("\n")
	} else {
		sb.WriteString(" {\n")
		for _, attribute := range n.attributes {
			fmt.Fprintf(sb, "%s    %s\n", indent, attribute)
		}
		sb.WriteString(indent)
		sb.WriteString("}\n")
	}
	for _, class := range n.node.Classes() {
		fmt.Fprintf(sb, "%sclass %s%d %s\n", indent, diagram.NodePrefix, n.ID(), class.Name())
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
	attributes []Attribute
}

// NewNode returns an empty entity builder.
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

// Label sets the entity name. It returns [diagram.ErrEmptyNodeLabel]
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

// Attribute appends a typed attribute row.
func (b *NodeBuilder) Attribute(attributeType, name string) *NodeBuilder {
	b.attributes = append(b.attributes, NewAttribute(attributeType, name))
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
		attributes: slices.Clone(b.attributes),
	}
}
