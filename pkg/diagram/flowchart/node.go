package flowchart

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Node is a flowchart node. A node with subnodes renders as a subgraph
// block wrapping them; a node without renders as a single shaped
// statement. Nodes are immutable once built and are shared by
// reference.
type Node struct {
	node         *diagram.GenericNode
	click        diagram.ClickEvent
	shape        Shape
	subnodes     []*Node
	direction    diagram.Direction
	hasDirection bool
}

// ID returns the numeric identifier, rendered as "v<id>".
func (n *Node) ID() uint64 { return n.node.ID() }

// Label returns the display label.
func (n *Node) Label() string { return n.node.Label() }

// Classes returns the attached style classes in insertion order.
func (n *Node) Classes() []*diagram.StyleClass { return n.node.Classes() }

// Styles returns the attached style properties in insertion order.
func (n *Node) Styles() []diagram.StyleProperty { return n.node.Styles() }

// CompatibleArrowShape reports whether the shape is legal on flowchart
// edges. Flowcharts accept [diagram.ArrowNormal], [diagram.ArrowCircle]
// and [diagram.ArrowX]. The receiver may be nil.
func (*Node) CompatibleArrowShape(shape diagram.ArrowShape) bool {
	switch shape {
	case diagram.ArrowNormal, diagram.ArrowCircle, diagram.ArrowX:
		return true
	}
	return false
}

// Shape returns the node shape.
func (n *Node) Shape() Shape { return n.shape }

// ClickEvent returns the click event, if one is set.
func (n *Node) ClickEvent() (diagram.ClickEvent, bool) { return n.click, n.click != nil }

// Subnodes returns the subgraph members, sorted by id.
func (n *Node) Subnodes() []*Node { return slices.Clone(n.subnodes) }

// IsSubgraph reports whether the node renders as a subgraph block.
func (n *Node) IsSubgraph() bool { return len(n.subnodes) > 0 }

// Direction returns the subgraph direction, if one is set.
func (n *Node) Direction() (diagram.Direction, bool) { return n.direction, n.hasDirection }

// AppendTabbed writes the node statement at the given depth. Subgraph
// members are written one level deeper, inside a subgraph/end pair.
func (n *Node) AppendTabbed(sb *strings.Builder, depth int) {
	indent := diagram.Indent(depth)
	if len(n.subnodes) == 0 {
		fmt.Fprintf(sb, "%s%s%d@{shape: %s, label: \"%s\"}\n", indent, diagram.NodePrefix, n.ID(), n.shape, n.Label())
		if n.click != nil {
			fmt.Fprintf(sb, "%sclick %s%d %s\n", indent, diagram.NodePrefix, n.ID(), n.click)
		}
		for _, class := range n.node.Classes() {
			fmt.Fprintf(sb, "%sclass %s%d %s\n", indent, diagram.NodePrefix, n.ID(), class.Name())
		}
	} else {
		fmt.Fprintf(sb, "%ssubgraph %s%d [\"`%s`\"]\n", indent, diagram.NodePrefix, n.ID(), n.Label())
		if n.hasDirection {
			fmt.Fprintf(sb, "%s    direction %s\n", indent, n.direction)
		}
		for _, sub := range n.subnodes {
			sub.AppendTabbed(sb, depth+1)
		}
		sb.WriteString(indent)
		sb.WriteString("end\n")
	}
	if styles := n.node.Styles(); len(styles) > 0 {
		fmt.Fprintf(sb, "%sstyle %s%d ", indent, diagram.NodePrefix, n.ID())
		for i, property := range styles {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(property.String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
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
	inner        *diagram.GenericNodeBuilder
	click        diagram.ClickEvent
	shape        Shape
	subnodes     []*Node
	direction    diagram.Direction
	hasDirection bool
}

// NewNode returns an empty flowchart node builder.
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

// Label sets the display label. It returns [diagram.ErrEmptyNodeLabel]
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

// Shape sets the node shape.
func (b *NodeBuilder) Shape(shape Shape) *NodeBuilder {
	b.shape = shape
	return b
}

// Subnode adds a member node, turning this node into a subgraph. It
// returns [diagram.ErrDuplicateNode] wrapped in a [diagram.NodeError]
// when the same node was already added.
func (b *NodeBuilder) Subnode(subnode *Node) (*NodeBuilder, error) {
	if slices.Contains(b.subnodes, subnode) {
		return b, &diagram.NodeError{Err: fmt.Errorf("%w: %q", diagram.ErrDuplicateNode, subnode.Label())}
	}
	b.subnodes = append(b.subnodes, subnode)
	return b, nil
}

// IsSubgraph reports whether any subnodes have been added.
func (b *NodeBuilder) IsSubgraph() bool { return len(b.subnodes) > 0 }

// Direction sets the layout direction of the subgraph body.
func (b *NodeBuilder) Direction(direction diagram.Direction) *NodeBuilder {
	b.direction = direction
	b.hasDirection = true
	return b
}

// GetDirection returns the direction set so far, if any.
func (b *NodeBuilder) GetDirection() (diagram.Direction, bool) {
	return b.direction, b.hasDirection
}

// ResetDirection clears a previously set direction.
func (b *NodeBuilder) ResetDirection() *NodeBuilder {
	b.direction = 0
	b.hasDirection = false
	return b
}

// Build assembles the node. A direction without subnodes yields
// [diagram.ErrMissingSubnodes]; a missing id or label yields the
// corresponding [diagram.NodeError]. Subnodes are sorted by id, so
// subgraph bodies render deterministically regardless of insertion
// order.
func (b *NodeBuilder) Build() (*Node, error) {
	if err := b.checkSubnodes(); err != nil {
		return nil, err
	}
	inner, err := b.inner.Build()
	if err != nil {
		return nil, err
	}
	return b.finish(inner), nil
}

// BuildNode implements [diagram.NodeSource]. The identifier falls back
// to autoID when none was set explicitly; the builder is not mutated.
func (b *NodeBuilder) BuildNode(autoID uint64) (*Node, error) {
	if err := b.checkSubnodes(); err != nil {
		return nil, err
	}
	inner, err := b.inner.BuildNode(autoID)
	if err != nil {
		return nil, err
	}
	return b.finish(inner), nil
}

func (b *NodeBuilder) checkSubnodes() error {
	if b.hasDirection && len(b.subnodes) == 0 {
		return &diagram.NodeError{Err: diagram.ErrMissingSubnodes}
	}
	return nil
}

func (b *NodeBuilder) finish(inner *diagram.GenericNode) *Node {
	subnodes := slices.Clone(b.subnodes)
	slices.SortStableFunc(subnodes, func(a, z *Node) int {
		if c := cmp.Compare(a.ID(), z.ID()); c != 0 {
			return c
		}
		return strings.Compare(a.Label(), z.Label())
	})
	return &Node{
		node:         inner,
		click:        b.click,
		shape:        b.shape,
		subnodes:     subnodes,
		direction:    b.direction,
		hasDirection: b.hasDirection,
	}
}
