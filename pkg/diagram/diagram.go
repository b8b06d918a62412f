package diagram

import (
	"fmt"
	"slices"
)

// NodeHandle constrains the node type of a diagram to comparable node
// implementations, so the builder can check edge endpoint membership by
// identity. Pointer node types satisfy it naturally.
type NodeHandle interface {
	Node
	comparable
}

// NodeSource produces a node for registration. [Builder.Node] passes the
// current node count as autoID; implementations fall back to it when no
// explicit identifier was assigned, which yields the ids 0..n-1 for n
// nodes registered without one.
type NodeSource[N Node] interface {
	BuildNode(autoID uint64) (N, error)
}

// EdgeSource produces an edge for registration.
type EdgeSource[E any] interface {
	BuildEdge() (E, error)
}

// ConfigSource produces a configuration.
type ConfigSource[C any] interface {
	BuildConfiguration() (C, error)
}

// Diagram is an immutable collection of nodes, edges and style classes
// under one configuration. The three type parameters select the flavor:
// the node implementation, the edge implementation over that node type,
// and the configuration type. Values are produced by [Builder.Build] and
// are safe for concurrent readers.
type Diagram[N NodeHandle, E Edge[N], C Configuration] struct {
	styleClasses []*StyleClass
	nodes        []N
	edges        []E
	config       C
}

// Configuration returns the configuration of the diagram.
func (d *Diagram[N, E, C]) Configuration() C {
	return d.config
}

// Nodes returns the nodes in registration order.
func (d *Diagram[N, E, C]) Nodes() []N {
	return slices.Clone(d.nodes)
}

// Edges returns the edges in registration order.
func (d *Diagram[N, E, C]) Edges() []E {
	return slices.Clone(d.edges)
}

// StyleClasses returns the style classes in registration order.
func (d *Diagram[N, E, C]) StyleClasses() []*StyleClass {
	return slices.Clone(d.styleClasses)
}

// NodeByID returns the first node with the given identifier.
func (d *Diagram[N, E, C]) NodeByID(id uint64) (N, bool) {
	for _, node := range d.nodes {
		if node.ID() == id {
			return node, true
		}
	}
	var zero N
	return zero, false
}

// StyleClassByName returns the style class registered under the given
// name.
func (d *Diagram[N, E, C]) StyleClassByName(name string) (*StyleClass, bool) {
	for _, class := range d.styleClasses {
		if class.Name() == name {
			return class, true
		}
	}
	return nil, false
}

// Builder accumulates nodes, edges and style classes, validating cross
// references as they arrive: nodes may only use registered style
// classes, edges may only connect registered nodes. A failed operation
// registers nothing, so the builder is always in a consistent state.
//
// The registration order is the render order. Queries run linear scans;
// diagrams are small construction-time artifacts, so no index is kept.
type Builder[N NodeHandle, E Edge[N], C Configuration] struct {
	diagram Diagram[N, E, C]
}

// NewBuilder returns an empty builder whose configuration starts at
// defaultConfig. The diagram flavors wrap this with their own
// constructors; most callers want those instead.
func NewBuilder[N NodeHandle, E Edge[N], C Configuration](defaultConfig C) *Builder[N, E, C] {
	return &Builder[N, E, C]{diagram: Diagram[N, E, C]{config: defaultConfig}}
}

// StyleClass builds and registers a style class. It fails when the
// class itself fails to build or when a class of the same name is
// already registered. The returned pointer is the identity callers
// attach to nodes and edges built afterwards.
func (b *Builder[N, E, C]) StyleClass(builder *StyleClassBuilder) (*StyleClass, error) {
	class, err := builder.Build()
	if err != nil {
		return nil, err
	}
	if _, ok := b.StyleClassByName(class.Name()); ok {
		return nil, &StyleClassError{Err: fmt.Errorf("%w: %q", ErrDuplicateClass, class.Name())}
	}
	b.diagram.styleClasses = append(b.diagram.styleClasses, class)
	return class, nil
}

// Node builds and registers a node. When the source carries no explicit
// identifier, the current node count is assigned. After the build, every
// style class the node declares must already be registered on this
// builder; otherwise the node is rejected and not stored.
func (b *Builder[N, E, C]) Node(src NodeSource[N]) (N, error) {
	var zero N
	node, err := src.BuildNode(uint64(len(b.diagram.nodes)))
	if err != nil {
		return zero, err
	}
	for _, class := range node.Classes() {
		if _, ok := b.StyleClassByName(class.Name()); !ok {
			return zero, &StyleClassError{Err: fmt.Errorf("%w: %q", ErrUnknownClass, class.Name())}
		}
	}
	b.diagram.nodes = append(b.diagram.nodes, node)
	return node, nil
}

// Edge builds and registers an edge. Both endpoints must be nodes
// previously registered on this builder, compared by identity.
func (b *Builder[N, E, C]) Edge(src EdgeSource[E]) (E, error) {
	var zero E
	edge, err := src.BuildEdge()
	if err != nil {
		return zero, err
	}
	if !slices.Contains(b.diagram.nodes, edge.Source()) {
		return zero, &EdgeError{Err: fmt.Errorf("%w: %q", ErrSourceNotFound, edge.Source().Label())}
	}
	if !slices.Contains(b.diagram.nodes, edge.Destination()) {
		return zero, &EdgeError{Err: fmt.Errorf("%w: %q", ErrDestinationNotFound, edge.Destination().Label())}
	}
	b.diagram.edges = append(b.diagram.edges, edge)
	return edge, nil
}

// Configuration builds and replaces the configuration wholesale. The
// last successful call wins.
func (b *Builder[N, E, C]) Configuration(src ConfigSource[C]) error {
	config, err := src.BuildConfiguration()
	if err != nil {
		return err
	}
	b.diagram.config = config
	return nil
}

// Nodes returns the nodes registered so far in registration order.
func (b *Builder[N, E, C]) Nodes() []N {
	return slices.Clone(b.diagram.nodes)
}

// NodeByID returns the first registered node with the given identifier.
func (b *Builder[N, E, C]) NodeByID(id uint64) (N, bool) {
	return b.diagram.NodeByID(id)
}

// StyleClassByName returns the style class registered under the given
// name.
func (b *Builder[N, E, C]) StyleClassByName(name string) (*StyleClass, bool) {
	return b.diagram.StyleClassByName(name)
}

// NumberOfNodes returns the count of registered nodes.
func (b *Builder[N, E, C]) NumberOfNodes() int {
	return len(b.diagram.nodes)
}

// NumberOfEdges returns the count of registered edges.
func (b *Builder[N, E, C]) NumberOfEdges() int {
	return len(b.diagram.edges)
}

// Build snapshots the accumulated state into an immutable diagram. The
// conversion is total: all invariants were enforced during population,
// so nothing is validated here. The builder remains usable; later
// additions do not affect diagrams built earlier.
func (b *Builder[N, E, C]) Build() *Diagram[N, E, C] {
	return &Diagram[N, E, C]{
		styleClasses: slices.Clone(b.diagram.styleClasses),
		nodes:        slices.Clone(b.diagram.nodes),
		edges:        slices.Clone(b.diagram.edges),
		config:       b.diagram.config,
	}
}

// GenericDiagram is a diagram over the generic node, edge and
// configuration types. It has no rendered form of its own; the flavor
// packages define the renderable diagrams.
type GenericDiagram = Diagram[*GenericNode, *GenericEdge[*GenericNode], *GenericConfiguration]

// GenericBuilder builds a [GenericDiagram].
type GenericBuilder = Builder[*GenericNode, *GenericEdge[*GenericNode], *GenericConfiguration]

// NewGenericBuilder returns an empty builder for a generic diagram with
// an all-defaults configuration.
func NewGenericBuilder() *GenericBuilder {
	return NewBuilder[*GenericNode, *GenericEdge[*GenericNode]](&GenericConfiguration{})
}
