package diagram

import "errors"

// Node construction errors.
var (
	// ErrEmptyNodeLabel is returned by [NodeBuilder.Label] when the label
	// is the empty string.
	ErrEmptyNodeLabel = errors.New("node label cannot be empty")
	// ErrEmptyNodeID is returned when a caller-supplied node identifier is
	// the empty string. Numeric identifiers never trigger it; it guards
	// layers that derive nodes from named external sources.
	ErrEmptyNodeID = errors.New("node identifier cannot be empty")
	// ErrInvalidNodeID is returned when a caller-supplied node identifier
	// contains characters outside [A-Za-z0-9_-].
	ErrInvalidNodeID = errors.New("node identifier contains invalid characters")
	// ErrDuplicateNode is returned when the same node is attached twice,
	// for example by subnode registration on a subgraph.
	ErrDuplicateNode = errors.New("node already exists")
	// ErrMissingNodeID is returned by node builders when no identifier was
	// assigned before the build. Registering through [Builder.Node]
	// assigns one automatically.
	ErrMissingNodeID = errors.New("node identifier is missing")
	// ErrMissingNodeLabel is returned by node builders when no label was
	// set before the build.
	ErrMissingNodeLabel = errors.New("node label is missing")
	// ErrMissingSubnodes is returned by node builders that accept a
	// subgraph direction when the direction is set but no subnodes were
	// registered.
	ErrMissingSubnodes = errors.New("subnodes are missing")
)

// Edge construction errors.
var (
	// ErrEmptyEdgeLabel is returned by [EdgeBuilder.Label] when the label
	// is the empty string.
	ErrEmptyEdgeLabel = errors.New("edge label cannot be empty")
	// ErrIncompatibleLeftArrow is returned by [EdgeBuilder.LeftArrow] when
	// the node type of the edge does not support the arrow shape.
	ErrIncompatibleLeftArrow = errors.New("incompatible left arrow shape")
	// ErrIncompatibleRightArrow is returned by [EdgeBuilder.RightArrow]
	// when the node type of the edge does not support the arrow shape.
	ErrIncompatibleRightArrow = errors.New("incompatible right arrow shape")
	// ErrSourceNotFound is returned by [Builder.Edge] when the source node
	// was never registered on the same builder.
	ErrSourceNotFound = errors.New("source node not found")
	// ErrDestinationNotFound is returned by [Builder.Edge] when the
	// destination node was never registered on the same builder.
	ErrDestinationNotFound = errors.New("destination node not found")
	// ErrMissingSource is returned by edge builders when no source node
	// was set before the build.
	ErrMissingSource = errors.New("source node is missing")
	// ErrMissingDestination is returned by edge builders when no
	// destination node was set before the build.
	ErrMissingDestination = errors.New("destination node is missing")
	// ErrMissingEdgeID is returned by edge builders that require an
	// identifier when none was assigned before the build.
	ErrMissingEdgeID = errors.New("edge identifier is missing")
	// ErrInvalidEdgeLength is returned by edge builders when the requested
	// segment length is zero.
	ErrInvalidEdgeLength = errors.New("edge length must be greater than zero")
)

// Configuration errors.
var (
	// ErrEmptyTitle is returned by configuration builders when the title
	// is the empty string.
	ErrEmptyTitle = errors.New("configuration title cannot be empty")
)

// Style class errors.
var (
	// ErrEmptyClassName is returned by [StyleClassBuilder.Name] when the
	// name is the empty string.
	ErrEmptyClassName = errors.New("style class name cannot be empty")
	// ErrDuplicateClass is returned when a style class name is registered
	// twice on the same builder or diagram.
	ErrDuplicateClass = errors.New("duplicate style class")
	// ErrDuplicateProperty is returned by [StyleClassBuilder.Property]
	// when a property of the same kind is already present.
	ErrDuplicateProperty = errors.New("duplicate style property")
	// ErrUnknownClass is returned by [Builder.Node] when a node references
	// a style class that was never registered on the same builder.
	ErrUnknownClass = errors.New("unknown style class")
	// ErrMissingClassName is returned by [StyleClassBuilder.Build] when no
	// name was set.
	ErrMissingClassName = errors.New("style class name is missing")
	// ErrMissingProperties is returned by [StyleClassBuilder.Build] when
	// no properties were added.
	ErrMissingProperties = errors.New("style class properties are missing")
)

// Error is the union of the construction error families. Every failure
// surfaced by [Builder] operations satisfies it, so callers can handle all
// diagram construction problems through a single type switch and still
// reach the underlying sentinel through [errors.Is].
type Error interface {
	error
	diagramError()
}

// NodeError wraps failures raised while building or registering a node.
type NodeError struct{ Err error }

func (e *NodeError) Error() string { return "node error: " + e.Err.Error() }

// Unwrap exposes the wrapped cause to [errors.Is] and [errors.As].
func (e *NodeError) Unwrap() error { return e.Err }

func (e *NodeError) diagramError() {}

// EdgeError wraps failures raised while building or registering an edge.
type EdgeError struct{ Err error }

func (e *EdgeError) Error() string { return "edge error: " + e.Err.Error() }

// Unwrap exposes the wrapped cause to [errors.Is] and [errors.As].
func (e *EdgeError) Unwrap() error { return e.Err }

func (e *EdgeError) diagramError() {}

// ConfigError wraps failures raised while building a configuration.
type ConfigError struct{ Err error }

func (e *ConfigError) Error() string { return "configuration error: " + e.Err.Error() }

// Unwrap exposes the wrapped cause to [errors.Is] and [errors.As].
func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) diagramError() {}

// StyleClassError wraps failures raised while building or resolving a
// style class.
type StyleClassError struct{ Err error }

func (e *StyleClassError) Error() string { return "style class error: " + e.Err.Error() }

// Unwrap exposes the wrapped cause to [errors.Is] and [errors.As].
func (e *StyleClassError) Unwrap() error { return e.Err }

func (e *StyleClassError) diagramError() {}
