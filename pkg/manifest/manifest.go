package manifest

// Kind identifies the diagram flavor a manifest declares.
type Kind string

// Supported diagram kinds.
const (
	KindFlowchart Kind = "flowchart"
	KindClass     Kind = "class"
	KindER        Kind = "er"
)

// ValidKinds enumerates the supported diagram kinds.
var ValidKinds = map[Kind]bool{
	KindFlowchart: true,
	KindClass:     true,
	KindER:        true,
}

// Manifest is a diagram declared as data.
type Manifest struct {
	// Kind selects the diagram flavor: flowchart, class, or er.
	Kind string `toml:"kind" json:"kind"`

	// Name is an optional human-readable diagram name, used by the
	// store and for export file naming.
	Name string `toml:"name" json:"name,omitempty"`

	Config  Config  `toml:"config" json:"config"`
	Classes []Class `toml:"classes" json:"classes,omitempty"`
	Nodes   []Node  `toml:"nodes" json:"nodes,omitempty"`
	Edges   []Edge  `toml:"edges" json:"edges,omitempty"`
}

// Config carries the diagram front-matter configuration.
// The boolean toggles are pointers so that "absent" and "false" stay
// distinguishable after decoding.
type Config struct {
	Title     string `toml:"title" json:"title,omitempty"`
	Direction string `toml:"direction" json:"direction,omitempty"`
	Renderer  string `toml:"renderer" json:"renderer,omitempty"`
	Theme     string `toml:"theme" json:"theme,omitempty"`
	Look      string `toml:"look" json:"look,omitempty"`

	// Flowchart only.
	HTMLLabels       *bool  `toml:"html_labels" json:"html_labels,omitempty"`
	MarkdownAutoWrap *bool  `toml:"markdown_auto_wrap" json:"markdown_auto_wrap,omitempty"`
	Curve            string `toml:"curve" json:"curve,omitempty"`

	// Class diagrams only.
	HideEmptyMembersBox *bool `toml:"hide_empty_members_box" json:"hide_empty_members_box,omitempty"`
}

// Class declares a reusable style class (a Mermaid classDef).
type Class struct {
	Name   string  `toml:"name" json:"name"`
	Styles []Style `toml:"styles" json:"styles"`
}

// Style is one style property as a name/value pair, e.g.
// {property = "fill", value = "#ff0000"}.
type Style struct {
	Property string `toml:"property" json:"property"`
	Value    string `toml:"value" json:"value"`
}

// Node declares one diagram node. Beyond id and label, the accepted
// fields depend on the manifest kind; using a field on the wrong kind is
// a build error.
type Node struct {
	// ID is the manifest-local node reference ([a-zA-Z0-9_-]).
	ID    string `toml:"id" json:"id"`
	Label string `toml:"label" json:"label"`

	Classes []string `toml:"classes" json:"classes,omitempty"`
	Styles  []Style  `toml:"styles" json:"styles,omitempty"`

	// Flowchart only.
	Shape     string   `toml:"shape" json:"shape,omitempty"`
	Subnodes  []string `toml:"subnodes" json:"subnodes,omitempty"`
	Direction string   `toml:"direction" json:"direction,omitempty"`

	// Class diagrams only.
	Annotation string   `toml:"annotation" json:"annotation,omitempty"`
	Methods    []Method `toml:"methods" json:"methods,omitempty"`

	// Class diagrams and er diagrams.
	Attributes []Attribute `toml:"attributes" json:"attributes,omitempty"`

	// Flowchart and class diagrams.
	Link *Link `toml:"link" json:"link,omitempty"`
}

// Attribute declares a class attribute or an entity attribute.
type Attribute struct {
	Name string `toml:"name" json:"name"`
	Type string `toml:"type" json:"type"`

	// Visibility applies to class diagrams only: public, private,
	// protected, or package (symbols +, -, #, ~ also accepted).
	Visibility string `toml:"visibility" json:"visibility,omitempty"`
}

// Method declares a class method.
type Method struct {
	Name       string     `toml:"name" json:"name"`
	Visibility string     `toml:"visibility" json:"visibility,omitempty"`
	Args       []Argument `toml:"args" json:"args,omitempty"`

	// Returns is the return type; empty renders as void.
	Returns string `toml:"returns" json:"returns,omitempty"`
}

// Argument is a typed method parameter.
type Argument struct {
	Name string `toml:"name" json:"name"`
	Type string `toml:"type" json:"type"`
}

// Link declares a click-to-navigate event on a node.
type Link struct {
	URL     string `toml:"url" json:"url"`
	Tooltip string `toml:"tooltip" json:"tooltip,omitempty"`
	NewTab  bool   `toml:"new_tab" json:"new_tab,omitempty"`
	Anchor  bool   `toml:"anchor" json:"anchor,omitempty"`
}

// Edge declares one edge between two declared node ids. As with nodes,
// kind-specific fields on the wrong kind are build errors.
type Edge struct {
	Source string `toml:"source" json:"source"`
	Target string `toml:"target" json:"target"`
	Label  string `toml:"label" json:"label,omitempty"`

	// Line is the line style: solid (default), thick, or dashed.
	Line string `toml:"line" json:"line,omitempty"`

	LeftArrow  string `toml:"left_arrow" json:"left_arrow,omitempty"`
	RightArrow string `toml:"right_arrow" json:"right_arrow,omitempty"`

	// Class diagrams only.
	LeftMultiplicity  string `toml:"left_multiplicity" json:"left_multiplicity,omitempty"`
	RightMultiplicity string `toml:"right_multiplicity" json:"right_multiplicity,omitempty"`

	// Cardinality is an er shorthand setting both arrows at once:
	// zero-or-one, one-to-one, zero-or-more, or one-or-more.
	Cardinality string `toml:"cardinality" json:"cardinality,omitempty"`

	// Flowchart only.
	Length  uint8    `toml:"length" json:"length,omitempty"`
	Curve   string   `toml:"curve" json:"curve,omitempty"`
	Classes []string `toml:"classes" json:"classes,omitempty"`
	Styles  []Style  `toml:"styles" json:"styles,omitempty"`
}
