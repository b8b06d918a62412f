package manifest

import (
	"github.com/matzehuels/mermaid/pkg/diagram"
	"github.com/matzehuels/mermaid/pkg/diagram/class"
	"github.com/matzehuels/mermaid/pkg/diagram/er"
	"github.com/matzehuels/mermaid/pkg/diagram/flowchart"
	"github.com/matzehuels/mermaid/pkg/errors"
)

// Document is a built manifest: exactly one of the flavor diagrams is
// set, matching Kind.
type Document struct {
	Kind Kind
	Name string

	Flowchart *flowchart.Diagram
	Class     *class.Diagram
	ER        *er.Diagram
}

// Text renders the diagram as Mermaid text.
func (d *Document) Text() string {
	switch d.Kind {
	case KindFlowchart:
		return d.Flowchart.String()
	case KindClass:
		return d.Class.String()
	case KindER:
		return d.ER.String()
	}
	return ""
}

// Counts returns the number of nodes and edges in the diagram.
func (d *Document) Counts() (nodes, edges int) {
	switch d.Kind {
	case KindFlowchart:
		return len(d.Flowchart.Nodes()), len(d.Flowchart.Edges())
	case KindClass:
		return len(d.Class.Nodes()), len(d.Class.Edges())
	case KindER:
		return len(d.ER.Nodes()), len(d.ER.Edges())
	}
	return 0, 0
}

// Validate checks a decoded manifest for structural problems: the kind
// must be known, node ids must be unique and well formed, and every
// reference (edge endpoints, subnodes, style classes) must resolve to a
// declaration. Kind-specific fields on the wrong kind are rejected
// here too, so a flowchart manifest with class attributes fails before
// any diagram is built. Vocabulary (shapes, themes, arrows) is checked
// during Build where the values are parsed.
func Validate(m *Manifest) error {
	if m == nil {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest is nil")
	}
	kind := Kind(m.Kind)
	if !ValidKinds[kind] {
		return errors.New(errors.ErrCodeInvalidKind, "unknown diagram kind %q", m.Kind)
	}
	if m.Name != "" {
		if err := errors.ValidateDiagramName(m.Name); err != nil {
			return err
		}
	}

	classNames := make(map[string]bool, len(m.Classes))
	for i, c := range m.Classes {
		if c.Name == "" {
			return errors.New(errors.ErrCodeInvalidClass, "class %d: name is required", i)
		}
		if classNames[c.Name] {
			return errors.New(errors.ErrCodeInvalidClass, "class %q declared twice", c.Name)
		}
		if len(c.Styles) == 0 {
			return errors.New(errors.ErrCodeInvalidClass, "class %q: at least one style is required", c.Name)
		}
		classNames[c.Name] = true
	}

	nodeIndex := make(map[string]int, len(m.Nodes))
	for i, n := range m.Nodes {
		if err := errors.ValidateNodeRef(n.ID); err != nil {
			return err
		}
		if _, ok := nodeIndex[n.ID]; ok {
			return errors.New(errors.ErrCodeInvalidNode, "node %q declared twice", n.ID)
		}
		nodeIndex[n.ID] = i
	}

	for _, n := range m.Nodes {
		if n.Label == "" {
			return errors.New(errors.ErrCodeInvalidNode, "node %q: label is required", n.ID)
		}
		for _, name := range n.Classes {
			if !classNames[name] {
				return errors.New(errors.ErrCodeInvalidNode, "node %q: unknown class %q", n.ID, name)
			}
		}
		if n.Link != nil {
			if err := errors.ValidateURL(n.Link.URL); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidNode, err, "node %q link", n.ID)
			}
		}
		if err := validateNodeFields(kind, n); err != nil {
			return err
		}
		for _, ref := range n.Subnodes {
			j, ok := nodeIndex[ref]
			if !ok {
				return errors.New(errors.ErrCodeInvalidNode, "node %q: unknown subnode %q", n.ID, ref)
			}
			if ref == n.ID {
				return errors.New(errors.ErrCodeInvalidNode, "node %q cannot contain itself", n.ID)
			}
			if j > nodeIndex[n.ID] {
				return errors.New(errors.ErrCodeInvalidNode,
					"node %q: subnode %q must be declared before its parent", n.ID, ref)
			}
		}
	}

	for i, e := range m.Edges {
		if e.Source == "" || e.Target == "" {
			return errors.New(errors.ErrCodeInvalidEdge, "edge %d: source and target are required", i)
		}
		if _, ok := nodeIndex[e.Source]; !ok {
			return errors.New(errors.ErrCodeInvalidEdge, "edge %d: unknown source %q", i, e.Source)
		}
		if _, ok := nodeIndex[e.Target]; !ok {
			return errors.New(errors.ErrCodeInvalidEdge, "edge %d: unknown target %q", i, e.Target)
		}
		for _, name := range e.Classes {
			if !classNames[name] {
				return errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown class %q", e.Source, e.Target, name)
			}
		}
		if err := validateEdgeFields(kind, e); err != nil {
			return err
		}
	}

	return validateConfigFields(kind, m.Config)
}

// validateNodeFields rejects node fields that belong to another kind.
func validateNodeFields(kind Kind, n Node) error {
	reject := func(field string) error {
		return errors.New(errors.ErrCodeInvalidNode, "node %q: %s is not valid in a %s diagram", n.ID, field, kind)
	}
	switch kind {
	case KindFlowchart:
		if n.Annotation != "" {
			return reject("annotation")
		}
		if len(n.Attributes) > 0 {
			return reject("attributes")
		}
		if len(n.Methods) > 0 {
			return reject("methods")
		}
	case KindClass:
		if n.Shape != "" {
			return reject("shape")
		}
		if len(n.Subnodes) > 0 {
			return reject("subnodes")
		}
		if n.Direction != "" {
			return reject("direction")
		}
	case KindER:
		if n.Shape != "" {
			return reject("shape")
		}
		if len(n.Subnodes) > 0 {
			return reject("subnodes")
		}
		if n.Direction != "" {
			return reject("direction")
		}
		if n.Annotation != "" {
			return reject("annotation")
		}
		if len(n.Methods) > 0 {
			return reject("methods")
		}
		if n.Link != nil {
			return reject("link")
		}
	}

	for _, a := range n.Attributes {
		if a.Name == "" || a.Type == "" {
			return errors.New(errors.ErrCodeInvalidNode, "node %q: attributes need a name and a type", n.ID)
		}
		if kind == KindER && a.Visibility != "" {
			return errors.New(errors.ErrCodeInvalidNode, "node %q: attribute visibility is not valid in an er diagram", n.ID)
		}
	}
	for _, method := range n.Methods {
		if method.Name == "" {
			return errors.New(errors.ErrCodeInvalidNode, "node %q: methods need a name", n.ID)
		}
		for _, a := range method.Args {
			if a.Name == "" || a.Type == "" {
				return errors.New(errors.ErrCodeInvalidNode, "node %q: method %q arguments need a name and a type", n.ID, method.Name)
			}
		}
	}
	return nil
}

// validateEdgeFields rejects edge fields that belong to another kind.
func validateEdgeFields(kind Kind, e Edge) error {
	reject := func(field string) error {
		return errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: %s is not valid in a %s diagram", e.Source, e.Target, field, kind)
	}
	switch kind {
	case KindFlowchart:
		if e.LeftMultiplicity != "" || e.RightMultiplicity != "" {
			return reject("multiplicity")
		}
		if e.Cardinality != "" {
			return reject("cardinality")
		}
	case KindClass:
		if e.Cardinality != "" {
			return reject("cardinality")
		}
		if e.Length > 0 {
			return reject("length")
		}
		if e.Curve != "" {
			return reject("curve")
		}
		if len(e.Classes) > 0 {
			return reject("classes")
		}
		if len(e.Styles) > 0 {
			return reject("styles")
		}
	case KindER:
		if e.LeftMultiplicity != "" || e.RightMultiplicity != "" {
			return reject("multiplicity")
		}
		if e.Length > 0 {
			return reject("length")
		}
		if e.Curve != "" {
			return reject("curve")
		}
		if len(e.Classes) > 0 {
			return reject("classes")
		}
		if len(e.Styles) > 0 {
			return reject("styles")
		}
		if e.Cardinality != "" && (e.LeftArrow != "" || e.RightArrow != "") {
			return errors.New(errors.ErrCodeInvalidEdge,
				"edge %s->%s: cardinality and explicit arrows are mutually exclusive", e.Source, e.Target)
		}
	}
	return nil
}

// validateConfigFields rejects configuration toggles that belong to
// another kind.
func validateConfigFields(kind Kind, c Config) error {
	reject := func(field string) error {
		return errors.New(errors.ErrCodeInvalidConfig, "%s is not valid in a %s diagram", field, kind)
	}
	if kind != KindFlowchart {
		if c.HTMLLabels != nil {
			return reject("html_labels")
		}
		if c.MarkdownAutoWrap != nil {
			return reject("markdown_auto_wrap")
		}
		if c.Curve != "" {
			return reject("curve")
		}
	}
	if kind != KindClass && c.HideEmptyMembersBox != nil {
		return reject("hide_empty_members_box")
	}
	return nil
}

// Build validates the manifest and constructs the typed diagram for
// its kind. Every declaration runs through the diagram builders, so
// the core invariants hold for declarative input too: style classes
// exist before use, edges connect registered nodes, labels are never
// empty. Node ids in the rendered text are positional (v0, v1, ...);
// the manifest ids exist only to wire references.
func Build(m *Manifest) (*Document, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}

	doc := &Document{Kind: Kind(m.Kind), Name: m.Name}
	var err error
	switch doc.Kind {
	case KindFlowchart:
		doc.Flowchart, err = buildFlowchart(m)
	case KindClass:
		doc.Class, err = buildClass(m)
	case KindER:
		doc.ER, err = buildER(m)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// classRegistrar is the style class surface the three flavor builders
// share through their embedded generic builder.
type classRegistrar interface {
	StyleClass(*diagram.StyleClassBuilder) (*diagram.StyleClass, error)
}

// buildClasses registers every declared style class and returns them
// by manifest name for attachment to nodes and edges.
func buildClasses(b classRegistrar, classes []Class) (map[string]*diagram.StyleClass, error) {
	registered := make(map[string]*diagram.StyleClass, len(classes))
	for _, c := range classes {
		cb, err := diagram.NewStyleClass().Name(c.Name)
		if err != nil {
			return nil, classErr(c.Name, err)
		}
		for _, s := range c.Styles {
			property, err := parseStyleProperty(s.Property, s.Value)
			if err != nil {
				return nil, classErr(c.Name, err)
			}
			if cb, err = cb.Property(property); err != nil {
				return nil, classErr(c.Name, err)
			}
		}
		class, err := b.StyleClass(cb)
		if err != nil {
			return nil, classErr(c.Name, err)
		}
		registered[c.Name] = class
	}
	return registered, nil
}

func buildFlowchart(m *Manifest) (*flowchart.Diagram, error) {
	b := flowchart.NewBuilder()
	classes, err := buildClasses(b, m.Classes)
	if err != nil {
		return nil, err
	}

	built := make(map[string]*flowchart.Node, len(m.Nodes))
	for _, n := range m.Nodes {
		nb, err := flowchartNode(n, classes, built)
		if err != nil {
			return nil, err
		}
		node, err := b.Node(nb)
		if err != nil {
			return nil, nodeErr(n.ID, err)
		}
		built[n.ID] = node
	}

	for _, e := range m.Edges {
		eb, err := flowchartEdge(e, classes, built)
		if err != nil {
			return nil, err
		}
		if _, err := b.Edge(eb); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}

	if err := applyFlowchartConfig(b, m.Config); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func flowchartNode(n Node, classes map[string]*diagram.StyleClass, built map[string]*flowchart.Node) (*flowchart.NodeBuilder, error) {
	nb := flowchart.NewNode()
	if n.Shape != "" {
		shape, ok := flowchart.ParseShape(n.Shape)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidNode, "node %q: unknown shape %q", n.ID, n.Shape)
		}
		nb = nb.Shape(shape)
	}
	nb, err := nb.Label(n.Label)
	if err != nil {
		return nil, nodeErr(n.ID, err)
	}
	if nb, err = attachNodeStyles(nb, n, classes); err != nil {
		return nil, err
	}
	if n.Link != nil {
		nb = nb.ClickEvent(navigation(*n.Link))
	}
	for _, ref := range n.Subnodes {
		if nb, err = nb.Subnode(built[ref]); err != nil {
			return nil, nodeErr(n.ID, err)
		}
	}
	if n.Direction != "" {
		direction, ok := parseDirection(n.Direction)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidNode, "node %q: unknown direction %q", n.ID, n.Direction)
		}
		nb = nb.Direction(direction)
	}
	return nb, nil
}

func flowchartEdge(e Edge, classes map[string]*diagram.StyleClass, built map[string]*flowchart.Node) (*flowchart.EdgeBuilder, error) {
	eb := flowchart.NewEdge().Source(built[e.Source]).Destination(built[e.Target])
	var err error
	if e.Label != "" {
		if eb, err = eb.Label(e.Label); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	if e.Line != "" {
		line, ok := parseLineStyle(e.Line)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown line style %q", e.Source, e.Target, e.Line)
		}
		eb = eb.Line(line)
	}
	if e.LeftArrow != "" {
		shape, ok := parseArrowShape(e.LeftArrow)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown arrow %q", e.Source, e.Target, e.LeftArrow)
		}
		if eb, err = eb.LeftArrow(shape); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	if e.RightArrow != "" {
		shape, ok := parseArrowShape(e.RightArrow)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown arrow %q", e.Source, e.Target, e.RightArrow)
		}
		if eb, err = eb.RightArrow(shape); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	if e.Length > 0 {
		eb = eb.Length(e.Length)
	}
	if e.Curve != "" {
		curve, ok := flowchart.ParseCurveStyle(e.Curve)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown curve %q", e.Source, e.Target, e.Curve)
		}
		eb = eb.CurveStyle(curve)
	}
	for _, name := range e.Classes {
		if eb, err = eb.StyleClass(classes[name]); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	for _, s := range e.Styles {
		property, err := parseStyleProperty(s.Property, s.Value)
		if err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
		if eb, err = eb.StyleProperty(property); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	return eb, nil
}

func applyFlowchartConfig(b *flowchart.Builder, c Config) error {
	cb := flowchart.NewConfiguration()
	var err error
	if c.Title != "" {
		if cb, err = cb.Title(c.Title); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "title")
		}
	}
	if c.Direction != "" {
		direction, ok := parseDirection(c.Direction)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown direction %q", c.Direction)
		}
		cb = cb.Direction(direction)
	}
	if c.Renderer != "" {
		renderer, ok := parseRenderer(c.Renderer)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown renderer %q", c.Renderer)
		}
		cb = cb.Renderer(renderer)
	}
	if c.Theme != "" {
		theme, ok := parseTheme(c.Theme)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown theme %q", c.Theme)
		}
		cb = cb.Theme(theme)
	}
	if c.Look != "" {
		look, ok := parseLook(c.Look)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown look %q", c.Look)
		}
		cb = cb.Look(look)
	}
	if c.HTMLLabels != nil {
		cb = cb.HTMLLabels(*c.HTMLLabels)
	}
	if c.MarkdownAutoWrap != nil {
		cb = cb.MarkdownAutoWrap(*c.MarkdownAutoWrap)
	}
	if c.Curve != "" {
		curve, ok := flowchart.ParseCurveStyle(c.Curve)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown curve %q", c.Curve)
		}
		cb = cb.CurveStyle(curve)
	}
	if err := b.Configuration(cb); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "configuration")
	}
	return nil
}

func buildClass(m *Manifest) (*class.Diagram, error) {
	b := class.NewBuilder()
	classes, err := buildClasses(b, m.Classes)
	if err != nil {
		return nil, err
	}

	built := make(map[string]*class.Node, len(m.Nodes))
	for _, n := range m.Nodes {
		nb, err := classNode(n, classes)
		if err != nil {
			return nil, err
		}
		node, err := b.Node(nb)
		if err != nil {
			return nil, nodeErr(n.ID, err)
		}
		built[n.ID] = node
	}

	for _, e := range m.Edges {
		eb, err := classEdge(e, built)
		if err != nil {
			return nil, err
		}
		if _, err := b.Edge(eb); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}

	if err := applyClassConfig(b, m.Config); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func classNode(n Node, classes map[string]*diagram.StyleClass) (*class.NodeBuilder, error) {
	nb := class.NewNode()
	if n.Annotation != "" {
		nb = nb.Annotation(n.Annotation)
	}
	for _, a := range n.Attributes {
		attribute := class.NewAttribute(a.Type, a.Name)
		if a.Visibility != "" {
			visibility, ok := class.ParseVisibility(a.Visibility)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidNode, "node %q: unknown visibility %q", n.ID, a.Visibility)
			}
			attribute = attribute.Visibility(visibility)
		}
		nb = nb.Attribute(attribute)
	}
	for _, method := range n.Methods {
		arguments := make([]class.Argument, 0, len(method.Args))
		for _, a := range method.Args {
			arguments = append(arguments, class.NewArgument(a.Type, a.Name))
		}
		member := class.NewMethod(method.Returns, method.Name, arguments...)
		if method.Visibility != "" {
			visibility, ok := class.ParseVisibility(method.Visibility)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidNode, "node %q: unknown visibility %q", n.ID, method.Visibility)
			}
			member = member.Visibility(visibility)
		}
		nb = nb.Method(member)
	}
	nb, err := nb.Label(n.Label)
	if err != nil {
		return nil, nodeErr(n.ID, err)
	}
	if nb, err = attachNodeStyles(nb, n, classes); err != nil {
		return nil, err
	}
	if n.Link != nil {
		nb = nb.ClickEvent(navigation(*n.Link))
	}
	return nb, nil
}

func classEdge(e Edge, built map[string]*class.Node) (*class.EdgeBuilder, error) {
	eb := class.NewEdge().Source(built[e.Source]).Destination(built[e.Target])
	var err error
	if e.Label != "" {
		if eb, err = eb.Label(e.Label); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	if e.Line != "" {
		line, ok := parseLineStyle(e.Line)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown line style %q", e.Source, e.Target, e.Line)
		}
		eb = eb.Line(line)
	}
	if e.LeftArrow != "" {
		shape, ok := parseArrowShape(e.LeftArrow)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown arrow %q", e.Source, e.Target, e.LeftArrow)
		}
		if eb, err = eb.LeftArrow(shape); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	if e.RightArrow != "" {
		shape, ok := parseArrowShape(e.RightArrow)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown arrow %q", e.Source, e.Target, e.RightArrow)
		}
		if eb, err = eb.RightArrow(shape); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	if e.LeftMultiplicity != "" {
		multiplicity, ok := class.ParseMultiplicity(e.LeftMultiplicity)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown multiplicity %q", e.Source, e.Target, e.LeftMultiplicity)
		}
		eb = eb.LeftMultiplicity(multiplicity)
	}
	if e.RightMultiplicity != "" {
		multiplicity, ok := class.ParseMultiplicity(e.RightMultiplicity)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown multiplicity %q", e.Source, e.Target, e.RightMultiplicity)
		}
		eb = eb.RightMultiplicity(multiplicity)
	}
	return eb, nil
}

func applyClassConfig(b *class.Builder, c Config) error {
	cb := class.NewConfiguration()
	var err error
	if c.Title != "" {
		if cb, err = cb.Title(c.Title); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "title")
		}
	}
	if c.Direction != "" {
		direction, ok := parseDirection(c.Direction)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown direction %q", c.Direction)
		}
		cb = cb.Direction(direction)
	}
	if c.Renderer != "" {
		renderer, ok := parseRenderer(c.Renderer)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown renderer %q", c.Renderer)
		}
		cb = cb.Renderer(renderer)
	}
	if c.Theme != "" {
		theme, ok := parseTheme(c.Theme)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown theme %q", c.Theme)
		}
		cb = cb.Theme(theme)
	}
	if c.Look != "" {
		look, ok := parseLook(c.Look)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown look %q", c.Look)
		}
		cb = cb.Look(look)
	}
	if c.HideEmptyMembersBox != nil {
		cb = cb.HideEmptyMembersBox(*c.HideEmptyMembersBox)
	}
	if err := b.Configuration(cb); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "configuration")
	}
	return nil
}

// cardinalities maps the manifest shorthand onto the er edge
// constructors that set both arrow ends at once.
var cardinalities = map[string]func(source, destination *er.Node) *er.EdgeBuilder{
	"zero-or-one":  er.ZeroOrOne,
	"one-to-one":   er.OneToOne,
	"zero-or-more": er.ZeroOrMore,
	"one-or-more":  er.OneOrMore,
}

func buildER(m *Manifest) (*er.Diagram, error) {
	b := er.NewBuilder()
	classes, err := buildClasses(b, m.Classes)
	if err != nil {
		return nil, err
	}

	built := make(map[string]*er.Node, len(m.Nodes))
	for _, n := range m.Nodes {
		nb := er.NewNode()
		for _, a := range n.Attributes {
			nb = nb.Attribute(a.Type, a.Name)
		}
		nb, err := nb.Label(n.Label)
		if err != nil {
			return nil, nodeErr(n.ID, err)
		}
		if nb, err = attachNodeStyles(nb, n, classes); err != nil {
			return nil, err
		}
		node, err := b.Node(nb)
		if err != nil {
			return nil, nodeErr(n.ID, err)
		}
		built[n.ID] = node
	}

	for _, e := range m.Edges {
		eb, err := erEdge(e, built)
		if err != nil {
			return nil, err
		}
		if _, err := b.Edge(eb); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}

	if err := applyERConfig(b, m.Config); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func erEdge(e Edge, built map[string]*er.Node) (*er.EdgeBuilder, error) {
	var eb *er.EdgeBuilder
	if e.Cardinality != "" {
		construct, ok := cardinalities[e.Cardinality]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown cardinality %q", e.Source, e.Target, e.Cardinality)
		}
		eb = construct(built[e.Source], built[e.Target])
	} else {
		eb = er.NewEdge().Source(built[e.Source]).Destination(built[e.Target])
	}

	var err error
	if e.Label != "" {
		if eb, err = eb.Label(e.Label); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	if e.Line != "" {
		line, ok := parseLineStyle(e.Line)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown line style %q", e.Source, e.Target, e.Line)
		}
		eb = eb.Line(line)
	}
	if e.LeftArrow != "" {
		shape, ok := parseArrowShape(e.LeftArrow)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown arrow %q", e.Source, e.Target, e.LeftArrow)
		}
		if eb, err = eb.LeftArrow(shape); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	if e.RightArrow != "" {
		shape, ok := parseArrowShape(e.RightArrow)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "edge %s->%s: unknown arrow %q", e.Source, e.Target, e.RightArrow)
		}
		if eb, err = eb.RightArrow(shape); err != nil {
			return nil, edgeErr(e.Source, e.Target, err)
		}
	}
	return eb, nil
}

func applyERConfig(b *er.Builder, c Config) error {
	cb := er.NewConfiguration()
	var err error
	if c.Title != "" {
		if cb, err = cb.Title(c.Title); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "title")
		}
	}
	if c.Direction != "" {
		direction, ok := parseDirection(c.Direction)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown direction %q", c.Direction)
		}
		cb = cb.Direction(direction)
	}
	if c.Renderer != "" {
		renderer, ok := parseRenderer(c.Renderer)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown renderer %q", c.Renderer)
		}
		cb = cb.Renderer(renderer)
	}
	if c.Theme != "" {
		theme, ok := parseTheme(c.Theme)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown theme %q", c.Theme)
		}
		cb = cb.Theme(theme)
	}
	if c.Look != "" {
		look, ok := parseLook(c.Look)
		if !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown look %q", c.Look)
		}
		cb = cb.Look(look)
	}
	if err := b.Configuration(cb); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "configuration")
	}
	return nil
}

// styleTarget is the style attachment surface shared by the flavor
// node builders.
type styleTarget[B any] interface {
	StyleClass(*diagram.StyleClass) (B, error)
	StyleProperty(diagram.StyleProperty) (B, error)
}

// attachNodeStyles attaches declared style classes and inline style
// properties to a node builder.
func attachNodeStyles[B styleTarget[B]](nb B, n Node, classes map[string]*diagram.StyleClass) (B, error) {
	var zero B
	var err error
	for _, name := range n.Classes {
		if nb, err = nb.StyleClass(classes[name]); err != nil {
			return zero, nodeErr(n.ID, err)
		}
	}
	for _, s := range n.Styles {
		property, err := parseStyleProperty(s.Property, s.Value)
		if err != nil {
			return zero, nodeErr(n.ID, err)
		}
		if nb, err = nb.StyleProperty(property); err != nil {
			return zero, nodeErr(n.ID, err)
		}
	}
	return nb, nil
}

// navigation converts a manifest link into a click event.
func navigation(l Link) diagram.Navigation {
	nav := diagram.Navigate(l.URL).NewTab(l.NewTab).Anchor(l.Anchor)
	if l.Tooltip != "" {
		nav = nav.Tooltip(l.Tooltip)
	}
	return nav
}

func classErr(name string, err error) error {
	return errors.Wrap(errors.ErrCodeBuildFailed, err, "class %q", name)
}

func nodeErr(id string, err error) error {
	return errors.Wrap(errors.ErrCodeBuildFailed, err, "node %q", id)
}

func edgeErr(source, target string, err error) error {
	return errors.Wrap(errors.ErrCodeBuildFailed, err, "edge %s->%s", source, target)
}
