package diagram

import "strings"

// Direction is the orientation of a diagram or subgraph. The zero value
// is [LeftToRight].
type Direction uint8

const (
	// LeftToRight renders as "LR".
	LeftToRight Direction = iota
	// TopToBottom renders as "TB".
	TopToBottom
	// RightToLeft renders as "RL".
	RightToLeft
	// BottomToTop renders as "BT".
	BottomToTop
)

// Flip returns the direction rotated by a quarter turn, exchanging the
// horizontal and vertical orientations.
func (d Direction) Flip() Direction {
	switch d {
	case LeftToRight:
		return TopToBottom
	case TopToBottom:
		return LeftToRight
	case RightToLeft:
		return BottomToTop
	default:
		return RightToLeft
	}
}

func (d Direction) String() string {
	switch d {
	case TopToBottom:
		return "TB"
	case RightToLeft:
		return "RL"
	case BottomToTop:
		return "BT"
	default:
		return "LR"
	}
}

// Renderer is the layout engine requested through the front-matter. The
// zero value is [Dagre].
type Renderer uint8

const (
	// Dagre is the default layout engine.
	Dagre Renderer = iota
	// EclipseLayoutKernel is the ELK layout engine.
	EclipseLayoutKernel
)

func (r Renderer) String() string {
	if r == EclipseLayoutKernel {
		return "elk"
	}
	return "dagre"
}

// Theme is the color theme requested through the front-matter. The zero
// value is [ThemeDefault].
type Theme uint8

const (
	// ThemeDefault renders as "default".
	ThemeDefault Theme = iota
	// ThemeMermaidChart renders as "mc".
	ThemeMermaidChart
	// ThemeNeo renders as "neo".
	ThemeNeo
	// ThemeNeoDark renders as "neo-dark".
	ThemeNeoDark
	// ThemeForest renders as "forest".
	ThemeForest
	// ThemeBase renders as "base".
	ThemeBase
	// ThemeDark renders as "dark".
	ThemeDark
	// ThemeNeutral renders as "neutral".
	ThemeNeutral
	// ThemeRedux renders as "redux".
	ThemeRedux
	// ThemeReduxDark renders as "redux-dark".
	ThemeReduxDark
)

func (t Theme) String() string {
	switch t {
	case ThemeMermaidChart:
		return "mc"
	case ThemeNeo:
		return "neo"
	case ThemeNeoDark:
		return "neo-dark"
	case ThemeForest:
		return "forest"
	case ThemeBase:
		return "base"
	case ThemeDark:
		return "dark"
	case ThemeNeutral:
		return "neutral"
	case ThemeRedux:
		return "redux"
	case ThemeReduxDark:
		return "redux-dark"
	default:
		return "default"
	}
}

// Look is the drawing style requested through the front-matter. The zero
// value is [LookClassic].
type Look uint8

const (
	// LookClassic renders as "classic".
	LookClassic Look = iota
	// LookNeo renders as "neo".
	LookNeo
	// LookHandDrawn renders as "handDrawn".
	LookHandDrawn
)

func (l Look) String() string {
	switch l {
	case LookNeo:
		return "neo"
	case LookHandDrawn:
		return "handDrawn"
	default:
		return "classic"
	}
}

// Configuration is the capability set a diagram configuration must
// provide: the optional title, the requested layout engine and the body
// orientation.
type Configuration interface {
	// Title returns the diagram title, if one is set.
	Title() (string, bool)
	// Renderer returns the requested layout engine.
	Renderer() Renderer
	// Direction returns the orientation of the diagram body.
	Direction() Direction
	// Theme returns the requested color theme.
	Theme() Theme
	// Look returns the requested drawing style.
	Look() Look
}

// GenericConfiguration holds the settings shared by every diagram
// flavor. The zero value is the all-defaults configuration and renders
// as the empty string.
type GenericConfiguration struct {
	title     string
	renderer  Renderer
	direction Direction
	theme     Theme
	look      Look
}

// Title returns the diagram title, if one is set.
func (c *GenericConfiguration) Title() (string, bool) {
	return c.title, c.title != ""
}

// Renderer returns the requested layout engine.
func (c *GenericConfiguration) Renderer() Renderer {
	return c.renderer
}

// Direction returns the orientation of the diagram body.
func (c *GenericConfiguration) Direction() Direction {
	return c.direction
}

// Theme returns the requested color theme.
func (c *GenericConfiguration) Theme() Theme {
	return c.theme
}

// Look returns the requested drawing style.
func (c *GenericConfiguration) Look() Look {
	return c.look
}

// AppendTabbed renders the YAML front-matter block. The block is
// suppressed entirely while the title is unset and the renderer is at
// its default, so untouched configurations add no noise to the output.
// Front-matter always starts at the line head, so the depth is unused.
func (c *GenericConfiguration) AppendTabbed(sb *strings.Builder, _ int) {
	if c.title == "" && c.renderer == Dagre {
		return
	}
	sb.WriteString("---\n")
	sb.WriteString("config:\n")
	sb.WriteString("  layout: " + c.renderer.String() + "\n")
	sb.WriteString("  theme: " + c.theme.String() + "\n")
	sb.WriteString("  look: " + c.look.String() + "\n")
	if c.title != "" {
		sb.WriteString("title: " + c.title + "\n")
	}
	sb.WriteString("---\n")
}

// String renders the front-matter block.
func (c *GenericConfiguration) String() string {
	var sb strings.Builder
	c.AppendTabbed(&sb, 0)
	return sb.String()
}

// GenericConfigurationBuilder assembles a [GenericConfiguration]. A
// failed call leaves the builder unchanged.
type GenericConfigurationBuilder struct {
	config GenericConfiguration
}

// NewConfiguration returns a builder holding the all-defaults
// configuration.
func NewConfiguration() *GenericConfigurationBuilder {
	return &GenericConfigurationBuilder{}
}

// Title sets the diagram title. The title must not be empty.
func (b *GenericConfigurationBuilder) Title(title string) (*GenericConfigurationBuilder, error) {
	if title == "" {
		return b, &ConfigError{Err: ErrEmptyTitle}
	}
	b.config.title = title
	return b, nil
}

// Renderer sets the layout engine.
func (b *GenericConfigurationBuilder) Renderer(renderer Renderer) *GenericConfigurationBuilder {
	b.config.renderer = renderer
	return b
}

// Direction sets the orientation of the diagram body.
func (b *GenericConfigurationBuilder) Direction(direction Direction) *GenericConfigurationBuilder {
	b.config.direction = direction
	return b
}

// Theme sets the color theme.
func (b *GenericConfigurationBuilder) Theme(theme Theme) *GenericConfigurationBuilder {
	b.config.theme = theme
	return b
}

// Look sets the drawing style.
func (b *GenericConfigurationBuilder) Look(look Look) *GenericConfigurationBuilder {
	b.config.look = look
	return b
}

// Build assembles the configuration. The builder remains usable
// afterwards.
func (b *GenericConfigurationBuilder) Build() (*GenericConfiguration, error) {
	config := b.config
	return &config, nil
}

// BuildConfiguration implements [ConfigSource].
func (b *GenericConfigurationBuilder) BuildConfiguration() (*GenericConfiguration, error) {
	return b.Build()
}
