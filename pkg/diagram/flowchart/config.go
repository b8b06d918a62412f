package flowchart

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Configuration carries the generic diagram settings plus the
// flowchart-specific toggles. The zero value renders nothing and is the
// default for diagrams built with [NewBuilder].
//
// HTMLLabels, MarkdownAutoWrap and the diagram-wide curve style are
// stored for callers to inspect but are not part of the rendered
// front-matter.
type Configuration struct {
	generic          diagram.GenericConfiguration
	markdownAutoWrap bool
	htmlLabels       bool
	curveStyle       CurveStyle
}

// Title returns the diagram title, if one is set.
func (c *Configuration) Title() (string, bool) { return c.generic.Title() }

// Renderer returns the requested layout engine.
func (c *Configuration) Renderer() diagram.Renderer { return c.generic.Renderer() }

// Direction returns the orientation of the flowchart body.
func (c *Configuration) Direction() diagram.Direction { return c.generic.Direction() }

// Theme returns the requested color theme.
func (c *Configuration) Theme() diagram.Theme { return c.generic.Theme() }

// Look returns the requested drawing style.
func (c *Configuration) Look() diagram.Look { return c.generic.Look() }

// HTMLLabels reports whether node labels may contain HTML markup.
func (c *Configuration) HTMLLabels() bool { return c.htmlLabels }

// MarkdownAutoWrap reports whether markdown labels wrap automatically.
func (c *Configuration) MarkdownAutoWrap() bool { return c.markdownAutoWrap }

// CurveStyle returns the diagram-wide default curve style.
func (c *Configuration) CurveStyle() CurveStyle { return c.curveStyle }

// AppendTabbed writes the YAML front-matter block. The block is
// suppressed entirely while no title is set and the renderer is the
// default, so an unconfigured diagram starts straight at the flowchart
// header. Front-matter is never indented.
func (c *Configuration) AppendTabbed(sb *strings.Builder, _ int) {
	title, titled := c.generic.Title()
	if !titled && c.Renderer() == diagram.Dagre {
		return
	}
	sb.WriteString("---\n")
	sb.WriteString("config:\n")
	fmt.Fprintf(sb, "  theme: %s\n", c.Theme())
	fmt.Fprintf(sb, "  look: %s\n", c.Look())
	sb.WriteString("  flowchart:\n")
	fmt.Fprintf(sb, "    defaultRenderer: \"%s\"\n", c.Renderer())
	if titled {
		fmt.Fprintf(sb, "title: %s\n", title)
	}
	sb.WriteString("---\n")
}

// String renders the front-matter block.
func (c *Configuration) String() string {
	var sb strings.Builder
	c.AppendTabbed(&sb, 0)
	return sb.String()
}

// ConfigurationBuilder assembles a [Configuration]. The zero-value
// builder produced by [NewConfiguration] builds the default
// configuration.
type ConfigurationBuilder struct {
	generic          *diagram.GenericConfigurationBuilder
	htmlLabels       bool
	markdownAutoWrap bool
	curveStyle       CurveStyle
}

// NewConfiguration returns an empty configuration builder.
func NewConfiguration() *ConfigurationBuilder {
	return &ConfigurationBuilder{generic: diagram.NewConfiguration()}
}

// Title sets the diagram title. It returns [diagram.ErrEmptyTitle]
// wrapped in a [diagram.ConfigError] when the title is empty.
func (b *ConfigurationBuilder) Title(title string) (*ConfigurationBuilder, error) {
	if _, err := b.generic.Title(title); err != nil {
		return b, err
	}
	return b, nil
}

// Direction sets the orientation of the flowchart body.
func (b *ConfigurationBuilder) Direction(direction diagram.Direction) *ConfigurationBuilder {
	b.generic.Direction(direction)
	return b
}

// Renderer selects the layout engine.
func (b *ConfigurationBuilder) Renderer(renderer diagram.Renderer) *ConfigurationBuilder {
	b.generic.Renderer(renderer)
	return b
}

// Theme selects the color theme.
func (b *ConfigurationBuilder) Theme(theme diagram.Theme) *ConfigurationBuilder {
	b.generic.Theme(theme)
	return b
}

// Look selects the drawing style.
func (b *ConfigurationBuilder) Look(look diagram.Look) *ConfigurationBuilder {
	b.generic.Look(look)
	return b
}

// HTMLLabels toggles HTML markup in node labels.
func (b *ConfigurationBuilder) HTMLLabels(enable bool) *ConfigurationBuilder {
	b.htmlLabels = enable
	return b
}

// MarkdownAutoWrap toggles automatic wrapping of markdown labels.
func (b *ConfigurationBuilder) MarkdownAutoWrap(autoWrap bool) *ConfigurationBuilder {
	b.markdownAutoWrap = autoWrap
	return b
}

// CurveStyle sets the diagram-wide default curve style.
func (b *ConfigurationBuilder) CurveStyle(style CurveStyle) *ConfigurationBuilder {
	b.curveStyle = style
	return b
}

// Build assembles the configuration. The builder remains usable
// afterwards.
func (b *ConfigurationBuilder) Build() (*Configuration, error) {
	generic, err := b.generic.Build()
	if err != nil {
		return nil, err
	}
	return &Configuration{
		generic:          *generic,
		markdownAutoWrap: b.markdownAutoWrap,
		htmlLabels:       b.htmlLabels,
		curveStyle:       b.curveStyle,
	}, nil
}

// BuildConfiguration implements [diagram.ConfigSource].
func (b *ConfigurationBuilder) BuildConfiguration() (*Configuration, error) {
	return b.Build()
}
