package class

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// Configuration carries the generic diagram settings plus the class
// diagram toggle that hides the empty members box on classes without
// attributes or methods. The zero value renders nothing and is the
// default for diagrams built with [NewBuilder].
type Configuration struct {
	generic             diagram.GenericConfiguration
	hideEmptyMembersBox bool
}

// Title returns the diagram title, if one is set.
func (c *Configuration) Title() (string, bool) { return c.generic.Title() }

// Renderer returns the requested layout engine.
func (c *Configuration) Renderer() diagram.Renderer { return c.generic.Renderer() }

// Direction returns the orientation of the diagram body.
func (c *Configuration) Direction() diagram.Direction { return c.generic.Direction() }

// Theme returns the requested color theme.
func (c *Configuration) Theme() diagram.Theme { return c.generic.Theme() }

// Look returns the requested drawing style.
func (c *Configuration) Look() diagram.Look { return c.generic.Look() }

// HideEmptyMembersBox reports whether the empty members box is hidden.
func (c *Configuration) HideEmptyMembersBox() bool { return c.hideEmptyMembersBox }

// AppendTabbed writes the YAML front-matter block. The block is
// suppressed entirely while no title is set, the renderer is the
// default and the members box is visible, so an unconfigured diagram
// starts straight at the classDiagram header. Front-matter is never
// indented.
func (c *Configuration) AppendTabbed(sb *strings.Builder, _ int) {
	title, titled := c.generic.Title()
	if !titled && c.Renderer() == diagram.Dagre && !c.hideEmptyMembersBox {
		return
	}
	sb.WriteString("---\n")
	sb.WriteString("config:\n")
	fmt.Fprintf(sb, "  theme: %s\n", c.Theme())
	fmt.Fprintf(sb, "  look: %s\n", c.Look())
	sb.WriteString("  class:\n")
	fmt.Fprintf(sb, "    defaultRenderer: \"%s\"\n", c.Renderer())
	if c.hideEmptyMembersBox {
		sb.WriteString("    hideEmptyMembersBox: true\n")
	}
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
	generic             *diagram.GenericConfigurationBuilder
	hideEmptyMembersBox bool
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

// Direction sets the orientation of the diagram body.
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

// HideEmptyMembersBox toggles the box Mermaid draws on classes without
// members.
func (b *ConfigurationBuilder) HideEmptyMembersBox(hide bool) *ConfigurationBuilder {
	b.hideEmptyMembersBox = hide
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
		generic:             *generic,
		hideEmptyMembersBox: b.hideEmptyMembersBox,
	}, nil
}

// BuildConfiguration implements [diagram.ConfigSource].
func (b *ConfigurationBuilder) BuildConfiguration() (*Configuration, error) {
	return b.Build()
}
