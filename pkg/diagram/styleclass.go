package diagram

import (
	"fmt"
	"slices"
	"strings"
)

// StyleClass is a named, reusable set of style properties. Classes are
// registered once per diagram through [Builder.StyleClass] and then
// attached to nodes and edges by reference, which renders as a single
// classDef statement plus one class assignment per element.
//
// A StyleClass is immutable once built. The pointer returned by
// [StyleClassBuilder.Build] or [Builder.StyleClass] acts as the identity
// of the class: attaching the same pointer twice to one element is
// rejected as a duplicate.
type StyleClass struct {
	name       string
	properties []StyleProperty
}

// Name returns the name of the style class.
func (c *StyleClass) Name() string {
	return c.name
}

// Properties returns the properties of the style class in insertion
// order.
func (c *StyleClass) Properties() []StyleProperty {
	return slices.Clone(c.properties)
}

// AppendTabbed renders the classDef statement for this class.
func (c *StyleClass) AppendTabbed(sb *strings.Builder, depth int) {
	fmt.Fprintf(sb, "%sclassDef %s ", Indent(depth), c.name)
	for i, property := range c.properties {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(property.String())
	}
	sb.WriteString("\n")
}

// String renders the classDef statement without indentation.
func (c *StyleClass) String() string {
	var sb strings.Builder
	c.AppendTabbed(&sb, 0)
	return sb.String()
}

// StyleClassBuilder assembles a [StyleClass]. A failed call leaves the
// builder unchanged, so callers may recover and continue with different
// input.
type StyleClassBuilder struct {
	name       string
	properties []StyleProperty
}

// NewStyleClass returns an empty builder for a style class.
func NewStyleClass() *StyleClassBuilder {
	return &StyleClassBuilder{}
}

// Name sets the name of the style class. The name must not be empty.
func (b *StyleClassBuilder) Name(name string) (*StyleClassBuilder, error) {
	if name == "" {
		return b, &StyleClassError{Err: ErrEmptyClassName}
	}
	b.name = name
	return b, nil
}

// GetName returns the configured name, if one has been set.
func (b *StyleClassBuilder) GetName() (string, bool) {
	return b.name, b.name != ""
}

// Property adds a style property. At most one property per kind is
// allowed: a second fill color is rejected even when its value differs.
func (b *StyleClassBuilder) Property(property StyleProperty) (*StyleClassBuilder, error) {
	if slices.ContainsFunc(b.properties, property.SameKind) {
		return b, &StyleClassError{Err: fmt.Errorf("%w: %q", ErrDuplicateProperty, property)}
	}
	b.properties = append(b.properties, property)
	return b, nil
}

// Properties returns the properties added so far in insertion order.
func (b *StyleClassBuilder) Properties() []StyleProperty {
	return slices.Clone(b.properties)
}

// Build assembles the style class. It fails when no properties were
// added or no name was set. The builder remains usable afterwards.
func (b *StyleClassBuilder) Build() (*StyleClass, error) {
	if len(b.properties) == 0 {
		return nil, &StyleClassError{Err: ErrMissingProperties}
	}
	if b.name == "" {
		return nil, &StyleClassError{Err: ErrMissingClassName}
	}
	return &StyleClass{name: b.name, properties: slices.Clone(b.properties)}, nil
}
