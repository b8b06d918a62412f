package class

import "fmt"

// Attribute is a typed field of a class. Attributes are plain values:
// build one with [NewAttribute] and chain [Attribute.Visibility] to
// change the default public access.
type Attribute struct {
	name          string
	attributeType string
	visibility    Visibility
}

// NewAttribute returns a public attribute of the given type.
func NewAttribute(attributeType, name string) Attribute {
	return Attribute{name: name, attributeType: attributeType}
}

// Visibility returns a copy of the attribute with the given access
// level.
func (a Attribute) Visibility(visibility Visibility) Attribute {
	a.visibility = visibility
	return a
}

// String renders the attribute line, e.g. "+ id: int". The visibility
// marker is separated from the name by a space.
func (a Attribute) String() string {
	return fmt.Sprintf("%s %s: %s", a.visibility, a.name, a.attributeType)
}
