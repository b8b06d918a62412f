package er

// Attribute is a typed attribute row inside an entity block.
type Attribute struct {
	name          string
	attributeType string
}

// NewAttribute returns an attribute of the given type.
func NewAttribute(attributeType, name string) Attribute {
	return Attribute{name: name, attributeType: attributeType}
}

// Name returns the attribute name.
func (a Attribute) Name() string { return a.name }

// Type returns the attribute type.
func (a Attribute) Type() string { return a.attributeType }

// String renders the attribute row, e.g. "name string".
func (a Attribute) String() string {
	return a.name + " " + a.attributeType
}
