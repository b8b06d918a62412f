package diagram

import "strings"

// Rendered statements address elements through short prefixed identifiers:
// the first node is "v0", the third edge is "e2". The prefixes are shared
// by every diagram flavor so that cross references (click bindings, class
// assignments, link styles) always resolve against the same names.
const (
	// NodePrefix precedes node identifiers in rendered text.
	NodePrefix = "v"
	// EdgePrefix precedes edge identifiers in rendered text.
	EdgePrefix = "e"
)

// indentUnit is the whitespace emitted per nesting level.
const indentUnit = "  "

// TabbedText is the rendering contract shared by nodes, edges, style
// classes, configurations and whole diagrams. AppendTabbed writes one or
// more complete lines to sb, each terminated by a newline and prefixed
// with [Indent](depth). Implementations never fail: all validation happens
// while building, so rendering a built value is a pure serialization step.
type TabbedText interface {
	AppendTabbed(sb *strings.Builder, depth int)
}

// Indent returns the leading whitespace for the given nesting depth.
func Indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}
