package diagram

// ArrowShape selects the arrowhead drawn at an edge endpoint. The glyphs
// differ between the left and the right end of an edge, so shapes expose
// both orientations. The zero value is [ArrowNormal].
//
// Not every diagram flavor supports every shape: the entity relationship
// flavor restricts edges to the four cardinality shapes. Node types
// report support through their CompatibleArrowShape method, and edge
// builders reject unsupported shapes.
type ArrowShape uint8

const (
	// ArrowNormal is a plain arrowhead, "<" and ">".
	ArrowNormal ArrowShape = iota
	// ArrowSharp is a sharp arrowhead, "(" and ")".
	ArrowSharp
	// ArrowX is a cross arrowhead, "x" on both ends.
	ArrowX
	// ArrowCircle is a circle arrowhead, "o" on both ends.
	ArrowCircle
	// ArrowTriangle is a hollow triangle arrowhead, "<|" and "|>".
	ArrowTriangle
	// ArrowStar is a star arrowhead, "*" on both ends.
	ArrowStar
	// ArrowZeroOrOne is the zero-or-one cardinality, "|o" and "o|".
	ArrowZeroOrOne
	// ArrowExactlyOne is the exactly-one cardinality, "||" on both ends.
	ArrowExactlyOne
	// ArrowZeroOrMore is the zero-or-more cardinality, "}o" and "o{".
	ArrowZeroOrMore
	// ArrowOneOrMore is the one-or-more cardinality, "}|" and "|{".
	ArrowOneOrMore
)

// Left returns the glyph for the left end of an edge.
func (s ArrowShape) Left() string {
	switch s {
	case ArrowSharp:
		return "("
	case ArrowX:
		return "x"
	case ArrowCircle:
		return "o"
	case ArrowTriangle:
		return "<|"
	case ArrowStar:
		return "*"
	case ArrowZeroOrOne:
		return "|o"
	case ArrowExactlyOne:
		return "||"
	case ArrowZeroOrMore:
		return "}o"
	case ArrowOneOrMore:
		return "}|"
	default:
		return "<"
	}
}

// Right returns the glyph for the right end of an edge.
func (s ArrowShape) Right() string {
	switch s {
	case ArrowSharp:
		return ")"
	case ArrowX:
		return "x"
	case ArrowCircle:
		return "o"
	case ArrowTriangle:
		return "|>"
	case ArrowStar:
		return "*"
	case ArrowZeroOrOne:
		return "o|"
	case ArrowExactlyOne:
		return "||"
	case ArrowZeroOrMore:
		return "o{"
	case ArrowOneOrMore:
		return "|{"
	default:
		return ">"
	}
}

// LineStyle selects how the line of an edge is drawn. The zero value is
// [LineSolid].
type LineStyle uint8

const (
	// LineSolid draws a continuous line.
	LineSolid LineStyle = iota
	// LineThick draws a thick continuous line.
	LineThick
	// LineDashed draws a dashed line.
	LineDashed
)
