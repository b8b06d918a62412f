package flowchart

import "strings"

// Shape selects the outline drawn around a flowchart node. The zero
// value is [ShapeRectangle].
type Shape uint8

const (
	ShapeRectangle Shape = iota
	ShapeRoundEdges
	ShapeStadium
	ShapeSubprocess
	ShapeCylinder
	ShapeCircle
	ShapeOdd
	ShapeDiamond
	ShapeHexagon
	ShapeLeanRight
	ShapeLeanLeft
	ShapeTrapezoid
	ShapeReverseTrapezoid
	ShapeDoubleCircle
	ShapeNotchedRectangle
	ShapeLinedRectangle
	ShapeSmallCircle
	ShapeFramedCircle
	ShapeLongRectangle
	ShapeHourglass
	ShapeLeftCurlyBrace
	ShapeRightCurlyBrace
	ShapeCurlyBraces
	ShapeLightningBolt
	ShapeDocument
	ShapeHalfRoundedRectangle
	ShapeHorizontalCylinder
	ShapeLinedCylinder
	ShapeCurvedTrapezoid
	ShapeDividedRectangle
	ShapeSmallTriangle
	ShapeWindowPane
	ShapeFilledCircle
	ShapeLinedDocument
	ShapeNotchedPentagon
	ShapeFlippedTriangle
	ShapeSlopedRectangle
	ShapeStackedDocument
	ShapeStackedRectangle
	ShapeFlag
	ShapeBowTieRectangle
	ShapeCrossedCircle
	ShapeTaggedDocument
	ShapeTaggedRectangle
	ShapeFramedRectangle
	ShapeTextBlock
)

var shapeNames = [...]string{
	ShapeRectangle:            "rect",
	ShapeRoundEdges:           "rounded",
	ShapeStadium:              "stadium",
	ShapeSubprocess:           "subproc",
	ShapeCylinder:             "cyl",
	ShapeCircle:               "circle",
	ShapeOdd:                  "odd",
	ShapeDiamond:              "diamond",
	ShapeHexagon:              "hex",
	ShapeLeanRight:            "lean-r",
	ShapeLeanLeft:             "lean-l",
	ShapeTrapezoid:            "trap-b",
	ShapeReverseTrapezoid:     "trap-t",
	ShapeDoubleCircle:         "dbl-circ",
	ShapeNotchedRectangle:     "notch-rect",
	ShapeLinedRectangle:       "lin-rect",
	ShapeSmallCircle:          "sm-circ",
	ShapeFramedCircle:         "framed-circle",
	ShapeLongRectangle:        "fork",
	ShapeHourglass:            "hourglass",
	ShapeLeftCurlyBrace:       "comment",
	ShapeRightCurlyBrace:      "brace-r",
	ShapeCurlyBraces:          "braces",
	ShapeLightningBolt:        "bolt",
	ShapeDocument:             "doc",
	ShapeHalfRoundedRectangle: "delay",
	ShapeHorizontalCylinder:   "das",
	ShapeLinedCylinder:        "lin-cyl",
	ShapeCurvedTrapezoid:      "curv-trap",
	ShapeDividedRectangle:     "div-rect",
	ShapeSmallTriangle:        "tri",
	ShapeWindowPane:           "win-pane",
	ShapeFilledCircle:         "f-circ",
	ShapeLinedDocument:        "lin-doc",
	ShapeNotchedPentagon:      "notch-pent",
	ShapeFlippedTriangle:      "flip-tri",
	ShapeSlopedRectangle:      "sl-rect",
	ShapeStackedDocument:      "docs",
	ShapeStackedRectangle:     "processes",
	ShapeFlag:                 "flag",
	ShapeBowTieRectangle:      "bow-rect",
	ShapeCrossedCircle:        "cross-circ",
	ShapeTaggedDocument:       "tag-doc",
	ShapeTaggedRectangle:      "tag-rect",
	ShapeFramedRectangle:      "fr-rect",
	ShapeTextBlock:            "text",
}

// String returns the Mermaid shape identifier, e.g. "rect" or "lean-r".
func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return shapeNames[ShapeRectangle]
}

// shapeAliases maps every shape identifier and its documented aliases,
// lowercased, to the shape it names.
var shapeAliases = map[string]Shape{
	"rect": ShapeRectangle, "rectangle": ShapeRectangle, "proc": ShapeRectangle, "process": ShapeRectangle,
	"rounded": ShapeRoundEdges, "event": ShapeRoundEdges,
	"stadium": ShapeStadium, "pill": ShapeStadium, "terminal": ShapeStadium,
	"subproc": ShapeSubprocess, "subprocess": ShapeSubprocess, "subroutine": ShapeSubprocess, "framed-rectangle": ShapeSubprocess,
	"cyl": ShapeCylinder, "cylinder": ShapeCylinder, "database": ShapeCylinder, "db": ShapeCylinder,
	"circle": ShapeCircle, "circ": ShapeCircle,
	"odd":     ShapeOdd,
	"diamond": ShapeDiamond, "diam": ShapeDiamond, "decision": ShapeDiamond, "question": ShapeDiamond,
	"hex": ShapeHexagon, "hexagon": ShapeHexagon, "prepare": ShapeHexagon,
	"lean-r": ShapeLeanRight, "lean-right": ShapeLeanRight, "in-out": ShapeLeanRight,
	"lean-l": ShapeLeanLeft, "lean-left": ShapeLeanLeft, "out-in": ShapeLeanLeft,
	"trap-b": ShapeTrapezoid, "trapezoid": ShapeTrapezoid, "priority": ShapeTrapezoid, "trapezoid-bottom": ShapeTrapezoid,
	"trap-t": ShapeReverseTrapezoid, "inv-trapezoid": ShapeReverseTrapezoid, "manual": ShapeReverseTrapezoid, "trapezoid-top": ShapeReverseTrapezoid,
	"dbl-circ": ShapeDoubleCircle, "double-circle": ShapeDoubleCircle, "stop": ShapeDoubleCircle,
	"notch-rect": ShapeNotchedRectangle, "card": ShapeNotchedRectangle, "notched-rectangle": ShapeNotchedRectangle,
	"lin-rect": ShapeLinedRectangle, "lin-proc": ShapeLinedRectangle, "lined-process": ShapeLinedRectangle, "lined-rectangle": ShapeLinedRectangle, "shaded-process": ShapeLinedRectangle,
	"sm-circ": ShapeSmallCircle, "small-circle": ShapeSmallCircle, "start": ShapeSmallCircle,
	"framed-circle": ShapeFramedCircle, "fr-circ": ShapeFramedCircle,
	"fork": ShapeLongRectangle, "join": ShapeLongRectangle,
	"hourglass": ShapeHourglass, "collate": ShapeHourglass,
	"comment": ShapeLeftCurlyBrace, "brace-l": ShapeLeftCurlyBrace,
	"brace-r": ShapeRightCurlyBrace,
	"braces":  ShapeCurlyBraces,
	"bolt":    ShapeLightningBolt, "com-link": ShapeLightningBolt, "lightning-bolt": ShapeLightningBolt,
	"doc": ShapeDocument, "document": ShapeDocument,
	"delay": ShapeHalfRoundedRectangle, "half-rounded-rectangle": ShapeHalfRoundedRectangle,
	"das": ShapeHorizontalCylinder, "h-cyl": ShapeHorizontalCylinder, "horizontal-cylinder": ShapeHorizontalCylinder,
	"lin-cyl": ShapeLinedCylinder, "disk": ShapeLinedCylinder, "lined-cylinder": ShapeLinedCylinder,
	"curv-trap": ShapeCurvedTrapezoid, "curved-trapezoid": ShapeCurvedTrapezoid, "display": ShapeCurvedTrapezoid,
	"div-rect": ShapeDividedRectangle, "div-proc": ShapeDividedRectangle, "divided-process": ShapeDividedRectangle, "divided-rectangle": ShapeDividedRectangle,
	"tri": ShapeSmallTriangle, "extract": ShapeSmallTriangle, "triangle": ShapeSmallTriangle,
	"win-pane": ShapeWindowPane, "internal-storage": ShapeWindowPane, "window-pane": ShapeWindowPane,
	"f-circ": ShapeFilledCircle, "filled-circle": ShapeFilledCircle, "junction": ShapeFilledCircle,
	"lin-doc": ShapeLinedDocument, "lined-document": ShapeLinedDocument,
	"notch-pent": ShapeNotchedPentagon, "loop-limit": ShapeNotchedPentagon, "notched-pentagon": ShapeNotchedPentagon,
	"flip-tri": ShapeFlippedTriangle, "flipped-triangle": ShapeFlippedTriangle, "manual-file": ShapeFlippedTriangle,
	"sl-rect": ShapeSlopedRectangle, "manual-input": ShapeSlopedRectangle, "sloped-rectangle": ShapeSlopedRectangle,
	"docs": ShapeStackedDocument, "documents": ShapeStackedDocument, "st-doc": ShapeStackedDocument, "stacked-document": ShapeStackedDocument,
	"processes": ShapeStackedRectangle, "procs": ShapeStackedRectangle, "st-rect": ShapeStackedRectangle, "stacked-rectangle": ShapeStackedRectangle,
	"flag": ShapeFlag, "paper-tape": ShapeFlag,
	"bow-rect": ShapeBowTieRectangle, "bow-tie-rectangle": ShapeBowTieRectangle, "stored-data": ShapeBowTieRectangle,
	"cross-circ": ShapeCrossedCircle, "crossed-circle": ShapeCrossedCircle, "summary": ShapeCrossedCircle,
	"tag-doc": ShapeTaggedDocument, "tagged-document": ShapeTaggedDocument,
	"tag-rect": ShapeTaggedRectangle, "tag-proc": ShapeTaggedRectangle, "tagged-process": ShapeTaggedRectangle, "tagged-rectangle": ShapeTaggedRectangle,
	"fr-rect": ShapeFramedRectangle,
	"text":    ShapeTextBlock, "text-block": ShapeTextBlock,
}

// ParseShape resolves a shape identifier or one of its aliases, such as
// "database" for [ShapeCylinder] or "decision" for [ShapeDiamond].
// Matching is case-insensitive. The second return value reports whether
// the name was recognized.
func ParseShape(name string) (Shape, bool) {
	s, ok := shapeAliases[strings.ToLower(name)]
	return s, ok
}
