package diagram

import (
	"fmt"
	"strconv"
)

// Color is an RGB color rendered in lowercase hex notation.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given red, green and blue channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color in "#rrggbb" notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Unit is a length measurement in pixels or points. The zero value is
// zero pixels.
type Unit struct {
	value  uint8
	points bool
}

// Pixels returns a pixel length, rendered with the "px" suffix.
func Pixels(value uint8) Unit {
	return Unit{value: value}
}

// Points returns a point length, rendered with the "pt" suffix.
func Points(value uint8) Unit {
	return Unit{value: value, points: true}
}

func (u Unit) String() string {
	if u.points {
		return strconv.Itoa(int(u.value)) + "pt"
	}
	return strconv.Itoa(int(u.value)) + "px"
}

type weightKind uint8

const (
	weightNormal weightKind = iota
	weightBold
	weightBolder
	weightLighter
	weightNumeric
)

// Weight is a font weight, either one of the CSS keywords or a numeric
// value such as 400 or 700. The zero value is [WeightNormal].
type Weight struct {
	kind  weightKind
	value uint16
}

// Keyword font weights.
var (
	WeightNormal  = Weight{}
	WeightBold    = Weight{kind: weightBold}
	WeightBolder  = Weight{kind: weightBolder}
	WeightLighter = Weight{kind: weightLighter}
)

// NumericWeight returns a numeric font weight, typically a multiple of
// 100 between 100 and 900.
func NumericWeight(value uint16) Weight {
	return Weight{kind: weightNumeric, value: value}
}

func (w Weight) String() string {
	switch w.kind {
	case weightBold:
		return "bold"
	case weightBolder:
		return "bolder"
	case weightLighter:
		return "lighter"
	case weightNumeric:
		return strconv.Itoa(int(w.value))
	default:
		return "normal"
	}
}

// Slant is a font slant. The zero value is [SlantNormal].
type Slant uint8

const (
	// SlantNormal renders as "normal".
	SlantNormal Slant = iota
	// SlantItalic renders as "italic".
	SlantItalic
	// SlantOblique renders as "oblique".
	SlantOblique
)

func (s Slant) String() string {
	switch s {
	case SlantItalic:
		return "italic"
	case SlantOblique:
		return "oblique"
	default:
		return "normal"
	}
}

type propertyKind uint8

const (
	kindFill propertyKind = iota
	kindStroke
	kindTextColor
	kindStrokeWidth
	kindFontSize
	kindFontWeight
	kindFontStyle
	kindStrokeDasharray
	kindStrokeDashoffset
	kindOpacity
	kindBorderRadius
)

// StyleProperty is a single styling attribute applied to a node, an edge
// or a style class, such as a fill color or a border width. Values are
// created through the constructor functions ([Fill], [Stroke],
// [StrokeWidth], ...) and are comparable, so exact duplicates can be
// detected with ==.
type StyleProperty struct {
	kind       propertyKind
	color      Color
	unit       Unit
	weight     Weight
	slant      Slant
	dashLength uint8
	dashGap    uint8
	offset     uint16
	opacity    uint8
}

// Fill sets the background color of the element.
func Fill(color Color) StyleProperty {
	return StyleProperty{kind: kindFill, color: color}
}

// Stroke sets the border color of the element.
func Stroke(color Color) StyleProperty {
	return StyleProperty{kind: kindStroke, color: color}
}

// TextColor sets the color of the text inside the element.
func TextColor(color Color) StyleProperty {
	return StyleProperty{kind: kindTextColor, color: color}
}

// StrokeWidth sets the width of the element border.
func StrokeWidth(width Unit) StyleProperty {
	return StyleProperty{kind: kindStrokeWidth, unit: width}
}

// FontSize sets the size of the text inside the element.
func FontSize(size Unit) StyleProperty {
	return StyleProperty{kind: kindFontSize, unit: size}
}

// FontWeight sets the weight of the text inside the element.
func FontWeight(weight Weight) StyleProperty {
	return StyleProperty{kind: kindFontWeight, weight: weight}
}

// FontStyle sets the slant of the text inside the element.
func FontStyle(slant Slant) StyleProperty {
	return StyleProperty{kind: kindFontStyle, slant: slant}
}

// StrokeDasharray sets the dash pattern of the element border as a dash
// length and a gap length.
func StrokeDasharray(length, gap uint8) StyleProperty {
	return StyleProperty{kind: kindStrokeDasharray, dashLength: length, dashGap: gap}
}

// StrokeDashoffset sets the distance into the dash pattern at which the
// border starts.
func StrokeDashoffset(offset uint16) StyleProperty {
	return StyleProperty{kind: kindStrokeDashoffset, offset: offset}
}

// Opacity sets the opacity of the element as a percentage between 0 and
// 100, rendered as a fraction between 0.00 and 1.00.
func Opacity(percent uint8) StyleProperty {
	return StyleProperty{kind: kindOpacity, opacity: percent}
}

// BorderRadius rounds the corners of the element, rendered as the rx and
// ry radii.
func BorderRadius(radius Unit) StyleProperty {
	return StyleProperty{kind: kindBorderRadius, unit: radius}
}

// SameKind reports whether both properties set the same attribute,
// regardless of their values. Builders use it to reject conflicting
// assignments such as two fill colors on one element.
func (p StyleProperty) SameKind(other StyleProperty) bool {
	return p.kind == other.kind
}

func (p StyleProperty) String() string {
	switch p.kind {
	case kindStroke:
		return "stroke: " + p.color.Hex()
	case kindTextColor:
		return "color: " + p.color.Hex()
	case kindStrokeWidth:
		return "stroke-width: " + p.unit.String()
	case kindFontSize:
		return "font-size: " + p.unit.String()
	case kindFontWeight:
		return "font-weight: " + p.weight.String()
	case kindFontStyle:
		return "font-style: " + p.slant.String()
	case kindStrokeDasharray:
		return fmt.Sprintf("stroke-dasharray: %d, %d", p.dashLength, p.dashGap)
	case kindStrokeDashoffset:
		return fmt.Sprintf("stroke-dashoffset: %d", p.offset)
	case kindOpacity:
		return fmt.Sprintf("opacity: %.2f", float64(p.opacity)/100)
	case kindBorderRadius:
		return fmt.Sprintf("rx: %s, ry: %s", p.unit, p.unit)
	default:
		return "fill: " + p.color.Hex()
	}
}
