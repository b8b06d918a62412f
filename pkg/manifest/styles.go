package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// parseStyleProperty converts a manifest name/value pair into a typed
// style property. Property names follow the rendered CSS vocabulary
// (fill, stroke, color, stroke-width, ...).
func parseStyleProperty(property, value string) (diagram.StyleProperty, error) {
	var zero diagram.StyleProperty

	switch strings.ToLower(property) {
	case "fill":
		color, err := parseColor(value)
		if err != nil {
			return zero, err
		}
		return diagram.Fill(color), nil
	case "stroke":
		color, err := parseColor(value)
		if err != nil {
			return zero, err
		}
		return diagram.Stroke(color), nil
	case "color":
		color, err := parseColor(value)
		if err != nil {
			return zero, err
		}
		return diagram.TextColor(color), nil
	case "stroke-width":
		px, err := parsePixels(value)
		if err != nil {
			return zero, err
		}
		return diagram.StrokeWidth(px), nil
	case "font-size":
		pt, err := parsePoints(value)
		if err != nil {
			return zero, err
		}
		return diagram.FontSize(pt), nil
	case "font-weight":
		weight, err := parseWeight(value)
		if err != nil {
			return zero, err
		}
		return diagram.FontWeight(weight), nil
	case "font-style":
		slant, err := parseSlant(value)
		if err != nil {
			return zero, err
		}
		return diagram.FontStyle(slant), nil
	case "stroke-dasharray":
		length, gap, err := parseDasharray(value)
		if err != nil {
			return zero, err
		}
		return diagram.StrokeDasharray(length, gap), nil
	case "stroke-dashoffset":
		offset, err := strconv.ParseUint(strings.TrimSuffix(value, "px"), 10, 16)
		if err != nil {
			return zero, fmt.Errorf("invalid stroke-dashoffset %q", value)
		}
		return diagram.StrokeDashoffset(uint16(offset)), nil
	case "opacity":
		percent, err := strconv.ParseUint(value, 10, 8)
		if err != nil || percent > 100 {
			return zero, fmt.Errorf("invalid opacity %q (expected 0-100)", value)
		}
		return diagram.Opacity(uint8(percent)), nil
	case "border-radius":
		px, err := parsePixels(value)
		if err != nil {
			return zero, err
		}
		return diagram.BorderRadius(px), nil
	default:
		return zero, fmt.Errorf("unknown style property %q", property)
	}
}

// parseColor parses a #rrggbb hex color.
func parseColor(value string) (diagram.Color, error) {
	var zero diagram.Color
	if len(value) != 7 || value[0] != '#' {
		return zero, fmt.Errorf("invalid color %q (expected #rrggbb)", value)
	}
	r, err1 := strconv.ParseUint(value[1:3], 16, 8)
	g, err2 := strconv.ParseUint(value[3:5], 16, 8)
	b, err3 := strconv.ParseUint(value[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return zero, fmt.Errorf("invalid color %q (expected #rrggbb)", value)
	}
	return diagram.RGB(uint8(r), uint8(g), uint8(b)), nil
}

// parsePixels parses a pixel length, with or without the px suffix.
func parsePixels(value string) (diagram.Unit, error) {
	n, err := strconv.ParseUint(strings.TrimSuffix(value, "px"), 10, 8)
	if err != nil {
		return diagram.Unit{}, fmt.Errorf("invalid pixel length %q", value)
	}
	return diagram.Pixels(uint8(n)), nil
}

// parsePoints parses a point size, with or without the pt suffix.
func parsePoints(value string) (diagram.Unit, error) {
	n, err := strconv.ParseUint(strings.TrimSuffix(value, "pt"), 10, 8)
	if err != nil {
		return diagram.Unit{}, fmt.Errorf("invalid point size %q", value)
	}
	return diagram.Points(uint8(n)), nil
}

func parseWeight(value string) (diagram.Weight, error) {
	switch strings.ToLower(value) {
	case "normal":
		return diagram.WeightNormal, nil
	case "bold":
		return diagram.WeightBold, nil
	case "bolder":
		return diagram.WeightBolder, nil
	case "lighter":
		return diagram.WeightLighter, nil
	}
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return diagram.Weight{}, fmt.Errorf("invalid font-weight %q", value)
	}
	return diagram.NumericWeight(uint16(n)), nil
}

func parseSlant(value string) (diagram.Slant, error) {
	switch strings.ToLower(value) {
	case "normal":
		return diagram.SlantNormal, nil
	case "italic":
		return diagram.SlantItalic, nil
	case "oblique":
		return diagram.SlantOblique, nil
	}
	return diagram.SlantNormal, fmt.Errorf("invalid font-style %q", value)
}

// parseDasharray parses "length gap" or "length,gap".
func parseDasharray(value string) (uint8, uint8, error) {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid stroke-dasharray %q (expected \"length gap\")", value)
	}
	length, err1 := strconv.ParseUint(parts[0], 10, 8)
	gap, err2 := strconv.ParseUint(parts[1], 10, 8)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("invalid stroke-dasharray %q (expected \"length gap\")", value)
	}
	return uint8(length), uint8(gap), nil
}
