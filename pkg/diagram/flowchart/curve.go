package flowchart

import "strings"

// CurveStyle selects the interpolation used to draw edge lines. The
// zero value is [CurveBasis], which Mermaid applies when no curve is
// requested.
type CurveStyle uint8

const (
	CurveBasis CurveStyle = iota
	CurveBumpX
	CurveBumpY
	CurveCardinal
	CurveCatmullRom
	CurveLinear
	CurveMonotoneX
	CurveMonotoneY
	CurveNatural
	CurveStep
	CurveStepAfter
	CurveStepBefore
)

var curveNames = [...]string{
	CurveBasis:      "basis",
	CurveBumpX:      "bumpX",
	CurveBumpY:      "bumpY",
	CurveCardinal:   "cardinal",
	CurveCatmullRom: "catmullRom",
	CurveLinear:     "linear",
	CurveMonotoneX:  "monotoneX",
	CurveMonotoneY:  "monotoneY",
	CurveNatural:    "natural",
	CurveStep:       "step",
	CurveStepAfter:  "stepAfter",
	CurveStepBefore: "stepBefore",
}

// String returns the Mermaid curve identifier, e.g. "catmullRom".
func (c CurveStyle) String() string {
	if int(c) < len(curveNames) {
		return curveNames[c]
	}
	return curveNames[CurveBasis]
}

// ParseCurveStyle resolves a curve identifier. Matching is
// case-insensitive. The second return value reports whether the name
// was recognized.
func ParseCurveStyle(name string) (CurveStyle, bool) {
	for c, n := range curveNames {
		if strings.EqualFold(name, n) {
			return CurveStyle(c), true
		}
	}
	return CurveBasis, false
}
