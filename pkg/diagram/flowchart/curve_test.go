package flowchart

import "testing"

func TestCurveStyleString(t *testing.T) {
	cases := []struct {
		curve CurveStyle
		want  string
	}{
		{CurveBasis, "basis"},
		{CurveBumpX, "bumpX"},
		{CurveBumpY, "bumpY"},
		{CurveCardinal, "cardinal"},
		{CurveCatmullRom, "catmullRom"},
		{CurveLinear, "linear"},
		{CurveMonotoneX, "monotoneX"},
		{CurveMonotoneY, "monotoneY"},
		{CurveNatural, "natural"},
		{CurveStep, "step"},
		{CurveStepAfter, "stepAfter"},
		{CurveStepBefore, "stepBefore"},
	}
	for _, tc := range cases {
		if got := tc.curve.String(); got != tc.want {
			t.Errorf("CurveStyle(%d).String() = %q, want %q", tc.curve, got, tc.want)
		}
	}
}

func TestParseCurveStyle(t *testing.T) {
	for curve, name := range curveNames {
		got, ok := ParseCurveStyle(name)
		if !ok || got != CurveStyle(curve) {
			t.Errorf("ParseCurveStyle(%q) = %v, %v, want %v, true", name, got, ok, CurveStyle(curve))
		}
	}
	if got, ok := ParseCurveStyle("CATMULLROM"); !ok || got != CurveCatmullRom {
		t.Errorf("ParseCurveStyle(%q) = %v, %v, want CurveCatmullRom, true", "CATMULLROM", got, ok)
	}
	if _, ok := ParseCurveStyle("bezier"); ok {
		t.Error("ParseCurveStyle accepted an unknown name")
	}
}
