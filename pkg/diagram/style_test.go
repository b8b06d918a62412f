package diagram

import "testing"

func TestStylePropertyString(t *testing.T) {
	tests := []struct {
		name     string
		property StyleProperty
		want     string
	}{
		{name: "Fill", property: Fill(RGB(255, 0, 0)), want: "fill: #ff0000"},
		{name: "Stroke", property: Stroke(RGB(0, 0, 255)), want: "stroke: #0000ff"},
		{name: "TextColor", property: TextColor(RGB(51, 51, 51)), want: "color: #333333"},
		{name: "StrokeWidth", property: StrokeWidth(Pixels(2)), want: "stroke-width: 2px"},
		{name: "FontSize", property: FontSize(Points(12)), want: "font-size: 12pt"},
		{name: "FontWeightKeyword", property: FontWeight(WeightBold), want: "font-weight: bold"},
		{name: "FontWeightNumeric", property: FontWeight(NumericWeight(400)), want: "font-weight: 400"},
		{name: "FontStyle", property: FontStyle(SlantItalic), want: "font-style: italic"},
		{name: "StrokeDasharray", property: StrokeDasharray(5, 2), want: "stroke-dasharray: 5, 2"},
		{name: "StrokeDashoffset", property: StrokeDashoffset(4), want: "stroke-dashoffset: 4"},
		{name: "Opacity", property: Opacity(50), want: "opacity: 0.50"},
		{name: "OpacityFull", property: Opacity(100), want: "opacity: 1.00"},
		{name: "BorderRadius", property: BorderRadius(Pixels(5)), want: "rx: 5px, ry: 5px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.property.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStylePropertySameKind(t *testing.T) {
	tests := []struct {
		name string
		a, b StyleProperty
		want bool
	}{
		{name: "SameKindDifferentValue", a: Fill(RGB(255, 0, 0)), b: Fill(RGB(0, 0, 255)), want: true},
		{name: "DifferentKindSameColor", a: Fill(RGB(255, 0, 0)), b: Stroke(RGB(255, 0, 0)), want: false},
		{name: "UnitKinds", a: StrokeWidth(Pixels(1)), b: FontSize(Pixels(1)), want: false},
		{name: "Identical", a: Opacity(30), b: Opacity(30), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameKind(tt.b); got != tt.want {
				t.Errorf("SameKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "Red", color: RGB(255, 0, 0), want: "#ff0000"},
		{name: "Black", color: RGB(0, 0, 0), want: "#000000"},
		{name: "White", color: RGB(255, 255, 255), want: "#ffffff"},
		{name: "Mixed", color: RGB(18, 52, 86), want: "#123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnitString(t *testing.T) {
	if got := Pixels(10).String(); got != "10px" {
		t.Errorf("Pixels(10) = %q, want %q", got, "10px")
	}
	if got := Points(12).String(); got != "12pt" {
		t.Errorf("Points(12) = %q, want %q", got, "12pt")
	}
}

func TestWeightString(t *testing.T) {
	tests := []struct {
		name   string
		weight Weight
		want   string
	}{
		{name: "ZeroValue", weight: Weight{}, want: "normal"},
		{name: "Normal", weight: WeightNormal, want: "normal"},
		{name: "Bold", weight: WeightBold, want: "bold"},
		{name: "Bolder", weight: WeightBolder, want: "bolder"},
		{name: "Lighter", weight: WeightLighter, want: "lighter"},
		{name: "Numeric", weight: NumericWeight(700), want: "700"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.weight.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSlantString(t *testing.T) {
	if got := SlantNormal.String(); got != "normal" {
		t.Errorf("SlantNormal = %q, want %q", got, "normal")
	}
	if got := SlantItalic.String(); got != "italic" {
		t.Errorf("SlantItalic = %q, want %q", got, "italic")
	}
	if got := SlantOblique.String(); got != "oblique" {
		t.Errorf("SlantOblique = %q, want %q", got, "oblique")
	}
}
