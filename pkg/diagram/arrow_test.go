package diagram

import "testing"

func TestArrowShapeGlyphs(t *testing.T) {
	tests := []struct {
		name      string
		shape     ArrowShape
		wantLeft  string
		wantRight string
	}{
		{name: "Normal", shape: ArrowNormal, wantLeft: "<", wantRight: ">"},
		{name: "Sharp", shape: ArrowSharp, wantLeft: "(", wantRight: ")"},
		{name: "X", shape: ArrowX, wantLeft: "x", wantRight: "x"},
		{name: "Circle", shape: ArrowCircle, wantLeft: "o", wantRight: "o"},
		{name: "Triangle", shape: ArrowTriangle, wantLeft: "<|", wantRight: "|>"},
		{name: "Star", shape: ArrowStar, wantLeft: "*", wantRight: "*"},
		{name: "ZeroOrOne", shape: ArrowZeroOrOne, wantLeft: "|o", wantRight: "o|"},
		{name: "ExactlyOne", shape: ArrowExactlyOne, wantLeft: "||", wantRight: "||"},
		{name: "ZeroOrMore", shape: ArrowZeroOrMore, wantLeft: "}o", wantRight: "o{"},
		{name: "OneOrMore", shape: ArrowOneOrMore, wantLeft: "}|", wantRight: "|{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Left(); got != tt.wantLeft {
				t.Errorf("Left() = %q, want %q", got, tt.wantLeft)
			}
			if got := tt.shape.Right(); got != tt.wantRight {
				t.Errorf("Right() = %q, want %q", got, tt.wantRight)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	if got := Indent(0); got != "" {
		t.Errorf("Indent(0) = %q, want empty", got)
	}
	if got := Indent(1); got != "  " {
		t.Errorf("Indent(1) = %q, want two spaces", got)
	}
	if got := Indent(3); got != "      " {
		t.Errorf("Indent(3) = %q, want six spaces", got)
	}
}
