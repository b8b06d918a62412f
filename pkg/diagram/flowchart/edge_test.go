package flowchart

import (
	"errors"
	"testing"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

func TestEdgeBuilder(t *testing.T) {
	source := mustLeaf(t, 0, "A")
	destination := mustLeaf(t, 1, "B")
	class := mustClass(t, "myStyle")

	b := NewEdge().ID(1).
		Source(source).
		Destination(destination).
		Line(diagram.LineDashed).
		CurveStyle(CurveStepAfter).
		Length(2)
	if _, err := b.Label("Edge Label"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	if _, err := b.LeftArrow(diagram.ArrowCircle); err != nil {
		t.Fatalf("LeftArrow: %v", err)
	}
	if _, err := b.RightArrow(diagram.ArrowX); err != nil {
		t.Fatalf("RightArrow: %v", err)
	}
	if _, err := b.StyleClass(class); err != nil {
		t.Fatalf("StyleClass: %v", err)
	}
	if _, err := b.StyleProperty(diagram.Stroke(diagram.RGB(255, 0, 0))); err != nil {
		t.Fatalf("StyleProperty: %v", err)
	}

	edge, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if edge.ID() != 1 {
		t.Errorf("ID() = %d, want 1", edge.ID())
	}
	if edge.Source() != source || edge.Destination() != destination {
		t.Error("endpoints do not round-trip by identity")
	}
	if edge.CurveStyle() != CurveStepAfter {
		t.Errorf("CurveStyle() = %v, want CurveStepAfter", edge.CurveStyle())
	}
	if edge.Length() != 2 {
		t.Errorf("Length() = %d, want 2", edge.Length())
	}
	if classes := edge.Classes(); len(classes) != 1 || classes[0] != class {
		t.Errorf("Classes() = %v, want the attached class", classes)
	}
	if styles := edge.Styles(); len(styles) != 1 {
		t.Errorf("len(Styles()) = %d, want 1", len(styles))
	}

	want := "v0 e1@o-..-x|\"`Edge Label`\"| v1\n" +
		"e1@{curve: stepAfter}\n" +
		"class e1 myStyle\n" +
		"linkStyle e1 stroke: #ff0000 \n"
	if got := edge.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEdgeRenderSegments(t *testing.T) {
	source := mustLeaf(t, 0, "A")
	destination := mustLeaf(t, 1, "B")

	cases := []struct {
		name   string
		line   diagram.LineStyle
		length uint8
		want   string
	}{
		{"SolidDefaultLength", diagram.LineSolid, 1, "v0 --- v1\n"},
		{"SolidStretched", diagram.LineSolid, 3, "v0 ----- v1\n"},
		{"Thick", diagram.LineThick, 1, "v0 === v1\n"},
		{"Dashed", diagram.LineDashed, 2, "v0 -..- v1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edge, err := NewEdge().ID(0).
				Source(source).
				Destination(destination).
				Line(tc.line).
				Length(tc.length).
				Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if got := edge.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEdgeBuilderErrors(t *testing.T) {
	source := mustLeaf(t, 0, "A")
	destination := mustLeaf(t, 1, "B")

	t.Run("ZeroLength", func(t *testing.T) {
		b := NewEdge().ID(0).Source(source).Destination(destination).Length(0)
		if _, err := b.Build(); !errors.Is(err, diagram.ErrInvalidEdgeLength) {
			t.Errorf("Build error = %v, want ErrInvalidEdgeLength", err)
		}
	})

	t.Run("ZeroLengthBeforeMissingID", func(t *testing.T) {
		b := NewEdge().Source(source).Destination(destination).Length(0)
		if _, err := b.Build(); !errors.Is(err, diagram.ErrInvalidEdgeLength) {
			t.Errorf("Build error = %v, want ErrInvalidEdgeLength first", err)
		}
	})

	t.Run("MissingID", func(t *testing.T) {
		b := NewEdge().Source(source).Destination(destination)
		_, err := b.Build()
		if !errors.Is(err, diagram.ErrMissingEdgeID) {
			t.Fatalf("Build error = %v, want ErrMissingEdgeID", err)
		}
		var edgeErr *diagram.EdgeError
		if !errors.As(err, &edgeErr) {
			t.Errorf("Build error = %T, want *diagram.EdgeError", err)
		}
	})

	t.Run("MissingSource", func(t *testing.T) {
		b := NewEdge().ID(0).Destination(destination)
		if _, err := b.Build(); !errors.Is(err, diagram.ErrMissingSource) {
			t.Errorf("Build error = %v, want ErrMissingSource", err)
		}
	})

	t.Run("IncompatibleArrow", func(t *testing.T) {
		b := NewEdge()
		if _, err := b.LeftArrow(diagram.ArrowTriangle); !errors.Is(err, diagram.ErrIncompatibleLeftArrow) {
			t.Errorf("LeftArrow error = %v, want ErrIncompatibleLeftArrow", err)
		}
		if _, err := b.RightArrow(diagram.ArrowOneOrMore); !errors.Is(err, diagram.ErrIncompatibleRightArrow) {
			t.Errorf("RightArrow error = %v, want ErrIncompatibleRightArrow", err)
		}
	})

	t.Run("DuplicateClass", func(t *testing.T) {
		b := NewEdge()
		if _, err := b.StyleClass(mustClass(t, "dup")); err != nil {
			t.Fatalf("StyleClass: %v", err)
		}
		if _, err := b.StyleClass(mustClass(t, "dup")); !errors.Is(err, diagram.ErrDuplicateClass) {
			t.Errorf("StyleClass error = %v, want ErrDuplicateClass", err)
		}
	})

	t.Run("DuplicatePropertyKind", func(t *testing.T) {
		b := NewEdge()
		if _, err := b.StyleProperty(diagram.Fill(diagram.RGB(1, 2, 3))); err != nil {
			t.Fatalf("StyleProperty: %v", err)
		}
		_, err := b.StyleProperty(diagram.Fill(diagram.RGB(9, 9, 9)))
		if !errors.Is(err, diagram.ErrDuplicateProperty) {
			t.Errorf("StyleProperty error = %v, want ErrDuplicateProperty", err)
		}
	})
}
