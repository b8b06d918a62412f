package er

import (
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

func mustNode(t *testing.T, id uint64, label string) *Node {
	t.Helper()
	b := NewNode().ID(id)
	if _, err := b.Label(label); err != nil {
		t.Fatalf("Label: %v", err)
	}
	node, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return node
}

func mustClass(t *testing.T, name string) *diagram.StyleClass {
	t.Helper()
	b, err := diagram.NewStyleClass().Name(name)
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if _, err := b.Property(diagram.Fill(diagram.RGB(255, 0, 0))); err != nil {
		t.Fatalf("Property: %v", err)
	}
	class, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return class
}

func TestAttributeString(t *testing.T) {
	attribute := NewAttribute("string", "name")
	if got, want := attribute.String(), "name string"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if attribute.Name() != "name" || attribute.Type() != "string" {
		t.Errorf("accessors = %q, %q, want name, string", attribute.Name(), attribute.Type())
	}
}

func TestNodeRenderBare(t *testing.T) {
	node := mustNode(t, 0, "Customer")
	if got, want := node.String(), "v0[\"Customer\"]\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeRenderAttributes(t *testing.T) {
	b := NewNode().ID(0).
		Attribute("string", "name").
		Attribute("int", "age")
	if _, err := b.Label("Customer"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	node, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := "v0[\"Customer\"] {\n" +
		"    name string\n" +
		"    age int\n" +
		"}\n"
	if got := node.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeRenderStyled(t *testing.T) {
	b := NewNode().ID(1)
	if _, err := b.Label("Order"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	if _, err := b.StyleClass(mustClass(t, "myStyle")); err != nil {
		t.Fatalf("StyleClass: %v", err)
	}
	node, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := "v1[\"Order\"]\n" +
		"class v1 myStyle\n"
	if got := node.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeRenderDepth(t *testing.T) {
	b := NewNode().ID(2).Attribute("uuid", "id")
	if _, err := b.Label("Invoice"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	node, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var sb strings.Builder
	node.AppendTabbed(&sb, 1)
	want := "  v2[\"Invoice\"] {\n" +
		"      id uuid\n" +
		"  }\n"
	if got := sb.String(); got != want {
		t.Errorf("AppendTabbed(1) = %q, want %q", got, want)
	}
}

func TestNodeBuilderBuildNode(t *testing.T) {
	b := NewNode().Attribute("string", "name")
	if _, err := b.Label("Auto"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	node, err := b.BuildNode(4)
	if err != nil {
		t.Fatalf("BuildNode: %v", err)
	}
	if node.ID() != 4 {
		t.Errorf("ID() = %d, want fallback 4", node.ID())
	}
	if _, ok := b.GetID(); ok {
		t.Error("BuildNode stored the fallback id on the builder")
	}
	if got := len(node.Attributes()); got != 1 {
		t.Errorf("Attributes() has %d rows, want 1", got)
	}
}

func TestNodeBuilderMissingLabel(t *testing.T) {
	_, err := NewNode().ID(1).Build()
	if !errors.Is(err, diagram.ErrMissingNodeLabel) {
		t.Errorf("Build() error = %v, want ErrMissingNodeLabel", err)
	}
}

func TestNodeCompatibleArrowShapes(t *testing.T) {
	cases := []struct {
		name  string
		shape diagram.ArrowShape
		want  bool
	}{
		{"Normal", diagram.ArrowNormal, false},
		{"Sharp", diagram.ArrowSharp, false},
		{"X", diagram.ArrowX, false},
		{"Circle", diagram.ArrowCircle, false},
		{"Triangle", diagram.ArrowTriangle, false},
		{"Star", diagram.ArrowStar, false},
		{"ZeroOrOne", diagram.ArrowZeroOrOne, true},
		{"ExactlyOne", diagram.ArrowExactlyOne, true},
		{"ZeroOrMore", diagram.ArrowZeroOrMore, true},
		{"OneOrMore", diagram.ArrowOneOrMore, true},
	}
	var node *Node
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := node.CompatibleArrowShape(tc.shape); got != tc.want {
				t.Errorf("CompatibleArrowShape(%v) = %v, want %v", tc.shape, got, tc.want)
			}
		})
	}
}
