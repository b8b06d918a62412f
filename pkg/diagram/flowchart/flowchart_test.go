package flowchart

import (
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

func registerLeaf(t *testing.T, b *Builder, label string) *Node {
	t.Helper()
	nb, err := NewNode().Label(label)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	node, err := b.Node(nb)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	return node
}

func TestBuilderRender(t *testing.T) {
	b := NewBuilder()

	cb := NewConfiguration().
		Renderer(diagram.EclipseLayoutKernel).
		Theme(diagram.ThemeForest).
		Look(diagram.LookHandDrawn).
		Direction(diagram.TopToBottom)
	if _, err := cb.Title("My Flowchart"); err != nil {
		t.Fatalf("Title: %v", err)
	}
	if err := b.Configuration(cb); err != nil {
		t.Fatalf("Configuration: %v", err)
	}

	alertClass, err := b.StyleClass(newClassBuilder(t, "alert"))
	if err != nil {
		t.Fatalf("StyleClass: %v", err)
	}
	if _, err := b.StyleClass(newClassBuilder(t, "unused")); err != nil {
		t.Fatalf("StyleClass: %v", err)
	}

	nb := NewNode().Shape(ShapeStadium)
	if _, err := nb.Label("Start"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	if _, err := nb.StyleClass(alertClass); err != nil {
		t.Fatalf("StyleClass: %v", err)
	}
	start, err := b.Node(nb)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}

	nb = NewNode().Shape(ShapeStadium)
	if _, err := nb.Label("Done"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	done, err := b.Node(nb)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}

	eb := NewEdge().Source(start).Destination(done)
	if _, err := eb.RightArrow(diagram.ArrowNormal); err != nil {
		t.Fatalf("RightArrow: %v", err)
	}
	if _, err := b.Edge(eb); err != nil {
		t.Fatalf("Edge: %v", err)
	}

	want := "---\n" +
		"config:\n" +
		"  theme: forest\n" +
		"  look: handDrawn\n" +
		"  flowchart:\n" +
		"    defaultRenderer: \"elk\"\n" +
		"title: My Flowchart\n" +
		"---\n" +
		"flowchart TB\n" +
		"  classDef alert fill: #ff0000\n" +
		"  v0@{shape: stadium, label: \"Start\"}\n" +
		"  class v0 alert\n" +
		"  v1@{shape: stadium, label: \"Done\"}\n" +
		"  v0 ---> v1\n"
	if got := b.Build().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func newClassBuilder(t *testing.T, name string) *diagram.StyleClassBuilder {
	t.Helper()
	cb, err := diagram.NewStyleClass().Name(name)
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if _, err := cb.Property(diagram.Fill(diagram.RGB(255, 0, 0))); err != nil {
		t.Fatalf("Property: %v", err)
	}
	return cb
}

func TestBuilderAssignsSequentialEdgeIDs(t *testing.T) {
	b := NewBuilder()
	first := registerLeaf(t, b, "First")
	second := registerLeaf(t, b, "Second")

	edge, err := b.Edge(NewEdge().ID(99).Source(first).Destination(second))
	if err != nil {
		t.Fatalf("Edge: %v", err)
	}
	if edge.ID() != 0 {
		t.Errorf("first edge ID() = %d, want 0 regardless of the builder id", edge.ID())
	}

	edge, err = b.Edge(NewEdge().Source(second).Destination(first))
	if err != nil {
		t.Fatalf("Edge: %v", err)
	}
	if edge.ID() != 1 {
		t.Errorf("second edge ID() = %d, want 1", edge.ID())
	}
}

func TestBuilderRejectsForeignEndpoints(t *testing.T) {
	b := NewBuilder()
	inside := registerLeaf(t, b, "Inside")
	outside := mustLeaf(t, 99, "Outside")

	_, err := b.Edge(NewEdge().Source(outside).Destination(inside))
	if !errors.Is(err, diagram.ErrSourceNotFound) {
		t.Errorf("Edge error = %v, want ErrSourceNotFound", err)
	}
	if _, err := b.Edge(NewEdge().Source(inside).Destination(outside)); !errors.Is(err, diagram.ErrDestinationNotFound) {
		t.Errorf("Edge error = %v, want ErrDestinationNotFound", err)
	}
	if got := b.NumberOfEdges(); got != 0 {
		t.Errorf("NumberOfEdges() = %d after rejected edges, want 0", got)
	}
}

func TestBuilderSubgraphExclusion(t *testing.T) {
	b := NewBuilder()
	first := registerLeaf(t, b, "First")
	second := registerLeaf(t, b, "Second")

	gb := NewNode().Direction(diagram.LeftToRight)
	if _, err := gb.Label("Group"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	if _, err := gb.Subnode(first); err != nil {
		t.Fatalf("Subnode: %v", err)
	}
	if _, err := gb.Subnode(second); err != nil {
		t.Fatalf("Subnode: %v", err)
	}
	if _, err := b.Node(gb); err != nil {
		t.Fatalf("Node: %v", err)
	}

	want := "flowchart LR\n" +
		"  subgraph v2 [\"`Group`\"]\n" +
		"      direction LR\n" +
		"    v0@{shape: rect, label: \"First\"}\n" +
		"    v1@{shape: rect, label: \"Second\"}\n" +
		"  end\n"
	if got := b.Build().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderSharedSubnodeRendersPerOwner(t *testing.T) {
	b := NewBuilder()
	member := registerLeaf(t, b, "Member")

	for _, label := range []string{"Left", "Right"} {
		gb := NewNode()
		if _, err := gb.Label(label); err != nil {
			t.Fatalf("Label: %v", err)
		}
		if _, err := gb.Subnode(member); err != nil {
			t.Fatalf("Subnode: %v", err)
		}
		if _, err := b.Node(gb); err != nil {
			t.Fatalf("Node: %v", err)
		}
	}

	out := b.Build().String()
	if got := strings.Count(out, "v0@{shape: rect, label: \"Member\"}"); got != 2 {
		t.Errorf("member rendered %d times, want once inside each owning subgraph", got)
	}
	// Never at top level: every occurrence sits at subgraph depth.
	if strings.Contains(out, "\n  v0@{") {
		t.Error("member also rendered at top level")
	}
}

func TestDiagramClassDefFiltering(t *testing.T) {
	b := NewBuilder()

	nodeClass, err := b.StyleClass(newClassBuilder(t, "nodeOnly"))
	if err != nil {
		t.Fatalf("StyleClass: %v", err)
	}
	edgeClass, err := b.StyleClass(newClassBuilder(t, "edgeOnly"))
	if err != nil {
		t.Fatalf("StyleClass: %v", err)
	}
	if _, err := b.StyleClass(newClassBuilder(t, "orphan")); err != nil {
		t.Fatalf("StyleClass: %v", err)
	}

	nb := NewNode()
	if _, err := nb.Label("Start"); err != nil {
		t.Fatalf("Label: %v", err)
	}
	if _, err := nb.StyleClass(nodeClass); err != nil {
		t.Fatalf("StyleClass: %v", err)
	}
	start, err := b.Node(nb)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	done := registerLeaf(t, b, "Done")

	eb := NewEdge().Source(start).Destination(done)
	if _, err := eb.StyleClass(edgeClass); err != nil {
		t.Fatalf("StyleClass: %v", err)
	}
	if _, err := b.Edge(eb); err != nil {
		t.Fatalf("Edge: %v", err)
	}

	out := b.Build().String()
	if !strings.Contains(out, "classDef nodeOnly") {
		t.Error("class referenced by a node was dropped")
	}
	if !strings.Contains(out, "classDef edgeOnly") {
		t.Error("class referenced by an edge was dropped")
	}
	if strings.Contains(out, "classDef orphan") {
		t.Error("unreferenced class was rendered")
	}
}

func TestDiagramSnapshot(t *testing.T) {
	b := NewBuilder()
	first := registerLeaf(t, b, "First")
	snapshot := b.Build()

	second := registerLeaf(t, b, "Second")
	if _, err := b.Edge(NewEdge().Source(first).Destination(second)); err != nil {
		t.Fatalf("Edge: %v", err)
	}

	if got := len(snapshot.Nodes()); got != 1 {
		t.Errorf("snapshot sees %d nodes, want 1", got)
	}
	if got := len(snapshot.Edges()); got != 0 {
		t.Errorf("snapshot sees %d edges, want 0", got)
	}
	if node, ok := snapshot.NodeByID(0); !ok || node != first {
		t.Errorf("NodeByID(0) = %v, %v, want the first node", node, ok)
	}
}
