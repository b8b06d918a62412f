package flowchart

import (
	"errors"
	"testing"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

func TestConfigurationRender(t *testing.T) {
	t.Run("DefaultSuppressed", func(t *testing.T) {
		var c Configuration
		if got := c.String(); got != "" {
			t.Errorf("zero configuration renders %q, want empty", got)
		}
	})

	t.Run("ThemeAloneStaysSuppressed", func(t *testing.T) {
		c, err := NewConfiguration().Theme(diagram.ThemeForest).Build()
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if got := c.String(); got != "" {
			t.Errorf("theme-only configuration renders %q, want empty", got)
		}
	})

	t.Run("TitleOnly", func(t *testing.T) {
		b, err := NewConfiguration().Title("Only Title")
		if err != nil {
			t.Fatalf("Title: %v", err)
		}
		c, err := b.Build()
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		want := "---\n" +
			"config:\n" +
			"  theme: default\n" +
			"  look: classic\n" +
			"  flowchart:\n" +
			"    defaultRenderer: \"dagre\"\n" +
			"title: Only Title\n" +
			"---\n"
		if got := c.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("RendererOnly", func(t *testing.T) {
		c, err := NewConfiguration().Renderer(diagram.EclipseLayoutKernel).Build()
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		want := "---\n" +
			"config:\n" +
			"  theme: default\n" +
			"  look: classic\n" +
			"  flowchart:\n" +
			"    defaultRenderer: \"elk\"\n" +
			"---\n"
		if got := c.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("Full", func(t *testing.T) {
		b := NewConfiguration().
			Renderer(diagram.EclipseLayoutKernel).
			Theme(diagram.ThemeForest).
			Look(diagram.LookHandDrawn)
		if _, err := b.Title("My Flowchart"); err != nil {
			t.Fatalf("Title: %v", err)
		}
		c, err := b.Build()
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		want := "---\n" +
			"config:\n" +
			"  theme: forest\n" +
			"  look: handDrawn\n" +
			"  flowchart:\n" +
			"    defaultRenderer: \"elk\"\n" +
			"title: My Flowchart\n" +
			"---\n"
		if got := c.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}

func TestConfigurationBuilder(t *testing.T) {
	b := NewConfiguration().
		Direction(diagram.TopToBottom).
		Renderer(diagram.EclipseLayoutKernel).
		Theme(diagram.ThemeForest).
		Look(diagram.LookHandDrawn).
		HTMLLabels(true).
		MarkdownAutoWrap(false).
		CurveStyle(CurveCatmullRom)
	if _, err := b.Title("My Flowchart"); err != nil {
		t.Fatalf("Title: %v", err)
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if title, ok := c.Title(); !ok || title != "My Flowchart" {
		t.Errorf("Title() = %q, %v, want %q, true", title, ok, "My Flowchart")
	}
	if c.Direction() != diagram.TopToBottom {
		t.Errorf("Direction() = %v, want TopToBottom", c.Direction())
	}
	if c.Renderer() != diagram.EclipseLayoutKernel {
		t.Errorf("Renderer() = %v, want EclipseLayoutKernel", c.Renderer())
	}
	if c.Theme() != diagram.ThemeForest {
		t.Errorf("Theme() = %v, want ThemeForest", c.Theme())
	}
	if c.Look() != diagram.LookHandDrawn {
		t.Errorf("Look() = %v, want LookHandDrawn", c.Look())
	}
	if !c.HTMLLabels() {
		t.Error("HTMLLabels() = false, want true")
	}
	if c.MarkdownAutoWrap() {
		t.Error("MarkdownAutoWrap() = true, want false")
	}
	if c.CurveStyle() != CurveCatmullRom {
		t.Errorf("CurveStyle() = %v, want CurveCatmullRom", c.CurveStyle())
	}
}

func TestConfigurationBuilderEmptyTitle(t *testing.T) {
	b := NewConfiguration()
	if _, err := b.Title(""); !errors.Is(err, diagram.ErrEmptyTitle) {
		t.Errorf("Title(\"\") error = %v, want ErrEmptyTitle", err)
	}
	var cfgErr *diagram.ConfigError
	_, err := b.Title("")
	if !errors.As(err, &cfgErr) {
		t.Errorf("Title(\"\") error = %T, want *diagram.ConfigError", err)
	}
}
