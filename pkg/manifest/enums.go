package manifest

import (
	"strings"

	"github.com/matzehuels/mermaid/pkg/diagram"
)

// The lookup tables below map the manifest vocabulary onto the diagram
// enums. Keys are lowercase; lookups fold case so "LR" and "lr" both work.

var directions = map[string]diagram.Direction{
	"lr":            diagram.LeftToRight,
	"left-to-right": diagram.LeftToRight,
	"tb":            diagram.TopToBottom,
	"top-to-bottom": diagram.TopToBottom,
	"rl":            diagram.RightToLeft,
	"right-to-left": diagram.RightToLeft,
	"bt":            diagram.BottomToTop,
	"bottom-to-top": diagram.BottomToTop,
}

var renderers = map[string]diagram.Renderer{
	"dagre": diagram.Dagre,
	"elk":   diagram.EclipseLayoutKernel,
}

var themes = map[string]diagram.Theme{
	"default":    diagram.ThemeDefault,
	"mc":         diagram.ThemeMermaidChart,
	"neo":        diagram.ThemeNeo,
	"neo-dark":   diagram.ThemeNeoDark,
	"forest":     diagram.ThemeForest,
	"base":       diagram.ThemeBase,
	"dark":       diagram.ThemeDark,
	"neutral":    diagram.ThemeNeutral,
	"redux":      diagram.ThemeRedux,
	"redux-dark": diagram.ThemeReduxDark,
}

var looks = map[string]diagram.Look{
	"classic":    diagram.LookClassic,
	"neo":        diagram.LookNeo,
	"handdrawn":  diagram.LookHandDrawn,
	"hand-drawn": diagram.LookHandDrawn,
}

var lineStyles = map[string]diagram.LineStyle{
	"solid":  diagram.LineSolid,
	"thick":  diagram.LineThick,
	"dashed": diagram.LineDashed,
}

var arrowShapes = map[string]diagram.ArrowShape{
	"normal":       diagram.ArrowNormal,
	"sharp":        diagram.ArrowSharp,
	"x":            diagram.ArrowX,
	"circle":       diagram.ArrowCircle,
	"triangle":     diagram.ArrowTriangle,
	"star":         diagram.ArrowStar,
	"zero-or-one":  diagram.ArrowZeroOrOne,
	"exactly-one":  diagram.ArrowExactlyOne,
	"zero-or-more": diagram.ArrowZeroOrMore,
	"one-or-more":  diagram.ArrowOneOrMore,
}

func parseDirection(name string) (diagram.Direction, bool) {
	d, ok := directions[strings.ToLower(name)]
	return d, ok
}

func parseRenderer(name string) (diagram.Renderer, bool) {
	r, ok := renderers[strings.ToLower(name)]
	return r, ok
}

func parseTheme(name string) (diagram.Theme, bool) {
	t, ok := themes[strings.ToLower(name)]
	return t, ok
}

func parseLook(name string) (diagram.Look, bool) {
	l, ok := looks[strings.ToLower(name)]
	return l, ok
}

func parseLineStyle(name string) (diagram.LineStyle, bool) {
	s, ok := lineStyles[strings.ToLower(name)]
	return s, ok
}

func parseArrowShape(name string) (diagram.ArrowShape, bool) {
	s, ok := arrowShapes[strings.ToLower(name)]
	return s, ok
}
