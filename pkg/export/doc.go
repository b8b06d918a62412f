// Package export converts built diagrams into Graphviz artifacts.
//
// # Overview
//
// This package flattens a diagram into a plain node-link graph and
// hands layout to Graphviz. It exists for quick local previews and for
// feeding diagram structure to external graph tooling; it is not a
// Mermaid renderer, so shapes, themes and style classes are dropped.
//
// # Usage
//
// Flatten a built document, then pick an output format:
//
//	g, err := export.FromDocument(doc)
//	dot := g.DOT()
//	svg, err := g.SVG(ctx)
//	png, err := g.PNG(ctx)
//
// # DOT Format
//
// The [Graph.DOT] method produces Graphviz DOT source that can be:
//
//   - Rendered directly via [Graph.SVG] or [Graph.PNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR) with rounded
// box nodes, matching the default flow direction of the rendered text.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// and PNG rendering; no external Graphviz installation is needed.
package export
