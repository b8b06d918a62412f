// Package manifest declares diagrams as data and builds them through the
// typed diagram builders.
//
// # Overview
//
// A manifest is a TOML or JSON document naming the diagram kind (flowchart,
// class, or er), its configuration, reusable style classes, nodes, and
// edges between node ids. [Load] reads one from a file, stdin, or an
// http(s) URL; [Build] walks the typed builders in pkg/diagram so that
// every construction invariant applies to declarative input too.
//
// # Format
//
// A minimal flowchart manifest:
//
//	kind = "flowchart"
//
//	[[nodes]]
//	id = "cart"
//	label = "Shopping Cart"
//
//	[[nodes]]
//	id = "pay"
//	label = "Payment"
//
//	[[edges]]
//	source = "cart"
//	target = "pay"
//	right_arrow = "normal"
//
// Node ids are manifest-local references ([a-zA-Z0-9_-]); the numeric ids
// in the rendered text are assigned by the builders in declaration order.
// A flowchart node claiming subnodes must list them after the subnodes'
// own declarations.
//
// JSON manifests carry the same structure and are validated against an
// embedded JSON Schema before decoding, so malformed documents fail with
// field-level messages instead of decode errors.
//
// # Errors
//
// All failures are structured pkg/errors values: schema and reference
// problems carry validation codes, and builder rejections (duplicate
// classes, incompatible arrows, missing labels) are wrapped with
// BUILD_FAILED while keeping the core sentinel matchable via errors.Is.
package manifest
